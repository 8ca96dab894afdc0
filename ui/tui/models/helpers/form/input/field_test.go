// Copyright (c) 2026 Cuba Payment Inputs Team
// cuba-payment-inputs - payment card field formatting and validation
// This source code is licensed under the MIT license found in the LICENSE file.
package forminput

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiderosado/cuba-payment-inputs/core/model"
	"github.com/fiderosado/cuba-payment-inputs/core/state"
	"github.com/fiderosado/cuba-payment-inputs/i18n"
	"github.com/fiderosado/cuba-payment-inputs/ui/tui/models/helpers/form"
	"github.com/fiderosado/cuba-payment-inputs/uiadapters"
)

func newSession() *state.Session {
	clock := func() time.Time { return time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC) }
	return state.NewSession(state.New(state.WithClock(clock)))
}

func newField(ss *state.Session, id model.FieldID) *Field {
	f := NewField(uiadapters.NewForm(ss, i18n.NewCatalog("en", nil)), id, "submit")
	f.Focus()
	return f
}

func typeText(f *Field, text string) form.Action {
	action := form.ActionNone
	for _, r := range text {
		_, action = f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return action
}

func TestTypingCardNumberFormatsAndAdvances(t *testing.T) {
	ss := newSession()
	f := newField(ss, model.FieldCardNumber)

	assert.Equal(t, form.ActionNone, typeText(f, "42424"))
	assert.Equal(t, "4242 4", f.Value())
	assert.Equal(t, 6, f.Position())

	action := typeText(f, "24242424242")
	assert.Equal(t, form.ActionNext, action)
	assert.Equal(t, "4242 4242 4242 4242", f.Value())
	assert.Equal(t, 19, f.Position())
	require.NotNil(t, ss.State().CardType())
	assert.Equal(t, "visa", ss.State().CardType().Type)
	assert.Equal(t, model.FieldExpiryDate, ss.State().Focused())
}

func TestMidTextEditKeepsCaretOnDigit(t *testing.T) {
	ss := newSession()
	f := newField(ss, model.FieldCardNumber)
	typeText(f, "42424242")
	require.Equal(t, "4242 4242", f.Value())

	f.Update(CursorMsg{Field: model.FieldCardNumber, Seq: f.seq, Pos: 2})
	require.Equal(t, 2, f.Position())

	typeText(f, "1")
	assert.Equal(t, "4214 2424 2", f.Value())
	assert.Equal(t, 3, f.Position())
}

func TestCursorMsgCarriesTargetAndStaleOnesAreDropped(t *testing.T) {
	ss := newSession()
	f := newField(ss, model.FieldCardNumber)

	_, _ = f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("4")})
	cmd, _ := f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("2")})
	require.NotNil(t, cmd)

	stale := CursorMsg{Field: model.FieldCardNumber, Seq: f.seq - 1, Pos: 0}
	f.Update(stale)
	assert.Equal(t, 2, f.Position())

	other := CursorMsg{Field: model.FieldCVC, Seq: f.seq, Pos: 0}
	f.Update(other)
	assert.Equal(t, 2, f.Position())
	assert.Equal(t, "cvc", other.TargetID())
}

func TestExpiryTyping(t *testing.T) {
	ss := newSession()
	f := newField(ss, model.FieldExpiryDate)

	typeText(f, "1")
	assert.Equal(t, "1", f.Value())
	typeText(f, "2")
	assert.Equal(t, "12 / ", f.Value())
	assert.Equal(t, 5, f.Position())

	assert.Equal(t, form.ActionNext, typeText(f, "30"))
	assert.Equal(t, "12 / 30", f.Value())
}

func TestBackspaceInEmptyFieldGoesBack(t *testing.T) {
	ss := newSession()
	f := newField(ss, model.FieldExpiryDate)

	_, action := f.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, form.ActionPrev, action)
	assert.Equal(t, model.FieldCardNumber, ss.State().Focused())
}

func TestBackspaceDeletes(t *testing.T) {
	ss := newSession()
	f := newField(ss, model.FieldZIP)
	typeText(f, "104")

	_, action := f.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, form.ActionNone, action)
	assert.Equal(t, "10", f.Value())
	assert.Equal(t, "10", ss.State().Value(model.FieldZIP))
}

func TestEnterSubmits(t *testing.T) {
	f := newField(newSession(), model.FieldZIP)
	_, action := f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, form.ActionSubmit, action)
}

func TestCVCFollowsSessionTrim(t *testing.T) {
	ss := newSession()
	f := newField(ss, model.FieldCVC)
	typeText(f, "1234")
	require.Equal(t, "1234", f.Value())

	ss.Type(model.FieldCardNumber, "4242424242424242")
	view := f.View(30)
	assert.NotContains(t, view, "1234")
	assert.Equal(t, "1234", f.Value(), "View must not change the widget")

	f.Update(SyncMsg{Field: model.FieldExpiryDate})
	assert.Equal(t, "1234", f.Value())
	f.Update(SyncMsg{Field: model.FieldCVC})
	assert.Equal(t, "123", f.Value())
	assert.Equal(t, "cvc", SyncMsg{Field: model.FieldCVC}.TargetID())
}

func TestCardNumberEditSchedulesCVCSync(t *testing.T) {
	ss := newSession()
	f := newField(ss, model.FieldCardNumber)
	f.input.SetValue("4")
	f.input.CursorEnd()
	cmd, _ := f.change()

	msgs := collect(cmd)
	assert.Contains(t, msgs, SyncMsg{Field: model.FieldCVC})
	assert.Contains(t, msgs, CursorMsg{Field: model.FieldCardNumber, Seq: f.seq, Pos: 1})
}

// collect runs cmd and flattens nested batches.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, collect(c)...)
	}
	return out
}

func TestViewShowsLabelAndVisibleError(t *testing.T) {
	ss := newSession()
	f := newField(ss, model.FieldCardNumber)

	view := f.View(30)
	assert.Contains(t, view, "Card number")
	assert.NotContains(t, view, "emptyCardNumber")

	f.Blur("")
	view = f.View(30)
	assert.True(t, strings.Contains(view, "emptyCardNumber"), view)
	assert.True(t, ss.State().IsTouched())
}

func TestSetFormatsThroughSession(t *testing.T) {
	ss := newSession()
	f := newField(ss, model.FieldCardNumber)
	f.Set("4242424242424242")
	assert.Equal(t, "4242 4242 4242 4242", f.Get())
	assert.Equal(t, "4242 4242 4242 4242", ss.State().Value(model.FieldCardNumber))
}

func TestButton(t *testing.T) {
	b := NewButton("Pay", false)
	_, km := b.Focus()
	require.NotNil(t, km)
	_, action := b.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, form.ActionSubmit, action)
	assert.Contains(t, b.View(20), "Pay")
	assert.Nil(t, b.Get())

	b.Disabled = true
	_, action = b.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, form.ActionNone, action)
}
