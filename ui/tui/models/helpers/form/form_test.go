// Copyright (c) 2026 Cuba Payment Inputs Team
// cuba-payment-inputs - payment card field formatting and validation
// This source code is licensed under the MIT license found in the LICENSE file.
package form

import (
	"testing"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInput struct {
	value     string
	focused   bool
	blurredTo []string
	action    Action
	got       []tea.Msg
}

func (f *fakeInput) Focus() (tea.Cmd, help.KeyMap) {
	f.focused = true
	return nil, nil
}

func (f *fakeInput) Blur(next string) {
	f.focused = false
	f.blurredTo = append(f.blurredTo, next)
}

func (f *fakeInput) Reset()        { f.value = "" }
func (f *fakeInput) Init() tea.Cmd { return nil }

func (f *fakeInput) Update(msg tea.Msg) (tea.Cmd, Action) {
	f.got = append(f.got, msg)
	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyRunes {
		f.value += string(k.Runes)
	}
	return nil, f.action
}

func (f *fakeInput) Set(v any) {
	if s, ok := v.(string); ok {
		f.value = s
	}
}

func (f *fakeInput) Get() any {
	if f.value == "" {
		return nil
	}
	return f.value
}

func (f *fakeInput) View(int) string { return f.value }

type pair struct {
	First  string `mapstructure:"first"`
	Second string `mapstructure:"second"`
}

type targeted struct{ id string }

func (t targeted) TargetID() string { return t.id }

func newPairForm(opts ...NewOpt[pair]) (*Form[pair], *fakeInput, *fakeInput) {
	a, b := &fakeInput{}, &fakeInput{}
	opts = append([]NewOpt[pair]{
		WithRow[pair](Item{ID: "first", Input: a}, Item{ID: "second", Input: b}),
	}, opts...)
	f := New[pair](opts...)
	f.Focus()
	return f, a, b
}

func TestTabMovesFocusAndWraps(t *testing.T) {
	f, a, b := newPairForm()
	require.True(t, a.focused)
	assert.Equal(t, "first", f.Active())

	f.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "second", f.Active())
	assert.False(t, a.focused)
	assert.True(t, b.focused)
	assert.Equal(t, []string{"second"}, a.blurredTo)

	f.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "first", f.Active())

	f.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, "second", f.Active())
	assert.Equal(t, []string{"second", "second"}, a.blurredTo)
	assert.Equal(t, []string{"first"}, b.blurredTo)
}

func TestBlurLeavesForm(t *testing.T) {
	f, a, _ := newPairForm()
	f.Blur()
	assert.False(t, a.focused)
	assert.Equal(t, []string{""}, a.blurredTo)

	// keys are ignored while blurred
	f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.Empty(t, a.value)
}

func TestSubmitDecodesValues(t *testing.T) {
	var (
		got    pair
		called bool
	)
	f, a, b := newPairForm(WithOnSubmit(func(p pair, err error) tea.Cmd {
		require.NoError(t, err)
		got, called = p, true
		return nil
	}))
	a.value = "one"
	b.action = ActionSubmit

	f.Update(tea.KeyMsg{Type: tea.KeyTab})
	f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("two")})

	require.True(t, called)
	assert.Equal(t, pair{First: "one", Second: "two"}, got)
}

func TestResetAfterSubmit(t *testing.T) {
	f, a, _ := newPairForm(
		WithOnSubmit(func(pair, error) tea.Cmd { return nil }),
		WithResetAfterSubmit[pair](),
	)
	a.value = "one"
	f.Update(tea.KeyMsg{Type: tea.KeyTab})
	f.Submit()
	assert.Empty(t, a.value)
	assert.Equal(t, "first", f.Active())
}

func TestActionsMoveFocus(t *testing.T) {
	f, a, b := newPairForm()
	a.action = ActionNext
	f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1")})
	assert.Equal(t, "second", f.Active())

	b.action = ActionPrev
	f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("2")})
	assert.Equal(t, "first", f.Active())
}

func TestCancel(t *testing.T) {
	cancelled := false
	f, a, _ := newPairForm(WithOnCancel[pair](func() tea.Cmd {
		cancelled = true
		return nil
	}))
	a.action = ActionCancel
	f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.True(t, cancelled)
}

func TestTargetedMessageReachesInactiveItem(t *testing.T) {
	f, a, b := newPairForm()
	b.action = ActionSubmit
	f.Update(targeted{id: "second"})

	assert.Len(t, b.got, 1)
	assert.Empty(t, a.got)
	// actions of inactive items are ignored
	assert.Equal(t, "first", f.Active())
}

func TestFocusIDAndSet(t *testing.T) {
	f, a, b := newPairForm()
	f.FocusID("second")
	assert.Equal(t, "second", f.Active())
	assert.Equal(t, []string{"second"}, a.blurredTo)

	f.FocusID("missing")
	assert.Equal(t, "second", f.Active())

	require.NoError(t, f.Set(pair{First: "x", Second: "y"}))
	assert.Equal(t, "x", a.value)
	assert.Equal(t, "y", b.value)

	got, err := f.Get()
	require.NoError(t, err)
	assert.Equal(t, pair{First: "x", Second: "y"}, got)
}

func TestKeyMapMergesInputBindings(t *testing.T) {
	f, _, _ := newPairForm(WithKeyMap[pair](NewKeyMap("forward", "back")))
	bindings := f.KeyMap().ShortHelp()
	require.Len(t, bindings, 2)
	assert.Equal(t, "forward", bindings[0].Help().Desc)
	assert.Equal(t, "back", bindings[1].Help().Desc)
}
