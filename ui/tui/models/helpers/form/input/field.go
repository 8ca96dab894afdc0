// Copyright (c) 2026 Cuba Payment Inputs Team
// cuba-payment-inputs - payment card field formatting and validation
// This source code is licensed under the MIT license found in the LICENSE file.
package forminput

import (
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fiderosado/cuba-payment-inputs/core/model"
	"github.com/fiderosado/cuba-payment-inputs/core/state"
	"github.com/fiderosado/cuba-payment-inputs/ui/tui/models/helpers/form"
	"github.com/fiderosado/cuba-payment-inputs/ui/tui/util"
	"github.com/fiderosado/cuba-payment-inputs/uiadapters"
)

// CursorMsg places the caret of a field once the formatted text has been
// rendered. Seq identifies the edit it belongs to; a newer edit makes it
// stale.
type CursorMsg struct {
	Field model.FieldID
	Seq   int
	Pos   int
}

func (m CursorMsg) TargetID() string { return string(m.Field) }

// SyncMsg asks a field to reload its value from the session after another
// field changed it, e.g. a CVC trimmed when the card type changed.
type SyncMsg struct {
	Field model.FieldID
}

func (m SyncMsg) TargetID() string { return string(m.Field) }

var (
	_ form.TargetedMsg = CursorMsg{}
	_ form.TargetedMsg = SyncMsg{}
)

type FieldKeyMap struct {
	Submit key.Binding
}

func (k FieldKeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Submit} }

func (k FieldKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Submit}} }

type FieldStyles struct {
	Label        lipgloss.Style
	FocusedLabel lipgloss.Style
	Box          lipgloss.Style
	FocusedBox   lipgloss.Style
	InvalidBox   lipgloss.Style
	Error        lipgloss.Style
}

func DefaultFieldStyles() FieldStyles {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	return FieldStyles{
		Label:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		FocusedLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Box:          box,
		FocusedBox:   box.BorderForeground(lipgloss.Color("205")),
		InvalidBox:   box.BorderForeground(lipgloss.Color("196")),
		Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

// Field is a text input bound to one payment field of a session. Every edit
// goes through the session, which supplies the formatted text, the caret
// shift and focus changes.
type Field struct {
	ID     model.FieldID
	KeyMap FieldKeyMap
	Styles FieldStyles

	adapter  *uiadapters.Form
	handlers uiadapters.Handlers
	input    textinput.Model
	focused  bool
	seq      int
}

func NewField(adapter *uiadapters.Form, id model.FieldID, submitHelp string) *Field {
	f := &Field{
		ID: id,
		KeyMap: FieldKeyMap{
			Submit: key.NewBinding(
				key.WithKeys("enter"),
				key.WithHelp("enter", submitHelp),
			),
		},
		Styles:   DefaultFieldStyles(),
		adapter:  adapter,
		handlers: adapter.Handlers(id, uiadapters.CallerHandlers{}),
		input:    textinput.New(),
	}
	f.input.Prompt = ""
	f.sync(adapter.Props(id))
	return f
}

func (f *Field) Focus() (tea.Cmd, help.KeyMap) {
	f.focused = true
	f.handlers.OnFocus()
	f.sync(f.adapter.Props(f.ID))
	return f.input.Focus(), f.KeyMap
}

func (f *Field) Blur(next string) {
	f.input.Blur()
	f.focused = false
	f.handlers.OnBlur(model.FieldID(next))
}

func (f *Field) Get() any {
	return f.input.Value()
}

func (f *Field) Init() tea.Cmd {
	return nil
}

// Reset clears the widget and drops pending caret moves. The session is
// reset by its owner.
func (f *Field) Reset() {
	f.input.Reset()
	f.seq++
}

func (f *Field) Set(value any) {
	if value, ok := value.(string); ok {
		out := f.handlers.OnChange(value, utf8.RuneCountInString(value))
		f.input.SetValue(out.Text)
		f.input.CursorEnd()
		f.seq++
	}
}

// Position is the caret's rune offset.
func (f *Field) Position() int {
	return f.input.Position()
}

func (f *Field) Value() string {
	return f.input.Value()
}

func (f *Field) Update(msg tea.Msg) (tea.Cmd, form.Action) {
	switch msg := msg.(type) {
	case CursorMsg:
		if msg.Field == f.ID && msg.Seq == f.seq {
			f.input.SetCursor(msg.Pos)
		}
		return nil, form.ActionNone
	case SyncMsg:
		if msg.Field == f.ID {
			f.sync(f.adapter.Props(f.ID))
		}
		return nil, form.ActionNone
	case tea.KeyMsg:
		if key.Matches(msg, f.KeyMap.Submit) {
			return nil, form.ActionSubmit
		}
		if msg.Type == tea.KeyBackspace {
			if out := f.handlers.OnKeyDown(model.KeyBackspace); out.Advanced() {
				return nil, f.actionFor(out)
			}
		}
	}

	before := f.input.Value()
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	if f.input.Value() == before {
		return cmd, form.ActionNone
	}

	changeCmd, action := f.change()
	return tea.Batch(cmd, changeCmd), action
}

// change hands the edited text to the session and schedules the caret move
// that keeps it next to the same digit.
func (f *Field) change() (tea.Cmd, form.Action) {
	pos := f.input.Position()
	out := f.handlers.OnChange(f.input.Value(), pos)

	f.input.CharLimit = f.adapter.Props(f.ID).MaxLength
	f.input.SetValue(out.Text)
	f.seq++

	target := util.Clamp(0, pos+out.CursorDelta, utf8.RuneCountInString(out.Text))
	f.input.SetCursor(target)

	// Re-applied after the next render; dropped if another edit came first.
	msg := CursorMsg{Field: f.ID, Seq: f.seq, Pos: target}
	cmd := func() tea.Msg { return msg }
	if f.ID == model.FieldCardNumber {
		cmd = tea.Batch(cmd, func() tea.Msg { return SyncMsg{Field: model.FieldCVC} })
	}

	if out.Advanced() {
		return cmd, f.actionFor(out)
	}
	return cmd, form.ActionNone
}

func (f *Field) actionFor(out state.Outcome) form.Action {
	switch out.FocusTarget {
	case f.ID.Next():
		return form.ActionNext
	case f.ID.Prev():
		return form.ActionPrev
	}
	return form.ActionNone
}

// sync pulls session-side changes into the widget.
func (f *Field) sync(p uiadapters.InputProps) {
	f.input.Placeholder = p.Placeholder
	f.input.CharLimit = p.MaxLength
	if f.input.Value() != p.Value {
		f.input.SetValue(p.Value)
	}
}

// View renders from the session's props without touching the widget; a
// pending SyncMsg brings the widget itself up to date.
func (f *Field) View(width int) string {
	p := f.adapter.Props(f.ID)
	in := f.input
	if in.Value() != p.Value {
		in.SetValue(p.Value)
	}

	label := f.Styles.Label.Render(p.Label)
	box := f.Styles.Box
	switch {
	case p.Invalid:
		box = f.Styles.InvalidBox
	case f.focused:
		box = f.Styles.FocusedBox
	}
	if f.focused {
		label = f.Styles.FocusedLabel.Render(p.Label)
	}

	inner := max(width-box.GetHorizontalFrameSize(), 1)
	in.Width = inner
	errLine := " "
	if p.Invalid {
		errLine = f.Styles.Error.Render(p.ErrorText)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		label,
		box.Width(inner+box.GetHorizontalPadding()).Render(in.View()),
		errLine,
	)
}

var _ form.FormInput = (*Field)(nil)
