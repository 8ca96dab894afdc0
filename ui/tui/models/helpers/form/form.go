// Copyright (c) 2026 Cuba Payment Inputs Team
// cuba-payment-inputs - payment card field formatting and validation
// This source code is licensed under the MIT license found in the LICENSE file.
package form

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-viper/mapstructure/v2"

	"github.com/fiderosado/cuba-payment-inputs/ui/tui/util"
	"github.com/fiderosado/cuba-payment-inputs/util/slicest"
)

type FormInput interface {
	// Focus activates the input and returns its own key bindings.
	Focus() (tea.Cmd, help.KeyMap)
	// Blur deactivates the input. next is the id of the item receiving
	// focus, empty when focus leaves the form.
	Blur(next string)
	Reset()
	Init() tea.Cmd
	Update(msg tea.Msg) (tea.Cmd, Action)
	Set(any)
	// Get returns the value decoded into the result; nil values are skipped.
	Get() any
	View(width int) string
}

// TargetedMsg is delivered to the item with the given id instead of the
// active one.
type TargetedMsg interface {
	TargetID() string
}

type Item struct {
	ID    string
	Input FormInput
}

type formRow struct {
	items []int
}

// Form manages focus between inputs and decodes their values into T.
type Form[T any] struct {
	OnSubmit         func(result T, err error) tea.Cmd
	OnCancel         func() tea.Cmd
	ResetAfterSubmit bool

	items       []Item
	rows        []formRow
	activeIndex int
	focused     bool
	keyMap      KeyMap
	inputKeyMap help.KeyMap
}

func (f *Form[T]) Init() tea.Cmd {
	return tea.Batch(slicest.Map(f.items, func(item Item) tea.Cmd {
		return item.Input.Init()
	})...)
}

func (f *Form[T]) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(TargetedMsg); ok {
		return f.updateTarget(msg)
	}

	if !f.focused || len(f.items) == 0 {
		return nil
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(kmsg, f.keyMap.Next):
			return f.changeActiveIndex(1)
		case key.Matches(kmsg, f.keyMap.Prev):
			return f.changeActiveIndex(-1)
		}
	}

	return f.updateActiveInput(msg)
}

func (f *Form[T]) View(width int) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		slicest.Map(f.rows, func(row formRow) string {
			return lipgloss.JoinHorizontal(
				lipgloss.Top,
				slicest.Map(row.items, func(itemIndex int) string {
					return f.items[itemIndex].Input.View(width / len(row.items))
				})...,
			)
		})...,
	)
}

// KeyMap is the form's navigation bindings merged with the active input's.
func (f *Form[T]) KeyMap() help.KeyMap {
	return util.MergeKeyMaps(f.keyMap, f.inputKeyMap)
}

func (f *Form[T]) Focus() tea.Cmd {
	if len(f.items) == 0 {
		return nil
	}
	f.focused = true
	return f.focusActive()
}

func (f *Form[T]) Blur() {
	if !f.focused {
		return
	}
	f.focused, f.inputKeyMap = false, nil
	f.items[f.activeIndex].Input.Blur("")
}

// Active is the id of the focused item.
func (f *Form[T]) Active() string {
	if len(f.items) == 0 {
		return ""
	}
	return f.items[f.activeIndex].ID
}

// FocusID moves focus to the item with the given id. Unknown ids are ignored.
func (f *Form[T]) FocusID(id string) tea.Cmd {
	for i, item := range f.items {
		if item.ID == id {
			return f.changeActiveIndex(i - f.activeIndex)
		}
	}
	return nil
}

func (f *Form[T]) Reset() tea.Cmd {
	for _, item := range f.items {
		item.Input.Reset()
	}
	return f.changeActiveIndex(-f.activeIndex)
}

func (f *Form[T]) Submit() tea.Cmd {
	var resetCmd, submitCmd tea.Cmd
	data, err := f.Get()
	if f.OnSubmit != nil {
		submitCmd = f.OnSubmit(data, err)
	}
	if f.ResetAfterSubmit {
		resetCmd = f.Reset()
	}
	return tea.Batch(submitCmd, resetCmd)
}

func (f *Form[T]) Get() (T, error) {
	var data T
	values := make(map[string]any, len(f.items))

	for _, item := range f.items {
		if value := item.Input.Get(); value != nil {
			values[item.ID] = value
		}
	}

	err := mapstructure.Decode(values, &data)
	return data, err
}

func (f *Form[T]) Set(data T) error {
	values := make(map[string]any, len(f.items))
	if err := mapstructure.Decode(data, &values); err != nil {
		return err
	}

	for i := range f.items {
		if value, ok := values[f.items[i].ID]; ok {
			f.items[i].Input.Set(value)
		}
	}

	return nil
}

func (f *Form[T]) updateTarget(msg TargetedMsg) tea.Cmd {
	for _, item := range f.items {
		if item.ID == msg.TargetID() {
			cmd, action := item.Input.Update(msg)
			if item.ID != f.Active() {
				return cmd
			}
			return tea.Batch(cmd, f.applyAction(action))
		}
	}
	return nil
}

func (f *Form[T]) updateActiveInput(msg tea.Msg) tea.Cmd {
	updateCmd, action := f.items[f.activeIndex].Input.Update(msg)
	return tea.Batch(updateCmd, f.applyAction(action))
}

func (f *Form[T]) applyAction(action Action) tea.Cmd {
	switch action {
	case ActionNext:
		return f.changeActiveIndex(1)
	case ActionPrev:
		return f.changeActiveIndex(-1)
	case ActionSubmit:
		return f.Submit()
	case ActionCancel:
		if f.OnCancel != nil {
			return f.OnCancel()
		}
	}
	return nil
}

func (f *Form[T]) changeActiveIndex(delta int) tea.Cmd {
	n := len(f.items)
	if n == 0 {
		return nil
	}

	old := f.activeIndex
	f.activeIndex = ((old+delta)%n + n) % n

	if !f.focused {
		return nil
	}
	if f.activeIndex != old {
		f.items[old].Input.Blur(f.items[f.activeIndex].ID)
	}
	return f.focusActive()
}

func (f *Form[T]) focusActive() tea.Cmd {
	cmd, keyMap := f.items[f.activeIndex].Input.Focus()
	f.inputKeyMap = keyMap
	return cmd
}
