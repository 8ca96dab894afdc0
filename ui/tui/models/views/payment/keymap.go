// Copyright (c) 2026 Cuba Payment Inputs Team
// cuba-payment-inputs - payment card field formatting and validation
// This source code is licensed under the MIT license found in the LICENSE file.
package payment

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

type KeyMap struct {
	Quit key.Binding
}

func newKeyMap(quitHelp string) KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", quitHelp),
		),
	}
}

func (k KeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Quit} }

func (k KeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Quit}} }

var _ help.KeyMap = (*KeyMap)(nil)
