// Copyright (c) 2026 Cuba Payment Inputs Team
// cuba-payment-inputs - payment card field formatting and validation
// This source code is licensed under the MIT license found in the LICENSE file.
package util

import tea "github.com/charmbracelet/bubbletea"

// Size tracks the terminal dimensions a model was last told about.
type Size struct {
	Width  int
	Height int
}

// Update records a tea.WindowSizeMsg and reports whether msg was one.
func (s *Size) Update(msg tea.Msg) bool {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		s.Width, s.Height = msg.Width, msg.Height
		return true
	}
	return false
}

// Inner is the width left after horizontal padding, never below floor.
func (s Size) Inner(padding, floor int) int {
	return Clamp(floor, s.Width-2*padding, max(floor, s.Width))
}
