// Copyright (c) 2026 Cuba Payment Inputs Team
// cuba-payment-inputs - payment card field formatting and validation
// This source code is licensed under the MIT license found in the LICENSE file.
package state

import (
	"github.com/fiderosado/cuba-payment-inputs/core/cardtype"
	"github.com/fiderosado/cuba-payment-inputs/core/model"
)

// Event is one input event from a field widget.
type Event struct {
	Field model.FieldID
	Kind  model.EventKind
	// Text is the widget content after the edit (change events).
	Text string
	// Cursor is the rune offset of the caret within Text.
	Cursor int
	// Key names the pressed key for keydown events, e.g. model.KeyBackspace.
	Key string
	// Related is where focus goes on blur. Anything outside the four
	// payment fields means focus left the form.
	Related model.FieldID
}

// Change builds a change event with the caret at the end of text.
func Change(field model.FieldID, text string) Event {
	return Event{Field: field, Kind: model.EventChange, Text: text, Cursor: len([]rune(text))}
}

// Outcome tells the widget what to render.
type Outcome struct {
	Text        string
	CursorDelta int
	// Error is the field's current code, whether or not it is visible yet.
	Error    model.ErrorCode
	CardType *cardtype.CardType
	// FocusTarget is set when the widget should move focus.
	FocusTarget model.FieldID
}

// Advanced reports whether the outcome asks for a focus change.
func (o Outcome) Advanced() bool { return o.FocusTarget != model.FieldNone }
