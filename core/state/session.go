// Copyright (c) 2026 Cuba Payment Inputs Team
// cuba-payment-inputs - payment card field formatting and validation
// This source code is licensed under the MIT license found in the LICENSE file.
package state

import "github.com/fiderosado/cuba-payment-inputs/core/model"

// Session is a mutable handle over a Machine and its current State for
// adapters that keep one form per object. It is not safe for concurrent use.
type Session struct {
	m *Machine
	s State
}

// NewSession starts a session on m.
func NewSession(m *Machine) *Session {
	return &Session{m: m, s: m.Start()}
}

// Machine returns the configuration behind the session.
func (ss *Session) Machine() *Machine { return ss.m }

// State returns the current snapshot.
func (ss *Session) State() State { return ss.s }

// Handle applies ev and keeps the resulting state.
func (ss *Session) Handle(ev Event) Outcome {
	var out Outcome
	ss.s, out = ss.m.Handle(ss.s, ev)
	return out
}

// Change replaces a field's text, caret at cursor.
func (ss *Session) Change(f model.FieldID, text string, cursor int) Outcome {
	return ss.Handle(Event{Field: f, Kind: model.EventChange, Text: text, Cursor: cursor})
}

// Type sets a field's text as if typed with the caret at the end.
func (ss *Session) Type(f model.FieldID, text string) Outcome {
	return ss.Handle(Change(f, text))
}

// Focus moves focus to f.
func (ss *Session) Focus(f model.FieldID) Outcome {
	return ss.Handle(Event{Field: f, Kind: model.EventFocus})
}

// Blur leaves f towards related.
func (ss *Session) Blur(f, related model.FieldID) Outcome {
	return ss.Handle(Event{Field: f, Kind: model.EventBlur, Related: related})
}

// KeyDown reports a key press in f.
func (ss *Session) KeyDown(f model.FieldID, key string) Outcome {
	return ss.Handle(Event{Field: f, Kind: model.EventKeyDown, Key: key})
}

// Submit touches every field so all errors become visible and reports
// whether the form is complete.
func (ss *Session) Submit() bool {
	ss.s = ss.m.TouchAll(ss.s)
	return ss.s.Complete()
}

// Reset discards all input and starts a fresh session.
func (ss *Session) Reset() {
	ss.s = ss.m.Start()
}

// ErrorText renders the visible error of f.
func (ss *Session) ErrorText(f model.FieldID) string {
	return ss.m.ErrorText(ss.s.VisibleError(f))
}
