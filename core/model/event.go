// Copyright (c) 2026 Cuba Payment Inputs Team
// cuba-payment-inputs - payment card field formatting and validation
// This source code is licensed under the MIT license found in the LICENSE file.
package model

// EventKind classifies an input event delivered to the state machine.
type EventKind int

const (
	EventChange EventKind = iota
	EventBlur
	EventFocus
	EventKeyDown
)

func (k EventKind) String() string {
	switch k {
	case EventChange:
		return "change"
	case EventBlur:
		return "blur"
	case EventFocus:
		return "focus"
	case EventKeyDown:
		return "keydown"
	default:
		return "unknown"
	}
}

// KeyBackspace is the Event.Key value for a backspace keydown.
const KeyBackspace = "backspace"
