// Copyright (c) 2026 Cuba Payment Inputs Team
// cuba-payment-inputs - payment card field formatting and validation
// This source code is licensed under the MIT license found in the LICENSE file.
package state

import (
	"maps"

	clog "github.com/charmbracelet/log"

	"github.com/fiderosado/cuba-payment-inputs/core/cardtype"
	"github.com/fiderosado/cuba-payment-inputs/core/model"
	"github.com/fiderosado/cuba-payment-inputs/core/validate"
)

// MessageSource renders error codes, e.g. a localized catalogue.
type MessageSource interface {
	Message(code model.ErrorCode) string
}

// Option configures a Machine.
type Option func(*Machine)

// WithAutoFocus toggles moving focus on completion and on backspace in an
// empty field. Enabled by default.
func WithAutoFocus(enabled bool) Option {
	return func(m *Machine) { m.autoFocus = enabled }
}

// WithErrorMessages overrides the text of individual codes.
func WithErrorMessages(messages map[model.ErrorCode]string) Option {
	return func(m *Machine) {
		if m.messages == nil {
			m.messages = make(map[model.ErrorCode]string, len(messages))
		}
		maps.Copy(m.messages, messages)
	}
}

// WithMessageSource sets the catalogue used for codes without an override.
func WithMessageSource(src MessageSource) Option {
	return func(m *Machine) { m.source = src }
}

// WithValidators adds custom rules that run after the built-in checks.
func WithValidators(v validate.Validators) Option {
	return func(m *Machine) { m.validators = v }
}

// WithRegistry replaces the card type registry.
func WithRegistry(r *cardtype.Registry) Option {
	return func(m *Machine) {
		if r != nil {
			m.registry = r
		}
	}
}

// WithClock fixes the time used for expiry checks.
func WithClock(c validate.Clock) Option {
	return func(m *Machine) {
		if c != nil {
			m.clock = c
		}
	}
}

// WithLogger replaces the debug logger.
func WithLogger(l *clog.Logger) Option {
	return func(m *Machine) {
		if l != nil {
			m.log = l
		}
	}
}
