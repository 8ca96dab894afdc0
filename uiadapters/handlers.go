// Copyright (c) 2026 Cuba Payment Inputs Team
// cuba-payment-inputs - payment card field formatting and validation
// This source code is licensed under the MIT license found in the LICENSE file.

package uiadapters

import (
	"github.com/fiderosado/cuba-payment-inputs/core/model"
	"github.com/fiderosado/cuba-payment-inputs/core/state"
)

// CallerHandlers are the widget owner's own callbacks. Any may be nil.
type CallerHandlers struct {
	OnChange  func(text string, cursor int)
	OnBlur    func(related model.FieldID)
	OnFocus   func()
	OnKeyDown func(key string)
}

// Handlers forward widget events to the session after the caller's own
// handler has run.
type Handlers struct {
	OnChange  func(text string, cursor int) state.Outcome
	OnBlur    func(related model.FieldID) state.Outcome
	OnFocus   func() state.Outcome
	OnKeyDown func(key string) state.Outcome
}

// Handlers builds the handler bundle for field.
func (f *Form) Handlers(field model.FieldID, caller CallerHandlers) Handlers {
	ss := f.session
	return Handlers{
		OnChange: func(text string, cursor int) state.Outcome {
			if caller.OnChange != nil {
				caller.OnChange(text, cursor)
			}
			return ss.Change(field, text, cursor)
		},
		OnBlur: func(related model.FieldID) state.Outcome {
			if caller.OnBlur != nil {
				caller.OnBlur(related)
			}
			return ss.Blur(field, related)
		},
		OnFocus: func() state.Outcome {
			if caller.OnFocus != nil {
				caller.OnFocus()
			}
			return ss.Focus(field)
		},
		OnKeyDown: func(key string) state.Outcome {
			if caller.OnKeyDown != nil {
				caller.OnKeyDown(key)
			}
			return ss.KeyDown(field, key)
		},
	}
}
