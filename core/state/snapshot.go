// Copyright (c) 2026 Cuba Payment Inputs Team
// cuba-payment-inputs - payment card field formatting and validation
// This source code is licensed under the MIT license found in the LICENSE file.
package state

import (
	"maps"

	"github.com/fiderosado/cuba-payment-inputs/core/cardtype"
	"github.com/fiderosado/cuba-payment-inputs/core/model"
	"github.com/fiderosado/cuba-payment-inputs/util/slicest"
)

// State is a snapshot of one payment form session. The zero value is an
// empty session without an ID; Machine.Start gives it one.
type State struct {
	// ID correlates log lines of one session.
	ID string

	values   map[model.FieldID]string
	errors   map[model.FieldID]model.ErrorCode
	touched  map[model.FieldID]bool
	complete map[model.FieldID]bool

	focus     model.FieldID
	cardType  *cardtype.CardType
	isTouched bool
}

func (s State) clone() State {
	s.values = cloneMap(s.values)
	s.errors = cloneMap(s.errors)
	s.touched = cloneMap(s.touched)
	s.complete = cloneMap(s.complete)
	return s
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	if m == nil {
		return make(map[K]V)
	}
	return maps.Clone(m)
}

// Value is the formatted text of a field.
func (s State) Value(f model.FieldID) string { return s.values[f] }

// Error is the field's code, visible or not.
func (s State) Error(f model.FieldID) model.ErrorCode { return s.errors[f] }

// VisibleError is the field's code once the field is touched.
func (s State) VisibleError(f model.FieldID) model.ErrorCode {
	if !s.touched[f] {
		return model.ErrNone
	}
	return s.errors[f]
}

// Errors copies the error map. Valid fields have no entry.
func (s State) Errors() map[model.FieldID]model.ErrorCode { return maps.Clone(s.errors) }

// IsFieldTouched reports whether f lost focus or was validated with content.
func (s State) IsFieldTouched(f model.FieldID) bool { return s.touched[f] }

// IsTouched reports whether focus has left the form at least once.
func (s State) IsTouched() bool { return s.isTouched }

// Focused is the field holding focus, model.FieldNone when none does.
func (s State) Focused() model.FieldID { return s.focus }

// CardType is the network detected from the card number, nil if unknown.
func (s State) CardType() *cardtype.CardType { return s.cardType }

// FirstError returns the first visible error in chain order.
func (s State) FirstError() (model.FieldID, model.ErrorCode) {
	f, ok := slicest.Find(model.Fields, func(f model.FieldID) bool { return !s.VisibleError(f).Ok() })
	if !ok {
		return model.FieldNone, model.ErrNone
	}
	return f, s.VisibleError(f)
}

// Complete reports whether every field holds a valid value. A network
// without a security code needs no CVC.
func (s State) Complete() bool {
	for _, f := range model.Fields {
		if !s.errors[f].Ok() {
			return false
		}
		if s.values[f] != "" {
			continue
		}
		if f == model.FieldCVC && s.cardType != nil && s.cardType.Code == nil {
			continue
		}
		return false
	}
	return true
}
