// Copyright (c) 2026 Cuba Payment Inputs Team
// cuba-payment-inputs - payment card field formatting and validation
// This source code is licensed under the MIT license found in the LICENSE file.
package model

// FieldID identifies one of the managed payment inputs.
type FieldID string

const (
	FieldNone       FieldID = ""
	FieldCardNumber FieldID = "cardNumber"
	FieldExpiryDate FieldID = "expiryDate"
	FieldCVC        FieldID = "cvc"
	FieldZIP        FieldID = "zip"
)

// Fields lists the managed fields in auto-advance order.
var Fields = []FieldID{FieldCardNumber, FieldExpiryDate, FieldCVC, FieldZIP}

// IsManaged reports whether f is one of the four payment fields.
func (f FieldID) IsManaged() bool {
	return f.index() >= 0
}

// Next returns the field after f in the focus chain, FieldNone after the last.
func (f FieldID) Next() FieldID {
	i := f.index()
	if i < 0 || i+1 >= len(Fields) {
		return FieldNone
	}
	return Fields[i+1]
}

// Prev returns the field before f in the focus chain, FieldNone before the first.
func (f FieldID) Prev() FieldID {
	i := f.index()
	if i <= 0 {
		return FieldNone
	}
	return Fields[i-1]
}

func (f FieldID) index() int {
	for i, field := range Fields {
		if field == f {
			return i
		}
	}
	return -1
}

func (f FieldID) String() string {
	if f == FieldNone {
		return "none"
	}
	return string(f)
}
