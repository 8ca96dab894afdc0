// Copyright (c) 2026 Cuba Payment Inputs Team
// cuba-payment-inputs - payment card field formatting and validation
// This source code is licensed under the MIT license found in the LICENSE file.
package model

// ErrorCode is a validation outcome. The zero value means "valid".
// Codes are rendered to text by the i18n catalogue, never by validators.
type ErrorCode string

const (
	ErrNone ErrorCode = ""

	ErrEmptyCardNumber   ErrorCode = "emptyCardNumber"
	ErrInvalidCardNumber ErrorCode = "invalidCardNumber"
	ErrEmptyExpiryDate   ErrorCode = "emptyExpiryDate"
	ErrInvalidExpiryDate ErrorCode = "invalidExpiryDate"
	ErrMonthOutOfRange   ErrorCode = "monthOutOfRange"
	ErrYearOutOfRange    ErrorCode = "yearOutOfRange"
	ErrDateOutOfRange    ErrorCode = "dateOutOfRange"
	ErrEmptyCVC          ErrorCode = "emptyCVC"
	ErrInvalidCVC        ErrorCode = "invalidCVC"
	ErrEmptyZIP          ErrorCode = "emptyZIP"
	// ErrInvalidZIP is reserved for custom ZIP rules; the built-in
	// validator only checks for emptiness.
	ErrInvalidZIP ErrorCode = "invalidZIP"
)

// ErrorCodes lists every built-in code.
var ErrorCodes = []ErrorCode{
	ErrEmptyCardNumber,
	ErrInvalidCardNumber,
	ErrEmptyExpiryDate,
	ErrInvalidExpiryDate,
	ErrMonthOutOfRange,
	ErrYearOutOfRange,
	ErrDateOutOfRange,
	ErrEmptyCVC,
	ErrInvalidCVC,
	ErrEmptyZIP,
	ErrInvalidZIP,
}

// Ok reports whether the code represents a valid field.
func (c ErrorCode) Ok() bool { return c == ErrNone }

func (c ErrorCode) String() string { return string(c) }
