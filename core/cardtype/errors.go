// Copyright (c) 2026 Cuba Payment Inputs Team
// cuba-payment-inputs - payment card field formatting and validation
// This source code is licensed under the MIT license found in the LICENSE file.
package cardtype

import "errors"

var (
	// ErrInvalidPrefix is returned when a prefix rule cannot be parsed.
	ErrInvalidPrefix = errors.New("invalid card prefix")

	// ErrInvalidDefinition is returned when a card type definition is
	// missing required data or carries inconsistent gaps/lengths.
	ErrInvalidDefinition = errors.New("invalid card type definition")
)
