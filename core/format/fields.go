// Copyright (c) 2026 Cuba Payment Inputs Team
// cuba-payment-inputs - payment card field formatting and validation
// This source code is licensed under the MIT license found in the LICENSE file.
package format

import "github.com/fiderosado/cuba-payment-inputs/core/cardtype"

// MaxZIPLength caps the postal code field.
const MaxZIPLength = 6

// CVC keeps digits up to the card type's code length. While the type is
// unknown up to cardtype.MaxCVCLength digits are kept; a network without a
// security code keeps none.
func CVC(raw string, ct *cardtype.CardType) string {
	return capDigits(raw, CVCLimit(ct))
}

// CVCLimit is the number of digits CVC accepts for ct.
func CVCLimit(ct *cardtype.CardType) int {
	if ct == nil {
		return cardtype.MaxCVCLength
	}
	return ct.CodeLength()
}

// ZIP keeps up to MaxZIPLength digits.
func ZIP(raw string) string {
	return capDigits(raw, MaxZIPLength)
}
