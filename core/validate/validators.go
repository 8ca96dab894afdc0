// Copyright (c) 2026 Cuba Payment Inputs Team
// cuba-payment-inputs - payment card field formatting and validation
// This source code is licensed under the MIT license found in the LICENSE file.
package validate

import (
	"time"

	"github.com/fiderosado/cuba-payment-inputs/core/cardtype"
	"github.com/fiderosado/cuba-payment-inputs/core/model"
)

// MaxExpiryYears is how far into the future an expiry year may lie.
const MaxExpiryYears = 19

// Custom rules run after the built-in checks pass. A nil rule accepts.
type (
	CardNumberFunc func(digits string, ct *cardtype.CardType) model.ErrorCode
	ExpiryFunc     func(month, year int) model.ErrorCode
	CVCFunc        func(cvc string, ct *cardtype.CardType) model.ErrorCode
	ZIPFunc        func(zip string) model.ErrorCode
)

// Validators bundles the caller supplied rules.
type Validators struct {
	CardNumber CardNumberFunc
	Expiry     ExpiryFunc
	CVC        CVCFunc
	ZIP        ZIPFunc
}

// Clock supplies the current time for expiry checks.
type Clock func() time.Time

// CardNumber validates a digits-only card number.
func CardNumber(digits string, ct *cardtype.CardType, touched bool, custom CardNumberFunc) model.ErrorCode {
	if digits == "" {
		if touched {
			return model.ErrEmptyCardNumber
		}
		return model.ErrNone
	}
	if ct == nil || !ct.HasLength(len(digits)) || !Luhn(digits) {
		return model.ErrInvalidCardNumber
	}
	if custom != nil {
		return custom(digits, ct)
	}
	return model.ErrNone
}

// Expiry validates formatted expiry text such as "04 / 27". Month and year
// are read from the digits, so "0427" is accepted as well.
func Expiry(text string, touched bool, now time.Time, custom ExpiryFunc) model.ErrorCode {
	digits := onlyDigits(text)
	if digits == "" {
		if touched {
			return model.ErrEmptyExpiryDate
		}
		return model.ErrNone
	}
	if len(digits) != 4 {
		return model.ErrInvalidExpiryDate
	}

	month := int(digits[0]-'0')*10 + int(digits[1]-'0')
	year := 2000 + int(digits[2]-'0')*10 + int(digits[3]-'0')
	if month < 1 || month > 12 {
		return model.ErrMonthOutOfRange
	}
	if year < now.Year() || year > now.Year()+MaxExpiryYears {
		return model.ErrYearOutOfRange
	}
	if year == now.Year() && month < int(now.Month()) {
		return model.ErrDateOutOfRange
	}
	if custom != nil {
		return custom(month, year)
	}
	return model.ErrNone
}

// CVC validates a security code against the card type's code length, or
// against the default length while the type is unknown. Networks without a
// security code accept anything.
func CVC(cvc string, ct *cardtype.CardType, touched bool, custom CVCFunc) model.ErrorCode {
	want := cardtype.DefaultCVCLength
	if ct != nil {
		if ct.Code == nil {
			return model.ErrNone
		}
		want = ct.CodeLength()
	}
	if cvc == "" {
		if touched {
			return model.ErrEmptyCVC
		}
		return model.ErrNone
	}
	if len(cvc) != want || onlyDigits(cvc) != cvc {
		return model.ErrInvalidCVC
	}
	if custom != nil {
		return custom(cvc, ct)
	}
	return model.ErrNone
}

// ZIP only requires a value; stricter rules come in through custom.
func ZIP(zip string, touched bool, custom ZIPFunc) model.ErrorCode {
	if zip == "" {
		if touched {
			return model.ErrEmptyZIP
		}
		return model.ErrNone
	}
	if custom != nil {
		return custom(zip)
	}
	return model.ErrNone
}

// MinZIPLength returns a ZIP rule rejecting codes shorter than n digits.
func MinZIPLength(n int) ZIPFunc {
	return func(zip string) model.ErrorCode {
		if len(zip) < n {
			return model.ErrInvalidZIP
		}
		return model.ErrNone
	}
}

func onlyDigits(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			out = append(out, s[i])
		}
	}
	return string(out)
}
