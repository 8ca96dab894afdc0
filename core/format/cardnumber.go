// Copyright (c) 2026 Cuba Payment Inputs Team
// cuba-payment-inputs - payment card field formatting and validation
// This source code is licensed under the MIT license found in the LICENSE file.
package format

import (
	"strings"
	"unicode/utf8"

	"github.com/fiderosado/cuba-payment-inputs/core/cardtype"
)

// Separator is placed between card number groups.
const Separator = ' '

// CardNumber formats raw card number text for display and reports how far
// the caller must move its cursor. The new cursor sits right after the same
// number of digits that preceded the old one, so separators inserted or
// removed ahead of it are skipped. A nil registry means cardtype.Default().
func CardNumber(reg *cardtype.Registry, raw string, cursor int) (text string, delta int) {
	if reg == nil {
		reg = cardtype.Default()
	}
	cursor = max(0, min(cursor, utf8.RuneCountInString(raw)))

	digits := Digits(raw)
	ct := reg.Detect(digits)
	digits = truncate(digits, ct)

	var gaps []int
	if ct != nil {
		gaps = ct.Gaps
	}
	text = Group(digits, gaps)

	keep := min(digitsBefore(raw, cursor), len(digits))
	return text, cursorAfter(text, keep) - cursor
}

// CardNumberDigits truncates digits to the detected network's maximum length.
func CardNumberDigits(reg *cardtype.Registry, raw string) string {
	if reg == nil {
		reg = cardtype.Default()
	}
	digits := Digits(raw)
	return truncate(digits, reg.Detect(digits))
}

func truncate(digits string, ct *cardtype.CardType) string {
	maxLen := cardtype.GenericMaxLength
	if ct != nil && ct.MaxLength() > 0 {
		maxLen = ct.MaxLength()
	}
	if len(digits) > maxLen {
		return digits[:maxLen]
	}
	return digits
}

// Group inserts a separator before every gap offset that lies inside digits.
func Group(digits string, gaps []int) string {
	if len(gaps) == 0 {
		return digits
	}
	var b strings.Builder
	b.Grow(len(digits) + len(gaps))
	g := 0
	for i := 0; i < len(digits); i++ {
		if g < len(gaps) && i == gaps[g] {
			b.WriteRune(Separator)
			g++
		}
		b.WriteByte(digits[i])
	}
	return b.String()
}

// cursorAfter returns the offset right after the n-th digit of text.
func cursorAfter(text string, n int) int {
	if n <= 0 {
		return 0
	}
	seen := 0
	for i := 0; i < len(text); i++ {
		if text[i] >= '0' && text[i] <= '9' {
			seen++
			if seen == n {
				return i + 1
			}
		}
	}
	return len(text)
}
