// Copyright (c) 2026 Cuba Payment Inputs Team
// cuba-payment-inputs - payment card field formatting and validation
// This source code is licensed under the MIT license found in the LICENSE file.
package format

import "strings"

// Digits strips everything but ASCII digits.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// digitsBefore counts the digits among the first cursor runes of s.
func digitsBefore(s string, cursor int) int {
	n, i := 0, 0
	for _, r := range s {
		if i >= cursor {
			break
		}
		if r >= '0' && r <= '9' {
			n++
		}
		i++
	}
	return n
}

func capDigits(s string, n int) string {
	d := Digits(s)
	if n >= 0 && len(d) > n {
		return d[:n]
	}
	return d
}
