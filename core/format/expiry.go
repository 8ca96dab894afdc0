// Copyright (c) 2026 Cuba Payment Inputs Team
// cuba-payment-inputs - payment card field formatting and validation
// This source code is licensed under the MIT license found in the LICENSE file.
package format

import "strings"

// ExpirySeparator sits between month and year.
const ExpirySeparator = " / "

// Expiry formats the expiry field. prev is the text before the edit and next
// the text after it; the edit counts as an insertion when next is longer.
//
//	"2"    -> "02 / "
//	"13"   -> "01 / 3"
//	"1/"   -> "01 / "
//	"12"   -> "12 / "
//	"01 /" -> "01"     (deletion)
//	"152 / 34" -> "15 / 34" (month first, year last)
func Expiry(prev, next string) string {
	s := strings.ReplaceAll(next, ExpirySeparator, "/")
	if s == "" {
		return ""
	}
	insertion := len(next) > len(prev)

	if len(s) == 1 && s[0] >= '2' && s[0] <= '9' {
		s = "0" + s
	}
	if len(s) == 2 && isDigit(s[0]) && isDigit(s[1]) && s > "12" {
		s = "0" + s[:1] + "/" + s[1:]
	}
	if s == "1/" || s == "1-" {
		return "01" + ExpirySeparator
	}

	parts := digitPairs(s)
	switch {
	case len(parts) == 0:
		return ""
	case len(parts) == 1:
		if !insertion && strings.ContainsAny(s, "/-") {
			return parts[0]
		}
		if len(parts[0]) == 2 && insertion {
			return parts[0] + ExpirySeparator
		}
		return parts[0]
	case len(parts) > 2:
		d := strings.Join(parts, "")
		parts = []string{d[:2], d[len(d)-2:]}
	}
	return strings.Join(parts, ExpirySeparator)
}

// ExpiryText formats a whole expiry value given in one piece, as pasted or
// passed on a command line. Unlike a keystroke, a lone "1" cannot be
// followed by a second month digit, so it is read as January.
func ExpiryText(raw string) string {
	if strings.TrimSpace(raw) == "1" {
		return "01" + ExpirySeparator
	}
	return Expiry("", raw)
}

// digitPairs splits every run of digits into chunks of at most two.
func digitPairs(s string) []string {
	var out []string
	run := 0
	for i := 0; i <= len(s); i++ {
		if i < len(s) && isDigit(s[i]) {
			run++
			if run == 2 {
				out = append(out, s[i-1:i+1])
				run = 0
			}
			continue
		}
		if run == 1 {
			out = append(out, s[i-1:i])
		}
		run = 0
	}
	return out
}

// ExpiryValue is the parsed expiry. Zero fields are absent.
type ExpiryValue struct {
	Month int
	// Year is the full year, 2000 plus the two typed digits.
	Year int
}

// Complete reports whether both month and year were parsed.
func (e ExpiryValue) Complete() bool { return e.Month != 0 && e.Year != 0 }

// ParseExpiry reads "MM / YY" text. The month is present when two digits
// between 01 and 12 were typed, the year when two year digits were typed.
func ParseExpiry(text string) ExpiryValue {
	var v ExpiryValue
	d := Digits(text)
	if len(d) >= 2 {
		m := atoi2(d[:2])
		if m >= 1 && m <= 12 {
			v.Month = m
		}
	}
	if len(d) >= 4 {
		v.Year = 2000 + atoi2(d[2:4])
	}
	return v
}

func atoi2(s string) int { return int(s[0]-'0')*10 + int(s[1]-'0') }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
