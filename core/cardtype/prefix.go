// Copyright (c) 2026 Cuba Payment Inputs Team
// cuba-payment-inputs - payment card field formatting and validation
// This source code is licensed under the MIT license found in the LICENSE file.
package cardtype

import (
	"fmt"
	"strings"
)

// Prefix is a single detection rule. A literal prefix has an empty To; a
// range prefix matches any leading digits numerically between From and To
// (inclusive, both the same length).
type Prefix struct {
	From string
	To   string
}

// Lit returns a literal prefix rule.
func Lit(p string) Prefix { return Prefix{From: p} }

// Range returns a range prefix rule.
func Range(from, to string) Prefix { return Prefix{From: from, To: to} }

// ParsePrefix parses "4" or "2221-2720".
func ParsePrefix(s string) (Prefix, error) {
	s = strings.TrimSpace(s)
	from, to, isRange := strings.Cut(s, "-")
	p := Prefix{From: strings.TrimSpace(from)}
	if isRange {
		p.To = strings.TrimSpace(to)
	}
	if err := p.check(); err != nil {
		return Prefix{}, fmt.Errorf("%w %q: %v", ErrInvalidPrefix, s, err)
	}
	return p, nil
}

func (p Prefix) check() error {
	if p.From == "" || !allDigits(p.From) {
		return fmt.Errorf("must be digits")
	}
	if p.To == "" {
		return nil
	}
	if !allDigits(p.To) {
		return fmt.Errorf("range end must be digits")
	}
	if len(p.To) != len(p.From) {
		return fmt.Errorf("range bounds must have equal length")
	}
	if p.To < p.From {
		return fmt.Errorf("range end before start")
	}
	return nil
}

// Len is the number of leading digits the rule inspects.
func (p Prefix) Len() int { return len(p.From) }

// IsRange reports whether the rule spans more than one literal.
func (p Prefix) IsRange() bool { return p.To != "" && p.To != p.From }

func (p Prefix) upper() string {
	if p.To == "" {
		return p.From
	}
	return p.To
}

// Match reports whether digits starts with this prefix. Input shorter than
// the prefix never matches.
func (p Prefix) Match(digits string) bool {
	n := len(p.From)
	if n == 0 || len(digits) < n {
		return false
	}
	head := digits[:n]
	if p.To == "" {
		return head == p.From
	}
	// same-length digit strings order lexically as they do numerically
	return head >= p.From && head <= p.To
}

// Shadows reports whether an earlier rule p captures some input that the
// later rule q would otherwise match, so q can never win for that input.
func (p Prefix) Shadows(q Prefix) bool {
	lp := p.Len()
	if lp == 0 || lp > q.Len() {
		return false
	}
	lo, hi := q.From[:lp], q.upper()[:lp]
	return lo <= p.upper() && hi >= p.From
}

func (p Prefix) String() string {
	if p.IsRange() {
		return p.From + "-" + p.To
	}
	return p.From
}

// Pattern is an ordered set of prefix alternatives.
type Pattern []Prefix

// Match reports whether any alternative matches.
func (pt Pattern) Match(digits string) bool {
	for _, p := range pt {
		if p.Match(digits) {
			return true
		}
	}
	return false
}

func (pt Pattern) String() string {
	parts := make([]string, len(pt))
	for i, p := range pt {
		parts[i] = p.String()
	}
	return strings.Join(parts, "|")
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}
