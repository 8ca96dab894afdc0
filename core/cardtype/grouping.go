// Copyright (c) 2026 Cuba Payment Inputs Team
// cuba-payment-inputs - payment card field formatting and validation
// This source code is licensed under the MIT license found in the LICENSE file.
package cardtype

// Grouping describes how digits are split into display groups. When Repeat
// is set the last size repeats until the maximum length is reached;
// otherwise the last group absorbs the remaining digits.
type Grouping struct {
	Sizes  []int
	Repeat bool
}

// DefaultGrouping splits numbers into blocks of four.
var DefaultGrouping = Grouping{Sizes: []int{4}, Repeat: true}

// Gaps returns the digit offsets at which a separator is inserted for a
// number of at most maxLen digits.
func (g Grouping) Gaps(maxLen int) []int {
	var gaps []int
	if len(g.Sizes) == 0 {
		return gaps
	}
	pos := 0
	for i := 0; ; i++ {
		var size int
		switch {
		case i < len(g.Sizes):
			size = g.Sizes[i]
		case g.Repeat:
			size = g.Sizes[len(g.Sizes)-1]
		default:
			return gaps
		}
		if size <= 0 {
			return gaps
		}
		pos += size
		if pos >= maxLen {
			return gaps
		}
		gaps = append(gaps, pos)
	}
}
