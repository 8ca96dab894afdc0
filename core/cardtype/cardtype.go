// Copyright (c) 2026 Cuba Payment Inputs Team
// cuba-payment-inputs - payment card field formatting and validation
// This source code is licensed under the MIT license found in the LICENSE file.
package cardtype

import (
	"fmt"
	"slices"
)

// Code describes a network's security code.
type Code struct {
	Name   string
	Length int
}

// CardType is an immutable card network definition.
type CardType struct {
	DisplayName string
	Type        string
	Format      Grouping
	Pattern     Pattern
	Gaps        []int
	Lengths     []int
	// Code is nil for networks without a security code.
	Code *Code
}

// New builds a definition whose gaps follow the given grouping.
func New(displayName, typ string, format Grouping, pattern Pattern, lengths []int, code *Code) CardType {
	ct := CardType{
		DisplayName: displayName,
		Type:        typ,
		Format:      format,
		Pattern:     pattern,
		Lengths:     lengths,
		Code:        code,
	}
	ct.Gaps = format.Gaps(ct.MaxLength())
	return ct
}

// MaxLength is the longest valid number length.
func (c *CardType) MaxLength() int {
	if len(c.Lengths) == 0 {
		return 0
	}
	return slices.Max(c.Lengths)
}

// HasLength reports whether n is a valid number length for the network.
func (c *CardType) HasLength(n int) bool {
	return slices.Contains(c.Lengths, n)
}

// CodeLength is the security code length, 0 when the network has none.
func (c *CardType) CodeLength() int {
	if c.Code == nil {
		return 0
	}
	return c.Code.Length
}

// CodeName is the network's name for its security code, e.g. "CVV".
func (c *CardType) CodeName() string {
	if c.Code == nil {
		return ""
	}
	return c.Code.Name
}

// Validate checks the structural invariants of a definition.
func (c *CardType) Validate() error {
	switch {
	case c.Type == "":
		return fmt.Errorf("%w: missing type id", ErrInvalidDefinition)
	case c.DisplayName == "":
		return fmt.Errorf("%w: %s: missing display name", ErrInvalidDefinition, c.Type)
	case len(c.Pattern) == 0:
		return fmt.Errorf("%w: %s: missing detection pattern", ErrInvalidDefinition, c.Type)
	case len(c.Lengths) == 0:
		return fmt.Errorf("%w: %s: missing valid lengths", ErrInvalidDefinition, c.Type)
	}
	for _, p := range c.Pattern {
		if err := p.check(); err != nil {
			return fmt.Errorf("%w: %s: prefix %q: %v", ErrInvalidDefinition, c.Type, p.String(), err)
		}
	}
	for _, l := range c.Lengths {
		if l <= 0 {
			return fmt.Errorf("%w: %s: length %d", ErrInvalidDefinition, c.Type, l)
		}
	}
	maxLen := c.MaxLength()
	prev := 0
	for _, g := range c.Gaps {
		if g <= prev || g >= maxLen {
			return fmt.Errorf("%w: %s: gaps %v must be increasing and below %d", ErrInvalidDefinition, c.Type, c.Gaps, maxLen)
		}
		prev = g
	}
	if c.Code != nil && c.Code.Length <= 0 {
		return fmt.Errorf("%w: %s: code length %d", ErrInvalidDefinition, c.Type, c.Code.Length)
	}
	return nil
}
