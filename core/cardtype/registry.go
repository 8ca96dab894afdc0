// Copyright (c) 2026 Cuba Payment Inputs Team
// cuba-payment-inputs - payment card field formatting and validation
// This source code is licensed under the MIT license found in the LICENSE file.
package cardtype

import (
	"fmt"
	"slices"
	"sync"

	"github.com/fiderosado/cuba-payment-inputs/util/slicest"
)

// Registry is an ordered, immutable list of card types.
type Registry struct {
	types []CardType
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the built-in registry.
func Default() *Registry {
	defaultOnce.Do(func() {
		r, err := NewRegistry(builtin()...)
		if err != nil {
			panic(fmt.Sprintf("cardtype: built-in registry: %v", err))
		}
		defaultRegistry = r
	})
	return defaultRegistry
}

// NewRegistry validates the definitions and keeps them in the given order.
func NewRegistry(types ...CardType) (*Registry, error) {
	seen := make(map[string]bool, len(types))
	for i := range types {
		if err := types[i].Validate(); err != nil {
			return nil, err
		}
		if seen[types[i].Type] {
			return nil, fmt.Errorf("%w: duplicate type id %q", ErrInvalidDefinition, types[i].Type)
		}
		seen[types[i].Type] = true
	}
	return &Registry{types: slices.Clone(types)}, nil
}

// Detect returns the first card type whose pattern matches the digits, or
// nil when the input is empty or nothing matches.
func (r *Registry) Detect(digits string) *CardType {
	if digits == "" {
		return nil
	}
	for i := range r.types {
		if r.types[i].Pattern.Match(digits) {
			return &r.types[i]
		}
	}
	return nil
}

// ByType looks a definition up by its type id.
func (r *Registry) ByType(id string) *CardType {
	for i := range r.types {
		if r.types[i].Type == id {
			return &r.types[i]
		}
	}
	return nil
}

// Types returns a copy of the definitions in detection order.
func (r *Registry) Types() []CardType {
	return slices.Clone(r.types)
}

// Len is the number of registered types.
func (r *Registry) Len() int { return len(r.types) }

// MaxLength is the longest number length accepted by any registered type.
func (r *Registry) MaxLength() int {
	lengths := slicest.Map(r.types, func(ct CardType) int { return ct.MaxLength() })
	if len(lengths) == 0 {
		return GenericMaxLength
	}
	return slices.Max(lengths)
}

// Extend returns a new registry. A definition sharing a type id with an
// existing entry replaces it in place; other definitions are placed ahead of
// the existing entries, in the order given.
func (r *Registry) Extend(defs ...CardType) (*Registry, error) {
	types := slices.Clone(r.types)
	var added []CardType
	for _, def := range defs {
		idx := slices.IndexFunc(types, func(ct CardType) bool { return ct.Type == def.Type })
		if idx >= 0 {
			types[idx] = def
			continue
		}
		added = append(added, def)
	}
	return NewRegistry(append(added, types...)...)
}

// Shadow records a later rule that an earlier rule partly or fully hides.
type Shadow struct {
	Earlier       string
	EarlierPrefix Prefix
	Later         string
	LaterPrefix   Prefix
}

func (s Shadow) String() string {
	return fmt.Sprintf("%s prefix %s shadows %s prefix %s", s.Earlier, s.EarlierPrefix, s.Later, s.LaterPrefix)
}

// Shadowed lists every pair of rules that violates the most-specific-first
// ordering. The built-in registry has none.
func (r *Registry) Shadowed() []Shadow {
	var out []Shadow
	for i := range r.types {
		for j := i + 1; j < len(r.types); j++ {
			for _, p := range r.types[i].Pattern {
				for _, q := range r.types[j].Pattern {
					if p.Shadows(q) {
						out = append(out, Shadow{
							Earlier:       r.types[i].Type,
							EarlierPrefix: p,
							Later:         r.types[j].Type,
							LaterPrefix:   q,
						})
					}
				}
			}
		}
	}
	return out
}
