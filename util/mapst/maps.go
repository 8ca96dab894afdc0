// Copyright (c) 2026 Cuba Payment Inputs Team
// cuba-payment-inputs - payment card field formatting and validation
// This source code is licensed under the MIT license found in the LICENSE file.

// Package mapst holds small generic map helpers.
package mapst

import (
	"cmp"
	"slices"
)

// Rekey

// RekeyX converts every key of m, stopping at the first error.
func RekeyX[K, J comparable, V any, M ~map[K]V](m M, fn func(K) (J, error)) (map[J]V, error) {
	if len(m) == 0 {
		return nil, nil
	}
	result := make(map[J]V, len(m))
	for k, v := range m {
		j, err := fn(k)
		if err != nil {
			return nil, err
		}
		result[j] = v
	}
	return result, nil
}

// Keys

func SortedKeys[K cmp.Ordered, V any, M ~map[K]V](m M) []K {
	result := make([]K, 0, len(m))
	for k := range m {
		result = append(result, k)
	}
	slices.Sort(result)
	return result
}
