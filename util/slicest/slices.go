// Copyright (c) 2026 Cuba Payment Inputs Team
// cuba-payment-inputs - payment card field formatting and validation
// This source code is licensed under the MIT license found in the LICENSE file.

// Package slicest holds small generic slice helpers that the standard
// library's slices package does not provide.
package slicest

// Map transforms every element of s.
func Map[T, U any, S ~[]T](s S, fn func(T) U) []U {
	return MapI(s, func(_ int, t T) U { return fn(t) })
}

// MapI transforms every element of s.
// - I: Provides index to callback.
func MapI[T, U any, S ~[]T](s S, fn func(int, T) U) []U {
	result := make([]U, len(s))
	for i, t := range s {
		result[i] = fn(i, t)
	}
	return result
}

// Filter keeps the elements for which fn returns true.
func Filter[T any, S ~[]T](s S, fn func(T) bool) S {
	var result S
	for _, t := range s {
		if fn(t) {
			result = append(result, t)
		}
	}
	return result
}

// Find returns the first element for which fn returns true.
func Find[T any, S ~[]T](s S, fn func(T) bool) (T, bool) {
	for _, t := range s {
		if fn(t) {
			return t, true
		}
	}
	var zero T
	return zero, false
}
