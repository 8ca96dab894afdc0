// Copyright (c) 2026 Cuba Payment Inputs Team
// cuba-payment-inputs - payment card field formatting and validation
// This source code is licensed under the MIT license found in the LICENSE file.

// Package cardtype holds the card network registry and the detector that
// classifies partial card numbers.
//
// Detection rules are expressed as explicit digit-prefix alternatives
// (literals such as "4" and equal-length numeric ranges such as
// "2221-2720") instead of regular expressions. The registry is ordered and
// the first matching entry wins, so more specific prefixes must precede
// broader ones that cover the same leading digits. Registry.Shadowed reports
// any violation of that ordering.
package cardtype
