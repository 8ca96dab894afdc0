// Copyright (c) 2026 Cuba Payment Inputs Team
// cuba-payment-inputs - payment card field formatting and validation
// This source code is licensed under the MIT license found in the LICENSE file.

// Package format turns raw keystroke text into the canonical display text of
// each payment field. All functions are pure.
package format
