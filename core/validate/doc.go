// Copyright (c) 2026 Cuba Payment Inputs Team
// cuba-payment-inputs - payment card field formatting and validation
// This source code is licensed under the MIT license found in the LICENSE file.

// Package validate contains the Luhn checksum and the per-field validators.
// Validators are total: they never panic and never return Go errors, only a
// model.ErrorCode (model.ErrNone when the value is acceptable).
package validate
