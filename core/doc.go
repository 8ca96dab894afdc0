// Copyright (c) 2026 Cuba Payment Inputs Team
// cuba-payment-inputs - payment card field formatting and validation
// This source code is licensed under the MIT license found in the LICENSE file.

// Package core groups the UI-agnostic payment field engine.
//
//   - model holds field ids, event kinds and error codes.
//   - cardtype holds the card network registry and prefix detection.
//   - format turns raw input into display text and computes caret moves.
//   - validate checks the Luhn digit, expiry dates, CVC and ZIP values.
//   - state drives focus, touched flags and errors for one form session.
//
// None of these packages depend on a terminal or on configuration files;
// those are wired in by the client and ui packages.
package core
