// Copyright (c) 2026 Cuba Payment Inputs Team
// cuba-payment-inputs - payment card field formatting and validation
// This source code is licensed under the MIT license found in the LICENSE file.

// Package state ties formatting, detection and validation together. A
// Machine holds configuration and turns (State, Event) into a new State plus
// an Outcome for the caller's input widget. State is a value: every Handle
// returns a fresh copy and the previous one stays untouched.
//
// Focus moves along the chain cardNumber, expiryDate, cvc, zip. When
// auto-focus is on, a field that becomes complete and valid hands focus to
// the next field, and backspace in an empty field hands it back.
package state
