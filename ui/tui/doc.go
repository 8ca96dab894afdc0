// Copyright (c) 2026 Cuba Payment Inputs Team
// cuba-payment-inputs - payment card field formatting and validation
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui is the terminal front end of the card form. Widgets only
// forward key presses; formatting, validation and focus decisions come from
// a state.Session through the uiadapters layer.
package tui
