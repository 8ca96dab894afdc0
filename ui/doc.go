// Copyright (c) 2026 Cuba Payment Inputs Team
// cuba-payment-inputs - payment card field formatting and validation
// This source code is licensed under the MIT license found in the LICENSE file.

// Package ui groups the user interfaces built on the client package: the
// cobra command line in ui/cli and the bubbletea form in ui/tui.
package ui
