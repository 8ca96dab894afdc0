// Copyright (c) 2026 Cuba Payment Inputs Team
// cuba-payment-inputs - payment card field formatting and validation
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the cardinput command line using Cobra. It loads
// the configuration, builds a client and delegates every command to the
// client, core and tui packages.
package cli
