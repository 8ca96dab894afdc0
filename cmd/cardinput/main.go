// Copyright (c) 2026 Cuba Payment Inputs Team
// cuba-payment-inputs - payment card field formatting and validation
// This source code is licensed under the MIT license found in the LICENSE file.

// cardinput formats and validates payment card fields from the terminal.
package main

import (
	"os"

	"github.com/fiderosado/cuba-payment-inputs/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		// Cobra has already printed the error.
		os.Exit(1)
	}
}
