// Copyright (c) 2026 Cuba Payment Inputs Team
// cuba-payment-inputs - payment card field formatting and validation
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for cardinput.
//
// Usage:
//
//	go run . [flags]
//	./cardinput [flags]
//
// Without a subcommand it opens the interactive payment form. See --help.
package main

import (
	"log"
	"os"

	"github.com/fiderosado/cuba-payment-inputs/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Printf("cardinput: %v", err)
		os.Exit(1)
	}
}
