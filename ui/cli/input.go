// Copyright (c) 2026 Cuba Payment Inputs Team
// cuba-payment-inputs - payment card field formatting and validation
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

// readClipboard and writeClipboard are replaced in tests.
var (
	readClipboard  = clipboard.ReadAll
	writeClipboard = clipboard.WriteAll
)

var errNoInput = errors.New("no input value: pass it as an argument, use --clipboard or \"-\" for stdin")

// inputValue returns the value to work on: the clipboard when --clipboard
// is set, stdin for "-", otherwise the first argument.
func inputValue(cmd *cobra.Command, args []string) (string, error) {
	switch {
	case fromClipboard:
		s, err := readClipboard()
		if err != nil {
			return "", fmt.Errorf("read clipboard: %w", err)
		}
		return strings.TrimSpace(s), nil
	case len(args) > 0 && args[0] == "-":
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return strings.TrimSpace(string(b)), nil
	case len(args) > 0:
		return args[0], nil
	}
	return "", errNoInput
}
