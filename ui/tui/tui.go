// Copyright (c) 2026 Cuba Payment Inputs Team
// cuba-payment-inputs - payment card field formatting and validation
// This source code is licensed under the MIT license found in the LICENSE file.
package tui

import (
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fiderosado/cuba-payment-inputs/client"
	"github.com/fiderosado/cuba-payment-inputs/internal/logging"
	"github.com/fiderosado/cuba-payment-inputs/ui/tui/models/views/payment"
)

// Run shows the card form, prefilled with initial, until the user submits
// complete details or quits. The report is nil when the user quit.
func Run(c client.Client, initial client.CardDetails) (*client.Report, error) {
	m := payment.New(c)
	if err := m.Prefill(initial); err != nil {
		return nil, err
	}

	// log lines would tear the alternate screen
	logging.SetOutput(io.Discard)
	defer logging.SetOutput(os.Stderr)

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return nil, err
	}
	return m.Report(), nil
}
