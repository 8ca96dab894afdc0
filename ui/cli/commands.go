// Copyright (c) 2026 Cuba Payment Inputs Team
// cuba-payment-inputs - payment card field formatting and validation
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/fiderosado/cuba-payment-inputs/client"
	"github.com/fiderosado/cuba-payment-inputs/config"
	"github.com/fiderosado/cuba-payment-inputs/core/cardtype"
	"github.com/fiderosado/cuba-payment-inputs/core/format"
	"github.com/fiderosado/cuba-payment-inputs/i18n"
	"github.com/fiderosado/cuba-payment-inputs/util/slicest"
)

// ErrIncomplete is returned by validate when any field is invalid, so the
// process exits non-zero.
var ErrIncomplete = errors.New("card details are incomplete or invalid")

// maxListedPrefixes keeps long carve-out lists like Elo's readable.
const maxListedPrefixes = 6

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

func newDetectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect [number|-]",
		Short: "Detect the card network of a (partial) card number",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := inputValue(cmd, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			ct := appClient.Detect(number)
			if ct == nil {
				fmt.Fprintln(out, i18n.T("cli.detect_none", number))
				return nil
			}
			fmt.Fprintln(out, i18n.T("cli.detect_match", ct.DisplayName, ct.Type))
			return nil
		},
	}
}

func newFormatCmd() *cobra.Command {
	var (
		number      string
		toClipboard bool
	)
	cmd := &cobra.Command{
		Use:       "format card|expiry|cvc|zip [value|-]",
		Short:     "Print a field value the way the form displays it",
		Args:      cobra.RangeArgs(1, 2),
		ValidArgs: []string{"card", "expiry", "cvc", "zip"},
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := inputValue(cmd, args[1:])
			if err != nil {
				return err
			}

			var text string
			switch args[0] {
			case "card":
				text, _ = format.CardNumber(appClient.Registry(), value, len(value))
			case "expiry":
				text = format.ExpiryText(value)
			case "cvc":
				text = format.CVC(value, appClient.Detect(number))
			case "zip":
				text = format.ZIP(value)
			default:
				return fmt.Errorf("unknown field %q: want card, expiry, cvc or zip", args[0])
			}

			fmt.Fprintln(cmd.OutOrStdout(), text)
			if toClipboard {
				if err := writeClipboard(text); err != nil {
					return fmt.Errorf("write clipboard: %w", err)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&number, "number", "", "Card number deciding the CVC length")
	cmd.Flags().BoolVar(&toClipboard, "copy", false, "Copy the formatted value to the clipboard")
	return cmd
}

func newValidateCmd() *cobra.Command {
	var (
		details client.CardDetails
		asJSON  bool
	)
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate complete card details",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if fromClipboard && details.CardNumber == "" {
				number, err := inputValue(cmd, nil)
				if err != nil {
					return err
				}
				details.CardNumber = number
			}

			report := appClient.Check(details)
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return err
				}
			} else {
				printReport(out, report)
			}
			if !report.Complete {
				return ErrIncomplete
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&details.CardNumber, "number", "", "Card number")
	f.StringVar(&details.ExpiryDate, "expiry", "", "Expiry date (MM/YY)")
	f.StringVar(&details.CVC, "cvc", "", "Security code")
	f.StringVar(&details.ZIP, "zip", "", "Postal code")
	f.BoolVar(&asJSON, "json", false, "Print the report as JSON")
	return cmd
}

func printReport(out io.Writer, r client.Report) {
	for _, f := range r.Fields {
		status := i18n.T("cli.valid")
		if !f.Code.Ok() {
			status = f.Message
		}
		fmt.Fprintf(out, "%-11s %-22q %s\n", f.Field, f.Value, status)
	}
}

func newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the card networks in detection order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := appClient.Registry()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, typesTable(reg.Types()))

			shadows := reg.Shadowed()
			if len(shadows) == 0 {
				fmt.Fprintln(out, i18n.T("cli.shadow_ok"))
				return nil
			}
			fmt.Fprintln(out, i18n.T("cli.shadow_found", len(shadows)))
			for _, s := range shadows {
				fmt.Fprintln(out, "  "+s.String())
			}
			return nil
		},
	}
}

func typesTable(types []cardtype.CardType) string {
	rows := slicest.Map(types, func(ct cardtype.CardType) []string {
		code := "-"
		if ct.Code != nil {
			code = fmt.Sprintf("%s (%d)", ct.Code.Name, ct.Code.Length)
		}
		lengths := slicest.Map(ct.Lengths, func(n int) string { return fmt.Sprint(n) })
		prefixes := ct.Pattern.String()
		if len(ct.Pattern) > maxListedPrefixes {
			prefixes = ct.Pattern[:maxListedPrefixes].String() + "|…"
		}
		return []string{ct.DisplayName, ct.Type, prefixes, strings.Join(lengths, ","), code}
	})

	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers(
			i18n.T("cli.types_name"),
			i18n.T("cli.types_id"),
			i18n.T("cli.types_prefixes"),
			i18n.T("cli.types_lengths"),
			i18n.T("cli.types_code"),
		).
		Rows(rows...).
		String()
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
	}

	var (
		system bool
		path   string
	)
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to a config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			written := path
			var err error
			if path != "" {
				err = config.WriteConfigFileTo(&appConfig, path)
			} else {
				written, err = config.WriteConfigFile(&appConfig, system)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.config_written", written))
			return nil
		},
	}
	initCmd.Flags().BoolVar(&system, "system", false, "Write the system-wide file instead of the user file")
	initCmd.Flags().StringVar(&path, "path", "", "Write to this file instead")

	cmd.AddCommand(initCmd)
	return cmd
}
