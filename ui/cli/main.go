// Copyright (c) 2026 Cuba Payment Inputs Team
// cuba-payment-inputs - payment card field formatting and validation
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the root command: flags, configuration loading, the
// client shared by all subcommands and the interactive form.

package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/fiderosado/cuba-payment-inputs/buildvars"
	"github.com/fiderosado/cuba-payment-inputs/client"
	"github.com/fiderosado/cuba-payment-inputs/config"
	"github.com/fiderosado/cuba-payment-inputs/i18n"
	"github.com/fiderosado/cuba-payment-inputs/internal/logging"
	"github.com/fiderosado/cuba-payment-inputs/ui/tui"
)

const modulePath = "github.com/fiderosado/cuba-payment-inputs"

var version = buildvars.VersionOrDefault("dev")
var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)

var (
	cfgFile       string
	verbose       bool
	fromClipboard bool
)

var (
	appConfig config.Config
	appClient client.Client
)

// isTerminal reports whether stdin is interactive; replaced in tests.
var isTerminal = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }

// runForm shows the interactive form; replaced in tests.
var runForm = tui.Run

func setupServices(cmd *cobra.Command) error {
	configPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	appConfig, err = config.LoadConfig[config.Config](cmd, config.Defaults(), configPath)
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		logging.Infof("no config file found, using defaults")
	} else if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	if err := logging.SetLevel(appConfig.LogLevel); err != nil {
		logging.Warnf("%v", err)
	}
	if verbose {
		logging.SetDebug(true)
	}

	i18n.Init(appConfig.Language)

	cfg, err := client.FromConfig(appConfig)
	if err != nil {
		return err
	}
	if verbose {
		cfg.LogLevel = client.Debug
	}
	appClient, err = client.New(cfg)
	return err
}

// Execute runs the CLI entrypoint. The cmd/cardinput main package should
// call this function and handle process exit.
func Execute() error {
	return NewRootCmd().Execute()
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

// NewRootCmd creates the root command with all subcommands. Each call
// returns an independent tree so tests can run commands in isolation.
func NewRootCmd() *cobra.Command {
	defaults := config.Default()

	cmd := &cobra.Command{
		Use:   "cardinput",
		Short: i18n.T("cli.short"),
		Long: `cardinput formats and validates payment card fields: card number,
expiry date, security code and postal code. It detects the card network
from the leading digits while you type.

Running without a subcommand opens the interactive card form.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupServices(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal() {
				return errors.New(i18n.T("cli.no_terminal"))
			}
			report, err := runForm(appClient, client.CardDetails{})
			if err != nil {
				return err
			}
			if report != nil {
				printReport(cmd.OutOrStdout(), *report)
			}
			return nil
		},
	}

	v, c, d := resolveBuildVersion(nil)
	cmd.Version = compositeVersion(v, c, d)

	pf := cmd.PersistentFlags()
	pf.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	pf.StringVar(&cfgFile, "config", "", "config file")
	pf.BoolVar(&fromClipboard, "clipboard", false, "Read the input value from the clipboard")
	pf.String("language", defaults.Language, `Message language ("en", "es", "de")`)
	pf.Bool("auto-focus", defaults.AutoFocus, "Advance to the next field when one is complete")
	pf.String("registry", "", "YAML file with additional card type definitions")
	pf.String("log-level", defaults.LogLevel, `Log level ("debug", "info", "warn", "error")`)
	pf.Int("zip-length", 0, "Minimum postal code length (0 accepts any non-empty code)")

	cmd.AddCommand(
		newDetectCmd(),
		newFormatCmd(),
		newValidateCmd(),
		newTypesCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			v, c, d := resolveBuildVersion(nil)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "version: %s\n", v)
			fmt.Fprintf(out, "commit: %s\n", c)
			if d != "" {
				fmt.Fprintf(out, "built: %s\n", d)
			}
		},
	}
}

func compositeVersion(v, c, d string) string {
	s := v
	if c != "" && c != "dev" {
		s += " (" + c + ")"
	}
	if d != "" {
		s += " built: " + d
	}
	return s
}

// resolveBuildVersion computes the best-available version, commit and build
// date for the running binary. If `info` is nil, it reads build info from
// the runtime.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := version
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	if info == nil {
		info, _ = debug.ReadBuildInfo()
	}

	if info != nil {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		// Main is empty when built as a dependency of another module.
		if resolvedVersion == "dev" || resolvedVersion == "(devel)" {
			for _, dep := range info.Deps {
				if dep.Path == modulePath && dep.Version != "" {
					resolvedVersion = dep.Version
					break
				}
			}
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	if resolvedVersion == "dev" && gitCommit != "dev" && gitCommit != "" {
		resolvedVersion = gitCommit
	}

	return resolvedVersion, resolvedCommit, resolvedDate
}
