// Copyright (c) 2026 Cuba Payment Inputs Team
// cuba-payment-inputs - payment card field formatting and validation
// This source code is licensed under the MIT license found in the LICENSE file.
package client

import (
	"fmt"
	"os"

	clog "github.com/charmbracelet/log"

	"github.com/fiderosado/cuba-payment-inputs/config"
	"github.com/fiderosado/cuba-payment-inputs/core/cardtype"
	"github.com/fiderosado/cuba-payment-inputs/core/model"
	"github.com/fiderosado/cuba-payment-inputs/core/validate"
)

type LogLevel int

const (
	Panic LogLevel = iota + 1
	Error
	Warn
	Info
	Debug
	Trace
)

func (l LogLevel) level() clog.Level {
	switch l {
	case Panic:
		return clog.FatalLevel
	case Error:
		return clog.ErrorLevel
	case Info:
		return clog.InfoLevel
	case Debug, Trace:
		return clog.DebugLevel
	default:
		return clog.WarnLevel
	}
}

// ParseLogLevel maps a config level name to a LogLevel.
func ParseLogLevel(name string) LogLevel {
	switch name {
	case "debug":
		return Debug
	case "info":
		return Info
	case "error":
		return Error
	default:
		return Warn
	}
}

type Config struct {
	LogLevel  LogLevel
	Language  string
	AutoFocus bool
	// Messages override catalogue texts per code.
	Messages map[model.ErrorCode]string
	// Definitions are added to, or replace entries of, the built-in registry.
	Definitions []cardtype.CardType
	// MinZIPLength rejects shorter postal codes when set.
	MinZIPLength int
	Validators   validate.Validators
	// Clock defaults to time.Now.
	Clock validate.Clock
}

func NewDefaultConfig() Config {
	return Config{
		LogLevel:  Warn,
		Language:  "en",
		AutoFocus: true,
	}
}

// FromConfig converts a loaded config file, reading the registry extension
// file it names.
func FromConfig(c config.Config) (Config, error) {
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	msgs, err := c.Messages()
	if err != nil {
		return Config{}, err
	}

	out := NewDefaultConfig()
	out.LogLevel = ParseLogLevel(c.LogLevel)
	out.AutoFocus = c.AutoFocus
	out.Messages = msgs
	out.MinZIPLength = c.ZipLength
	if c.Language != "" {
		out.Language = c.Language
	}

	if c.Registry != "" {
		f, err := os.Open(c.Registry)
		if err != nil {
			return Config{}, fmt.Errorf("open registry file: %w", err)
		}
		defer f.Close()
		defs, err := cardtype.LoadDefinitions(f)
		if err != nil {
			return Config{}, fmt.Errorf("load registry file %s: %w", c.Registry, err)
		}
		out.Definitions = defs
	}
	return out, nil
}
