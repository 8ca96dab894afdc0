// Copyright (c) 2026 Cuba Payment Inputs Team
// cuba-payment-inputs - payment card field formatting and validation
// This source code is licensed under the MIT license found in the LICENSE file.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/fiderosado/cuba-payment-inputs/core/model"
	"github.com/fiderosado/cuba-payment-inputs/util/mapst"
)

// ErrUnknownErrorCode is returned for an error-messages key that names no code.
var ErrUnknownErrorCode = errors.New("unknown error code")

// Config is the cardinput configuration.
type Config struct {
	Language  string `mapstructure:"language" yaml:"language" validate:"omitempty,bcp47_language_tag"`
	AutoFocus bool   `mapstructure:"auto-focus" yaml:"auto-focus"`
	// Registry is an optional YAML file with extra card type definitions.
	Registry string `mapstructure:"registry" yaml:"registry,omitempty"`
	// ErrorMessages overrides message texts by error code, e.g.
	// emptyZIP: "Enter a postal code".
	ErrorMessages map[string]string `mapstructure:"error-messages" yaml:"error-messages,omitempty" validate:"omitempty,dive,required"`
	LogLevel      string            `mapstructure:"log-level" yaml:"log-level" validate:"omitempty,oneof=debug info warn error"`
	// ZipLength, when set, is the minimum postal code length.
	ZipLength int `mapstructure:"zip-length" yaml:"zip-length,omitempty" validate:"min=0,max=6"`
}

// Defaults are the values used when nothing else is configured.
func Defaults() map[string]any {
	return map[string]any{
		"language":   "en",
		"auto-focus": true,
		"log-level":  "warn",
		"zip-length": 0,
	}
}

// Default returns Defaults as a Config.
func Default() Config {
	return Config{Language: "en", AutoFocus: true, LogLevel: "warn"}
}

var validate = validator.New()

// Validate checks field constraints and the error-messages keys.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			parts := make([]string, 0, len(verrs))
			for _, e := range verrs {
				parts = append(parts, describe(e))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(parts, "; "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	_, err := c.Messages()
	return err
}

// Messages converts ErrorMessages to error codes. Keys match codes case
// insensitively because viper lowercases keys read from files.
func (c Config) Messages() (map[model.ErrorCode]string, error) {
	return mapst.RekeyX(c.ErrorMessages, func(key string) (model.ErrorCode, error) {
		for _, code := range model.ErrorCodes {
			if strings.EqualFold(key, code.String()) {
				return code, nil
			}
		}
		return model.ErrNone, fmt.Errorf("%w %q", ErrUnknownErrorCode, key)
	})
}

func describe(e validator.FieldError) string {
	switch e.Tag() {
	case "bcp47_language_tag":
		return e.Field() + " must be a language tag such as en or es-CU"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "required":
		return e.Field() + " must not be empty"
	default:
		return e.Field() + " is invalid"
	}
}
