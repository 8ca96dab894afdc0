// Copyright (c) 2026 Cuba Payment Inputs Team
// cuba-payment-inputs - payment card field formatting and validation
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads and persists the cardinput configuration. It uses
// Viper for file, environment and flag parsing with the precedence
// defaults < config file < CARDINPUT_* environment < command line flags.
package config
