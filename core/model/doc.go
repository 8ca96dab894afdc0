// Copyright (c) 2026 Cuba Payment Inputs Team
// cuba-payment-inputs - payment card field formatting and validation
// This source code is licensed under the MIT license found in the LICENSE file.
// Package model defines the small shared vocabulary used across the engine:
// field identifiers, error codes and event kinds. These are plain values
// without behaviour beyond ordering and string conversion so every layer
// (validators, state machine, adapters) can depend on them freely.
package model
