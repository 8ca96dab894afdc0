// Copyright (c) 2026 Cuba Payment Inputs Team
// cuba-payment-inputs - payment card field formatting and validation
// This source code is licensed under the MIT license found in the LICENSE file.

// Package client is the embedding entry point: it assembles a card type
// registry, message catalogue and state machine from one Config and offers
// one-shot helpers for checking complete card details.
package client
