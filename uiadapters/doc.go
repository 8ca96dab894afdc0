// Copyright (c) 2026 Cuba Payment Inputs Team
// cuba-payment-inputs - payment card field formatting and validation
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package uiadapters bridges a state.Session to widget toolkits. It hands out
// per-field input properties (name, autocomplete hint, placeholder, length
// cap) and handler bundles that run the caller's own handler before the
// session's. Adapters hold no state beyond the session they wrap.
package uiadapters
