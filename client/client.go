// Copyright (c) 2026 Cuba Payment Inputs Team
// cuba-payment-inputs - payment card field formatting and validation
// This source code is licensed under the MIT license found in the LICENSE file.
package client

import (
	"fmt"

	clog "github.com/charmbracelet/log"

	"github.com/fiderosado/cuba-payment-inputs/core/cardtype"
	"github.com/fiderosado/cuba-payment-inputs/core/format"
	"github.com/fiderosado/cuba-payment-inputs/core/model"
	"github.com/fiderosado/cuba-payment-inputs/core/state"
	"github.com/fiderosado/cuba-payment-inputs/core/validate"
	"github.com/fiderosado/cuba-payment-inputs/i18n"
	"github.com/fiderosado/cuba-payment-inputs/internal/logging"
)

type Client interface {
	// --- Building blocks ---

	Registry() *cardtype.Registry

	Catalog() *i18n.Catalog

	Machine() *state.Machine

	// NewSession starts an interactive form session.
	NewSession() *state.Session

	// --- One-shot helpers ---

	// Detect classifies a card number, nil when no network matches.
	Detect(number string) *cardtype.CardType

	// Check replays complete card details through a fresh session.
	Check(details CardDetails) Report
}

// CardDetails are the four raw field values.
type CardDetails struct {
	CardNumber string `mapstructure:"cardNumber" json:"cardNumber"`
	ExpiryDate string `mapstructure:"expiryDate" json:"expiryDate"`
	CVC        string `mapstructure:"cvc" json:"cvc"`
	ZIP        string `mapstructure:"zip" json:"zip"`
}

// Value returns the raw value of f.
func (d CardDetails) Value(f model.FieldID) string {
	switch f {
	case model.FieldCardNumber:
		return d.CardNumber
	case model.FieldExpiryDate:
		return d.ExpiryDate
	case model.FieldCVC:
		return d.CVC
	case model.FieldZIP:
		return d.ZIP
	}
	return ""
}

// FieldReport is the outcome for one field.
type FieldReport struct {
	Field   model.FieldID   `json:"field"`
	Value   string          `json:"value"`
	Code    model.ErrorCode `json:"code,omitempty"`
	Message string          `json:"message,omitempty"`
}

// Report is the result of Check.
type Report struct {
	Complete bool          `json:"complete"`
	CardType string        `json:"cardType,omitempty"`
	Fields   []FieldReport `json:"fields"`
}

// LastFour returns the last four digits of the card number.
func (r Report) LastFour() string {
	for _, f := range r.Fields {
		if f.Field == model.FieldCardNumber {
			d := format.Digits(f.Value)
			return d[max(0, len(d)-4):]
		}
	}
	return ""
}

type client struct {
	registry *cardtype.Registry
	catalog  *i18n.Catalog
	machine  *state.Machine
	log      *clog.Logger
}

// New assembles a Client from cfg.
func New(cfg Config) (Client, error) {
	registry := cardtype.Default()
	if len(cfg.Definitions) > 0 {
		var err error
		registry, err = registry.Extend(cfg.Definitions...)
		if err != nil {
			return nil, fmt.Errorf("extend card registry: %w", err)
		}
		for _, s := range registry.Shadowed() {
			logging.Warnf("card registry: %s", s)
		}
	}

	log := logging.L.With("component", "client")
	log.SetLevel(cfg.LogLevel.level())

	catalog := i18n.NewCatalog(cfg.Language, cfg.Messages)

	validators := cfg.Validators
	if validators.ZIP == nil && cfg.MinZIPLength > 0 {
		validators.ZIP = validate.MinZIPLength(cfg.MinZIPLength)
	}

	machine := state.New(
		state.WithAutoFocus(cfg.AutoFocus),
		state.WithRegistry(registry),
		state.WithMessageSource(catalog),
		state.WithValidators(validators),
		state.WithClock(cfg.Clock),
		state.WithLogger(log),
	)

	return &client{registry: registry, catalog: catalog, machine: machine, log: log}, nil
}

func (c *client) Registry() *cardtype.Registry { return c.registry }
func (c *client) Catalog() *i18n.Catalog       { return c.catalog }
func (c *client) Machine() *state.Machine      { return c.machine }

func (c *client) NewSession() *state.Session {
	return state.NewSession(c.machine)
}

func (c *client) Detect(number string) *cardtype.CardType {
	return c.registry.Detect(format.Digits(number))
}

func (c *client) Check(details CardDetails) Report {
	ss := c.NewSession()
	for _, f := range model.Fields {
		ss.Type(f, details.Value(f))
	}
	complete := ss.Submit()
	s := ss.State()

	r := Report{Complete: complete}
	if ct := s.CardType(); ct != nil {
		r.CardType = ct.Type
	}
	for _, f := range model.Fields {
		code := s.VisibleError(f)
		r.Fields = append(r.Fields, FieldReport{
			Field:   f,
			Value:   s.Value(f),
			Code:    code,
			Message: c.machine.ErrorText(code),
		})
	}
	c.log.Debug("check", "session", s.ID, "complete", complete, "card", r.CardType)
	return r
}
