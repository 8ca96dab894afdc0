// Copyright (c) 2026 Cuba Payment Inputs Team
// cuba-payment-inputs - payment card field formatting and validation
// This source code is licensed under the MIT license found in the LICENSE file.
package client

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiderosado/cuba-payment-inputs/config"
	"github.com/fiderosado/cuba-payment-inputs/core/model"
)

func testConfig() Config {
	cfg := NewDefaultConfig()
	cfg.Clock = func() time.Time { return time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC) }
	return cfg
}

func TestCheckValidDetails(t *testing.T) {
	c, err := New(testConfig())
	require.NoError(t, err)

	r := c.Check(CardDetails{
		CardNumber: "4242 4242 4242 4242",
		ExpiryDate: "12/27",
		CVC:        "123",
		ZIP:        "10400",
	})
	assert.True(t, r.Complete)
	assert.Equal(t, "visa", r.CardType)
	assert.Equal(t, "4242", r.LastFour())
	require.Len(t, r.Fields, 4)
	assert.Equal(t, "12 / 27", r.Fields[1].Value)
	for _, f := range r.Fields {
		assert.Equal(t, model.ErrNone, f.Code, f.Field.String())
		assert.Empty(t, f.Message)
	}
}

func TestCheckReportsErrors(t *testing.T) {
	cfg := testConfig()
	cfg.Language = "es"
	cfg.Messages = map[model.ErrorCode]string{model.ErrEmptyZIP: "ZIP please"}
	c, err := New(cfg)
	require.NoError(t, err)

	r := c.Check(CardDetails{CardNumber: "4242424242424241", ExpiryDate: "13"})
	assert.False(t, r.Complete)
	assert.Equal(t, model.ErrInvalidCardNumber, r.Fields[0].Code)
	assert.Equal(t, "El número de tarjeta no es válido", r.Fields[0].Message)
	assert.Equal(t, model.ErrInvalidExpiryDate, r.Fields[1].Code)
	assert.Equal(t, model.ErrEmptyCVC, r.Fields[2].Code)
	assert.Equal(t, model.ErrEmptyZIP, r.Fields[3].Code)
	assert.Equal(t, "ZIP please", r.Fields[3].Message)
}

func TestMinZIPLength(t *testing.T) {
	cfg := testConfig()
	cfg.MinZIPLength = 5
	c, err := New(cfg)
	require.NoError(t, err)

	r := c.Check(CardDetails{CardNumber: "4242424242424242", ExpiryDate: "1227", CVC: "123", ZIP: "104"})
	assert.False(t, r.Complete)
	assert.Equal(t, model.ErrInvalidZIP, r.Fields[3].Code)
}

func TestDetect(t *testing.T) {
	c, err := New(testConfig())
	require.NoError(t, err)
	assert.Equal(t, "amex", c.Detect("3782 8224").Type)
	assert.Nil(t, c.Detect("0000"))
	assert.NotNil(t, c.NewSession())
	assert.Same(t, c.Registry(), c.Machine().Registry())
	assert.Equal(t, "en", c.Catalog().Lang())
}

func TestFromConfig(t *testing.T) {
	dir := t.TempDir()
	regPath := filepath.Join(dir, "cards.yaml")
	require.NoError(t, os.WriteFile(regPath, []byte(`
cardTypes:
  - displayName: Acme
    type: acme
    prefixes: ["9999"]
    lengths: [8]
`), 0o600))

	fc := config.Default()
	fc.Language = "de"
	fc.LogLevel = "debug"
	fc.AutoFocus = false
	fc.Registry = regPath
	fc.ZipLength = 5
	fc.ErrorMessages = map[string]string{"emptycvc": "CVC!"}

	cfg, err := FromConfig(fc)
	require.NoError(t, err)
	assert.Equal(t, Debug, cfg.LogLevel)
	assert.Equal(t, "de", cfg.Language)
	assert.False(t, cfg.AutoFocus)
	assert.Equal(t, 5, cfg.MinZIPLength)
	assert.Equal(t, "CVC!", cfg.Messages[model.ErrEmptyCVC])
	require.Len(t, cfg.Definitions, 1)

	c, err := New(cfg)
	require.NoError(t, err)
	assert.Equal(t, "acme", c.Detect("99999997").Type)
	assert.False(t, c.Machine().AutoFocus())
}

func TestFromConfigErrors(t *testing.T) {
	fc := config.Default()
	fc.Registry = filepath.Join(t.TempDir(), "missing.yaml")
	_, err := FromConfig(fc)
	require.Error(t, err)

	fc = config.Default()
	fc.LogLevel = "chatty"
	_, err = FromConfig(fc)
	require.Error(t, err)
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, Debug, ParseLogLevel("debug"))
	assert.Equal(t, Info, ParseLogLevel("info"))
	assert.Equal(t, Error, ParseLogLevel("error"))
	assert.Equal(t, Warn, ParseLogLevel(""))
}
