// Copyright (c) 2026 Cuba Payment Inputs Team
// cuba-payment-inputs - payment card field formatting and validation
// This source code is licensed under the MIT license found in the LICENSE file.
package validate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fiderosado/cuba-payment-inputs/core/cardtype"
	"github.com/fiderosado/cuba-payment-inputs/core/model"
)

var now = time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)

func TestCardNumber(t *testing.T) {
	reg := cardtype.Default()
	visa := reg.ByType(cardtype.Visa)
	amex := reg.ByType(cardtype.Amex)

	cases := []struct {
		name    string
		digits  string
		ct      *cardtype.CardType
		touched bool
		want    model.ErrorCode
	}{
		{"empty untouched", "", nil, false, model.ErrNone},
		{"empty touched", "", nil, true, model.ErrEmptyCardNumber},
		{"valid visa", "4242424242424242", visa, false, model.ErrNone},
		{"bad checksum", "4242424242424241", visa, false, model.ErrInvalidCardNumber},
		{"partial", "4242", visa, false, model.ErrInvalidCardNumber},
		{"unknown type", "1234567812345670", nil, true, model.ErrInvalidCardNumber},
		{"valid amex", "378282246310005", amex, true, model.ErrNone},
		{"amex wrong length", "3782822463100051", amex, true, model.ErrInvalidCardNumber},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, CardNumber(c.digits, c.ct, c.touched, nil))
		})
	}
}

func TestCardNumberCustom(t *testing.T) {
	visa := cardtype.Default().ByType(cardtype.Visa)
	calls := 0
	noTest := func(digits string, ct *cardtype.CardType) model.ErrorCode {
		calls++
		if digits == "4242424242424242" {
			return model.ErrInvalidCardNumber
		}
		return model.ErrNone
	}

	assert.Equal(t, model.ErrInvalidCardNumber, CardNumber("4242424242424242", visa, true, noTest))
	assert.Equal(t, model.ErrNone, CardNumber("4111111111111111", visa, true, noTest))
	assert.Equal(t, model.ErrInvalidCardNumber, CardNumber("4111", visa, true, noTest))
	assert.Equal(t, 2, calls, "custom rule only runs after built-in checks pass")
}

func TestExpiry(t *testing.T) {
	cases := []struct {
		text    string
		touched bool
		want    model.ErrorCode
	}{
		{"", false, model.ErrNone},
		{"", true, model.ErrEmptyExpiryDate},
		{"0", false, model.ErrInvalidExpiryDate},
		{"04 / ", true, model.ErrInvalidExpiryDate},
		{"04 / 2", true, model.ErrInvalidExpiryDate},
		{"13 / 27", false, model.ErrMonthOutOfRange},
		{"00 / 27", false, model.ErrMonthOutOfRange},
		{"04 / 25", false, model.ErrYearOutOfRange},
		{"04 / 46", false, model.ErrYearOutOfRange},
		{"04 / 45", false, model.ErrNone},
		{"05 / 26", false, model.ErrDateOutOfRange},
		{"06 / 26", false, model.ErrNone},
		{"12 / 26", false, model.ErrNone},
		{"01 / 27", false, model.ErrNone},
		{"0127", false, model.ErrNone},
	}
	for _, c := range cases {
		if got := Expiry(c.text, c.touched, now, nil); got != c.want {
			t.Fatalf("Expiry(%q, %v) = %q, want %q", c.text, c.touched, got, c.want)
		}
	}
}

func TestExpiryCustom(t *testing.T) {
	var gotMonth, gotYear int
	custom := func(month, year int) model.ErrorCode {
		gotMonth, gotYear = month, year
		return model.ErrDateOutOfRange
	}
	assert.Equal(t, model.ErrDateOutOfRange, Expiry("09 / 30", true, now, custom))
	assert.Equal(t, 9, gotMonth)
	assert.Equal(t, 2030, gotYear)
}

func TestCVC(t *testing.T) {
	reg := cardtype.Default()
	visa := reg.ByType(cardtype.Visa)
	amex := reg.ByType(cardtype.Amex)
	codeless := cardtype.New("Codeless", "codeless", cardtype.DefaultGrouping,
		cardtype.Pattern{cardtype.Lit("7")}, []int{16}, nil)

	cases := []struct {
		name    string
		cvc     string
		ct      *cardtype.CardType
		touched bool
		want    model.ErrorCode
	}{
		{"empty untouched", "", visa, false, model.ErrNone},
		{"empty touched", "", visa, true, model.ErrEmptyCVC},
		{"visa ok", "123", visa, false, model.ErrNone},
		{"visa short", "12", visa, false, model.ErrInvalidCVC},
		{"visa long", "1234", visa, false, model.ErrInvalidCVC},
		{"amex ok", "1234", amex, false, model.ErrNone},
		{"amex short", "123", amex, false, model.ErrInvalidCVC},
		{"unknown defaults to three", "123", nil, false, model.ErrNone},
		{"unknown four", "1234", nil, false, model.ErrInvalidCVC},
		{"non digits", "12a", visa, false, model.ErrInvalidCVC},
		{"no code network", "", &codeless, true, model.ErrNone},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, CVC(c.cvc, c.ct, c.touched, nil))
		})
	}
}

func TestZIP(t *testing.T) {
	assert.Equal(t, model.ErrNone, ZIP("", false, nil))
	assert.Equal(t, model.ErrEmptyZIP, ZIP("", true, nil))
	assert.Equal(t, model.ErrNone, ZIP("1", true, nil))
	assert.Equal(t, model.ErrInvalidZIP, ZIP("123", true, MinZIPLength(5)))
	assert.Equal(t, model.ErrNone, ZIP("10400", true, MinZIPLength(5)))
	assert.Equal(t, model.ErrEmptyZIP, ZIP("", true, MinZIPLength(5)))
}
