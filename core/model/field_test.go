// Copyright (c) 2026 Cuba Payment Inputs Team
// cuba-payment-inputs - payment card field formatting and validation
// This source code is licensed under the MIT license found in the LICENSE file.
package model

import "testing"

func TestFieldChain(t *testing.T) {
	cases := []struct {
		field      FieldID
		next, prev FieldID
	}{
		{FieldCardNumber, FieldExpiryDate, FieldNone},
		{FieldExpiryDate, FieldCVC, FieldCardNumber},
		{FieldCVC, FieldZIP, FieldExpiryDate},
		{FieldZIP, FieldNone, FieldCVC},
		{FieldNone, FieldNone, FieldNone},
		{FieldID("submit"), FieldNone, FieldNone},
	}
	for _, c := range cases {
		if got := c.field.Next(); got != c.next {
			t.Fatalf("%s.Next() = %s, want %s", c.field, got, c.next)
		}
		if got := c.field.Prev(); got != c.prev {
			t.Fatalf("%s.Prev() = %s, want %s", c.field, got, c.prev)
		}
	}
}

func TestIsManaged(t *testing.T) {
	for _, f := range Fields {
		if !f.IsManaged() {
			t.Fatalf("expected %s to be managed", f)
		}
	}
	if FieldNone.IsManaged() || FieldID("email").IsManaged() {
		t.Fatalf("unexpected managed field")
	}
}
