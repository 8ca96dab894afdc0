// Copyright (c) 2026 Cuba Payment Inputs Team
// cuba-payment-inputs - payment card field formatting and validation
// This source code is licensed under the MIT license found in the LICENSE file.
package cardtype

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

type definitionsFile struct {
	CardTypes []definition `yaml:"cardTypes" validate:"required,dive"`
}

type definition struct {
	DisplayName string   `yaml:"displayName" validate:"required"`
	Type        string   `yaml:"type" validate:"required,lowercase"`
	Prefixes    []string `yaml:"prefixes" validate:"required,min=1,dive,required"`
	Lengths     []int    `yaml:"lengths" validate:"required,min=1,dive,min=1,max=32"`
	Grouping    []int    `yaml:"grouping" validate:"omitempty,dive,min=1"`
	Repeat      bool     `yaml:"repeat"`
	Gaps        []int    `yaml:"gaps" validate:"omitempty,dive,min=1"`
	Code        *struct {
		Name   string `yaml:"name" validate:"required"`
		Length int    `yaml:"length" validate:"min=1,max=8"`
	} `yaml:"code"`
}

// LoadDefinitions decodes card type definitions from YAML:
//
//	cardTypes:
//	  - displayName: Acme Card
//	    type: acme
//	    prefixes: ["9999", "1000-1099"]
//	    lengths: [16]
//	    grouping: [4]
//	    repeat: true
//	    code: {name: CVV, length: 3}
//
// Without grouping or gaps a definition uses blocks of four. Explicit gaps
// win over grouping.
func LoadDefinitions(r io.Reader) ([]CardType, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file definitionsFile
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode card types: %w", err)
	}
	if err := validate.Struct(file); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDefinition, describe(err))
	}

	out := make([]CardType, 0, len(file.CardTypes))
	for _, def := range file.CardTypes {
		ct, err := def.cardType()
		if err != nil {
			return nil, err
		}
		out = append(out, ct)
	}
	return out, nil
}

func (d definition) cardType() (CardType, error) {
	pattern := make(Pattern, 0, len(d.Prefixes))
	for _, raw := range d.Prefixes {
		p, err := ParsePrefix(raw)
		if err != nil {
			return CardType{}, fmt.Errorf("card type %s: %w", d.Type, err)
		}
		pattern = append(pattern, p)
	}

	grouping := DefaultGrouping
	if len(d.Grouping) > 0 {
		grouping = Grouping{Sizes: d.Grouping, Repeat: d.Repeat}
	}

	var code *Code
	if d.Code != nil {
		code = &Code{Name: d.Code.Name, Length: d.Code.Length}
	}

	ct := New(d.DisplayName, d.Type, grouping, pattern, d.Lengths, code)
	if len(d.Gaps) > 0 {
		ct.Gaps = d.Gaps
	}
	if err := ct.Validate(); err != nil {
		return CardType{}, err
	}
	return ct, nil
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, e := range verrs {
		parts = append(parts, fmt.Sprintf("%s failed %q", e.Namespace(), e.Tag()))
	}
	return strings.Join(parts, "; ")
}
