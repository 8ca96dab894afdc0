// Copyright (c) 2026 Cuba Payment Inputs Team
// cuba-payment-inputs - payment card field formatting and validation
// This source code is licensed under the MIT license found in the LICENSE file.
package i18n

import (
	"maps"

	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/fiderosado/cuba-payment-inputs/core/model"
)

// Catalog renders codes and field texts in one language. Caller overrides
// take precedence over the locale files. It is independent of the package
// level language set by Init.
type Catalog struct {
	lang      string
	loc       *i18n.Localizer
	overrides map[model.ErrorCode]string
}

// NewCatalog builds a catalogue for lang, falling back to English.
func NewCatalog(lang string, overrides map[model.ErrorCode]string) *Catalog {
	load()
	if lang == "" {
		lang = DefaultLang
	}
	return &Catalog{
		lang:      lang,
		loc:       i18n.NewLocalizer(bundle, lang, DefaultLang),
		overrides: maps.Clone(overrides),
	}
}

// Lang is the catalogue's language.
func (c *Catalog) Lang() string { return c.lang }

// Message renders an error code; empty for model.ErrNone.
func (c *Catalog) Message(code model.ErrorCode) string {
	if code.Ok() {
		return ""
	}
	if msg, ok := c.overrides[code]; ok {
		return msg
	}
	id := "error." + code.String()
	if msg := translate(c.loc, id); msg != id {
		return msg
	}
	return code.String()
}

// Label is the visible label of a field.
func (c *Catalog) Label(f model.FieldID) string {
	return translate(c.loc, "field."+f.String()+".label")
}

// Placeholder is the hint shown in an empty field.
func (c *Catalog) Placeholder(f model.FieldID) string {
	return translate(c.loc, "field."+f.String()+".placeholder")
}

// AriaLabel is the accessible name of a field.
func (c *Catalog) AriaLabel(f model.FieldID) string {
	return translate(c.loc, "field."+f.String()+".aria")
}

// T translates any message id in the catalogue's language.
func (c *Catalog) T(messageID string, args ...any) string {
	return translate(c.loc, messageID, args...)
}
