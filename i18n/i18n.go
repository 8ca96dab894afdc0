// Copyright (c) 2026 Cuba Payment Inputs Team
// cuba-payment-inputs - payment card field formatting and validation
// This source code is licensed under the MIT license found in the LICENSE file.

// Package i18n provides the translated texts of the payment form: error
// messages, field labels and placeholders, and terminal UI strings. It uses
// go-i18n with YAML locale files embedded into the binary.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"gopkg.in/yaml.v3"
)

// DefaultLang is used when no language is configured.
const DefaultLang = "en"

//go:embed locales/*.yaml
var localeFS embed.FS

var (
	loadOnce sync.Once
	bundle   *i18n.Bundle
	// locales maps a locale tag to its display name.
	locales map[string]string

	mu          sync.RWMutex
	localizer   *i18n.Localizer
	currentLang string
)

func load() {
	loadOnce.Do(func() {
		bundle = i18n.NewBundle(language.English)
		bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
		locales = make(map[string]string)

		files, _ := fs.ReadDir(localeFS, "locales")
		for _, f := range files {
			if f.IsDir() {
				continue
			}
			data, err := localeFS.ReadFile(path.Join("locales", f.Name()))
			if err != nil {
				continue
			}
			mf, err := bundle.ParseMessageFileBytes(data, f.Name())
			if err != nil {
				continue
			}
			locales[mf.Tag.String()] = display.Self.Name(mf.Tag)
		}
	})
}

// Init loads the locale files and selects lang.
func Init(lang string) {
	load()
	if lang == "" {
		lang = DefaultLang
	}
	mu.Lock()
	defer mu.Unlock()
	localizer = i18n.NewLocalizer(bundle, lang)
	currentLang = lang
}

// SetLang changes the active language.
func SetLang(lang string) {
	Init(lang)
}

// GetLang returns the active language.
func GetLang() string {
	mu.RLock()
	defer mu.RUnlock()
	return currentLang
}

// GetAvailableLocales returns the embedded locale tags with their names
// written in their own language.
func GetAvailableLocales() map[string]string {
	load()
	out := make(map[string]string, len(locales))
	for k, v := range locales {
		out[k] = v
	}
	return out
}

// IsSupported reports whether lang has an embedded locale file.
func IsSupported(lang string) bool {
	load()
	tag, err := language.Parse(lang)
	if err != nil {
		return false
	}
	base, _ := tag.Base()
	_, ok := locales[base.String()]
	return ok
}

// T translates messageID in the active language. A single map argument is
// used as template data; other arguments are applied fmt-style. Unknown ids
// come back unchanged.
func T(messageID string, args ...any) string {
	mu.RLock()
	loc := localizer
	mu.RUnlock()
	if loc == nil {
		Init(DefaultLang)
		mu.RLock()
		loc = localizer
		mu.RUnlock()
	}
	return translate(loc, messageID, args...)
}

func translate(loc *i18n.Localizer, messageID string, args ...any) string {
	cfg := &i18n.LocalizeConfig{MessageID: messageID}
	if len(args) == 1 {
		if data, ok := args[0].(map[string]any); ok {
			cfg.TemplateData = data
			args = nil
		}
	}
	msg, err := loc.Localize(cfg)
	if err != nil {
		return messageID
	}
	if len(args) > 0 && strings.Contains(msg, "%") {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}
