// Copyright (c) 2026 Cuba Payment Inputs Team
// cuba-payment-inputs - payment card field formatting and validation
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks the locale files against the code. It collects the
// message ids passed to T(...) in the Go sources plus the ids derived from
// the error codes and field ids, then reports ids missing from a locale
// and ids in the primary locale that nothing uses.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/fiderosado/cuba-payment-inputs/core/model"
	"github.com/fiderosado/cuba-payment-inputs/util/mapst"
	"github.com/fiderosado/cuba-payment-inputs/util/slicest"
)

const (
	localesDir    = "i18n/locales"
	primaryLocale = "en.yaml"
	projectRoot   = "."
)

// Report is the outcome of one lint run.
type Report struct {
	Used int
	// Undefined ids are used in code but absent from the primary locale.
	Undefined []string
	// Orphaned ids are in the primary locale but never used.
	Orphaned []string
	// Missing maps a secondary locale file to the ids it lacks.
	Missing map[string][]string
}

func (r Report) Failed() bool {
	if len(r.Undefined) > 0 {
		return true
	}
	for _, keys := range r.Missing {
		if len(keys) > 0 {
			return true
		}
	}
	return false
}

func main() {
	fmt.Println("🔍 Running i18n linter...")

	r, err := lint(projectRoot, localesDir, primaryLocale)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ Found %d message ids in use.\n\n", r.Used)

	printList("Undefined (used in code, not in "+primaryLocale+")", r.Undefined)
	printList("Orphaned (in "+primaryLocale+", never used)", r.Orphaned)
	for _, file := range mapst.SortedKeys(r.Missing) {
		printList("Missing in "+file, r.Missing[file])
	}

	fmt.Println("--- Linter Finished ---")
	switch {
	case r.Failed():
		fmt.Println("❌ Found issues that need to be addressed.")
		os.Exit(1)
	case len(r.Orphaned) > 0:
		fmt.Println("⚠️  Found orphaned keys. Please consider removing them.")
	default:
		fmt.Println("✅ All translation files are consistent!")
	}
}

func printList(title string, keys []string) {
	fmt.Printf("--- %s ---\n", title)
	if len(keys) == 0 {
		fmt.Println("  ✨ None found.")
	}
	for _, k := range keys {
		fmt.Printf("  - %s\n", k)
	}
	fmt.Println()
}

func lint(root, locales, primary string) (Report, error) {
	used, err := findUsedKeys(root)
	if err != nil {
		return Report{}, fmt.Errorf("finding used keys: %w", err)
	}
	for _, k := range derivedKeys() {
		used[k] = struct{}{}
	}

	primaryKeys, err := loadKeysFromLocale(filepath.Join(locales, primary))
	if err != nil {
		return Report{}, fmt.Errorf("loading primary locale %s: %w", primary, err)
	}

	r := Report{
		Used:      len(used),
		Undefined: difference(used, primaryKeys),
		Orphaned:  difference(primaryKeys, used),
		Missing:   make(map[string][]string),
	}

	files, err := filepath.Glob(filepath.Join(locales, "*.yaml"))
	if err != nil {
		return Report{}, err
	}
	for _, file := range files {
		if filepath.Base(file) == primary {
			continue
		}
		keys, err := loadKeysFromLocale(file)
		if err != nil {
			return Report{}, fmt.Errorf("loading %s: %w", file, err)
		}
		r.Missing[filepath.Base(file)] = difference(primaryKeys, keys)
	}
	return r, nil
}

// derivedKeys are ids built at run time from error codes and field ids.
func derivedKeys() []string {
	var keys []string
	for _, code := range model.ErrorCodes {
		keys = append(keys, "error."+code.String())
	}
	for _, f := range model.Fields {
		for _, suffix := range []string{"label", "placeholder", "aria"} {
			keys = append(keys, "field."+f.String()+"."+suffix)
		}
	}
	return keys
}

// difference returns the sorted keys of a that are not in b.
func difference(a, b map[string]struct{}) []string {
	return slicest.Filter(mapst.SortedKeys(a), func(k string) bool {
		_, ok := b[k]
		return !ok
	})
}

// findUsedKeys scans non-test .go files for T("some.key") calls, whether on
// the i18n package or a catalogue.
func findUsedKeys(root string) (map[string]struct{}, error) {
	keys := make(map[string]struct{})
	re := regexp.MustCompile(`\bT\("([a-z_]+\.[A-Za-z_.]+)"`)

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() && (info.Name() == "tools" || strings.HasPrefix(info.Name(), "_")) {
			return filepath.SkipDir
		}
		if info.IsDir() || !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for _, match := range re.FindAllStringSubmatch(string(content), -1) {
			keys[match[1]] = struct{}{}
		}
		return nil
	})

	return keys, err
}

// loadKeysFromLocale reads a YAML file and returns a flat map of its keys.
func loadKeysFromLocale(path string) (map[string]struct{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}

	keys := make(map[string]struct{})
	flattenYAML("", data, keys)
	return keys, nil
}

// flattenYAML converts a nested map into dot-separated keys.
func flattenYAML(prefix string, node any, keys map[string]struct{}) {
	switch v := node.(type) {
	case map[string]any:
		for k, val := range v {
			next := k
			if prefix != "" {
				next = prefix + "." + k
			}
			flattenYAML(next, val, keys)
		}
	case []any:
		for i, val := range v {
			flattenYAML(fmt.Sprintf("%s[%d]", prefix, i), val, keys)
		}
	default:
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
	}
}
