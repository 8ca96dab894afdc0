// Copyright (c) 2026 Cuba Payment Inputs Team
// cuba-payment-inputs - payment card field formatting and validation
// This source code is licensed under the MIT license found in the LICENSE file.

package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	cfg "github.com/fiderosado/cuba-payment-inputs/config"
	"github.com/fiderosado/cuba-payment-inputs/core/model"
)

// isolate points the user config dir and the working directory at a fresh
// temp dir so no real config leaks into a test.
func isolate(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "xdg"))
	t.Setenv("HOME", tmp)
	t.Chdir(tmp)
	return tmp
}

func isNotFound(err error) bool {
	var nf viper.ConfigFileNotFoundError
	return errors.As(err, &nf)
}

func TestLoadConfig_DefaultsWithoutFile(t *testing.T) {
	isolate(t)

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	if !isNotFound(err) {
		t.Fatalf("expected ConfigFileNotFoundError, got: %T %v", err, err)
	}
	if !reflect.DeepEqual(got, cfg.Default()) {
		t.Fatalf("expected defaults, got %+v", got)
	}
}

func TestLoadConfig_EmptyCandidate_TreatedAsNotFound(t *testing.T) {
	tmp := isolate(t)

	emptyPath := filepath.Join(tmp, "empty.yaml")
	if err := os.WriteFile(emptyPath, nil, 0o600); err != nil {
		t.Fatalf("create empty file: %v", err)
	}

	_, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &emptyPath)
	if !isNotFound(err) {
		t.Fatalf("expected ConfigFileNotFoundError, got: %T %v", err, err)
	}
}

func TestLoadConfig_ReadsUserFile(t *testing.T) {
	tmp := isolate(t)

	dir := filepath.Join(tmp, "xdg", "cuba-payment-inputs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	yaml := "language: es\nauto-focus: false\nzip-length: 5\nerror-messages:\n  emptyZIP: Falta el código postal\n"
	if err := os.WriteFile(filepath.Join(dir, "cardinput.yaml"), []byte(yaml), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if got.Language != "es" || got.AutoFocus || got.ZipLength != 5 {
		t.Fatalf("unexpected config: %+v", got)
	}

	msgs, err := got.Messages()
	if err != nil {
		t.Fatalf("Messages(): %v", err)
	}
	if msgs[model.ErrEmptyZIP] != "Falta el código postal" {
		t.Fatalf("override not mapped to code: %v", msgs)
	}
}

func TestLoadConfig_EnvAndFlags(t *testing.T) {
	isolate(t)
	t.Setenv("CARDINPUT_LANGUAGE", "de")
	t.Setenv("CARDINPUT_LOG_LEVEL", "debug")

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	if !isNotFound(err) {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Language != "de" || got.LogLevel != "debug" {
		t.Fatalf("env not applied: %+v", got)
	}

	cmd := &cobra.Command{}
	cmd.Flags().String("language", "", "language")
	if err := cmd.Flags().Set("language", "es"); err != nil {
		t.Fatalf("failed to set flag: %v", err)
	}
	got, _ = cfg.LoadConfig[cfg.Config](cmd, cfg.Defaults(), nil)
	if got.Language != "es" {
		t.Fatalf("flag should win over env, got %q", got.Language)
	}
}

func TestLoadConfig_LocalOverride(t *testing.T) {
	isolate(t)
	if err := os.WriteFile("cardinput.yaml", []byte("language: de\nlog-level: info\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if err := os.WriteFile(".cardinput.yaml", []byte("language: es\n"), 0o600); err != nil {
		t.Fatalf("write override: %v", err)
	}

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if got.Language != "es" || got.LogLevel != "info" {
		t.Fatalf("unexpected merge result: %+v", got)
	}
}

func TestLoadConfig_BrokenConfig_ReturnsParseError(t *testing.T) {
	tmp := isolate(t)
	file := filepath.Join(tmp, "broken.yaml")
	if err := os.WriteFile(file, []byte("language: \"es\n  auto-focus: [\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &file)
	if err == nil || isNotFound(err) {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestWriteConfigFile_RoundTrip(t *testing.T) {
	tmp := isolate(t)

	c := cfg.Default()
	c.Language = "es"
	c.ErrorMessages = map[string]string{"emptyCVC": "Falta el CVC"}

	path, err := cfg.WriteConfigFile(&c, false)
	if err != nil {
		t.Fatalf("WriteConfigFile: %v", err)
	}
	if !strings.HasPrefix(path, tmp) {
		t.Fatalf("config written outside the isolated dir: %s", path)
	}

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if got.Language != "es" {
		t.Fatalf("expected es, got %q", got.Language)
	}
	msgs, err := got.Messages()
	if err != nil || msgs[model.ErrEmptyCVC] != "Falta el CVC" {
		t.Fatalf("Messages() = %v, %v", msgs, err)
	}
}

func TestWriteConfigFileTo_CreatesDirectories(t *testing.T) {
	tmp := isolate(t)
	path := filepath.Join(tmp, "nested", "deep", "cardinput.yaml")
	c := cfg.Default()
	if err := cfg.WriteConfigFileTo(&c, path); err != nil {
		t.Fatalf("WriteConfigFileTo: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.Contains(string(data), "auto-focus: true") {
		t.Fatalf("unexpected content: %s", data)
	}
}

func TestGetConfigPath(t *testing.T) {
	tmp := isolate(t)
	p, err := cfg.GetConfigPath(false)
	if err != nil {
		t.Fatalf("GetConfigPath(false): %v", err)
	}
	if want := filepath.Join(tmp, "xdg", "cuba-payment-inputs", "cardinput.yaml"); p != want {
		t.Fatalf("GetConfigPath(false) = %q, want %q", p, want)
	}
	if cfg.RuntimeOS != "windows" {
		sys, _ := cfg.GetConfigPath(true)
		if sys != "/etc/cuba-payment-inputs/cardinput.yaml" {
			t.Fatalf("unexpected system path %q", sys)
		}
	}
}

func TestValidate(t *testing.T) {
	ok := cfg.Default()
	if err := ok.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}

	cases := map[string]func(c *cfg.Config){
		"bad language":     func(c *cfg.Config) { c.Language = "not a tag" },
		"bad log level":    func(c *cfg.Config) { c.LogLevel = "chatty" },
		"zip too long":     func(c *cfg.Config) { c.ZipLength = 9 },
		"empty message":    func(c *cfg.Config) { c.ErrorMessages = map[string]string{"emptyCVC": ""} },
		"unknown code key": func(c *cfg.Config) { c.ErrorMessages = map[string]string{"bogus": "x"} },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := cfg.Default()
			mutate(&c)
			if err := c.Validate(); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}

	c := cfg.Default()
	c.ErrorMessages = map[string]string{"EMPTYCVC": "x"}
	msgs, err := c.Messages()
	if err != nil || msgs[model.ErrEmptyCVC] != "x" {
		t.Fatalf("keys should match case-insensitively: %v %v", msgs, err)
	}

	c.ErrorMessages = map[string]string{"bogus": "x"}
	if _, err := c.Messages(); !errors.Is(err, cfg.ErrUnknownErrorCode) {
		t.Fatalf("expected ErrUnknownErrorCode, got %v", err)
	}
}
