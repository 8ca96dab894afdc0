// Copyright (c) 2026 Cuba Payment Inputs Team
// cuba-payment-inputs - payment card field formatting and validation
// This source code is licensed under the MIT license found in the LICENSE file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fiderosado/cuba-payment-inputs/internal/logging"
)

const (
	appDir     = "cuba-payment-inputs"
	configName = "cardinput"
	envPrefix  = "cardinput"
	// localOverride is merged over the discovered file when present in the
	// working directory.
	localOverride = ".cardinput.yaml"
)

// RuntimeOS is runtime.GOOS, replaceable in tests.
var RuntimeOS = runtime.GOOS

// GetConfigPath returns the full path of the user or system config file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch RuntimeOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "CubaPaymentInputs")
		default:
			configDir = "/etc/" + appDir
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, appDir)
	}

	return filepath.Join(configDir, configName+".yaml"), nil
}

// LoadConfig fills a T from defaults, the first config file found, the
// environment and the flags of cmd. When no config file exists the result
// is still populated and the error is a viper.ConfigFileNotFoundError.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, configFile *string) (T, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName(configName)
	v.SetConfigType("yaml")

	if configFile != nil && *configFile != "" {
		v.SetConfigFile(*configFile)
	}
	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	var notFound error
	if err := readConfig(v, configFile); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, fmt.Errorf("read config: %w", err)
		}
		notFound = err
	} else {
		logging.Infof("using config file %s", v.ConfigFileUsed())
	}

	mergeLocalOverride(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("decode config: %w", err)
	}
	return c, notFound
}

// readConfig treats an empty explicit file like a missing one.
func readConfig(v *viper.Viper, configFile *string) error {
	if configFile != nil && *configFile != "" {
		info, err := os.Stat(*configFile)
		switch {
		case os.IsNotExist(err):
			return viper.ConfigFileNotFoundError{}
		case err == nil && info.Size() == 0:
			return viper.ConfigFileNotFoundError{}
		}
	}
	return v.ReadInConfig()
}

// mergeLocalOverride merges ./.cardinput.yaml over the loaded config. A
// malformed override is logged and skipped.
func mergeLocalOverride(v *viper.Viper) {
	if _, err := os.Stat(localOverride); err != nil {
		return
	}
	v.SetConfigFile(localOverride)
	if err := v.MergeInConfig(); err != nil {
		logging.Warnf("ignoring %s: %v", localOverride, err)
	}
	v.SetConfigFile("")
}

// WriteConfigFile writes c to the user or system config path.
func WriteConfigFile[T any](c *T, system bool) (string, error) {
	path, err := GetConfigPath(system)
	if err != nil {
		return "", err
	}
	return path, WriteConfigFileTo(c, path)
}

// WriteConfigFileTo writes c as YAML to path, creating parent directories.
func WriteConfigFileTo[T any](c *T, path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}
	return os.WriteFile(path, data, 0o600)
}
