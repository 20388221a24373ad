// Package config manages persistent tool preferences stored at
// ~/.a2agen/config.yaml, with environment overrides via the A2AGEN_ prefix.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/a2agen-labs/a2agen/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Preference keys understood by the CLI.
const (
	// KeyDefinition is the default definition file used when no -f flag is given.
	KeyDefinition = "definition"
	// KeyOutput is the default output path for generated source ("" = stdout).
	KeyOutput = "output"
)

// Dir returns the path to the tool config directory (~/.a2agen/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.a2agen/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	if err := os.MkdirAll(Dir(), 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", Dir(), err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
// A missing config file is not an error.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	_ = viper.ReadInConfig()
}

// Get returns a config value by key, or empty string if unset.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
