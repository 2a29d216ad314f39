// Package settings loads the user's uicontrols preferences with viper.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. UICONTROLS_THEME_NAME.
const EnvPrefix = "UICONTROLS"

// Settings are the persisted user preferences. An empty ThemeName keeps
// whatever theme the catalog asks for.
type Settings struct {
	ThemeName   string `mapstructure:"theme_name"`
	LogLevel    string `mapstructure:"log_level"`
	CatalogPath string `mapstructure:"catalog_path"`
}

// Defaults returns the settings used when no file exists.
func Defaults() *Settings {
	return &Settings{
		LogLevel: "info",
	}
}

// Dir returns ~/.uicontrols.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".uicontrols"), nil
}

// File returns the default settings file path.
func File() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

func newViper() *viper.Viper {
	v := viper.New()
	defaults := Defaults()
	v.SetDefault("theme_name", defaults.ThemeName)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("catalog_path", defaults.CatalogPath)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	return v
}

// Load reads settings from path, or from the default file when path is
// empty. A missing file is not an error: defaults and environment
// overrides apply.
func Load(path string) (*Settings, error) {
	if path == "" {
		var err error
		if path, err = File(); err != nil {
			return nil, err
		}
	}

	v := newViper()

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings file: %w", err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat settings file: %w", err)
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	return &s, nil
}

// Save writes s to path, creating the directory when needed.
func Save(path string, s *Settings) error {
	if s == nil {
		return errors.New("settings are nil")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	v := viper.New()
	v.Set("theme_name", s.ThemeName)
	v.Set("log_level", s.LogLevel)
	v.Set("catalog_path", s.CatalogPath)
	v.SetConfigType("yaml")

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}
