// Package config provides configuration loading and management for marbles.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/dbmrq/marbles/internal/env"
)

const (
	// ConfigFileName is the name of the config file in the config directory.
	ConfigFileName = "config.yaml"

	// EnvPrefix is the prefix for environment variable overrides.
	EnvPrefix = "MARBLES"
)

// DefaultPath returns the default config file path,
// e.g. ~/.config/marbles/config.yaml on Linux.
func DefaultPath() (string, error) {
	dir, err := env.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

// Loader handles loading configuration from files and environment.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetConfigType("yaml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Loader{v: v}
}

// LoadConfig loads configuration from the specified path, applies defaults,
// merges environment variables, and validates the result.
// If path is empty, the default config path is used. A missing config file
// is not an error; the tool must work with zero setup.
func (l *Loader) LoadConfig(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, &LoadError{
				Path:    path,
				Message: "could not resolve config path",
				Err:     err,
			}
		}
	}

	cfg := NewConfig()

	if _, err := os.Stat(path); err == nil {
		l.v.SetConfigFile(path)

		if err := l.v.ReadInConfig(); err != nil {
			return nil, &LoadError{
				Path:    path,
				Message: "failed to read config file",
				Err:     err,
			}
		}

		if err := l.v.Unmarshal(cfg, viperDecodeHook); err != nil {
			return nil, &LoadError{
				Path:    path,
				Message: "failed to parse config file",
				Err:     err,
			}
		}
	}

	l.applyEnvOverrides(cfg)
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "configuration validation failed",
			Err:     err,
		}
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the config.
func (l *Loader) applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvPrefix + "_DEFAULT_LIST"); v != "" {
		cfg.DefaultList = v
	}
	if v := os.Getenv(EnvPrefix + "_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv(EnvPrefix + "_EDITOR"); v != "" {
		cfg.Editor = v
	}

	if v := os.Getenv(EnvPrefix + "_ROLL_ANIMATE"); v != "" {
		cfg.Roll.Animate = parseBool(v)
	}
	if v := os.Getenv(EnvPrefix + "_ROLL_DURATION"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Roll.Duration = d
		}
	}
	if v := os.Getenv(EnvPrefix + "_ROLL_TICK"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Roll.Tick = d
		}
	}
	if v := os.Getenv(EnvPrefix + "_ROLL_KILL_CHANCE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Roll.KillChance = f
		}
	}

	if v := os.Getenv(EnvPrefix + "_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}

// parseBool parses a string as a boolean value.
// Returns true for "true", "1", "yes" (case-insensitive).
// Returns false for anything else.
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes"
}

// viperDecodeHook provides custom decoding for viper unmarshaling.
// The struct is tagged for yaml, so the decoder matches on yaml tags,
// and duration fields accept strings like "3s" or "120ms".
func viperDecodeHook(dc *mapstructure.DecoderConfig) {
	dc.TagName = "yaml"
	dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
	)
}

// LoadError represents an error that occurred while loading configuration.
type LoadError struct {
	Path    string
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load is a convenience function that creates a new Loader and loads
// configuration. If path is empty, the default config path is used.
func Load(path string) (*Config, error) {
	return NewLoader().LoadConfig(path)
}
