// Package config provides configuration data structures for marbles.
package config

import (
	"fmt"
	"time"
)

// Config represents the complete marbles configuration loaded from
// the user config directory (config.yaml). Every field has a working
// default; the file is optional.
type Config struct {
	// DefaultList is the list used when --list is not given.
	DefaultList string `yaml:"default_list" json:"default_list"`
	// DataDir overrides the XDG data directory for list files.
	DataDir string `yaml:"data_dir" json:"data_dir"`
	// Editor overrides $EDITOR for the edit command.
	Editor string `yaml:"editor" json:"editor"`

	Roll RollConfig `yaml:"roll" json:"roll"`
	Log  LogConfig  `yaml:"log"  json:"log"`
}

// RollConfig configures the roll command's presentation.
// None of these settings affect which marble is drawn.
type RollConfig struct {
	// Animate enables the shuffle animation when stdout is a terminal (default: true).
	Animate bool `yaml:"animate" json:"animate"`
	// Duration is how long the animation plays before the reveal (default: 3s).
	Duration time.Duration `yaml:"duration" json:"duration"`
	// Tick is the interval between animation frames (default: 120ms).
	Tick time.Duration `yaml:"tick" json:"tick"`
	// KillChance is the per-tick probability of shattering a preview row (default: 0.15).
	KillChance float64 `yaml:"kill_chance" json:"kill_chance"`
}

// LogConfig configures structured logging.
type LogConfig struct {
	// Level is the minimum log level: debug, info, warn, or error (default: info).
	Level string `yaml:"level" json:"level"`
	// MaxFiles is the maximum number of log files to keep (default: 10).
	MaxFiles int `yaml:"max_files" json:"max_files"`
	// MaxAge is the maximum age of log files before cleanup (default: 168h).
	MaxAge time.Duration `yaml:"max_age" json:"max_age"`
}

// Default values.
const (
	DefaultListName     = "default_list"
	DefaultRollDuration = 3 * time.Second
	DefaultRollTick     = 120 * time.Millisecond
	DefaultKillChance   = 0.15
	DefaultLogLevel     = "info"
	DefaultLogMaxFiles  = 10
	DefaultLogMaxAge    = 7 * 24 * time.Hour
)

// NewConfig returns a new Config with default values applied.
func NewConfig() *Config {
	return &Config{
		DefaultList: DefaultListName,
		Roll: RollConfig{
			Animate:    true,
			Duration:   DefaultRollDuration,
			Tick:       DefaultRollTick,
			KillChance: DefaultKillChance,
		},
		Log: LogConfig{
			Level:    DefaultLogLevel,
			MaxFiles: DefaultLogMaxFiles,
			MaxAge:   DefaultLogMaxAge,
		},
	}
}

// ApplyDefaults applies default values to any unset fields.
// This is used after loading config from file to fill in missing values.
func (c *Config) ApplyDefaults() {
	defaults := NewConfig()

	if c.DefaultList == "" {
		c.DefaultList = defaults.DefaultList
	}

	if c.Roll.Duration == 0 {
		c.Roll.Duration = defaults.Roll.Duration
	}
	if c.Roll.Tick == 0 {
		c.Roll.Tick = defaults.Roll.Tick
	}
	// KillChance zero is a valid setting (never shatter), so it is left alone.

	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
	if c.Log.MaxFiles == 0 {
		c.Log.MaxFiles = defaults.Log.MaxFiles
	}
	if c.Log.MaxAge == 0 {
		c.Log.MaxAge = defaults.Log.MaxAge
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	msg := "multiple validation errors:"
	for _, err := range e {
		msg += "\n  - " + err.Error()
	}
	return msg
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if c.Roll.Duration < 0 {
		errs = append(errs, &ValidationError{Field: "roll.duration", Message: "must be non-negative"})
	}
	if c.Roll.Tick <= 0 {
		errs = append(errs, &ValidationError{Field: "roll.tick", Message: "must be positive"})
	}
	if c.Roll.KillChance < 0 || c.Roll.KillChance > 1 {
		errs = append(errs, &ValidationError{
			Field:   "roll.kill_chance",
			Message: "must be between 0 and 1",
		})
	}

	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
		// valid
	default:
		errs = append(errs, &ValidationError{
			Field:   "log.level",
			Message: "must be 'debug', 'info', 'warn', or 'error'",
		})
	}
	if c.Log.MaxFiles < 0 {
		errs = append(errs, &ValidationError{Field: "log.max_files", Message: "must be non-negative"})
	}
	if c.Log.MaxAge < 0 {
		errs = append(errs, &ValidationError{Field: "log.max_age", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// String returns a short summary of the effective settings, used for
// debug logging at startup.
func (c *Config) String() string {
	return fmt.Sprintf("default_list=%s animate=%t duration=%s", c.DefaultList, c.Roll.Animate, c.Roll.Duration)
}
