package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors Config for writing: durations are emitted as
// strings ("3s", "120ms") so the file stays human-editable and round-trips
// through the loader's duration decode hook.
type fileConfig struct {
	DefaultList string         `yaml:"default_list"`
	DataDir     string         `yaml:"data_dir"`
	Editor      string         `yaml:"editor"`
	Roll        fileRollConfig `yaml:"roll"`
	Log         fileLogConfig  `yaml:"log"`
}

type fileRollConfig struct {
	Animate    bool    `yaml:"animate"`
	Duration   string  `yaml:"duration"`
	Tick       string  `yaml:"tick"`
	KillChance float64 `yaml:"kill_chance"`
}

type fileLogConfig struct {
	Level    string `yaml:"level"`
	MaxFiles int    `yaml:"max_files"`
	MaxAge   string `yaml:"max_age"`
}

const fileHeader = `# marbles configuration.
# Every setting is optional; delete anything you don't want to override.
`

// Write serializes the config as YAML to the given path, creating parent
// directories as needed. Used by "marbles config init".
func Write(cfg *Config, path string) error {
	fc := fileConfig{
		DefaultList: cfg.DefaultList,
		DataDir:     cfg.DataDir,
		Editor:      cfg.Editor,
		Roll: fileRollConfig{
			Animate:    cfg.Roll.Animate,
			Duration:   cfg.Roll.Duration.String(),
			Tick:       cfg.Roll.Tick.String(),
			KillChance: cfg.Roll.KillChance,
		},
		Log: fileLogConfig{
			Level:    cfg.Log.Level,
			MaxFiles: cfg.Log.MaxFiles,
			MaxAge:   cfg.Log.MaxAge.String(),
		},
	}

	data, err := yaml.Marshal(&fc)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, append([]byte(fileHeader), data...), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// WriteDefault writes the default configuration to the given path.
// Returns an error if the file already exists, so an existing config is
// never clobbered.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}
	return Write(NewConfig(), path)
}
