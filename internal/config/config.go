// Package config provides Viper-based configuration loading.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// AutosaveConfig controls periodic snapshot writes.
type AutosaveConfig struct {
	Enabled bool `mapstructure:"enabled"`
	// IntervalMinutes must be one of 1, 5, 10, 15, 30, 60.
	IntervalMinutes int `mapstructure:"interval_minutes"`
}

// TimeConfig controls how fast in-game time runs.
type TimeConfig struct {
	// Speed is in-game minutes per real-time tick: 1, 2, 5, or 10.
	Speed int `mapstructure:"speed"`
}

// SoundConfig toggles audio. It has no effect on the simulation core.
type SoundConfig struct {
	Effects bool `mapstructure:"effects"`
	Music   bool `mapstructure:"music"`
}

// SaveConfig holds the snapshot file location. Empty means the default
// under the user's config directory.
type SaveConfig struct {
	Path string `mapstructure:"path"`
}

// LoggingConfig holds structured logging settings. File keeps log output off
// the terminal the TUI draws on.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
	// File is the log destination path; empty logs to stderr.
	File string `mapstructure:"file"`
}

// Config is the top-level application configuration.
type Config struct {
	Autosave AutosaveConfig `mapstructure:"autosave"`
	Time     TimeConfig     `mapstructure:"time"`
	Sound    SoundConfig    `mapstructure:"sound"`
	Save     SaveConfig     `mapstructure:"save"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

var (
	validIntervals = map[int]bool{1: true, 5: true, 10: true, 15: true, 30: true, 60: true}
	validSpeeds    = map[int]bool{1: true, 2: true, 5: true, 10: true}
)

// Validate checks all configuration invariants.
func (c Config) Validate() error {
	var errs []string

	if !validIntervals[c.Autosave.IntervalMinutes] {
		errs = append(errs, fmt.Sprintf("autosave.interval_minutes must be one of [1, 5, 10, 15, 30, 60], got %d", c.Autosave.IntervalMinutes))
	}
	if !validSpeeds[c.Time.Speed] {
		errs = append(errs, fmt.Sprintf("time.speed must be one of [1, 2, 5, 10], got %d", c.Time.Speed))
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		errs = append(errs, fmt.Sprintf("logging.level must be one of [debug, info, warn, error], got %q", c.Logging.Level))
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[c.Logging.Format] {
		errs = append(errs, fmt.Sprintf("logging.format must be one of [json, console], got %q", c.Logging.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment
// variable overrides with the BONSAI_ prefix, and validates the result. An
// empty path skips the file and uses defaults plus environment only.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetEnvPrefix("BONSAI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("autosave.enabled", true)
	v.SetDefault("autosave.interval_minutes", 5)

	v.SetDefault("time.speed", 1)

	v.SetDefault("sound.effects", true)
	v.SetDefault("sound.music", true)

	v.SetDefault("save.path", "")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file", "")
}
