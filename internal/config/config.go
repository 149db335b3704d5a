// Package config loads scoring, output and logging settings from an optional
// YAML file, TEMPEVAL_* environment variables and command-line flags.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jamesainslie/go-tempeval/action"
	"github.com/jamesainslie/go-tempeval/interval"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "TEMPEVAL"

// Config represents the complete application configuration
type Config struct {
	Scoring ScoringConfig `mapstructure:"scoring"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ScoringConfig holds matching and aggregation settings
type ScoringConfig struct {
	Threshold     float64  `mapstructure:"threshold"`
	Categories    []string `mapstructure:"categories"`
	UnknownBucket bool     `mapstructure:"unknown_bucket"`
	KeepGoing     bool     `mapstructure:"keep_going"`
}

// OutputConfig holds report encoding settings
type OutputConfig struct {
	Format string `mapstructure:"format"`
	Indent int    `mapstructure:"indent"`
	Counts bool   `mapstructure:"counts"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"threshold":      "scoring.threshold",
	"categories":     "scoring.categories",
	"unknown-bucket": "scoring.unknown_bucket",
	"keep-going":     "scoring.keep_going",
	"format":         "output.format",
	"indent":         "output.indent",
	"counts":         "output.counts",
	"log-level":      "logging.level",
	"log-format":     "logging.format",
}

// Load reads configuration from path (optional), the environment and flags.
// Flags that were set explicitly take precedence over the environment, which
// takes precedence over the file. flags may be nil.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	// Enable environment variable override
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Output.Format = strings.ToLower(cfg.Output.Format)
	cfg.Logging.Level = strings.ToLower(cfg.Logging.Level)
	cfg.Logging.Format = strings.ToLower(cfg.Logging.Format)

	return &cfg, nil
}

// setDefaults configures default values for all configuration options
func setDefaults(v *viper.Viper) {
	// Scoring defaults
	v.SetDefault("scoring.threshold", interval.DefaultThreshold)
	v.SetDefault("scoring.categories", categoryNames(action.Defaults()))
	v.SetDefault("scoring.unknown_bucket", false)
	v.SetDefault("scoring.keep_going", false)

	// Output defaults
	v.SetDefault("output.format", "json")
	v.SetDefault("output.indent", 4)
	v.SetDefault("output.counts", false)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// Validate checks that all configuration values are valid
func (c *Config) Validate() error {
	if c.Scoring.Threshold <= 0.0 || c.Scoring.Threshold > 1.0 {
		return fmt.Errorf("scoring.threshold must be in (0.0, 1.0]")
	}
	if len(c.Scoring.Categories) == 0 {
		return fmt.Errorf("scoring.categories must contain at least one category")
	}

	validFormats := map[string]bool{"json": true, "yaml": true}
	if !validFormats[c.Output.Format] {
		return fmt.Errorf("output.format must be one of: json, yaml")
	}
	if c.Output.Indent < 1 || c.Output.Indent > 16 {
		return fmt.Errorf("output.indent must be between 1 and 16")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("logging.level must be one of: debug, info, warn, error")
	}
	validLogFormats := map[string]bool{"json": true, "text": true}
	if !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("logging.format must be one of: json, text")
	}

	return nil
}

// CategoryList returns the configured categories as action categories.
func (c *Config) CategoryList() []action.Category {
	out := make([]action.Category, len(c.Scoring.Categories))
	for i, name := range c.Scoring.Categories {
		out[i] = action.Category(name)
	}
	return out
}

func categoryNames(cats []action.Category) []string {
	out := make([]string, len(cats))
	for i, c := range cats {
		out[i] = string(c)
	}
	return out
}
