package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}

	if cfg.Scoring.Threshold != 0.3 {
		t.Errorf("Expected threshold 0.3, got %v", cfg.Scoring.Threshold)
	}
	if len(cfg.Scoring.Categories) != 7 || cfg.Scoring.Categories[0] != "corner" {
		t.Errorf("Expected default categories, got %v", cfg.Scoring.Categories)
	}
	if cfg.Output.Format != "json" || cfg.Output.Indent != 4 {
		t.Errorf("Expected json with indent 4, got %s/%d", cfg.Output.Format, cfg.Output.Indent)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "text" {
		t.Errorf("Expected info/text logging, got %s/%s", cfg.Logging.Level, cfg.Logging.Format)
	}
}

func TestLoadAndValidate(t *testing.T) {
	path := writeConfig(t, `
scoring:
  threshold: 0.5
  categories:
    - goal
    - penalty
  unknown_bucket: true

output:
  format: YAML
  indent: 2

logging:
  level: debug
  format: json
`)

	cfg, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}

	if cfg.Scoring.Threshold != 0.5 {
		t.Errorf("Expected threshold 0.5, got %v", cfg.Scoring.Threshold)
	}
	cats := cfg.CategoryList()
	if len(cats) != 2 || cats[1] != "penalty" {
		t.Errorf("Expected [goal penalty], got %v", cats)
	}
	if !cfg.Scoring.UnknownBucket {
		t.Error("Expected unknown bucket enabled")
	}
	if cfg.Output.Format != "yaml" {
		t.Errorf("Expected format to be lower-cased to yaml, got %s", cfg.Output.Format)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Expected json log format, got %s", cfg.Logging.Format)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil); err == nil {
		t.Error("Expected error for missing config file")
	}
}

func TestLoad_Precedence(t *testing.T) {
	path := writeConfig(t, `
scoring:
  threshold: 0.5
output:
  indent: 2
`)
	t.Setenv("TEMPEVAL_SCORING_THRESHOLD", "0.6")
	t.Setenv("TEMPEVAL_OUTPUT_INDENT", "3")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Float64("threshold", 0.3, "")
	flags.Int("indent", 4, "")
	if err := flags.Parse([]string{"--threshold", "0.7"}); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path, flags)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Explicit flag beats env and file
	if cfg.Scoring.Threshold != 0.7 {
		t.Errorf("Expected threshold 0.7 from flag, got %v", cfg.Scoring.Threshold)
	}
	// Unset flag defers to env
	if cfg.Output.Indent != 3 {
		t.Errorf("Expected indent 3 from env, got %d", cfg.Output.Indent)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg, err := Load("", nil)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero threshold", func(c *Config) { c.Scoring.Threshold = 0 }},
		{"threshold above one", func(c *Config) { c.Scoring.Threshold = 1.2 }},
		{"no categories", func(c *Config) { c.Scoring.Categories = nil }},
		{"bad format", func(c *Config) { c.Output.Format = "xml" }},
		{"bad indent", func(c *Config) { c.Output.Indent = 0 }},
		{"bad log level", func(c *Config) { c.Logging.Level = "trace" }},
		{"bad log format", func(c *Config) { c.Logging.Format = "logfmt" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}
