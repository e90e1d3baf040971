// Package config loads editor configuration from TOML files.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the store's tunable settings.
type Config struct {
	// DefaultBlockType is the type synthesized when the document would
	// otherwise be empty.
	DefaultBlockType string `toml:"default_block_type"`

	// HistoryLimit bounds the number of retained past states.
	HistoryLimit int `toml:"history_limit"`

	// TemplatePath points to a template TOML file, empty for none.
	TemplatePath string `toml:"template_path"`

	// TemplateLock overrides the lock declared in the template file
	// when non-empty ("none", "insert" or "all").
	TemplateLock string `toml:"template_lock"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DefaultBlockType: "paragraph",
		HistoryLimit:     100,
	}
}

// Load reads configuration from a TOML file, overlaying the defaults.
// A missing file yields the defaults without error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: parse %s: %w", path, err)
	}
	if cfg.DefaultBlockType == "" {
		cfg.DefaultBlockType = "paragraph"
	}
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = 100
	}
	return cfg, nil
}
