// Package config loads and persists the user-tunable configuration
// document. Config is read fresh on every invocation and only written by
// the control CLI; a missing or corrupt file always degrades to defaults.
package config

import (
	_ "embed"
	"encoding/json"
	"os"
)

//go:embed config.default.json
var defaultJSON []byte

// Config represents config.json (user preferences).
type Config struct {
	Enabled              bool            `json:"enabled"`
	Volume               float64         `json:"volume"`
	ActivePack           string          `json:"active_pack"`
	DesktopNotifications bool            `json:"desktop_notifications"`
	AnnoyedThreshold     int             `json:"annoyed_threshold"`
	AnnoyedWindowSeconds int             `json:"annoyed_window_seconds"`
	Categories           map[string]bool `json:"categories"`
	Debug                bool            `json:"debug,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Enabled:              true,
		Volume:               0.5,
		ActivePack:           "peon",
		DesktopNotifications: true,
		AnnoyedThreshold:     3,
		AnnoyedWindowSeconds: 10,
		Categories:           map[string]bool{},
	}
}

// CategoryEnabled reports whether a sound category is enabled. Categories
// absent from the map default to enabled.
func (c Config) CategoryEnabled(category string) bool {
	enabled, ok := c.Categories[category]
	if !ok {
		return true
	}
	return enabled
}

// Load reads config.json from dir. It never fails: a missing or malformed
// file yields defaults, and missing fields keep their default values
// because the document is decoded on top of them.
func Load(dir string) Config {
	cfg := Default()
	data, err := os.ReadFile(Path(dir))
	if err != nil {
		return cfg
	}
	_ = json.Unmarshal(data, &cfg)
	return clamp(cfg)
}

// clamp pulls out-of-range values back to sane ones rather than failing.
func clamp(cfg Config) Config {
	if cfg.ActivePack == "" {
		cfg.ActivePack = "peon"
	}
	if cfg.Volume <= 0 {
		// Zero is indistinguishable from an absent key; treat as unset.
		cfg.Volume = 0.5
	}
	if cfg.Volume > 1 {
		cfg.Volume = 1
	}
	if cfg.AnnoyedThreshold < 1 {
		cfg.AnnoyedThreshold = 3
	}
	if cfg.AnnoyedWindowSeconds < 1 {
		cfg.AnnoyedWindowSeconds = 10
	}
	if cfg.Categories == nil {
		cfg.Categories = map[string]bool{}
	}
	return cfg
}

// Save writes the configuration back to dir.
func Save(dir string, cfg Config) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(Path(dir), data, 0o644)
}

// Seed creates the data directory and writes the packaged default config
// on first run. An existing config.json is left untouched.
func Seed(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if _, err := os.Stat(Path(dir)); err == nil {
		return nil
	}
	return os.WriteFile(Path(dir), defaultJSON, 0o644)
}
