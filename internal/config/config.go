// Package config loads and saves timeworth's TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all timeworth configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Sync       SyncConfig       `toml:"sync"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	CurrencySymbol string `toml:"currency_symbol"`
	DataDir        string `toml:"data_dir,omitempty"`
}

// SyncConfig holds remote sheet sync settings. The backoff fields drive
// the retry policy: delay starts at InitialDelayMS, multiplies by
// Multiplier after each failure, and is capped at MaxDelayMS, for up to
// MaxAttempts tries.
type SyncConfig struct {
	Endpoint       string  `toml:"endpoint,omitempty"`
	APIToken       string  `toml:"api_token,omitempty"`
	InitialDelayMS int     `toml:"initial_delay_ms"`
	Multiplier     float64 `toml:"multiplier"`
	MaxDelayMS     int     `toml:"max_delay_ms"`
	MaxAttempts    int     `toml:"max_attempts"`
	FlushSeconds   int     `toml:"flush_seconds"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			CurrencySymbol: "$",
		},
		Sync: SyncConfig{
			InitialDelayMS: 500,
			Multiplier:     2,
			MaxDelayMS:     30_000,
			MaxAttempts:    5,
			FlushSeconds:   30,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "timeworth")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "timeworth")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DataDir returns the directory holding the local database, honoring the
// config override, then XDG_DATA_HOME, then ~/.local/share.
func DataDir(cfg Config) string {
	if cfg.General.DataDir != "" {
		return cfg.General.DataDir
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "timeworth")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "timeworth")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// GetSyncToken returns the sync API token from env var or config, in
// that order.
func GetSyncToken(cfg Config) string {
	if token := os.Getenv("TIMEWORTH_SYNC_TOKEN"); token != "" {
		return token
	}
	return cfg.Sync.APIToken
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
