package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/stackquote/stackquote/pkg/estimate"
	"github.com/stackquote/stackquote/pkg/logging"
	"github.com/stackquote/stackquote/pkg/preset"
)

// ErrUnknownFormat is returned for a config file whose extension is neither YAML nor TOML.
var ErrUnknownFormat = errors.New("unknown config format")

// Preset storage backends.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

// Config holds all stackquote configuration.
type Config struct {
	Listen   string         `yaml:"listen" toml:"listen"`
	Locale   string         `yaml:"locale" toml:"locale"`
	Presets  PresetConfig   `yaml:"presets" toml:"presets"`
	Log      logging.Config `yaml:"log" toml:"log"`
	Defaults ProjectDefault `yaml:"defaults" toml:"defaults"`
	Batch    BatchConfig    `yaml:"batch" toml:"batch"`
}

// PresetConfig selects where presets are stored.
// Backend is "sqlite" (default), "file" or "memory".
type PresetConfig struct {
	Backend  string `yaml:"backend" toml:"backend"`
	DBPath   string `yaml:"db_path" toml:"db_path"`
	FilePath string `yaml:"file_path" toml:"file_path"`
	Key      string `yaml:"key" toml:"key"`
}

// ProjectDefault seeds projects built from CLI flags.
type ProjectDefault struct {
	UserCount                int     `yaml:"user_count" toml:"user_count"`
	APICallsPerUserPerMonth  float64 `yaml:"api_calls_per_user_per_month" toml:"api_calls_per_user_per_month"`
	SubscriptionPricePerUser float64 `yaml:"subscription_price_per_user" toml:"subscription_price_per_user"`
}

// BatchConfig bounds concurrent batch estimation.
type BatchConfig struct {
	Workers int `yaml:"workers" toml:"workers"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Listen: ":8080",
		Locale: "es",
		Presets: PresetConfig{
			Backend:  BackendSQLite,
			DBPath:   "stackquote.db",
			FilePath: "presets.json",
			Key:      preset.DefaultKey,
		},
		Log: logging.DefaultConfig(),
		Defaults: ProjectDefault{
			UserCount:                1000,
			APICallsPerUserPerMonth:  10,
			SubscriptionPricePerUser: 0,
		},
		Batch: BatchConfig{
			Workers: estimate.DefaultWorkers,
		},
	}
}

// Load reads a config file and expands environment variables. Files ending in
// .toml are decoded as TOML; .yaml, .yml and extensionless files as YAML.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(expanded, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	case ".yaml", ".yml", "":
		if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, ext)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports configuration values no component can run with.
func (c *Config) Validate() error {
	switch c.Presets.Backend {
	case BackendSQLite, BackendFile, BackendMemory:
	default:
		return fmt.Errorf("invalid presets backend %q", c.Presets.Backend)
	}
	if c.Batch.Workers < 0 {
		return fmt.Errorf("invalid batch workers %d", c.Batch.Workers)
	}
	if c.Defaults.UserCount < 0 || c.Defaults.APICallsPerUserPerMonth < 0 {
		return fmt.Errorf("defaults must not be negative")
	}
	return nil
}

// OpenPresetStore builds the preset Store selected by the config. The returned
// close function releases the store and is never nil.
func (c *Config) OpenPresetStore() (preset.Store, func() error, error) {
	noop := func() error { return nil }
	switch c.Presets.Backend {
	case BackendFile:
		return preset.NewFileStore(c.Presets.FilePath), noop, nil
	case BackendMemory:
		return preset.NewMemoryStore(), noop, nil
	default:
		s, err := preset.NewSQLiteStore(c.Presets.DBPath, c.Presets.Key)
		if err != nil {
			return nil, noop, err
		}
		return s, s.Close, nil
	}
}
