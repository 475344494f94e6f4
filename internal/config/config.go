// Package config loads runtime settings from defaults, an optional YAML
// file, a .env file and the environment, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Storage backends.
const (
	StorageCSV      = "csv"
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Config holds the application settings.
type Config struct {
	ProfilesDir  string `yaml:"profiles_dir"`
	Storage      string `yaml:"storage"`
	DatabaseURL  string `yaml:"database_url"`
	Addr         string `yaml:"addr"`
	LogLevel     string `yaml:"log_level"`
	LogFormat    string `yaml:"log_format"`
	Timezone     string `yaml:"timezone"`
	PasscodeHash string `yaml:"passcode_hash"`
	ChartWidth   int    `yaml:"chart_width"`
	ChartHeight  int    `yaml:"chart_height"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		ProfilesDir: "profiles",
		Storage:     StorageCSV,
		Addr:        "127.0.0.1:8080",
		LogLevel:    "info",
		LogFormat:   "console",
		ChartWidth:  1000,
		ChartHeight: 500,
	}
}

// Load reads a .env file if present, then builds the config from the YAML
// file named by WEIGHTLOG_CONFIG (default weightlog.yaml) and the
// environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	path := os.Getenv("WEIGHTLOG_CONFIG")
	if path == "" {
		path = "weightlog.yaml"
	}
	return LoadFrom(path, os.Getenv)
}

// LoadFrom builds the config from the YAML file at path (a missing file is
// not an error) and the variables returned by getenv.
func LoadFrom(path string, getenv func(string) string) (*Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
	case !errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	env := func(key string, dst *string) {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}
	env("WEIGHTLOG_PROFILES_DIR", &cfg.ProfilesDir)
	env("WEIGHTLOG_STORAGE", &cfg.Storage)
	env("DATABASE_URL", &cfg.DatabaseURL)
	env("ADDR", &cfg.Addr)
	env("LOG_LEVEL", &cfg.LogLevel)
	env("LOG_FORMAT", &cfg.LogFormat)
	env("WEIGHTLOG_TIMEZONE", &cfg.Timezone)
	env("WEIGHTLOG_PASSCODE_HASH", &cfg.PasscodeHash)
	for key, dst := range map[string]*int{
		"WEIGHTLOG_CHART_WIDTH":  &cfg.ChartWidth,
		"WEIGHTLOG_CHART_HEIGHT": &cfg.ChartHeight,
	} {
		if v := getenv(key); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			*dst = n
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return &cfg, nil
}

// Validate checks the settings for consistency.
func (c *Config) Validate() error {
	switch c.Storage {
	case StorageCSV:
		if c.ProfilesDir == "" {
			return errors.New("profiles_dir is required for csv storage")
		}
	case StorageMemory:
	case StoragePostgres:
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required for postgres storage")
		}
	default:
		return fmt.Errorf("unknown storage %q", c.Storage)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if c.ChartWidth <= 0 || c.ChartHeight <= 0 {
		return errors.New("chart size must be positive")
	}
	return nil
}

// Location resolves Timezone, defaulting to the local zone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
