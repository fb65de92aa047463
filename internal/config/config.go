// Package config loads runtime settings from the environment, optionally
// seeded by a .env file in the data directory.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	EnvHome    = "MOUNTAINFLOW_HOME"
	EnvDB      = "MOUNTAINFLOW_DB"
	EnvContent = "MOUNTAINFLOW_CONTENT"
	EnvLogFile = "MOUNTAINFLOW_LOG_FILE"
	EnvLogLvl  = "MOUNTAINFLOW_LOG_LEVEL"
)

type Config struct {
	Home        string `env:"MOUNTAINFLOW_HOME"`
	DBPath      string `env:"MOUNTAINFLOW_DB"`
	ContentPath string `env:"MOUNTAINFLOW_CONTENT"`
	LogFile     string `env:"MOUNTAINFLOW_LOG_FILE"`
	LogLevel    string `env:"MOUNTAINFLOW_LOG_LEVEL" envDefault:"info"`
}

// Load resolves the configuration. Values already present in the process
// environment win over the .env file.
func Load() (Config, error) {
	home := os.Getenv(EnvHome)
	if home == "" {
		userHome, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("finding home directory: %w", err)
		}
		home = filepath.Join(userHome, ".mountainflow")
	}

	if err := godotenv.Load(filepath.Join(home, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("reading %s: %w", filepath.Join(home, ".env"), err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Home == "" {
		cfg.Home = home
	}
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(cfg.Home, "mountainflow.db")
	}
	if _, err := cfg.Level(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid %s %q: %w", EnvLogLvl, c.LogLevel, err)
	}
	return lvl, nil
}
