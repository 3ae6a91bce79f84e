// Package config loads filekit configuration from environment variables.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Logging LogConfig
	Scan    ScanConfig
	Backup  BackupConfig
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// ScanConfig holds tree-scan configuration.
type ScanConfig struct {
	// Tier is the default metadata tier for scans: fast, regular or slow.
	Tier string `envconfig:"FILEKIT_TIER" default:"regular"`
}

// BackupConfig holds backup helper configuration.
type BackupConfig struct {
	// Dir is where backup archives are written.
	Dir string `envconfig:"FILEKIT_BACKUP_DIR" default:"."`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns defaults.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Logging: LogConfig{Level: "info"},
		Scan:    ScanConfig{Tier: "regular"},
		Backup:  BackupConfig{Dir: "."},
	}
}
