// Package config provides configuration management for the wags-tails CLI.
// It supports a YAML configuration file with sensible defaults; the data
// directory itself can additionally come from the environment (see
// pkg/storage).
package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/GenomicMedLab/wags-tails/pkg/errors"
)

// Config represents the application configuration.
type Config struct {
	Settings Settings `yaml:"settings"`
}

// Settings represents general application settings.
type Settings struct {
	// DataDir overrides the resolved base data directory when set.
	DataDir string `yaml:"data_dir,omitempty"`

	// HTTPTimeout bounds every remote call.
	HTTPTimeout time.Duration `yaml:"http_timeout"`

	// UserAgent is sent on all outgoing requests.
	UserAgent string `yaml:"user_agent,omitempty"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Default configuration values.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// DefaultUserAgent identifies this tool to remote data providers.
	DefaultUserAgent = "wags-tails/1.0"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Settings: Settings{
			HTTPTimeout: DefaultHTTPTimeout,
			UserAgent:   DefaultUserAgent,
			LogLevel:    "info",
		},
	}
}

// LoadConfig loads configuration from a file, returning defaults when the
// file does not exist.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, errors.Wrap(errors.ErrInvalidPath, "config file path cannot be empty")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidPath, err.Error())
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config file %s", path)
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Settings.HTTPTimeout <= 0 {
		c.Settings.HTTPTimeout = DefaultHTTPTimeout
	}
	if c.Settings.UserAgent == "" {
		c.Settings.UserAgent = DefaultUserAgent
	}
	if c.Settings.LogLevel == "" {
		c.Settings.LogLevel = "info"
	}
}

// DefaultConfigPath returns the conventional location of the config file.
func DefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to determine user config directory")
	}
	return filepath.Join(configDir, "wags_tails", "config.yaml"), nil
}
