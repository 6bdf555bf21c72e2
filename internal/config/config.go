// Package config provides configuration loading and validation for cfadmin.
//
// Configuration lives in a single JSON file; every field has a sensible
// default so the daemon runs with no config at all. Secrets (the Cloudflare
// token) are never part of the file, they live in the store.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	// EnvConfigPath names the environment variable consulted when no
	// -config flag is given.
	EnvConfigPath = "CFADMIN_CONFIG"

	defaultConfigFile = "cfadmin.json"
	defaultHost       = "127.0.0.1"
	defaultPort       = 8787
	defaultStorePath  = "cfadmin.db"
	defaultTimeout    = "30s"
)

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.Validate() //nolint:errcheck // defaults always validate
	return cfg
}

// Load reads the configuration file at path. An empty path yields the
// defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ResolveConfigPath picks the config file: explicit flag first, then the
// CFADMIN_CONFIG environment variable, then ./cfadmin.json if it exists.
// Returns "" when nothing is configured, which means defaults.
func ResolveConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv(EnvConfigPath); env != "" {
		return env
	}
	if _, err := os.Stat(defaultConfigFile); err == nil {
		return defaultConfigFile
	}
	return ""
}

// Validate validates and normalizes the configuration.
func (cfg *Config) Validate() error {
	// The API binds to loopback unless explicitly told otherwise; the
	// daemon manages account credentials and is not meant for exposure.
	if cfg.API.Host == "" {
		cfg.API.Host = defaultHost
	}
	if cfg.API.Port == 0 {
		cfg.API.Port = defaultPort
	}
	if cfg.API.Port < 0 || cfg.API.Port > 65535 {
		return errors.New("api.port must be 1..65535")
	}

	if cfg.Cloudflare.Timeout == "" {
		cfg.Cloudflare.Timeout = defaultTimeout
	}
	if _, err := time.ParseDuration(cfg.Cloudflare.Timeout); err != nil {
		return fmt.Errorf("cloudflare.timeout is not a duration: %w", err)
	}

	if cfg.Storage.Path == "" {
		cfg.Storage.Path = defaultStorePath
	}

	// Normalize logging
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "INFO"
	}
	cfg.Logging.Level = strings.ToUpper(cfg.Logging.Level)
	if cfg.Logging.StructuredFormat == "" {
		cfg.Logging.StructuredFormat = "json"
	}
	if cfg.Logging.ExtraFields == nil {
		cfg.Logging.ExtraFields = map[string]string{}
	}

	return nil
}

// CloudflareTimeout returns the parsed client timeout.
func (cfg *Config) CloudflareTimeout() time.Duration {
	d, err := time.ParseDuration(cfg.Cloudflare.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}
