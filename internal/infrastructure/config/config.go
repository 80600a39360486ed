// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigDir is the directory name for relations configuration.
	DefaultConfigDir = ".relations"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
	// DefaultDatabaseFile is the default SQLite database file name.
	DefaultDatabaseFile = "relations.db"
)

// Config holds static infrastructure configuration (read-only after init).
type Config struct {
	HTTP   HTTPConfig   `yaml:"http,omitempty"`
	SQLite SQLiteConfig `yaml:"sqlite,omitempty"`
	Auth   AuthConfig   `yaml:"auth,omitempty"`
}

// HTTPConfig holds configuration for the admin HTTP server.
type HTTPConfig struct {
	Addr string `yaml:"addr,omitempty"`
}

// SQLiteConfig holds configuration for the SQLite relationship store.
type SQLiteConfig struct {
	// Path is the file path to the SQLite database.
	Path string `yaml:"path,omitempty"`
}

// AuthConfig holds configuration for the anti-forgery token authorizer.
type AuthConfig struct {
	// Secret keys the HMAC behind issued tokens.
	Secret string `yaml:"secret,omitempty"`
	// TokenTTLSeconds bounds how long an issued token verifies.
	TokenTTLSeconds int `yaml:"token_ttl_seconds,omitempty"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Addr: ":8790",
		},
		Auth: AuthConfig{
			TokenTTLSeconds: 43200, // 12 hours, two 6-hour windows
		},
	}
}

// Load loads configuration from the .relations directory in the given path.
// A missing config file is not an error; defaults apply.
func Load(basePath string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(ConfigFilePath(basePath))
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if cfg.SQLite.Path == "" {
		cfg.SQLite.Path = SQLitePath(basePath)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if addr := os.Getenv("RELATIONS_HTTP_ADDR"); addr != "" {
		c.HTTP.Addr = addr
	}
	if secret := os.Getenv("RELATIONS_AUTH_SECRET"); secret != "" {
		c.Auth.Secret = secret
	}
}

// ConfigDir returns the path to the .relations config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}

// SQLitePath returns the default SQLite database path.
func SQLitePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultDatabaseFile)
}

// Exists checks if a relations config exists in the given path.
func Exists(basePath string) bool {
	_, err := os.Stat(ConfigFilePath(basePath))
	return err == nil
}
