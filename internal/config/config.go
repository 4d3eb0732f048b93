// ABOUTME: Application configuration management
// ABOUTME: Handles database location and server preferences

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// DefaultListenAddr is the default HTTP server bind address
const DefaultListenAddr = ":8710"

// Config stores mastermind configuration
type Config struct {
	// DatabasePath overrides the default XDG data location
	DatabasePath string `json:"database_path,omitempty"`
	// ListenAddr is the HTTP server bind address (default: :8710)
	ListenAddr string `json:"listen_addr,omitempty"`
}

// GetConfigPath returns the config file path
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "mastermind", "config.json")
}

// Load reads config from disk
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// GetDatabasePath returns the database path, preferring environment variable.
func (c *Config) GetDatabasePath(fallback string) string {
	// Environment variable takes precedence
	if path := os.Getenv("MASTERMIND_DB"); path != "" {
		return path
	}
	// Then config file
	if c.DatabasePath != "" {
		return c.DatabasePath
	}
	// Then default
	return fallback
}

// GetListenAddr returns the HTTP bind address, preferring environment variable.
func (c *Config) GetListenAddr() string {
	if addr := os.Getenv("MASTERMIND_ADDR"); addr != "" {
		return addr
	}
	if c.ListenAddr != "" {
		return c.ListenAddr
	}
	return DefaultListenAddr
}
