// ABOUTME: Tests for configuration management
// ABOUTME: Verifies config load, save, and precedence rules

package config

import (
	"path/filepath"
	"testing"
)

func TestGetConfigPath(t *testing.T) {
	path := GetConfigPath()
	if path == "" {
		t.Error("GetConfigPath returned empty string")
	}
	if !filepath.IsAbs(path) {
		t.Errorf("GetConfigPath returned non-absolute path: %s", path)
	}
}

func TestLoadNonExistent(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed on non-existent config: %v", err)
	}
	if cfg == nil {
		t.Fatal("Load returned nil config")
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	cfg := &Config{
		DatabasePath: "/tmp/custom.db",
		ListenAddr:   ":9999",
	}

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.DatabasePath != cfg.DatabasePath {
		t.Errorf("DatabasePath mismatch: got %s, want %s", loaded.DatabasePath, cfg.DatabasePath)
	}
	if loaded.ListenAddr != cfg.ListenAddr {
		t.Errorf("ListenAddr mismatch: got %s, want %s", loaded.ListenAddr, cfg.ListenAddr)
	}
}

func TestGetDatabasePathPrecedence(t *testing.T) {
	t.Setenv("MASTERMIND_DB", "")

	cfg := &Config{}
	if got := cfg.GetDatabasePath("/default/path.db"); got != "/default/path.db" {
		t.Errorf("expected fallback, got %s", got)
	}

	cfg.DatabasePath = "/config/path.db"
	if got := cfg.GetDatabasePath("/default/path.db"); got != "/config/path.db" {
		t.Errorf("expected config value, got %s", got)
	}

	t.Setenv("MASTERMIND_DB", "/env/path.db")
	if got := cfg.GetDatabasePath("/default/path.db"); got != "/env/path.db" {
		t.Errorf("expected env value, got %s", got)
	}
}

func TestGetListenAddrDefault(t *testing.T) {
	t.Setenv("MASTERMIND_ADDR", "")

	cfg := &Config{}
	if got := cfg.GetListenAddr(); got != DefaultListenAddr {
		t.Errorf("expected %s, got %s", DefaultListenAddr, got)
	}
}
