// ABOUTME: Tests for database initialization
// ABOUTME: Verifies schema creation and default path resolution

package db

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestInitDB(t *testing.T) {
	db, err := InitDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("InitDB failed: %v", err)
	}
	defer db.Close()

	for _, table := range []string{"campaigns", "calendars", "histories"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		if err != nil {
			t.Errorf("table %s not created: %v", table, err)
		}
	}
}

func TestInitDBCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "test.db")
	db, err := InitDB(path)
	if err != nil {
		t.Fatalf("InitDB failed: %v", err)
	}
	db.Close()
}

func TestInitDBInMemory(t *testing.T) {
	db, err := InitDB(":memory:")
	if err != nil {
		t.Fatalf("InitDB failed: %v", err)
	}
	db.Close()
}

func TestGetDefaultDBPath(t *testing.T) {
	path := GetDefaultDBPath()
	if !strings.Contains(path, "mastermind") {
		t.Errorf("default path %q should live under a mastermind directory", path)
	}
	if !strings.HasSuffix(path, "mastermind.db") {
		t.Errorf("default path %q should end in mastermind.db", path)
	}
}
