package storage

import (
	"context"
	"path/filepath"
	"testing"

	"pet-manager/internal/adapters/storage/memory"
	"pet-manager/internal/adapters/storage/sqlite"
	"pet-manager/internal/platform/config"
)

func TestOpen_Memory(t *testing.T) {
	s, c, err := Open(context.Background(), config.StoreConfig{Driver: config.DriverMemory})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer c.Close()

	if _, ok := s.(*memory.KVStore); !ok {
		t.Fatalf("expected memory store, got %T", s)
	}
}

func TestOpen_SQLite(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "pets.db")
	s, c, err := Open(context.Background(), config.StoreConfig{Driver: config.DriverSQLite, DSN: dsn})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer c.Close()

	if _, ok := s.(*sqlite.KVStore); !ok {
		t.Fatalf("expected sqlite store, got %T", s)
	}
	if err := s.Set(context.Background(), "theme", "dark"); err != nil {
		t.Fatalf("set: %v", err)
	}
}

func TestOpen_UnknownDriver(t *testing.T) {
	if _, _, err := Open(context.Background(), config.StoreConfig{Driver: "redis"}); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}
