package backend_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"todo/internal/backend"
	"todo/internal/backend/filekv"
	"todo/internal/backend/memkv"
	"todo/internal/config"
)

func newConfig(t *testing.T, name string) *config.Config {
	t.Helper()
	cfg, err := config.New(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg.Backend = name
	return cfg
}

func TestOpen_File(t *testing.T) {
	cfg := newConfig(t, backend.File)

	s, err := backend.Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer s.Close()

	fs, ok := s.(*filekv.Store)
	if !ok {
		t.Fatalf("expected *filekv.Store, got %T", s)
	}
	if fs.Dir() != filepath.Join(cfg.Dir, "data") {
		t.Errorf("unexpected data dir %s", fs.Dir())
	}
}

func TestOpen_Memory(t *testing.T) {
	s, err := backend.Open(context.Background(), newConfig(t, backend.Memory))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := s.(*memkv.Store); !ok {
		t.Errorf("expected *memkv.Store, got %T", s)
	}
}

func TestOpen_SQLiteDefaultPath(t *testing.T) {
	cfg := newConfig(t, backend.SQLite)

	s, err := backend.Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer s.Close()

	if err := s.Set(context.Background(), "k", "v"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(cfg.Dir, "todo.db")); err != nil {
		t.Errorf("expected database file: %v", err)
	}
}

func TestOpen_MySQLRequiresDSN(t *testing.T) {
	_, err := backend.Open(context.Background(), newConfig(t, backend.MySQL))
	if !errors.Is(err, backend.ErrMissingDSN) {
		t.Errorf("expected ErrMissingDSN, got %v", err)
	}
	if !backend.IsConfigError(err) {
		t.Error("expected config error")
	}
}

func TestOpen_Unknown(t *testing.T) {
	_, err := backend.Open(context.Background(), newConfig(t, "redis"))
	if !errors.Is(err, backend.ErrUnknownBackend) {
		t.Errorf("expected ErrUnknownBackend, got %v", err)
	}
	if err.Error() != "unknown backend: redis" {
		t.Errorf("unexpected message %q", err.Error())
	}
}
