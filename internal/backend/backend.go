// Package backend opens the kv.Storage selected by configuration.
package backend

import (
	"context"
	"errors"
	"fmt"

	"todo/internal/backend/filekv"
	"todo/internal/backend/memkv"
	"todo/internal/backend/sqlkv"
	"todo/internal/config"
	"todo/internal/kv"
)

// Backend names accepted by --backend, TODO_BACKEND and config.yaml.
const (
	Memory  = "memory"
	File    = "file"
	SQLite  = "sqlite"
	SQLite3 = "sqlite3"
	MySQL   = "mysql"
)

// Names lists the supported backends.
var Names = []string{File, Memory, SQLite, SQLite3, MySQL}

var (
	// ErrUnknownBackend is returned for a backend name not in Names.
	ErrUnknownBackend = errors.New("unknown backend")

	// ErrMissingDSN is returned when the mysql backend has no DSN.
	ErrMissingDSN = errors.New("dsn required")
)

// IsConfigError reports whether err comes from the backend selection rather than the storage itself.
func IsConfigError(err error) bool {
	return errors.Is(err, ErrUnknownBackend) || errors.Is(err, ErrMissingDSN)
}

// Open returns the storage named by cfg.Backend.
func Open(ctx context.Context, cfg *config.Config) (kv.Storage, error) {
	switch cfg.Backend {
	case "", File:
		return filekv.New(cfg.DataPath()), nil
	case Memory:
		return memkv.New(), nil
	case SQLite, SQLite3:
		if cfg.DSN == "" {
			if err := cfg.EnsureDir(); err != nil {
				return nil, fmt.Errorf("failed to create config directory: %w", err)
			}
		}
		return sqlkv.Open(ctx, cfg.Backend, cfg.SQLitePath())
	case MySQL:
		if cfg.DSN == "" {
			return nil, fmt.Errorf("%s backend: %w", MySQL, ErrMissingDSN)
		}
		return sqlkv.Open(ctx, MySQL, cfg.DSN)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownBackend, cfg.Backend)
	}
}
