// Package sqlkv implements kv.Storage on a two-column SQL table.
package sqlkv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"

	"todo/internal/kv"
)

// Dialect holds the driver name and the statements that differ between databases.
type Dialect struct {
	Driver      string
	createTable string
	upsert      string
}

var (
	// SQLite uses the pure-Go modernc.org/sqlite driver.
	SQLite = Dialect{
		Driver:      "sqlite",
		createTable: `CREATE TABLE IF NOT EXISTS kv (k TEXT PRIMARY KEY, v TEXT NOT NULL)`,
		upsert:      `INSERT INTO kv (k, v) VALUES (?, ?) ON CONFLICT(k) DO UPDATE SET v = excluded.v`,
	}

	// SQLite3 uses the cgo github.com/mattn/go-sqlite3 driver.
	SQLite3 = Dialect{
		Driver:      "sqlite3",
		createTable: SQLite.createTable,
		upsert:      SQLite.upsert,
	}

	// MySQL uses github.com/go-sql-driver/mysql.
	MySQL = Dialect{
		Driver:      "mysql",
		createTable: `CREATE TABLE IF NOT EXISTS kv (k VARCHAR(191) PRIMARY KEY, v LONGTEXT NOT NULL)`,
		upsert:      `INSERT INTO kv (k, v) VALUES (?, ?) ON DUPLICATE KEY UPDATE v = VALUES(v)`,
	}
)

// DialectFor returns the dialect registered for a driver name.
func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case SQLite.Driver:
		return SQLite, nil
	case SQLite3.Driver:
		return SQLite3, nil
	case MySQL.Driver:
		return MySQL, nil
	default:
		return Dialect{}, fmt.Errorf("unsupported sql driver: %s", driver)
	}
}

// Store is a SQL-backed kv.Storage.
type Store struct {
	db      *sql.DB
	dialect Dialect

	mu     sync.RWMutex
	closed bool
}

// Open opens the database, verifies the connection and creates the kv table.
func Open(ctx context.Context, driver, dsn string) (*Store, error) {
	dialect, err := DialectFor(driver)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(dialect.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", driver, err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to %s database: %w", driver, err)
	}

	s, err := New(ctx, db, dialect)
	if err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// New wraps an open database. The kv table is created if missing.
func New(ctx context.Context, db *sql.DB, dialect Dialect) (*Store, error) {
	s := &Store{db: db, dialect: dialect}
	if err := s.migrate(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, s.dialect.createTable); err != nil {
		return fmt.Errorf("create kv table: %w", err)
	}
	return nil
}

// Get implements kv.Storage.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	if err := s.check(); err != nil {
		return "", false, err
	}

	var value string
	err := s.db.QueryRowContext(ctx, `SELECT v FROM kv WHERE k = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("select %s: %w", key, err)
	}
	return value, true, nil
}

// Set implements kv.Storage.
func (s *Store) Set(ctx context.Context, key, value string) error {
	if err := s.check(); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, s.dialect.upsert, key, value); err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}

// Close implements kv.Storage and closes the database.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}

func (s *Store) check() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return kv.ErrClosed
	}
	return nil
}
