package sqlkv_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"todo/internal/backend/sqlkv"
	"todo/internal/kv"
)

func openSQLite(t *testing.T, path string) *sqlkv.Store {
	t.Helper()
	return openDialect(t, sqlkv.SQLite, path)
}

// openDialect opens a store, skipping the cgo driver when it was built without cgo.
func openDialect(t *testing.T, d sqlkv.Dialect, dsn string) *sqlkv.Store {
	t.Helper()
	s, err := sqlkv.Open(context.Background(), d.Driver, dsn)
	if err != nil {
		if d.Driver == sqlkv.SQLite3.Driver {
			t.Skipf("sqlite3 driver unavailable: %v", err)
		}
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// dialects returns the dialects to test with their data sources. mysql runs
// only when TODO_TEST_MYSQL_DSN names a database.
func dialects(t *testing.T) map[string]func() (sqlkv.Dialect, string) {
	m := map[string]func() (sqlkv.Dialect, string){
		"sqlite":  func() (sqlkv.Dialect, string) { return sqlkv.SQLite, filepath.Join(t.TempDir(), "todo.db") },
		"sqlite3": func() (sqlkv.Dialect, string) { return sqlkv.SQLite3, filepath.Join(t.TempDir(), "todo.db") },
	}
	if dsn := os.Getenv("TODO_TEST_MYSQL_DSN"); dsn != "" {
		m["mysql"] = func() (sqlkv.Dialect, string) { return sqlkv.MySQL, dsn }
	}
	return m
}

func TestStore_GetSet(t *testing.T) {
	for name, setup := range dialects(t) {
		t.Run(name, func(t *testing.T) {
			d, dsn := setup()
			s := openDialect(t, d, dsn)
			ctx := context.Background()
			key := fmt.Sprintf("getset-%s-%d", name, time.Now().UnixNano())

			if _, ok, err := s.Get(ctx, key); err != nil || ok {
				t.Fatalf("expected missing key, got ok=%v err=%v", ok, err)
			}
			if err := s.Set(ctx, key, "[]"); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if err := s.Set(ctx, key, `[{"id":"1"}]`); err != nil {
				t.Fatalf("upsert: %v", err)
			}
			v, ok, err := s.Get(ctx, key)
			if err != nil || !ok || v != `[{"id":"1"}]` {
				t.Errorf("unexpected value %q ok=%v err=%v", v, ok, err)
			}
		})
	}
}

func TestStore_PersistsAcrossOpen(t *testing.T) {
	for name, setup := range dialects(t) {
		t.Run(name, func(t *testing.T) {
			d, dsn := setup()
			ctx := context.Background()
			key := fmt.Sprintf("persist-%s-%d", name, time.Now().UnixNano())

			s := openDialect(t, d, dsn)
			if err := s.Set(ctx, key, "v"); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			_ = s.Close()

			v, ok, err := openDialect(t, d, dsn).Get(ctx, key)
			if err != nil || !ok || v != "v" {
				t.Errorf("expected v, got %q ok=%v err=%v", v, ok, err)
			}
		})
	}
}

func TestStore_Closed(t *testing.T) {
	s := openSQLite(t, filepath.Join(t.TempDir(), "todo.db"))
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second close: %v", err)
	}
	if _, _, err := s.Get(context.Background(), "k"); !errors.Is(err, kv.ErrClosed) {
		t.Errorf("expected ErrClosed, got %v", err)
	}
}

func TestDialectFor(t *testing.T) {
	for _, driver := range []string{"sqlite", "sqlite3", "mysql"} {
		d, err := sqlkv.DialectFor(driver)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", driver, err)
		}
		if d.Driver != driver {
			t.Errorf("%s: got driver %s", driver, d.Driver)
		}
	}
	if _, err := sqlkv.DialectFor("postgres"); err == nil {
		t.Error("expected error for unsupported driver")
	}
}
