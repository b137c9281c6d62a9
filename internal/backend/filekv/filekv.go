// Package filekv implements kv.Storage with one file per key.
//
// Each value lives in <dir>/<escaped key>.json. Writes go to a temporary file
// that is renamed over the target, so readers never see a partial value.
// A sibling .lock file serializes writers across processes.
package filekv

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"

	"todo/internal/kv"
)

const (
	fileExt = ".json"
	lockExt = ".lock"
	tmpExt  = ".tmp"

	// lockRetryDelay is how often a blocked lock attempt is retried.
	lockRetryDelay = 20 * time.Millisecond
)

// Store is a file-backed kv.Storage rooted at a directory.
type Store struct {
	dir string

	mu     sync.RWMutex
	closed bool
}

// New creates a Store rooted at dir.
// The directory is created on the first write.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the root directory.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the file that holds key.
func (s *Store) Path(key string) string {
	return filepath.Join(s.dir, url.PathEscape(key)+fileExt)
}

// Get implements kv.Storage.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	if err := s.check(); err != nil {
		return "", false, err
	}

	// Nothing was ever written; don't create the directory just to read.
	if _, err := os.Stat(s.dir); errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}

	path := s.Path(key)
	lock := flock.New(path + lockExt)
	locked, err := lock.TryRLockContext(ctx, lockRetryDelay)
	if err != nil {
		return "", false, fmt.Errorf("lock %s: %w", key, err)
	}
	if !locked {
		return "", false, fmt.Errorf("lock %s: not acquired", key)
	}
	defer func() { _ = lock.Unlock() }()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), true, nil
}

// Set implements kv.Storage.
func (s *Store) Set(ctx context.Context, key, value string) error {
	if err := s.check(); err != nil {
		return err
	}

	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("create data directory %s: %w", s.dir, err)
	}

	path := s.Path(key)
	lock := flock.New(path + lockExt)
	locked, err := lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return fmt.Errorf("lock %s: %w", key, err)
	}
	if !locked {
		return fmt.Errorf("lock %s: not acquired", key)
	}
	defer func() { _ = lock.Unlock() }()

	tmp := path + tmpExt
	if err := os.WriteFile(tmp, []byte(value), 0o600); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}

// Close implements kv.Storage.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func (s *Store) check() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return kv.ErrClosed
	}
	return nil
}
