// Package memkv implements kv.Storage in memory.
// Used by tests and by the "memory" backend.
package memkv

import (
	"context"
	"sync"

	"todo/internal/kv"
)

// Store is an in-memory kv.Storage.
type Store struct {
	mu     sync.RWMutex
	data   map[string]string
	closed bool

	// Error injection for testing
	GetErr error
	SetErr error
}

// New creates an empty Store.
func New() *Store {
	return &Store{data: make(map[string]string)}
}

// Get implements kv.Storage.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	if s.GetErr != nil {
		return "", false, s.GetErr
	}
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return "", false, kv.ErrClosed
	}
	v, ok := s.data[key]
	return v, ok, nil
}

// Set implements kv.Storage.
func (s *Store) Set(ctx context.Context, key, value string) error {
	if s.SetErr != nil {
		return s.SetErr
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return kv.ErrClosed
	}
	s.data[key] = value
	return nil
}

// Close implements kv.Storage.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
