// Package kv defines the key-value storage the task store persists through.
package kv

import (
	"context"
	"errors"
)

// ErrClosed is returned by operations on a closed Storage.
var ErrClosed = errors.New("storage closed")

// Storage is a string key-value store.
// Values are replaced whole; there are no partial updates.
type Storage interface {
	// Get returns the value stored under key.
	// ok is false if the key was never set.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Close releases the storage. Further calls return ErrClosed.
	Close() error
}
