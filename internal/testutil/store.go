// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"todo/internal/backend/memkv"
	"todo/internal/service"
	"todo/internal/taskstore"
)

// Now is the fixed time stores built by NewStore use for completedAt.
var Now = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

// NewStore returns a task store on an in-memory backend holding tasks with
// the given titles. Ids are t1, t2, ... in creation order, including tasks
// added later through the store.
// The backend is returned for error injection and inspection.
func NewStore(t *testing.T, titles ...string) (*taskstore.Store, *memkv.Store) {
	t.Helper()

	kv := memkv.New()
	n := 0
	s := taskstore.New(kv,
		taskstore.WithIDFunc(func() string {
			n++
			return fmt.Sprintf("t%d", n)
		}),
		taskstore.WithClock(func() time.Time { return Now }),
	)
	for _, title := range titles {
		if _, err := s.Add(context.Background(), title); err != nil {
			t.Fatalf("failed to add %q: %v", title, err)
		}
	}
	return s, kv
}

// Titles returns the stored titles in order, prefixed with "x " when completed.
func Titles(t *testing.T, svc service.Service) []string {
	t.Helper()

	var out []string
	for _, task := range svc.Load(context.Background()) {
		if task.Completed {
			out = append(out, "x "+task.Title)
		} else {
			out = append(out, task.Title)
		}
	}
	return out
}

// Stored returns the raw value under the task list key.
func Stored(t *testing.T, kv *memkv.Store) string {
	t.Helper()

	v, ok, err := kv.Get(context.Background(), taskstore.StorageKey)
	if err != nil {
		t.Fatalf("failed to read stored tasks: %v", err)
	}
	if !ok {
		return ""
	}
	return v
}
