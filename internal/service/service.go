// Package service defines the storage-agnostic task types and operations.
package service

import "context"

// Service defines the task operations the presentation layers use.
// Every mutation loads the whole list, changes it and stores it back.
// Commands and the terminal UI never touch the key-value store directly.
type Service interface {
	// Load returns all tasks in stored order.
	// It never fails: unreadable data is logged and yields an empty list.
	Load(ctx context.Context) []Task

	// Add appends a new open task. Returns ErrEmptyTitle for blank titles.
	Add(ctx context.Context, title string) (Task, error)

	// Toggle flips a task's completion. found is false if id is absent.
	Toggle(ctx context.Context, id string) (task Task, found bool, err error)

	// Complete marks a task completed. Completing a completed task is a no-op.
	Complete(ctx context.Context, id string) (task Task, found bool, err error)

	// Edit replaces a task's title. Returns ErrEmptyTitle for blank titles.
	Edit(ctx context.Context, id, title string) (task Task, found bool, err error)

	// Delete removes one task, keeping the order of the rest.
	Delete(ctx context.Context, id string) (found bool, err error)

	// DeleteAll replaces the list with an empty one.
	DeleteAll(ctx context.Context) error

	// Reorder stores tasks in the given order.
	// Returns ErrNotPermutation unless tasks holds exactly the stored ids.
	Reorder(ctx context.Context, tasks []Task) error

	// Close releases the underlying storage.
	Close() error
}
