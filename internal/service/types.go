package service

import "errors"

// Task represents a single task item.
// The JSON form is the persisted record; field names are part of the storage format.
type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Completed   bool   `json:"completed"`
	CompletedAt string `json:"completedAt,omitempty"`
}

// ErrEmptyTitle is returned when a title is empty after trimming.
var ErrEmptyTitle = errors.New("title required")

// ErrNotPermutation is returned when a reorder does not contain exactly the stored tasks.
var ErrNotPermutation = errors.New("new order must contain every task exactly once")
