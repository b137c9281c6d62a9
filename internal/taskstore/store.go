// Package taskstore implements service.Service on a key-value store.
//
// The whole task list is one JSON array under a single key. Every mutation
// reads the array, changes it and writes it back whole. Nothing guards
// against two writers interleaving; the last write wins.
package taskstore

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"todo/internal/kv"
	"todo/internal/logging"
	"todo/internal/service"
)

const (
	// StorageKey is the key the task list is stored under.
	StorageKey = "@todos"

	// TimeLayout formats completedAt like JavaScript's Date.toISOString.
	TimeLayout = "2006-01-02T15:04:05.000Z07:00"
)

// ExampleTitles seed a new task list when seeding is enabled.
var ExampleTitles = []string{
	"Welcome to todo",
	`Add a task with "todo add"`,
	`Finish a task with "todo done"`,
}

// Logger receives the failures Load swallows.
type Logger interface {
	Warnf(format string, v ...any)
	Debugf(format string, v ...any)
}

// Store is the task list persisted in a kv.Storage.
type Store struct {
	storage kv.Storage
	key     string
	newID   func() string
	now     func() time.Time
	logger  Logger
	seed    []string
}

// Option configures a Store.
type Option func(*Store)

// WithKey overrides StorageKey.
func WithKey(key string) Option {
	return func(s *Store) { s.key = key }
}

// WithIDFunc overrides the id generator (random UUIDs by default).
func WithIDFunc(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

// WithClock overrides time.Now for completedAt timestamps.
func WithClock(fn func() time.Time) Option {
	return func(s *Store) { s.now = fn }
}

// WithLogger sets the logger for swallowed load failures.
func WithLogger(l Logger) Option {
	return func(s *Store) { s.logger = l }
}

// WithSeed stores tasks with these titles the first time the list is loaded
// and nothing is stored yet.
func WithSeed(titles ...string) Option {
	return func(s *Store) { s.seed = titles }
}

// New creates a Store on storage.
func New(storage kv.Storage, opts ...Option) *Store {
	s := &Store{
		storage: storage,
		key:     StorageKey,
		newID:   uuid.NewString,
		now:     time.Now,
		logger:  logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ service.Service = (*Store)(nil)

// Load returns all tasks in stored order. See service.Service.
func (s *Store) Load(ctx context.Context) []service.Task {
	tasks, stored, err := s.read(ctx)
	if err != nil {
		s.logger.Warnf("failed to load tasks: %v", err)
		return []service.Task{}
	}
	if stored && s.repairIDs(tasks) {
		if err := s.Save(ctx, tasks); err != nil {
			s.logger.Warnf("failed to save repaired task ids: %v", err)
		}
	}
	if !stored && len(s.seed) > 0 {
		tasks = s.seedTasks()
		if err := s.Save(ctx, tasks); err != nil {
			s.logger.Warnf("failed to save example tasks: %v", err)
		}
	}
	s.logger.Debugf("loaded %d tasks", len(tasks))
	return tasks
}

// Save writes tasks as the whole list.
func (s *Store) Save(ctx context.Context, tasks []service.Task) error {
	if tasks == nil {
		tasks = []service.Task{}
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}
	if err := s.storage.Set(ctx, s.key, string(data)); err != nil {
		return fmt.Errorf("write %s: %w", s.key, err)
	}
	s.logger.Debugf("saved %d tasks", len(tasks))
	return nil
}

// Add appends a new open task.
func (s *Store) Add(ctx context.Context, title string) (service.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return service.Task{}, service.ErrEmptyTitle
	}

	tasks, err := s.current(ctx)
	if err != nil {
		return service.Task{}, err
	}

	task := service.Task{ID: s.newID(), Title: title}
	if err := s.Save(ctx, append(tasks, task)); err != nil {
		return service.Task{}, err
	}
	return task, nil
}

// Toggle flips completion, stamping completedAt when a task becomes completed.
func (s *Store) Toggle(ctx context.Context, id string) (service.Task, bool, error) {
	return s.update(ctx, id, func(t *service.Task) bool {
		t.Completed = !t.Completed
		if t.Completed {
			t.CompletedAt = s.timestamp()
		} else {
			t.CompletedAt = ""
		}
		return true
	})
}

// Complete marks a task completed.
func (s *Store) Complete(ctx context.Context, id string) (service.Task, bool, error) {
	return s.update(ctx, id, func(t *service.Task) bool {
		if t.Completed {
			return false
		}
		t.Completed = true
		t.CompletedAt = s.timestamp()
		return true
	})
}

// Edit replaces a task's title.
func (s *Store) Edit(ctx context.Context, id, title string) (service.Task, bool, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return service.Task{}, false, service.ErrEmptyTitle
	}
	return s.update(ctx, id, func(t *service.Task) bool {
		if t.Title == title {
			return false
		}
		t.Title = title
		return true
	})
}

// Delete removes one task.
func (s *Store) Delete(ctx context.Context, id string) (bool, error) {
	tasks, err := s.current(ctx)
	if err != nil {
		return false, err
	}
	i := indexOf(tasks, id)
	if i < 0 {
		return false, nil
	}
	if err := s.Save(ctx, slices.Delete(tasks, i, i+1)); err != nil {
		return false, err
	}
	return true, nil
}

// DeleteAll stores an empty list.
func (s *Store) DeleteAll(ctx context.Context) error {
	return s.Save(ctx, []service.Task{})
}

// Reorder stores tasks in the given order.
func (s *Store) Reorder(ctx context.Context, tasks []service.Task) error {
	current, err := s.current(ctx)
	if err != nil {
		return err
	}
	if !isPermutation(current, tasks) {
		return service.ErrNotPermutation
	}
	return s.Save(ctx, slices.Clone(tasks))
}

// Close closes the underlying storage.
func (s *Store) Close() error {
	return s.storage.Close()
}

// Move returns a copy of tasks with the task at index from moved to index to,
// the result of dragging one row. to is clamped into range; an out-of-range
// from leaves the order unchanged.
func Move(tasks []service.Task, from, to int) []service.Task {
	out := slices.Clone(tasks)
	if from < 0 || from >= len(out) {
		return out
	}
	to = max(0, min(to, len(out)-1))
	t := out[from]
	out = slices.Delete(out, from, from+1)
	return slices.Insert(out, to, t)
}

// read returns the stored list. stored is false if the key was never written.
// Unlike Load it reports unreadable data.
func (s *Store) read(ctx context.Context) (tasks []service.Task, stored bool, err error) {
	raw, ok, err := s.storage.Get(ctx, s.key)
	if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", s.key, err)
	}
	if !ok {
		return []service.Task{}, false, nil
	}
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		return nil, true, fmt.Errorf("parse %s: %w", s.key, err)
	}
	if tasks == nil {
		tasks = []service.Task{}
	}
	return tasks, true, nil
}

// current is the list a mutation starts from: the stored list, or the seed
// if nothing is stored. Unreadable data fails the mutation instead of being
// overwritten. Repeated ids are repaired and persisted by the mutation's write.
func (s *Store) current(ctx context.Context) ([]service.Task, error) {
	tasks, stored, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	if !stored && len(s.seed) > 0 {
		return s.seedTasks(), nil
	}
	s.repairIDs(tasks)
	return tasks, nil
}

// repairIDs gives every task whose id repeats an earlier one a fresh id,
// so an id always names exactly one task. It reports whether any id changed.
func (s *Store) repairIDs(tasks []service.Task) bool {
	taken := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		taken[t.ID] = true
	}
	seen := make(map[string]bool, len(tasks))
	repaired := false
	for i := range tasks {
		if seen[tasks[i].ID] {
			id := s.newID()
			for taken[id] {
				id = s.newID()
			}
			taken[id] = true
			tasks[i].ID = id
			repaired = true
		}
		seen[tasks[i].ID] = true
	}
	if repaired {
		s.logger.Warnf("repaired duplicate task ids in %s", s.key)
	}
	return repaired
}

// update applies fn to the task with id and saves if fn reports a change.
func (s *Store) update(ctx context.Context, id string, fn func(*service.Task) bool) (service.Task, bool, error) {
	tasks, err := s.current(ctx)
	if err != nil {
		return service.Task{}, false, err
	}
	i := indexOf(tasks, id)
	if i < 0 {
		return service.Task{}, false, nil
	}
	if !fn(&tasks[i]) {
		return tasks[i], true, nil
	}
	if err := s.Save(ctx, tasks); err != nil {
		return service.Task{}, true, err
	}
	return tasks[i], true, nil
}

func (s *Store) seedTasks() []service.Task {
	tasks := make([]service.Task, len(s.seed))
	for i, title := range s.seed {
		tasks[i] = service.Task{ID: s.newID(), Title: title}
	}
	return tasks
}

func (s *Store) timestamp() string {
	return s.now().UTC().Format(TimeLayout)
}

func indexOf(tasks []service.Task, id string) int {
	return slices.IndexFunc(tasks, func(t service.Task) bool { return t.ID == id })
}

// isPermutation reports whether next holds exactly the ids of current.
func isPermutation(current, next []service.Task) bool {
	if len(current) != len(next) {
		return false
	}
	want := make(map[string]int, len(current))
	for _, t := range current {
		want[t.ID]++
	}
	for _, t := range next {
		if want[t.ID] == 0 {
			return false
		}
		want[t.ID]--
	}
	return true
}
