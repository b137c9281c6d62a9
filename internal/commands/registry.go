package commands

import (
	"fmt"
	"maps"
	"slices"
	"sync"
)

// Default is the command run when no command is given.
const Default = "list"

// Registry maps command names and aliases to commands.
type Registry struct {
	mu    sync.RWMutex
	cmds  map[string]Command
	names map[string]Command // primary names only
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		cmds:  make(map[string]Command),
		names: make(map[string]Command),
	}
}

// Register adds a command under its name and aliases.
// Nothing is registered if any of them is taken.
func (r *Registry) Register(c Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	keys := append([]string{c.Name()}, c.Aliases()...)
	for _, k := range keys {
		if _, exists := r.cmds[k]; exists {
			return fmt.Errorf("command name already registered: %s", k)
		}
	}

	for _, k := range keys {
		r.cmds[k] = c
	}
	r.names[c.Name()] = c
	return nil
}

// Find looks up a command by name or alias.
func (r *Registry) Find(name string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, ok := r.cmds[name]
	return cmd, ok
}

// All returns the commands sorted by primary name.
func (r *Registry) All() []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Command, 0, len(r.names))
	for _, name := range slices.Sorted(maps.Keys(r.names)) {
		result = append(result, r.names[name])
	}
	return result
}

// DefaultRegistry is the global command registry.
var DefaultRegistry = NewRegistry()

// Register adds a command to the default registry.
// It panics on a name clash; commands register from init.
func Register(c Command) {
	if err := DefaultRegistry.Register(c); err != nil {
		panic(err)
	}
}
