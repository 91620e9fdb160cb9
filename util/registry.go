package util

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maps names to factory functions. It replaces runtime type
// discovery with explicit registration: implementations register a
// factory under a name, callers construct by name.
type Registry[T any] struct {
	mu        sync.RWMutex
	factories map[string]func() T
}

// NewRegistry creates an empty registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{factories: make(map[string]func() T)}
}

// Register adds a factory under the given name. Registering a name
// twice fails.
func (r *Registry[T]) Register(name string, factory func() T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.factories[name]; ok {
		return fmt.Errorf("factory %q already registered", name)
	}
	r.factories[name] = factory
	return nil
}

// New constructs a value by name.
func (r *Registry[T]) New(name string) (T, error) {
	r.mu.RLock()
	factory, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		var zero T
		return zero, fmt.Errorf("unknown factory %q, registered: %v", name, r.Names())
	}
	return factory(), nil
}

// Names returns the sorted registered names.
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := Keys(r.factories)
	sort.Strings(names)
	return names
}
