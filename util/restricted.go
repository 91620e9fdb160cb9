package util

import (
	"fmt"
	"sort"
)

// RestrictedMap is a map that only accepts a fixed set of known keys.
// It can be frozen, after which all modification fails. Useful for
// constant-like option sets where typos should be caught early.
type RestrictedMap[V any] struct {
	known       map[string]struct{}
	items       map[string]V
	frozen      bool
	skipUnknown bool
}

// NewRestrictedMap creates a RestrictedMap accepting only the given keys.
func NewRestrictedMap[V any](knownKeys ...string) *RestrictedMap[V] {
	known := make(map[string]struct{}, len(knownKeys))
	for _, k := range knownKeys {
		known[k] = struct{}{}
	}
	return &RestrictedMap[V]{
		known: known,
		items: make(map[string]V),
	}
}

// Set stores the value for a known key. It fails for unknown keys
// (unless skip-unknown mode is active, in which case the key is silently
// dropped) and always fails once the map is frozen.
func (r *RestrictedMap[V]) Set(key string, value V) error {
	if r.frozen {
		return fmt.Errorf("modifying key %q is prohibited after Freeze()", key)
	}
	if _, ok := r.known[key]; !ok {
		if r.skipUnknown {
			return nil
		}
		return fmt.Errorf("key %q is not valid (valid keys: %v)", key, r.KnownKeys())
	}
	r.items[key] = value
	return nil
}

// Update sets every entry of m, failing on the first invalid key.
func (r *RestrictedMap[V]) Update(m map[string]V) error {
	for k, v := range m {
		if err := r.Set(k, v); err != nil {
			return err
		}
	}
	return nil
}

// UpdateSkipUnknown sets every entry of m, silently dropping unknown keys.
func (r *RestrictedMap[V]) UpdateSkipUnknown(m map[string]V) error {
	r.skipUnknown = true
	defer func() { r.skipUnknown = false }()
	return r.Update(m)
}

// Get returns the value for key. Looking up an unknown key returns an
// error naming the valid keys; a known but unset key returns the zero
// value with ok=false semantics folded into the error.
func (r *RestrictedMap[V]) Get(key string) (V, error) {
	var zero V
	if _, ok := r.known[key]; !ok {
		return zero, fmt.Errorf("unknown key %q, known keys: %v", key, r.KnownKeys())
	}
	v, ok := r.items[key]
	if !ok {
		return zero, fmt.Errorf("key %q has not been set", key)
	}
	return v, nil
}

// Has reports whether the key is known and set.
func (r *RestrictedMap[V]) Has(key string) bool {
	_, ok := r.items[key]
	return ok
}

// Freeze marks the map as defined, disallowing any further updates.
func (r *RestrictedMap[V]) Freeze() {
	r.frozen = true
}

// Frozen reports whether the map has been frozen.
func (r *RestrictedMap[V]) Frozen() bool {
	return r.frozen
}

// KnownKeys returns the sorted list of accepted keys.
func (r *RestrictedMap[V]) KnownKeys() []string {
	keys := Keys(r.known)
	sort.Strings(keys)
	return keys
}

// Len returns the number of set keys.
func (r *RestrictedMap[V]) Len() int {
	return len(r.items)
}
