package util

// Monoid combines values of a type with an associative operation and an
// identity element.
type Monoid[T any] struct {
	// Empty is the identity element (e.g. 0 for a sum, nil for a list).
	Empty T
	// Append combines two elements.
	Append func(a, b T) T
}

// NewMonoid creates a monoid from an identity element and a combine operation.
func NewMonoid[T any](empty T, appendFn func(a, b T) T) Monoid[T] {
	return Monoid[T]{Empty: empty, Append: appendFn}
}

// Fold combines the elements of the slice into a single value, starting
// from the identity element.
func (m Monoid[T]) Fold(xs []T) T {
	acc := m.Empty
	for _, x := range xs {
		acc = m.Append(acc, x)
	}
	return acc
}

// Combine folds over its arguments.
func (m Monoid[T]) Combine(xs ...T) T {
	return m.Fold(xs)
}

// MonoidMap is a map that combines values on insertion according to a monoid.
type MonoidMap[K comparable, V any] struct {
	monoid Monoid[V]
	items  map[K]V
}

// NewMonoidMap creates an empty MonoidMap over the given monoid.
func NewMonoidMap[K comparable, V any](m Monoid[V]) *MonoidMap[K, V] {
	return &MonoidMap[K, V]{monoid: m, items: make(map[K]V)}
}

// Set stores the value for key, combining it with any existing value
// using the monoid's append operation.
func (mm *MonoidMap[K, V]) Set(key K, value V) {
	if current, ok := mm.items[key]; ok {
		mm.items[key] = mm.monoid.Append(current, value)
		return
	}
	mm.items[key] = value
}

// Get returns the value for key, or the monoid's identity element when
// the key is absent.
func (mm *MonoidMap[K, V]) Get(key K) V {
	if v, ok := mm.items[key]; ok {
		return v
	}
	return mm.monoid.Empty
}

// Has reports whether the key has been set.
func (mm *MonoidMap[K, V]) Has(key K) bool {
	_, ok := mm.items[key]
	return ok
}

// Len returns the number of stored keys.
func (mm *MonoidMap[K, V]) Len() int {
	return len(mm.items)
}

// Keys returns the stored keys in unspecified order.
func (mm *MonoidMap[K, V]) Keys() []K {
	return Keys(mm.items)
}
