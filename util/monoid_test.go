package util

import (
	"reflect"
	"testing"
)

func sumMonoid() Monoid[int] {
	return NewMonoid(0, func(a, b int) int { return a + b })
}

func listMonoid() Monoid[[]string] {
	return NewMonoid(nil, func(a, b []string) []string { return append(append([]string{}, a...), b...) })
}

func TestMonoidFold(t *testing.T) {
	m := sumMonoid()
	if got := m.Fold([]int{1, 2, 3}); got != 6 {
		t.Errorf("Fold = %d, want 6", got)
	}
	if got := m.Fold(nil); got != 0 {
		t.Errorf("Fold(nil) = %d, want identity 0", got)
	}
}

func TestMonoidCombine(t *testing.T) {
	m := listMonoid()
	got := m.Combine([]string{"a"}, []string{"b", "c"})
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Combine = %v, want %v", got, want)
	}
}

func TestMonoidMapCombinesOnSet(t *testing.T) {
	mm := NewMonoidMap[string](sumMonoid())
	mm.Set("hits", 1)
	mm.Set("hits", 2)
	mm.Set("misses", 5)

	if got := mm.Get("hits"); got != 3 {
		t.Errorf("Get(hits) = %d, want 3", got)
	}
	if got := mm.Get("misses"); got != 5 {
		t.Errorf("Get(misses) = %d, want 5", got)
	}
	if mm.Len() != 2 {
		t.Errorf("Len = %d, want 2", mm.Len())
	}
}

func TestMonoidMapMissingKeyReturnsIdentity(t *testing.T) {
	mm := NewMonoidMap[string](sumMonoid())
	if got := mm.Get("absent"); got != 0 {
		t.Errorf("Get(absent) = %d, want identity 0", got)
	}
	if mm.Has("absent") {
		t.Error("expected Has(absent) to be false")
	}
}
