package util

import (
	"strings"
	"testing"
)

func TestRegistryRegisterAndNew(t *testing.T) {
	r := NewRegistry[int]()
	if err := r.Register("one", func() int { return 1 }); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := r.Register("two", func() int { return 2 }); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	got, err := r.New("two")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got != 2 {
		t.Errorf("New(\"two\") = %d, want 2", got)
	}
}

func TestRegistryDuplicateName(t *testing.T) {
	r := NewRegistry[string]()
	if err := r.Register("a", func() string { return "a" }); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := r.Register("a", func() string { return "b" }); err == nil {
		t.Fatal("Register() with duplicate name should fail")
	}
}

func TestRegistryUnknownName(t *testing.T) {
	r := NewRegistry[int]()
	_ = r.Register("known", func() int { return 1 })

	_, err := r.New("missing")
	if err == nil {
		t.Fatal("New() with unknown name should fail")
	}
	if !strings.Contains(err.Error(), "known") {
		t.Errorf("error %q should list registered names", err)
	}
}

func TestRegistryNamesSorted(t *testing.T) {
	r := NewRegistry[int]()
	for _, name := range []string{"c", "a", "b"} {
		_ = r.Register(name, func() int { return 0 })
	}
	names := r.Names()
	want := []string{"a", "b", "c"}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}
