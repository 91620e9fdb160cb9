package util

import (
	"reflect"
	"testing"
)

func TestDeepMergeRecursesIntoMaps(t *testing.T) {
	dst := map[string]any{
		"server": map[string]any{"host": "localhost", "port": 8080},
		"name":   "base",
	}
	src := map[string]any{
		"server": map[string]any{"port": 9090},
		"extra":  true,
	}

	got, err := DeepMerge(dst, src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	server, ok := got["server"].(map[string]any)
	if !ok {
		t.Fatalf("expected nested map, got %T", got["server"])
	}
	if server["host"] != "localhost" {
		t.Errorf("expected host preserved, got %v", server["host"])
	}
	if server["port"] != 9090 {
		t.Errorf("expected port overridden to 9090, got %v", server["port"])
	}
	if got["name"] != "base" || got["extra"] != true {
		t.Errorf("unexpected merge result: %v", got)
	}
}

func TestDeepMergeExtendsSlices(t *testing.T) {
	dst := map[string]any{"hosts": []string{"a"}}
	src := map[string]any{"hosts": []string{"b", "c"}}

	got, err := DeepMerge(dst, src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got["hosts"], want) {
		t.Errorf("hosts = %v, want %v", got["hosts"], want)
	}
}

func TestDeepMergeDoesNotMutateInput(t *testing.T) {
	dst := map[string]any{"a": 1}
	src := map[string]any{"b": 2}

	if _, err := DeepMerge(dst, src); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dst) != 1 {
		t.Errorf("dst mutated: %v", dst)
	}
}

func TestMergeInto(t *testing.T) {
	dst := map[string]any{"a": 1}
	if err := MergeInto(dst, map[string]any{"b": 2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dst["b"] != 2 {
		t.Errorf("expected b merged into dst, got %v", dst)
	}
}
