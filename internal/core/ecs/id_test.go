package ecs

import "testing"

func TestComponentIdPacking(t *testing.T) {
	id := newComponentId(42, 7)
	if id.Index() != 42 {
		t.Fatalf("Index() = %d, want 42", id.Index())
	}
	if id.Generation() != 7 {
		t.Fatalf("Generation() = %d, want 7", id.Generation())
	}
	if id.IsZero() {
		t.Fatal("packed id reported zero")
	}

	var zero ComponentId
	if !zero.IsZero() {
		t.Fatal("zero value must report IsZero")
	}
	// Index 0 with a live generation is a valid id.
	first := newComponentId(0, 1)
	if first.IsZero() {
		t.Fatal("index 0 generation 1 must be live")
	}
}
