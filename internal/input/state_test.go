package input

import "testing"

func TestKeyEdgesResetPerFrame(t *testing.T) {
	s := NewState()
	s.KeyDown(KeyW)

	if !s.IsDown(KeyW) || !s.WasPressed(KeyW) {
		t.Fatal("press not recorded")
	}

	s.BeginFrame()
	if !s.IsDown(KeyW) {
		t.Fatal("held key lost across frames")
	}
	if s.WasPressed(KeyW) {
		t.Fatal("pressed edge survived BeginFrame")
	}

	s.KeyUp(KeyW)
	if s.IsDown(KeyW) {
		t.Fatal("key still down after release")
	}
	if !s.WasReleased(KeyW) {
		t.Fatal("release edge not recorded")
	}

	s.BeginFrame()
	if s.WasReleased(KeyW) {
		t.Fatal("released edge survived BeginFrame")
	}
}

func TestRepeatEventsDoNotReRaiseEdges(t *testing.T) {
	s := NewState()
	s.KeyDown(KeyA)
	s.BeginFrame()

	// OS key-repeat delivers another down event for a held key.
	s.KeyDown(KeyA)
	if s.WasPressed(KeyA) {
		t.Fatal("repeat event raised a pressed edge")
	}

	// Releasing an already-up key raises nothing.
	s.KeyUp(KeyE)
	if s.WasReleased(KeyE) {
		t.Fatal("release of an up key raised an edge")
	}
}

func TestAnyDown(t *testing.T) {
	s := NewState()
	if s.AnyDown(KeyW, KeyA, KeyS, KeyD) {
		t.Fatal("fresh state reports key held")
	}
	s.KeyDown(KeyS)
	if !s.AnyDown(KeyW, KeyA, KeyS, KeyD) {
		t.Fatal("held key not reported")
	}
}

func TestCursor(t *testing.T) {
	s := NewState()
	s.SetCursor(320, 240)
	x, y := s.Cursor()
	if x != 320 || y != 240 {
		t.Fatalf("cursor = (%v, %v), want (320, 240)", x, y)
	}
}
