// Package input tracks per-frame keyboard and cursor state fed in by the
// windowing layer.
package input

// Key is a lowercase key name ("w", "space", "escape"). The windowing layer
// normalizes names before reporting them.
type Key string

const (
	KeyW Key = "w"
	KeyA Key = "a"
	KeyS Key = "s"
	KeyD Key = "d"
	KeyQ Key = "q"
	KeyE Key = "e"
)

// State is the edge-and-level view of user input for the current frame.
// Down persists across frames while the key is held; Pressed and Released
// report only this frame's edges and reset in BeginFrame.
type State struct {
	down     map[Key]bool
	pressed  map[Key]bool
	released map[Key]bool

	cursorX float64
	cursorY float64
}

func NewState() *State {
	return &State{
		down:     make(map[Key]bool),
		pressed:  make(map[Key]bool),
		released: make(map[Key]bool),
	}
}

// BeginFrame clears the per-frame edge sets. Held state carries over.
func (s *State) BeginFrame() {
	for k := range s.pressed {
		delete(s.pressed, k)
	}
	for k := range s.released {
		delete(s.released, k)
	}
}

// KeyDown records a key press event.
func (s *State) KeyDown(k Key) {
	if !s.down[k] {
		s.pressed[k] = true
	}
	s.down[k] = true
}

// KeyUp records a key release event.
func (s *State) KeyUp(k Key) {
	if s.down[k] {
		s.released[k] = true
	}
	delete(s.down, k)
}

// IsDown reports whether k is currently held.
func (s *State) IsDown(k Key) bool { return s.down[k] }

// WasPressed reports whether k went down this frame.
func (s *State) WasPressed(k Key) bool { return s.pressed[k] }

// WasReleased reports whether k went up this frame.
func (s *State) WasReleased(k Key) bool { return s.released[k] }

// AnyDown reports whether at least one of the given keys is held.
func (s *State) AnyDown(keys ...Key) bool {
	for _, k := range keys {
		if s.down[k] {
			return true
		}
	}
	return false
}

// SetCursor records the cursor position in window pixel coordinates.
func (s *State) SetCursor(x, y float64) {
	s.cursorX = x
	s.cursorY = y
}

// Cursor returns the last reported cursor position.
func (s *State) Cursor() (x, y float64) { return s.cursorX, s.cursorY }
