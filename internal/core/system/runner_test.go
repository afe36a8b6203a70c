package system

import (
	"testing"
	"time"
)

type recordingSystem struct {
	phase Phase
	tag   string
	out   *[]string
}

func (s *recordingSystem) Phase() Phase { return s.phase }
func (s *recordingSystem) Update(time.Duration) {
	*s.out = append(*s.out, s.tag)
}

func TestTickRunsInPhaseOrder(t *testing.T) {
	var got []string
	r := NewRunner()
	// Register out of order.
	r.Register(&recordingSystem{phase: PhaseOutput, tag: "output", out: &got})
	r.Register(&recordingSystem{phase: PhaseInput, tag: "input", out: &got})
	r.Register(&recordingSystem{phase: PhaseFlush, tag: "flush", out: &got})
	r.Register(&recordingSystem{phase: PhaseUpdate, tag: "update", out: &got})

	r.Tick(time.Millisecond)
	want := []string{"input", "update", "flush", "output"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestTickPreservesRegistrationOrderWithinPhase(t *testing.T) {
	var got []string
	r := NewRunner()
	r.Register(&recordingSystem{phase: PhaseInput, tag: "first", out: &got})
	r.Register(&recordingSystem{phase: PhaseInput, tag: "second", out: &got})
	r.Tick(time.Millisecond)
	if len(got) != 2 || got[0] != "first" || got[1] != "second" {
		t.Fatalf("order = %v", got)
	}
}

func TestTickPhaseRunsOnlyThatPhase(t *testing.T) {
	var got []string
	r := NewRunner()
	r.Register(&recordingSystem{phase: PhaseInput, tag: "input", out: &got})
	r.Register(&recordingSystem{phase: PhaseFlush, tag: "flush", out: &got})

	r.TickPhase(PhaseFlush, time.Millisecond)
	if len(got) != 1 || got[0] != "flush" {
		t.Fatalf("got = %v, want [flush]", got)
	}
}
