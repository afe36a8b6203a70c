package shell

import (
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/catengine/engine/internal/component"
	"github.com/catengine/engine/internal/core/ecs"
	"github.com/catengine/engine/internal/scripting"
	"github.com/catengine/engine/internal/visual"
)

func newTestShell(t *testing.T) (*Shell, scripting.Bindings) {
	t.Helper()
	assets := visual.NewAssets()
	b := scripting.Bindings{
		World:    ecs.NewWorld(),
		Queue:    ecs.NewCommandQueue(),
		Registry: component.DefaultRegistry(),
		Meshes: map[string]visual.CpuMeshHandle{
			"cube": assets.RegisterMesh(visual.CubeMesh()),
		},
	}
	engine := scripting.NewEngine(b, zap.NewNop())
	t.Cleanup(engine.Close)
	return New(engine, zap.NewNop()), b
}

func TestShellExecutesBufferedLines(t *testing.T) {
	s, b := newTestShell(t)
	s.Start(strings.NewReader("spawn(\"cube\", 0, 0, 0)\n\nspawn(\"cube\", 1, 0, 0)\n"))

	// The reader goroutine buffers asynchronously; drain until both spawns
	// land or the deadline passes.
	deadline := time.Now().Add(2 * time.Second)
	for b.World.Len() < 6 && time.Now().Before(deadline) {
		s.Drain()
		time.Sleep(5 * time.Millisecond)
	}
	if b.World.Len() != 6 {
		t.Fatalf("Len() = %d, want 6 (two spawned trees)", b.World.Len())
	}
}

func TestShellSurvivesScriptErrors(t *testing.T) {
	s, b := newTestShell(t)
	s.Start(strings.NewReader("this is not lua\nspawn(\"cube\", 0, 0, 0)\n"))

	deadline := time.Now().Add(2 * time.Second)
	for b.World.Len() < 3 && time.Now().Before(deadline) {
		s.Drain()
		time.Sleep(5 * time.Millisecond)
	}
	if b.World.Len() != 3 {
		t.Fatal("valid line after a failing line was not executed")
	}
}

func TestUpdateFiresFrameHook(t *testing.T) {
	s, b := newTestShell(t)
	s.Start(strings.NewReader("function on_frame(dt) spawn(\"cube\", dt, 0, 0) end\n"))

	deadline := time.Now().Add(2 * time.Second)
	for b.World.Len() == 0 && time.Now().Before(deadline) {
		s.Update(16 * time.Millisecond)
		time.Sleep(5 * time.Millisecond)
	}
	if b.World.Len() == 0 {
		t.Fatal("on_frame hook never ran")
	}
}
