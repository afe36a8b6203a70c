package ecs

import (
	"testing"

	"github.com/catengine/engine/internal/visual"
)

// recordingDispatcher captures the dispatch order as "kind:id" strings.
type recordingDispatcher struct {
	calls      []string
	transforms []visual.Transform
}

func (d *recordingDispatcher) record(kind string, id ComponentId) {
	d.calls = append(d.calls, kind)
	_ = id
}

func (d *recordingDispatcher) RegisterRenderable(_ *World, _ *visual.World, id ComponentId) {
	d.record("renderable", id)
}
func (d *recordingDispatcher) TransformChanged(_ *World, _ *visual.World, id ComponentId) {
	d.record("transform", id)
}
func (d *recordingDispatcher) UpdateTransform(_ *World, _ *visual.World, id ComponentId, t visual.Transform) {
	d.record("update-transform", id)
	d.transforms = append(d.transforms, t)
}
func (d *recordingDispatcher) RemoveTransform(_ *World, _ *visual.World, id ComponentId) {
	d.record("remove-transform", id)
}
func (d *recordingDispatcher) RegisterCamera3D(_ *World, _ *visual.World, id ComponentId) {
	d.record("camera3d", id)
}
func (d *recordingDispatcher) RegisterCamera2D(_ *World, _ *visual.World, id ComponentId) {
	d.record("camera2d", id)
}
func (d *recordingDispatcher) MakeActiveCamera(_ *World, _ *visual.World, id ComponentId) {
	d.record("active-camera", id)
}
func (d *recordingDispatcher) RegisterInput(id ComponentId) { d.record("input", id) }
func (d *recordingDispatcher) RegisterUV(_ *World, _ *visual.World, id ComponentId) {
	d.record("uv", id)
}
func (d *recordingDispatcher) RegisterLight(_ *World, _ *visual.World, id ComponentId) {
	d.record("light", id)
}
func (d *recordingDispatcher) RegisterColor(_ *World, _ *visual.World, id ComponentId) {
	d.record("color", id)
}
func (d *recordingDispatcher) RegisterTexture(_ *World, _ *visual.World, id ComponentId) {
	d.record("texture", id)
}
func (d *recordingDispatcher) RegisterCursor(id ComponentId) { d.record("cursor", id) }

func TestFlushDispatchesInEnqueueOrder(t *testing.T) {
	w := NewWorld()
	v := visual.NewWorld()
	q := NewCommandQueue()
	d := &recordingDispatcher{}

	id := w.AddComponent(newPlain("x"))
	q.QueueRegisterRenderable(id)
	q.QueueRegisterTransform(id)
	q.QueueRegisterCamera3D(id)
	q.QueueMakeActiveCamera(id)
	q.QueueRegisterInput(id)
	q.QueueRegisterLight(id)
	q.QueueRegisterColor(id)

	if q.Len() != 7 {
		t.Fatalf("Len() = %d, want 7", q.Len())
	}
	q.Flush(w, d, v)

	want := []string{"renderable", "transform", "camera3d", "active-camera", "input", "light", "color"}
	if len(d.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", d.calls, want)
	}
	for i := range want {
		if d.calls[i] != want[i] {
			t.Fatalf("dispatch order differs at %d: got %v, want %v", i, d.calls, want)
		}
	}
}

func TestFlushDrainsQueue(t *testing.T) {
	w := NewWorld()
	v := visual.NewWorld()
	q := NewCommandQueue()
	d := &recordingDispatcher{}

	id := w.AddComponent(newPlain("x"))
	q.QueueRegisterTransform(id)
	q.Flush(w, d, v)
	if q.Len() != 0 {
		t.Fatalf("queue not drained: Len() = %d", q.Len())
	}

	// A second flush dispatches nothing.
	q.Flush(w, d, v)
	if len(d.calls) != 1 {
		t.Fatalf("calls after double flush = %v", d.calls)
	}
}

func TestFlushCarriesTransformPayload(t *testing.T) {
	w := NewWorld()
	v := visual.NewWorld()
	q := NewCommandQueue()
	d := &recordingDispatcher{}

	id := w.AddComponent(newPlain("x"))
	tr := visual.NewTransform()
	tr.Translation[0] = 3.5
	q.QueueUpdateTransform(id, tr)
	q.Flush(w, d, v)

	if len(d.transforms) != 1 {
		t.Fatalf("transforms = %v, want 1 entry", d.transforms)
	}
	if got := d.transforms[0].Translation[0]; got != 3.5 {
		t.Fatalf("payload translation x = %v, want 3.5", got)
	}
}

func TestFlushDropsUnwiredCommands(t *testing.T) {
	w := NewWorld()
	v := visual.NewWorld()
	q := NewCommandQueue()
	d := &recordingDispatcher{}

	id := w.AddComponent(newPlain("x"))
	q.QueueRemoveRenderable(id)
	q.QueueRemoveCamera(id)
	q.QueueRegisterCursor(id)
	q.Flush(w, d, v)

	// Removal commands are accepted but have no handler; only the wired
	// command reaches the dispatcher.
	if len(d.calls) != 1 || d.calls[0] != "cursor" {
		t.Fatalf("calls = %v, want [cursor]", d.calls)
	}
}
