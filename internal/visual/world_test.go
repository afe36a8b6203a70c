package visual

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func white() mgl32.Vec4 { return mgl32.Vec4{1, 1, 1, 1} }

func TestRegisterAssignsSequentialHandles(t *testing.T) {
	w := NewWorld()
	r := GpuRenderable{Mesh: 1, Material: MaterialToonMesh}

	a := w.Register(r, NewTransform(), white(), 0)
	b := w.Register(r, NewTransform(), white(), 0)
	if a == 0 || b == 0 {
		t.Fatalf("handles must start at 1: a=%d b=%d", a, b)
	}
	if a == b {
		t.Fatalf("handles collide: %d", a)
	}
	if w.InstanceCount() != 2 {
		t.Fatalf("InstanceCount() = %d, want 2", w.InstanceCount())
	}
	if _, ok := w.Instance(a); !ok {
		t.Fatal("registered instance not found")
	}
}

func TestRemoveKeepsOtherInstancesResolvable(t *testing.T) {
	w := NewWorld()
	r := GpuRenderable{Mesh: 1, Material: MaterialToonMesh}
	a := w.Register(r, NewTransform(), white(), 0)
	b := w.Register(r, NewTransform(), mgl32.Vec4{0, 1, 0, 1}, 0)
	c := w.Register(r, NewTransform(), mgl32.Vec4{0, 0, 1, 1}, 0)

	if !w.Remove(a) {
		t.Fatal("Remove(a) = false")
	}
	if w.Remove(a) {
		t.Fatal("double remove must report false")
	}
	if w.InstanceCount() != 2 {
		t.Fatalf("InstanceCount() = %d, want 2", w.InstanceCount())
	}

	// Compaction must not break handle resolution for survivors.
	ib, ok := w.Instance(b)
	if !ok || ib.Color != (mgl32.Vec4{0, 1, 0, 1}) {
		t.Fatalf("instance b lost: %v %v", ib, ok)
	}
	ic, ok := w.Instance(c)
	if !ok || ic.Color != (mgl32.Vec4{0, 0, 1, 1}) {
		t.Fatalf("instance c lost: %v %v", ic, ok)
	}
}

func TestUpdateTransformStoresModel(t *testing.T) {
	w := NewWorld()
	h := w.Register(GpuRenderable{Mesh: 1, Material: MaterialToonMesh}, NewTransform(), white(), 0)

	tr := NewTransform()
	tr.Translation = mgl32.Vec3{1, 0, 0}
	tr.RecomputeModel()
	if !w.UpdateTransform(h, tr) {
		t.Fatal("UpdateTransform = false for live handle")
	}

	inst, _ := w.Instance(h)
	if got := inst.Transform.ModelTranslation(); got != (mgl32.Vec3{1, 0, 0}) {
		t.Fatalf("model translation = %v, want (1,0,0)", got)
	}
	if w.UpdateTransform(999, tr) {
		t.Fatal("UpdateTransform accepted an unknown handle")
	}
}

func TestUpdateColorAndTexture(t *testing.T) {
	w := NewWorld()
	h := w.Register(GpuRenderable{Mesh: 1, Material: MaterialUnlit}, NewTransform(), white(), 0)

	if !w.UpdateColor(h, mgl32.Vec4{1, 0, 0, 1}) {
		t.Fatal("UpdateColor = false")
	}
	if !w.UpdateTexture(h, 5) {
		t.Fatal("UpdateTexture = false")
	}
	inst, _ := w.Instance(h)
	if inst.Color != (mgl32.Vec4{1, 0, 0, 1}) {
		t.Fatalf("color = %v", inst.Color)
	}
	if inst.Texture != 5 {
		t.Fatalf("texture = %d, want 5", inst.Texture)
	}
}

func TestCameraDirtyFlag(t *testing.T) {
	w := NewWorld()
	// A fresh world starts dirty so the first frame always uploads.
	if !w.TakeCameraDirty() {
		t.Fatal("fresh world must report camera dirty once")
	}
	if w.TakeCameraDirty() {
		t.Fatal("TakeCameraDirty did not clear the initial flag")
	}

	w.SetCamera(mgl32.Ident4(), mgl32.Ident4())
	if !w.TakeCameraDirty() {
		t.Fatal("SetCamera did not mark dirty")
	}
	if w.TakeCameraDirty() {
		t.Fatal("TakeCameraDirty did not clear the flag")
	}

	w.SetCamera2D(mgl32.Vec2{3, 4})
	if !w.TakeCameraDirty() {
		t.Fatal("SetCamera2D did not mark dirty")
	}
	if got := w.Camera2D(); got != (mgl32.Vec2{3, 4}) {
		t.Fatalf("Camera2D() = %v", got)
	}
}

func TestUpsertPointLight(t *testing.T) {
	w := NewWorld()
	w.UpsertPointLight(1, PointLight{Position: mgl32.Vec3{0, 1, 0}, Intensity: 2})
	w.UpsertPointLight(2, PointLight{Position: mgl32.Vec3{5, 0, 0}, Intensity: 1})
	if len(w.PointLights()) != 2 {
		t.Fatalf("lights = %d, want 2", len(w.PointLights()))
	}
	if !w.TakeLightsDirty() {
		t.Fatal("insert did not mark lights dirty")
	}

	// Same key updates in place rather than appending.
	w.UpsertPointLight(1, PointLight{Position: mgl32.Vec3{0, 9, 0}, Intensity: 2})
	if len(w.PointLights()) != 2 {
		t.Fatalf("upsert appended: %d lights", len(w.PointLights()))
	}
	l, ok := w.PointLight(1)
	if !ok || l.Position != (mgl32.Vec3{0, 9, 0}) {
		t.Fatalf("light 1 = %v %v", l, ok)
	}
	if !w.TakeLightsDirty() {
		t.Fatal("update did not mark lights dirty")
	}
}

func TestPrepareDrawCacheBatchesByState(t *testing.T) {
	w := NewWorld()
	toonCube := GpuRenderable{Mesh: 1, Material: MaterialToonMesh}
	toonQuad := GpuRenderable{Mesh: 2, Material: MaterialToonMesh}
	unlitQuad := GpuRenderable{Mesh: 2, Material: MaterialUnlit}

	// Interleave registrations so batching has to reorder.
	w.Register(unlitQuad, NewTransform(), white(), 0)
	w.Register(toonCube, NewTransform(), white(), 0)
	w.Register(toonQuad, NewTransform(), white(), 0)
	w.Register(toonCube, NewTransform(), white(), 0)

	if !w.PrepareDrawCache() {
		t.Fatal("PrepareDrawCache = false after registrations")
	}

	batches := w.DrawBatches()
	if len(batches) != 3 {
		t.Fatalf("batches = %v, want 3", batches)
	}
	// Material ascending, then mesh ascending.
	if batches[0].Material != MaterialToonMesh || batches[0].Mesh != 1 || batches[0].Count != 2 {
		t.Fatalf("batch 0 = %+v", batches[0])
	}
	if batches[1].Material != MaterialToonMesh || batches[1].Mesh != 2 || batches[1].Count != 1 {
		t.Fatalf("batch 1 = %+v", batches[1])
	}
	if batches[2].Material != MaterialUnlit || batches[2].Mesh != 2 || batches[2].Count != 1 {
		t.Fatalf("batch 2 = %+v", batches[2])
	}

	order := w.DrawOrder()
	total := 0
	for _, b := range batches {
		total += b.Count
	}
	if total != len(order) || total != w.InstanceCount() {
		t.Fatalf("batch counts %d, order %d, instances %d", total, len(order), w.InstanceCount())
	}
}

func TestClearResetsEverything(t *testing.T) {
	w := NewWorld()
	w.Register(GpuRenderable{Mesh: 1, Material: MaterialToonMesh}, NewTransform(), white(), 0)
	w.UpsertPointLight(1, PointLight{Intensity: 1})
	w.SetCamera(mgl32.Ident4(), mgl32.Ident4())

	w.Clear()
	if w.InstanceCount() != 0 {
		t.Fatalf("InstanceCount() = %d after Clear", w.InstanceCount())
	}
	if len(w.PointLights()) != 0 {
		t.Fatal("lights survived Clear")
	}

	// Handles restart, and resolution works again.
	h := w.Register(GpuRenderable{Mesh: 1, Material: MaterialToonMesh}, NewTransform(), white(), 0)
	if _, ok := w.Instance(h); !ok {
		t.Fatal("post-Clear registration not resolvable")
	}
}
