package visual

import (
	"sort"

	"github.com/go-gl/mathgl/mgl32"
)

// LightKey identifies the owner of a point light. Systems use the owning
// component's id; this package treats it as opaque.
type LightKey uint64

// PointLight is the renderer-facing record for one omnidirectional light.
type PointLight struct {
	Position  mgl32.Vec3
	Intensity float32
	Distance  float32
	Color     mgl32.Vec3
}

// Instance is one draw instance: GPU resources, transform, per-instance
// color, and an optional texture (zero handle = untextured).
type Instance struct {
	Renderable GpuRenderable
	Transform  Transform
	Color      mgl32.Vec4
	Texture    TextureHandle
}

// DrawBatch groups consecutive draw-order entries sharing material, mesh and
// texture. Start/Count index into DrawOrder.
type DrawBatch struct {
	Material MaterialHandle
	Mesh     MeshHandle
	Texture  TextureHandle
	Start    int
	Count    int
}

// World is the renderer-facing instance cache. It is written only through
// system calls, never directly by components, and handed to the renderer as
// a per-frame snapshot.
type World struct {
	instances     []Instance
	handleToIndex map[InstanceHandle]int
	nextHandle    uint32

	lights     []PointLight
	lightIndex map[LightKey]int

	cameraView mgl32.Mat4
	cameraProj mgl32.Mat4
	camera2D   mgl32.Vec2

	dirtyCamera       bool
	dirtyLights       bool
	dirtyInstanceData bool
	dirtyDrawCache    bool

	drawOrder   []InstanceHandle
	drawBatches []DrawBatch
}

func NewWorld() *World {
	return &World{
		handleToIndex:     make(map[InstanceHandle]int),
		lightIndex:        make(map[LightKey]int),
		cameraView:        mgl32.Ident4(),
		cameraProj:        mgl32.Ident4(),
		dirtyCamera:       true,
		dirtyLights:       true,
		dirtyInstanceData: true,
		dirtyDrawCache:    true,
	}
}

// Clear drops all instances, lights, and camera state.
func (w *World) Clear() {
	w.instances = w.instances[:0]
	w.handleToIndex = make(map[InstanceHandle]int)
	w.nextHandle = 0
	w.lights = w.lights[:0]
	w.lightIndex = make(map[LightKey]int)
	w.cameraView = mgl32.Ident4()
	w.cameraProj = mgl32.Ident4()
	w.camera2D = mgl32.Vec2{}
	w.drawOrder = w.drawOrder[:0]
	w.drawBatches = w.drawBatches[:0]
	w.dirtyCamera = true
	w.dirtyLights = true
	w.dirtyInstanceData = true
	w.dirtyDrawCache = true
}

// ── instances ────────────────────────────────────────────────────

// Register inserts a new instance and returns its handle. Handles start at 1;
// the zero handle always means "not assigned".
func (w *World) Register(r GpuRenderable, t Transform, color mgl32.Vec4, texture TextureHandle) InstanceHandle {
	w.nextHandle++
	h := InstanceHandle(w.nextHandle)
	w.handleToIndex[h] = len(w.instances)
	w.instances = append(w.instances, Instance{
		Renderable: r,
		Transform:  t,
		Color:      color,
		Texture:    texture,
	})
	w.dirtyDrawCache = true
	w.dirtyInstanceData = true
	return h
}

// Remove deletes an instance. Order of the remaining instances is preserved.
func (w *World) Remove(h InstanceHandle) bool {
	idx, ok := w.handleToIndex[h]
	if !ok {
		return false
	}
	w.instances = append(w.instances[:idx], w.instances[idx+1:]...)
	delete(w.handleToIndex, h)
	for other, i := range w.handleToIndex {
		if i > idx {
			w.handleToIndex[other] = i - 1
		}
	}
	w.dirtyDrawCache = true
	w.dirtyInstanceData = true
	return true
}

// Instance returns a copy of the instance for h.
func (w *World) Instance(h InstanceHandle) (Instance, bool) {
	idx, ok := w.handleToIndex[h]
	if !ok {
		return Instance{}, false
	}
	return w.instances[idx], true
}

// Instances exposes the raw instance slice for the renderer snapshot.
func (w *World) Instances() []Instance { return w.instances }

// InstanceCount returns the number of live instances.
func (w *World) InstanceCount() int { return len(w.instances) }

// UpdateTransform replaces an instance's transform.
func (w *World) UpdateTransform(h InstanceHandle, t Transform) bool {
	idx, ok := w.handleToIndex[h]
	if !ok {
		return false
	}
	w.instances[idx].Transform = t
	w.dirtyInstanceData = true
	return true
}

// UpdateModel replaces only the instance's model matrix, keeping the TRS
// fields as-is.
func (w *World) UpdateModel(h InstanceHandle, model mgl32.Mat4) bool {
	idx, ok := w.handleToIndex[h]
	if !ok {
		return false
	}
	w.instances[idx].Transform.Model = model
	w.dirtyInstanceData = true
	return true
}

// UpdateColor replaces an instance's per-instance color.
func (w *World) UpdateColor(h InstanceHandle, color mgl32.Vec4) bool {
	idx, ok := w.handleToIndex[h]
	if !ok {
		return false
	}
	w.instances[idx].Color = color
	w.dirtyInstanceData = true
	return true
}

// UpdateTexture attaches (or clears, with the zero handle) an instance's texture.
func (w *World) UpdateTexture(h InstanceHandle, tex TextureHandle) bool {
	idx, ok := w.handleToIndex[h]
	if !ok {
		return false
	}
	w.instances[idx].Texture = tex
	w.dirtyDrawCache = true
	return true
}

// ── camera ───────────────────────────────────────────────────────

// SetCamera stores the active camera's view/projection matrices.
func (w *World) SetCamera(view, proj mgl32.Mat4) {
	w.cameraView = view
	w.cameraProj = proj
	w.dirtyCamera = true
}

// SetCamera2D stores the active 2-D camera translation.
func (w *World) SetCamera2D(translation mgl32.Vec2) {
	w.camera2D = translation
	w.dirtyCamera = true
}

func (w *World) CameraView() mgl32.Mat4 { return w.cameraView }
func (w *World) CameraProj() mgl32.Mat4 { return w.cameraProj }
func (w *World) Camera2D() mgl32.Vec2   { return w.camera2D }

// TakeCameraDirty reports and clears the camera dirty flag.
func (w *World) TakeCameraDirty() bool {
	v := w.dirtyCamera
	w.dirtyCamera = false
	return v
}

// ── lights ───────────────────────────────────────────────────────

// UpsertPointLight inserts or replaces the light owned by key.
func (w *World) UpsertPointLight(key LightKey, light PointLight) {
	if idx, ok := w.lightIndex[key]; ok {
		w.lights[idx] = light
	} else {
		w.lightIndex[key] = len(w.lights)
		w.lights = append(w.lights, light)
	}
	w.dirtyLights = true
}

// PointLight returns the light owned by key.
func (w *World) PointLight(key LightKey) (PointLight, bool) {
	idx, ok := w.lightIndex[key]
	if !ok {
		return PointLight{}, false
	}
	return w.lights[idx], true
}

// PointLights exposes the light list for the renderer snapshot.
func (w *World) PointLights() []PointLight { return w.lights }

// TakeLightsDirty reports and clears the lights dirty flag.
func (w *World) TakeLightsDirty() bool {
	v := w.dirtyLights
	w.dirtyLights = false
	return v
}

// TakeInstanceDataDirty reports and clears the per-instance data dirty flag.
func (w *World) TakeInstanceDataDirty() bool {
	v := w.dirtyInstanceData
	w.dirtyInstanceData = false
	return v
}

// ── draw cache ───────────────────────────────────────────────────

// PrepareDrawCache rebuilds the draw order and batches when stale. Returns
// true when a rebuild happened. Instances are ordered material → mesh →
// texture so the renderer can bind each resource once per batch.
func (w *World) PrepareDrawCache() bool {
	if !w.dirtyDrawCache {
		return false
	}
	w.dirtyDrawCache = false

	handles := make([]InstanceHandle, 0, len(w.handleToIndex))
	for h := range w.handleToIndex {
		handles = append(handles, h)
	}
	sort.Slice(handles, func(i, j int) bool {
		a := w.instances[w.handleToIndex[handles[i]]]
		b := w.instances[w.handleToIndex[handles[j]]]
		if a.Renderable.Material != b.Renderable.Material {
			return a.Renderable.Material < b.Renderable.Material
		}
		if a.Renderable.Mesh != b.Renderable.Mesh {
			return a.Renderable.Mesh < b.Renderable.Mesh
		}
		if a.Texture != b.Texture {
			return a.Texture < b.Texture
		}
		return handles[i] < handles[j]
	})

	w.drawOrder = handles
	w.drawBatches = w.drawBatches[:0]
	for i := 0; i < len(handles); {
		inst := w.instances[w.handleToIndex[handles[i]]]
		batch := DrawBatch{
			Material: inst.Renderable.Material,
			Mesh:     inst.Renderable.Mesh,
			Texture:  inst.Texture,
			Start:    i,
			Count:    0,
		}
		j := i
		for ; j < len(handles); j++ {
			next := w.instances[w.handleToIndex[handles[j]]]
			if next.Renderable.Material != batch.Material ||
				next.Renderable.Mesh != batch.Mesh ||
				next.Texture != batch.Texture {
				break
			}
			batch.Count++
		}
		w.drawBatches = append(w.drawBatches, batch)
		i = j
	}
	return true
}

// DrawOrder returns the handle order produced by PrepareDrawCache.
func (w *World) DrawOrder() []InstanceHandle { return w.drawOrder }

// DrawBatches returns the batches produced by PrepareDrawCache.
func (w *World) DrawBatches() []DrawBatch { return w.drawBatches }
