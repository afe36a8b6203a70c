package system

import (
	"go.uber.org/zap"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/catengine/engine/internal/component"
	"github.com/catengine/engine/internal/core/ecs"
	"github.com/catengine/engine/internal/visual"
)

// RenderableSystem turns renderable registrations into visual instances. It
// owns the CPU→GPU mesh resolution path, including per-instance UV clones.
type RenderableSystem struct {
	log      *zap.Logger
	assets   *visual.Assets
	uploader visual.MeshUploader
}

func NewRenderableSystem(assets *visual.Assets, uploader visual.MeshUploader, log *zap.Logger) *RenderableSystem {
	return &RenderableSystem{
		log:      log,
		assets:   assets,
		uploader: uploader,
	}
}

// Register creates the visual instance for a renderable's nearest Instance
// ancestor. Sibling Transform, Color, and UV components are folded in at
// registration; a renderable with no Instance ancestor is skipped.
func (s *RenderableSystem) Register(w *ecs.World, v *visual.World, id ecs.ComponentId) {
	r, ok := ecs.Get[*component.Renderable](w, id)
	if !ok {
		s.log.Warn("register-renderable on non-renderable component", zap.Uint64("id", uint64(id)))
		return
	}
	_, inst, ok := ecs.FindAncestor[*component.Instance](w, id)
	if !ok {
		s.log.Debug("renderable without instance ancestor", zap.Uint64("id", uint64(id)))
		return
	}
	if inst.Handle != 0 {
		// The instance already has geometry; one handle per instance.
		s.log.Debug("instance already registered", zap.Uint64("id", uint64(id)))
		return
	}

	gpu, err := s.resolveMesh(w, id, r)
	if err != nil {
		s.log.Warn("mesh resolution failed",
			zap.Uint64("id", uint64(id)),
			zap.Error(err))
		return
	}

	parent := w.ParentOf(id)
	transform := visual.NewTransform()
	if _, tr, ok := ecs.FindChild[*component.Transform](w, parent); ok {
		transform = tr.Local
	}
	color := mgl32.Vec4{1, 1, 1, 1}
	if _, c, ok := ecs.FindChild[*component.Color](w, parent); ok {
		color = c.RGBA
	}

	inst.Handle = v.Register(visual.GpuRenderable{Mesh: gpu, Material: r.Material}, transform, color, 0)
}

// RegisterColor re-tints an already registered instance. Colors seen before
// the renderable registers are picked up by Register itself.
func (s *RenderableSystem) RegisterColor(w *ecs.World, v *visual.World, id ecs.ComponentId) {
	c, ok := ecs.Get[*component.Color](w, id)
	if !ok {
		s.log.Warn("register-color on non-color component", zap.Uint64("id", uint64(id)))
		return
	}
	if _, inst, ok := ecs.FindAncestor[*component.Instance](w, id); ok && inst.Handle != 0 {
		v.UpdateColor(inst.Handle, c.RGBA)
	}
}

// RegisterUV re-meshes an already registered instance with overridden texture
// coordinates. UVs seen before the renderable registers are picked up by
// Register itself.
func (s *RenderableSystem) RegisterUV(w *ecs.World, v *visual.World, id ecs.ComponentId) {
	if _, ok := ecs.Get[*component.UV](w, id); !ok {
		s.log.Warn("register-uv on non-uv component", zap.Uint64("id", uint64(id)))
		return
	}
	_, inst, ok := ecs.FindAncestor[*component.Instance](w, id)
	if !ok || inst.Handle == 0 {
		return
	}
	parent := w.ParentOf(id)
	rid, r, ok := ecs.FindChild[*component.Renderable](w, parent)
	if !ok {
		s.log.Debug("uv without sibling renderable", zap.Uint64("id", uint64(id)))
		return
	}

	gpu, err := s.resolveMesh(w, rid, r)
	if err != nil {
		s.log.Warn("uv mesh resolution failed", zap.Uint64("id", uint64(id)), zap.Error(err))
		return
	}

	// Swap the instance's geometry, keeping placement, tint, and texture.
	old, _ := v.Instance(inst.Handle)
	v.Remove(inst.Handle)
	inst.Handle = v.Register(visual.GpuRenderable{Mesh: gpu, Material: r.Material}, old.Transform, old.Color, old.Texture)
}

// resolveMesh produces the GPU handle for a renderable's mesh, cloning it
// with sibling UV overrides when present.
func (s *RenderableSystem) resolveMesh(w *ecs.World, renderableId ecs.ComponentId, r *component.Renderable) (visual.MeshHandle, error) {
	cpu := r.Mesh
	parent := w.ParentOf(renderableId)
	if _, uv, ok := ecs.FindChild[*component.UV](w, parent); ok && len(uv.Coords) > 0 {
		if clone, ok := s.assets.CloneMeshWithUVs(cpu, uv.Coords); ok {
			cpu = clone
		}
	}
	return s.assets.GPUMeshHandle(s.uploader, cpu)
}
