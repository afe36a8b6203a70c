package system

import (
	"go.uber.org/zap"

	"github.com/catengine/engine/internal/component"
	"github.com/catengine/engine/internal/core/ecs"
	"github.com/catengine/engine/internal/visual"
)

// TransformSystem pushes transform state into the instance cache and fans
// changes out to the camera and light systems.
type TransformSystem struct {
	log     *zap.Logger
	cameras *CameraSystem
	lights  *LightSystem
}

func NewTransformSystem(cameras *CameraSystem, lights *LightSystem, log *zap.Logger) *TransformSystem {
	return &TransformSystem{
		log:     log,
		cameras: cameras,
		lights:  lights,
	}
}

// Changed handles register-transform: propagate the component's current
// local transform.
func (s *TransformSystem) Changed(w *ecs.World, v *visual.World, id ecs.ComponentId) {
	tr, ok := ecs.Get[*component.Transform](w, id)
	if !ok {
		s.log.Warn("register-transform on non-transform component", zap.Uint64("id", uint64(id)))
		return
	}
	s.propagate(w, v, id, tr.Local)
}

// Apply handles update-transform: store the payload on the component, then
// propagate it.
func (s *TransformSystem) Apply(w *ecs.World, v *visual.World, id ecs.ComponentId, t visual.Transform) {
	tr, ok := ecs.Get[*component.Transform](w, id)
	if !ok {
		s.log.Warn("update-transform on non-transform component", zap.Uint64("id", uint64(id)))
		return
	}
	tr.Local = t
	s.propagate(w, v, id, t)
}

// Remove resets the owning instance to identity placement. The component
// itself is already on its way out of the graph.
func (s *TransformSystem) Remove(w *ecs.World, v *visual.World, id ecs.ComponentId) {
	if _, inst, ok := ecs.FindAncestor[*component.Instance](w, id); ok && inst.Handle != 0 {
		v.UpdateTransform(inst.Handle, visual.NewTransform())
	}
}

func (s *TransformSystem) propagate(w *ecs.World, v *visual.World, id ecs.ComponentId, t visual.Transform) {
	if _, inst, ok := ecs.FindAncestor[*component.Instance](w, id); ok {
		if inst.Handle != 0 {
			v.UpdateTransform(inst.Handle, t)
		}
	} else {
		s.log.Debug("transform without instance ancestor", zap.Uint64("id", uint64(id)))
	}

	s.cameras.TransformChanged(w, v, id, t)
	s.lights.TransformChanged(w, v, id, t)
}
