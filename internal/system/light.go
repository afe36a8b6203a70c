package system

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/catengine/engine/internal/component"
	"github.com/catengine/engine/internal/core/ecs"
	"github.com/catengine/engine/internal/visual"
)

// LightSystem projects PointLight components into the visual light list,
// keyed by component id so repeated registrations update in place.
type LightSystem struct {
	log        *zap.Logger
	registered []ecs.ComponentId
}

func NewLightSystem(log *zap.Logger) *LightSystem {
	return &LightSystem{log: log}
}

// Register picks up a PointLight. Its position resolves through the graph:
// nearest ancestor Transform, else a sibling Transform, else the origin.
func (s *LightSystem) Register(w *ecs.World, v *visual.World, id ecs.ComponentId) {
	light, ok := ecs.Get[*component.PointLight](w, id)
	if !ok {
		s.log.Warn("register-light on non-light component", zap.Uint64("id", uint64(id)))
		return
	}
	if !containsId(s.registered, id) {
		s.registered = append(s.registered, id)
	}
	s.upsert(w, v, id, light)
}

// TransformChanged re-positions every registered light in the changed
// Transform's neighborhood: the subtree under its parent, which covers both
// sibling lights and lights nested under the transform. Stale light ids are
// pruned as they are encountered.
func (s *LightSystem) TransformChanged(w *ecs.World, v *visual.World, transformId ecs.ComponentId, t visual.Transform) {
	root := w.ParentOf(transformId)
	if root.IsZero() {
		root = transformId
	}
	live := s.registered[:0]
	for _, id := range s.registered {
		light, ok := ecs.Get[*component.PointLight](w, id)
		if !ok {
			continue
		}
		live = append(live, id)
		if !w.IsAncestorOf(root, id) {
			continue
		}
		s.upsert(w, v, id, light)
	}
	s.registered = live
}

func (s *LightSystem) upsert(w *ecs.World, v *visual.World, id ecs.ComponentId, light *component.PointLight) {
	v.UpsertPointLight(visual.LightKey(id), visual.PointLight{
		Position:  lightPosition(w, id),
		Intensity: light.Intensity,
		Distance:  light.Distance,
		Color:     light.Color,
	})
}

func lightPosition(w *ecs.World, id ecs.ComponentId) mgl32.Vec3 {
	if _, tr, ok := ecs.FindAncestor[*component.Transform](w, id); ok {
		return tr.Local.ModelTranslation()
	}
	if _, tr, ok := siblingTransform(w, id); ok {
		return tr.Local.ModelTranslation()
	}
	return mgl32.Vec3{}
}

func containsId(ids []ecs.ComponentId, id ecs.ComponentId) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
