package component

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/catengine/engine/internal/core/ecs"
	"github.com/catengine/engine/internal/visual"
)

// Transform places its nearest Instance ancestor in world space.
type Transform struct {
	Base
	Local visual.Transform
}

// NewTransform creates an identity transform component.
func NewTransform() *Transform {
	return &Transform{Local: visual.NewTransform()}
}

func (*Transform) Name() string { return "transform" }

func (t *Transform) Init(q *ecs.CommandQueue, id ecs.ComponentId) {
	t.Local.RecomputeModel()
	q.QueueRegisterTransform(id)
}

func (t *Transform) Cleanup(q *ecs.CommandQueue, id ecs.ComponentId) {
	q.QueueRemoveTransform(id)
}

// Set replaces the local transform and queues the visual update.
func (t *Transform) Set(q *ecs.CommandQueue, id ecs.ComponentId, local visual.Transform) {
	local.RecomputeModel()
	t.Local = local
	q.QueueUpdateTransform(id, local)
}

func (t *Transform) Encode() map[string]any {
	return map[string]any{
		"translation": encodeVec3(t.Local.Translation),
		"rotation": []any{
			float64(t.Local.Rotation.W),
			float64(t.Local.Rotation.V[0]),
			float64(t.Local.Rotation.V[1]),
			float64(t.Local.Rotation.V[2]),
		},
		"scale": encodeVec3(t.Local.Scale),
	}
}

func (t *Transform) Decode(data map[string]any) error {
	tr := visual.NewTransform()
	if v, err := vec3Field(data, "translation"); err == nil {
		tr.Translation = v
	}
	if v, err := vec3Field(data, "scale"); err == nil {
		tr.Scale = v
	}
	if q, err := floatSlice(data, "rotation", 4); err == nil {
		tr.Rotation = mgl32.Quat{
			W: float32(q[0]),
			V: mgl32.Vec3{float32(q[1]), float32(q[2]), float32(q[3])},
		}
	}
	tr.RecomputeModel()
	t.Local = tr
	return nil
}

var _ ecs.Component = (*Transform)(nil)
