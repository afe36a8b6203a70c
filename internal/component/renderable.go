package component

import (
	"github.com/catengine/engine/internal/core/ecs"
	"github.com/catengine/engine/internal/visual"
)

// Renderable gives its nearest Instance ancestor visible geometry.
type Renderable struct {
	Base
	Mesh     visual.CpuMeshHandle
	Material visual.MaterialHandle
}

func (*Renderable) Name() string { return "renderable" }

func (r *Renderable) Init(q *ecs.CommandQueue, id ecs.ComponentId) {
	q.QueueRegisterRenderable(id)
}

func (r *Renderable) Cleanup(q *ecs.CommandQueue, id ecs.ComponentId) {
	q.QueueRemoveRenderable(id)
}

func (r *Renderable) Encode() map[string]any {
	return map[string]any{
		"mesh":     float64(r.Mesh),
		"material": float64(r.Material),
	}
}

func (r *Renderable) Decode(data map[string]any) error {
	mesh, err := requireNum(data, "mesh")
	if err != nil {
		return err
	}
	material, err := requireNum(data, "material")
	if err != nil {
		return err
	}
	r.Mesh = visual.CpuMeshHandle(mesh)
	r.Material = visual.MaterialHandle(material)
	return nil
}

var _ ecs.Component = (*Renderable)(nil)
