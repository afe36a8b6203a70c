package component

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/catengine/engine/internal/core/ecs"
)

// UV overrides the per-vertex texture coordinates of the sibling renderable's
// mesh. The renderable system clones the mesh with these coordinates applied.
type UV struct {
	Base
	Coords []mgl32.Vec2
}

func (*UV) Name() string { return "uv" }

func (u *UV) Init(q *ecs.CommandQueue, id ecs.ComponentId) {
	q.QueueRegisterUV(id)
}

func (u *UV) Encode() map[string]any {
	coords := make([]any, 0, len(u.Coords))
	for _, c := range u.Coords {
		coords = append(coords, []any{float64(c[0]), float64(c[1])})
	}
	return map[string]any{"coords": coords}
}

func (u *UV) Decode(data map[string]any) error {
	raw, ok := data["coords"].([]any)
	if !ok {
		return fmt.Errorf("missing or non-array field %q", "coords")
	}
	coords := make([]mgl32.Vec2, 0, len(raw))
	for i, e := range raw {
		pair, ok := e.([]any)
		if !ok || len(pair) != 2 {
			return fmt.Errorf("coords element %d is not a 2-element array", i)
		}
		var v mgl32.Vec2
		for j, p := range pair {
			switch x := p.(type) {
			case float64:
				v[j] = float32(x)
			case int:
				v[j] = float32(x)
			default:
				return fmt.Errorf("coords element %d is not numeric", i)
			}
		}
		coords = append(coords, v)
	}
	u.Coords = coords
	return nil
}

var _ ecs.Component = (*UV)(nil)
