package component

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/catengine/engine/internal/core/ecs"
)

// Color tints the nearest Instance ancestor's geometry.
type Color struct {
	Base
	RGBA mgl32.Vec4
}

// NewColor returns opaque white.
func NewColor() *Color {
	return &Color{RGBA: mgl32.Vec4{1, 1, 1, 1}}
}

func (*Color) Name() string { return "color" }

func (c *Color) Init(q *ecs.CommandQueue, id ecs.ComponentId) {
	q.QueueRegisterColor(id)
}

func (c *Color) Encode() map[string]any {
	return map[string]any{"rgba": encodeVec4(c.RGBA)}
}

func (c *Color) Decode(data map[string]any) error {
	rgba, err := vec4Field(data, "rgba")
	if err != nil {
		return err
	}
	c.RGBA = rgba
	return nil
}

var _ ecs.Component = (*Color)(nil)
