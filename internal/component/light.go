package component

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/catengine/engine/internal/core/ecs"
)

// PointLight emits from the position of its nearest Instance ancestor's
// transform.
type PointLight struct {
	Base
	Intensity float32
	Distance  float32
	Color     mgl32.Vec3
}

// NewPointLight returns a white light with sane falloff.
func NewPointLight() *PointLight {
	return &PointLight{Intensity: 1, Distance: 10, Color: mgl32.Vec3{1, 1, 1}}
}

func (*PointLight) Name() string { return "point_light" }

func (l *PointLight) Init(q *ecs.CommandQueue, id ecs.ComponentId) {
	q.QueueRegisterLight(id)
}

func (l *PointLight) Encode() map[string]any {
	return map[string]any{
		"intensity": float64(l.Intensity),
		"distance":  float64(l.Distance),
		"color":     encodeVec3(l.Color),
	}
}

func (l *PointLight) Decode(data map[string]any) error {
	intensity, err := requireNum(data, "intensity")
	if err != nil {
		return err
	}
	distance, err := requireNum(data, "distance")
	if err != nil {
		return err
	}
	color, err := vec3Field(data, "color")
	if err != nil {
		return err
	}
	l.Intensity = float32(intensity)
	l.Distance = float32(distance)
	l.Color = color
	return nil
}

var _ ecs.Component = (*PointLight)(nil)
