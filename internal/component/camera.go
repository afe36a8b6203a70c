package component

import (
	"github.com/catengine/engine/internal/core/ecs"
)

// CameraHandle identifies a registered camera within the camera system.
// Handles are assigned at registration and wrap on overflow.
type CameraHandle uint32

// Camera3D is a perspective camera. Its view derives from a sibling
// Transform; the projection comes from the fields below.
type Camera3D struct {
	Base
	FovDeg float32
	ZNear  float32
	ZFar   float32

	// Handle is runtime state, assigned by the camera system.
	Handle CameraHandle
}

// NewCamera3D returns a camera with the common defaults.
func NewCamera3D() *Camera3D {
	return &Camera3D{FovDeg: 60, ZNear: 0.1, ZFar: 100}
}

func (*Camera3D) Name() string { return "camera3d" }

func (c *Camera3D) Init(q *ecs.CommandQueue, id ecs.ComponentId) {
	q.QueueRegisterCamera3D(id)
}

func (c *Camera3D) Cleanup(q *ecs.CommandQueue, id ecs.ComponentId) {
	q.QueueRemoveCamera(id)
}

func (c *Camera3D) Encode() map[string]any {
	return map[string]any{
		"fov_deg": float64(c.FovDeg),
		"z_near":  float64(c.ZNear),
		"z_far":   float64(c.ZFar),
	}
}

func (c *Camera3D) Decode(data map[string]any) error {
	fov, err := requireNum(data, "fov_deg")
	if err != nil {
		return err
	}
	near, err := requireNum(data, "z_near")
	if err != nil {
		return err
	}
	far, err := requireNum(data, "z_far")
	if err != nil {
		return err
	}
	c.FovDeg = float32(fov)
	c.ZNear = float32(near)
	c.ZFar = float32(far)
	return nil
}

// Camera2D is an orthographic overlay camera. Its translation derives from a
// sibling Transform.
type Camera2D struct {
	Base
	Handle CameraHandle
}

func (*Camera2D) Name() string { return "camera2d" }

func (c *Camera2D) Init(q *ecs.CommandQueue, id ecs.ComponentId) {
	q.QueueRegisterCamera2D(id)
}

func (c *Camera2D) Cleanup(q *ecs.CommandQueue, id ecs.ComponentId) {
	q.QueueRemoveCamera(id)
}

var (
	_ ecs.Component = (*Camera3D)(nil)
	_ ecs.Component = (*Camera2D)(nil)
)
