package system

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/catengine/engine/internal/component"
	"github.com/catengine/engine/internal/core/ecs"
	coresys "github.com/catengine/engine/internal/core/system"
	"github.com/catengine/engine/internal/input"
)

// InputSystem integrates held movement keys into the Transform child of each
// registered Input component. Phase 0 (Input).
//
// Topology is fixed: InputComponent → TransformComponent, exactly one level
// down. W/S move along the forward axis, A/D strafe along X, Q/E roll.
type InputSystem struct {
	log           *zap.Logger
	world         *ecs.World
	queue         *ecs.CommandQueue
	state         *input.State
	rotationSpeed float32

	inputs []ecs.ComponentId
}

func NewInputSystem(
	world *ecs.World,
	queue *ecs.CommandQueue,
	state *input.State,
	rotationSpeed float32,
	log *zap.Logger,
) *InputSystem {
	return &InputSystem{
		log:           log,
		world:         world,
		queue:         queue,
		state:         state,
		rotationSpeed: rotationSpeed,
	}
}

func (s *InputSystem) Phase() coresys.Phase { return coresys.PhaseInput }

// Register tracks an Input component id.
func (s *InputSystem) Register(id ecs.ComponentId) {
	if !containsId(s.inputs, id) {
		s.inputs = append(s.inputs, id)
	}
}

func (s *InputSystem) Update(dt time.Duration) {
	// Cheap early out for the common idle frame.
	if !s.state.AnyDown(input.KeyW, input.KeyA, input.KeyS, input.KeyD, input.KeyQ, input.KeyE) {
		return
	}

	var dx, forward, roll float32
	if s.state.IsDown(input.KeyA) {
		dx -= 1
	}
	if s.state.IsDown(input.KeyD) {
		dx += 1
	}
	if s.state.IsDown(input.KeyW) {
		forward -= 1
	}
	if s.state.IsDown(input.KeyS) {
		forward += 1
	}
	if s.state.IsDown(input.KeyQ) {
		roll -= 1
	}
	if s.state.IsDown(input.KeyE) {
		roll += 1
	}
	if dx == 0 && forward == 0 && roll == 0 {
		return
	}

	live := s.inputs[:0]
	for _, id := range s.inputs {
		in, ok := ecs.Get[*component.Input](s.world, id)
		if !ok {
			continue
		}
		live = append(live, id)
		s.drive(id, in, dx, forward, roll, dt)
	}
	s.inputs = live
}

// drive applies one tick of movement to the Transform directly beneath the
// Input component, enqueueing at most one update-transform.
func (s *InputSystem) drive(id ecs.ComponentId, in *component.Input, dx, forward, roll float32, dt time.Duration) {
	trId, tr, ok := ecs.FindChild[*component.Transform](s.world, id)
	if !ok {
		s.log.Debug("input without transform child", zap.Uint64("id", uint64(id)))
		return
	}

	mode := component.NewInputTransformMode()
	if _, m, ok := ecs.FindChild[*component.InputTransformMode](s.world, id); ok {
		mode = m
	}

	seconds := float32(dt.Seconds())
	local := tr.Local

	// Rotation first so translation happens in the updated frame.
	if roll != 0 {
		angle := roll * s.rotationSpeed * seconds
		inc := mgl32.QuatRotate(angle, rollAxis(mode.RollAxis))
		local.Rotation = local.Rotation.Mul(inc).Normalize()
	}

	if dx != 0 || forward != 0 {
		// Diagonal movement is normalized to unit length before scaling.
		if dx != 0 && forward != 0 {
			inv := float32(1 / math.Sqrt2)
			dx *= inv
			forward *= inv
		}
		step := in.Speed * seconds

		// Movement is in the transform's local (rotated) axes.
		var delta mgl32.Vec3
		switch mode.ForwardAxis {
		case component.AxisZ:
			delta = local.Rotation.Rotate(mgl32.Vec3{dx, 0, forward})
			local.Translation[0] += delta[0] * step
			local.Translation[2] += delta[2] * step
		default:
			delta = local.Rotation.Rotate(mgl32.Vec3{dx, forward, 0})
			local.Translation[0] += delta[0] * step
			local.Translation[1] += delta[1] * step
		}
	}

	tr.Set(s.queue, trId, local)
}

func rollAxis(name string) mgl32.Vec3 {
	switch name {
	case component.AxisX:
		return mgl32.Vec3{1, 0, 0}
	case component.AxisY:
		return mgl32.Vec3{0, 1, 0}
	default:
		return mgl32.Vec3{0, 0, 1}
	}
}
