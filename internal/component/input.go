package component

import (
	"fmt"

	"github.com/catengine/engine/internal/core/ecs"
)

// Input drives a child Transform from WASD movement and Q/E roll.
type Input struct {
	Base
	Speed float32
}

func (*Input) Name() string { return "input" }

func (i *Input) Init(q *ecs.CommandQueue, id ecs.ComponentId) {
	q.QueueRegisterInput(id)
}

func (i *Input) Encode() map[string]any {
	return map[string]any{"speed": float64(i.Speed)}
}

func (i *Input) Decode(data map[string]any) error {
	speed, err := requireNum(data, "speed")
	if err != nil {
		return err
	}
	i.Speed = float32(speed)
	return nil
}

// Axis names accepted by InputTransformMode.
const (
	AxisX = "x"
	AxisY = "y"
	AxisZ = "z"
)

// InputTransformMode tunes how a sibling Input maps keys onto the transform:
// which axis is "forward" for W/S and which axis Q/E roll around.
type InputTransformMode struct {
	Base
	ForwardAxis string // "y" or "z"
	RollAxis    string // "x", "y" or "z"
}

// NewInputTransformMode returns the default 2D-style mapping.
func NewInputTransformMode() *InputTransformMode {
	return &InputTransformMode{ForwardAxis: AxisY, RollAxis: AxisZ}
}

func (*InputTransformMode) Name() string { return "input_transform_mode" }

func (m *InputTransformMode) Encode() map[string]any {
	return map[string]any{
		"forward_axis": m.ForwardAxis,
		"roll_axis":    m.RollAxis,
	}
}

func (m *InputTransformMode) Decode(data map[string]any) error {
	forward, ok := stringField(data, "forward_axis")
	if !ok {
		return fmt.Errorf("missing field %q", "forward_axis")
	}
	roll, ok := stringField(data, "roll_axis")
	if !ok {
		return fmt.Errorf("missing field %q", "roll_axis")
	}
	switch forward {
	case AxisY, AxisZ:
	default:
		return fmt.Errorf("invalid forward_axis %q", forward)
	}
	switch roll {
	case AxisX, AxisY, AxisZ:
	default:
		return fmt.Errorf("invalid roll_axis %q", roll)
	}
	m.ForwardAxis = forward
	m.RollAxis = roll
	return nil
}

var (
	_ ecs.Component = (*Input)(nil)
	_ ecs.Component = (*InputTransformMode)(nil)
)
