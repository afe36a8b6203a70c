package component

import (
	"github.com/catengine/engine/internal/core/ecs"
)

// Cursor pins a child Transform to the mouse position, converted to
// normalized device coordinates each frame.
type Cursor struct {
	Base
}

func (*Cursor) Name() string { return "cursor" }

func (c *Cursor) Init(q *ecs.CommandQueue, id ecs.ComponentId) {
	q.QueueRegisterCursor(id)
}

var _ ecs.Component = (*Cursor)(nil)
