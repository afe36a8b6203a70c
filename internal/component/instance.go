package component

import (
	"github.com/catengine/engine/internal/core/ecs"
	"github.com/catengine/engine/internal/visual"
)

// Instance anchors a renderable subtree. Renderable and Transform components
// resolve to their nearest Instance ancestor, which owns exactly one slot in
// the visual instance cache.
//
// Handle is runtime state assigned when the subtree's renderable registers;
// it is never serialized.
type Instance struct {
	Base
	Handle visual.InstanceHandle
}

func (*Instance) Name() string { return "instance" }

var _ ecs.Component = (*Instance)(nil)
