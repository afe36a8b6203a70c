// Package scene serializes component subtrees to a generic tree of
// {type_name, data, components} nodes and rebuilds them through the
// component registry.
package scene

import (
	"fmt"

	"github.com/catengine/engine/internal/component"
	"github.com/catengine/engine/internal/core/ecs"
)

// Node is one serialized component: its stable type name, the data map the
// component's Encode produced, and its children in graph order.
type Node struct {
	TypeName   string         `json:"type_name" yaml:"type_name"`
	Data       map[string]any `json:"data" yaml:"data"`
	Components []*Node        `json:"components,omitempty" yaml:"components,omitempty"`
}

// Encode captures the subtree rooted at id.
func Encode(w *ecs.World, id ecs.ComponentId) (*Node, error) {
	record := w.Node(id)
	if record == nil {
		return nil, fmt.Errorf("encode: %w", ecs.ErrMissingComponent)
	}

	n := &Node{
		TypeName: record.Component.Name(),
		Data:     record.Component.Encode(),
	}
	for _, childId := range w.ChildrenOf(id) {
		child, err := Encode(w, childId)
		if err != nil {
			return nil, err
		}
		n.Components = append(n.Components, child)
	}
	return n, nil
}

// Decode rebuilds a subtree in w, returning the root's id. Components are
// created through the registry and wired with the same topology the tree
// describes; lifecycle hooks are not run here, so the caller decides when to
// initialize the subtree against a command queue.
func Decode(w *ecs.World, registry *component.Registry, n *Node) (ecs.ComponentId, error) {
	c, err := registry.New(n.TypeName)
	if err != nil {
		return 0, fmt.Errorf("decode %q: %w", n.TypeName, err)
	}
	if n.Data != nil {
		if err := c.Decode(n.Data); err != nil {
			return 0, fmt.Errorf("decode %q: %w", n.TypeName, err)
		}
	}

	id := w.AddComponent(c)
	for _, childNode := range n.Components {
		childId, err := Decode(w, registry, childNode)
		if err != nil {
			rollback(w, id)
			return 0, err
		}
		if err := w.AddChild(id, childId); err != nil {
			rollback(w, id)
			rollback(w, childId)
			return 0, fmt.Errorf("decode %q: link child: %w", n.TypeName, err)
		}
	}
	return id, nil
}

// rollback removes a partially built subtree so a failed decode leaves no
// components behind. The nodes were never initialized, so their cleanup
// commands go to a throwaway queue.
func rollback(w *ecs.World, id ecs.ComponentId) {
	_ = w.RemoveComponentSubtree(id, ecs.NewCommandQueue())
}
