package ecs

// Component is the payload a graph node carries. Implementations identify
// themselves by a stable name (used by the scene codec), react to lifecycle
// hooks, and optionally round-trip their data through a generic key-value map.
//
// Init runs exactly once, when the component's tree is initialized against a
// CommandQueue. It must not mutate World or the visual cache directly; it
// only enqueues commands, because the caller may be mid-iteration over other
// graph state.
type Component interface {
	// Name is the stable type name, e.g. "transform", "renderable".
	Name() string

	// Init is called when the component is attached into an initialized tree.
	Init(q *CommandQueue, id ComponentId)

	// Cleanup is the symmetric teardown hook, called before the node is removed.
	Cleanup(q *CommandQueue, id ComponentId)

	// Encode serializes data fields (never runtime handles) for the scene codec.
	Encode() map[string]any

	// Decode restores data fields from a previously encoded map.
	Decode(data map[string]any) error
}

// IDSetter is implemented by components that cache their own ComponentId.
// World calls it right after insertion.
type IDSetter interface {
	SetID(id ComponentId)
}

// ComponentNode is the World-owned record for a component payload plus its
// topology. A single flat arena of these records forms the component graph;
// each record carries its own parent/children handles.
//
// Invariants (maintained by World, which is the sole writer):
//   - the graph is a forest: at most one parent per node, no cycles
//   - parent/child links are mutually consistent
type ComponentNode struct {
	Name      string
	Component Component
	Parent    ComponentId // zero = root
	Children  []ComponentId
}

func newComponentNode(c Component) *ComponentNode {
	return &ComponentNode{
		Name:      c.Name(),
		Component: c,
	}
}
