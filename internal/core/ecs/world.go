package ecs

import (
	"errors"
	"fmt"
)

// Graph-shape errors. These are expected outcomes of ordinary misuse and are
// always returned, never panicked.
var (
	ErrMissingComponent = errors.New("component does not exist")
	ErrSelfParent       = errors.New("cannot parent component to itself")
	ErrCycle            = errors.New("cycle detected")
	ErrHasChildren      = errors.New("component has children; remove the subtree or detach children first")
)

type slot struct {
	generation uint32
	node       *ComponentNode // nil while the slot is free
}

// World owns the full arena of component nodes and is the sole authority for
// graph shape. Nothing outside World mutates parent/children links.
//
// Slots are reused through a free list; each reuse bumps the slot generation
// so stale ComponentIds stop resolving.
type World struct {
	slots    []slot
	freeList []uint32
	count    int
}

func NewWorld() *World {
	return &World{
		slots:    make([]slot, 0, 256),
		freeList: make([]uint32, 0, 64),
	}
}

// AddComponent inserts a root-less node and returns its id. Init hooks are
// not run here; that happens through InitComponentTree, which has access to
// a CommandQueue.
func (w *World) AddComponent(c Component) ComponentId {
	return w.AddComponentNamed(c.Name(), c)
}

// AddComponentNamed inserts a root-less node with an explicit stored name.
func (w *World) AddComponentNamed(name string, c Component) ComponentId {
	node := newComponentNode(c)
	node.Name = name

	var idx uint32
	if n := len(w.freeList); n > 0 {
		idx = w.freeList[n-1]
		w.freeList = w.freeList[:n-1]
		w.slots[idx].node = node
	} else {
		idx = uint32(len(w.slots))
		// Generations start at 1 so the zero ComponentId is never live.
		w.slots = append(w.slots, slot{generation: 1, node: node})
	}
	w.count++

	id := newComponentId(idx, w.slots[idx].generation)
	if s, ok := c.(IDSetter); ok {
		s.SetID(id)
	}
	return id
}

// Node returns the record for id, or nil if the id is absent or stale.
func (w *World) Node(id ComponentId) *ComponentNode {
	idx := id.Index()
	if id.IsZero() || int(idx) >= len(w.slots) {
		return nil
	}
	s := &w.slots[idx]
	if s.generation != id.Generation() {
		return nil
	}
	return s.node
}

// Len returns the number of live components.
func (w *World) Len() int { return w.count }

// All returns the ids of every live component, in arena order.
func (w *World) All() []ComponentId {
	out := make([]ComponentId, 0, w.count)
	for i := range w.slots {
		if w.slots[i].node != nil {
			out = append(out, newComponentId(uint32(i), w.slots[i].generation))
		}
	}
	return out
}

// ParentOf returns the parent id, or the zero id for roots and unknown ids.
func (w *World) ParentOf(id ComponentId) ComponentId {
	node := w.Node(id)
	if node == nil {
		return 0
	}
	return node.Parent
}

// ChildrenOf returns the ordered child list. The returned slice is owned by
// the World; callers must not mutate it.
func (w *World) ChildrenOf(id ComponentId) []ComponentId {
	node := w.Node(id)
	if node == nil {
		return nil
	}
	return node.Children
}

// IsAncestorOf reports whether ancestor appears on the parent chain of id.
func (w *World) IsAncestorOf(ancestor, id ComponentId) bool {
	for p := w.ParentOf(id); !p.IsZero(); p = w.ParentOf(p) {
		if p == ancestor {
			return true
		}
	}
	return false
}

// AddChild attaches child under parent.
//
// Fails if either id is absent, if parent == child, or if child is already
// an ancestor of parent (cycle). On success, child is first detached from
// any existing parent, then linked under parent exactly once, preserving
// insertion order in the parent's child list.
func (w *World) AddChild(parent, child ComponentId) error {
	parentNode := w.Node(parent)
	if parentNode == nil {
		return fmt.Errorf("parent: %w", ErrMissingComponent)
	}
	childNode := w.Node(child)
	if childNode == nil {
		return fmt.Errorf("child: %w", ErrMissingComponent)
	}
	if parent == child {
		return ErrSelfParent
	}
	if w.IsAncestorOf(child, parent) {
		return ErrCycle
	}

	w.DetachFromParent(child)

	childNode.Parent = parent
	if !containsId(parentNode.Children, child) {
		parentNode.Children = append(parentNode.Children, child)
	}
	return nil
}

// SetParent changes a component's parent. A zero parent detaches the child,
// making it a root; otherwise this is equivalent to AddChild(parent, child).
func (w *World) SetParent(child, parent ComponentId) error {
	if parent.IsZero() {
		if w.Node(child) == nil {
			return fmt.Errorf("child: %w", ErrMissingComponent)
		}
		w.DetachFromParent(child)
		return nil
	}
	return w.AddChild(parent, child)
}

// DetachFromParent clears the child's parent link and removes it from the old
// parent's child list. No-op if the child is already a root or unknown.
func (w *World) DetachFromParent(child ComponentId) {
	childNode := w.Node(child)
	if childNode == nil || childNode.Parent.IsZero() {
		return
	}
	oldParent := childNode.Parent
	childNode.Parent = 0

	parentNode := w.Node(oldParent)
	if parentNode == nil {
		// A child pointing at a vanished parent means the arena is corrupted;
		// this is a bug in World itself, not recoverable misuse.
		panic(fmt.Sprintf("ecs: child %d links to missing parent %d", child, oldParent))
	}
	parentNode.Children = removeId(parentNode.Children, child)
}

// RemoveComponentLeaf removes a single childless component. It fails when the
// node still has children, forcing callers to choose between detaching the
// children and removing the whole subtree. The Cleanup hook runs before the
// slot is freed when a queue is provided.
func (w *World) RemoveComponentLeaf(id ComponentId, q *CommandQueue) error {
	node := w.Node(id)
	if node == nil {
		return ErrMissingComponent
	}
	if len(node.Children) > 0 {
		return ErrHasChildren
	}

	if q != nil {
		node.Component.Cleanup(q, id)
	}
	w.DetachFromParent(id)
	w.free(id)
	return nil
}

// RemoveComponentSubtree removes root and every transitive descendant.
//
// Root is detached from its parent first so the parent never retains a link
// to a doomed child. Deletion is children-before-parents (reverse pre-order),
// clearing links before each slot is freed.
func (w *World) RemoveComponentSubtree(root ComponentId, q *CommandQueue) error {
	if w.Node(root) == nil {
		return ErrMissingComponent
	}

	w.DetachFromParent(root)

	order := make([]ComponentId, 0, 8)
	stack := []ComponentId{root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, id)
		stack = append(stack, w.ChildrenOf(id)...)
	}

	for i := len(order) - 1; i >= 0; i-- {
		id := order[i]
		node := w.Node(id)
		if node == nil {
			continue
		}
		if q != nil {
			node.Component.Cleanup(q, id)
		}
		node.Parent = 0
		node.Children = nil
		w.free(id)
	}
	return nil
}

// InitComponentTree runs Init hooks for root and all descendants, depth-first.
// Hooks only enqueue commands; nothing is applied until the queue is flushed.
func (w *World) InitComponentTree(root ComponentId, q *CommandQueue) {
	node := w.Node(root)
	if node == nil {
		return
	}
	node.Component.Init(q, root)

	children := append([]ComponentId(nil), node.Children...)
	for _, child := range children {
		w.InitComponentTree(child, q)
	}
}

func (w *World) free(id ComponentId) {
	idx := id.Index()
	s := &w.slots[idx]
	if s.node == nil || s.generation != id.Generation() {
		return
	}
	s.node = nil
	s.generation++
	w.freeList = append(w.freeList, idx)
	w.count--
}

// Get resolves id and type-asserts the payload. It returns false when the id
// is absent, stale, or the stored value is not a T; it never panics on a
// type mismatch.
func Get[T Component](w *World, id ComponentId) (T, bool) {
	var zero T
	node := w.Node(id)
	if node == nil {
		return zero, false
	}
	c, ok := node.Component.(T)
	if !ok {
		return zero, false
	}
	return c, true
}

// GetParent resolves the parent of id as a T.
func GetParent[T Component](w *World, id ComponentId) (ComponentId, T, bool) {
	var zero T
	parent := w.ParentOf(id)
	if parent.IsZero() {
		return 0, zero, false
	}
	c, ok := Get[T](w, parent)
	if !ok {
		return 0, zero, false
	}
	return parent, c, true
}

// FindAncestor walks strictly upward from id and returns the nearest ancestor
// whose payload is a T.
func FindAncestor[T Component](w *World, id ComponentId) (ComponentId, T, bool) {
	var zero T
	for p := w.ParentOf(id); !p.IsZero(); p = w.ParentOf(p) {
		if c, ok := Get[T](w, p); ok {
			return p, c, true
		}
	}
	return 0, zero, false
}

// FindChild returns the first direct child of id whose payload is a T,
// preserving child-list order.
func FindChild[T Component](w *World, id ComponentId) (ComponentId, T, bool) {
	var zero T
	for _, child := range w.ChildrenOf(id) {
		if c, ok := Get[T](w, child); ok {
			return child, c, true
		}
	}
	return 0, zero, false
}

func containsId(ids []ComponentId, id ComponentId) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func removeId(ids []ComponentId, id ComponentId) []ComponentId {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
