package ecs

// ComponentId encodes a 32-bit arena index in the lower bits and a 32-bit
// generation in the upper bits. The generation increments when a slot is
// freed, so a stale id held across a removal never resolves to an unrelated
// node. The zero value is never a live id.
type ComponentId uint64

func newComponentId(index uint32, generation uint32) ComponentId {
	return ComponentId(uint64(generation)<<32 | uint64(index))
}

func (id ComponentId) Index() uint32      { return uint32(id) }
func (id ComponentId) Generation() uint32 { return uint32(id >> 32) }
func (id ComponentId) IsZero() bool       { return id == 0 }
