package ecs

import "fmt"

// EntityID is a generational handle: the low 32 bits are a slot index and the
// high 32 bits the slot's generation at the time the entity was created.
// Handles to deleted entities never resolve again, even after slot reuse.
type EntityID uint64

// NilEntity is the zero value; no valid entity has this ID.
const NilEntity EntityID = 0

func makeID(index, gen uint32) EntityID {
	return EntityID(uint64(gen)<<32 | uint64(index))
}

// Index returns the slot index of the handle.
func (id EntityID) Index() uint32 { return uint32(id) }

// Generation returns the slot generation the handle was minted with.
func (id EntityID) Generation() uint32 { return uint32(id >> 32) }

func (id EntityID) String() string {
	if id == NilEntity {
		return "nil"
	}
	return fmt.Sprintf("%dv%d", id.Index(), id.Generation())
}

// ComponentType is a small integer key used to store/retrieve components.
type ComponentType uint8

// Component is implemented by every data struct stored in the world.
type Component interface {
	Type() ComponentType
}
