package entity

import "fmt"

// ID identifies an entity inside the world that spawned it. The low 32 bits hold the index of the slot
// the entity occupies and the high 32 bits the generation of that slot, so an ID held after the entity
// was removed never resolves to the entity that reuses the slot.
type ID uint64

// NewID packs a slot index and generation into an ID.
func NewID(index, generation uint32) ID {
	return ID(uint64(generation)<<32 | uint64(index))
}

// Index returns the slot index of the ID.
func (id ID) Index() uint32 {
	return uint32(id)
}

// Generation returns the slot generation of the ID.
func (id ID) Generation() uint32 {
	return uint32(id >> 32)
}

func (id ID) String() string {
	return fmt.Sprintf("%d@%d", id.Index(), id.Generation())
}
