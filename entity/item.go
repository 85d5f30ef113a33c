package entity

import "github.com/oomph-ac/kinetic/game"

// ItemStack is the stack carried by an item entity. Only the item name and count matter to the
// movement core, which merges stacks of equal names.
type ItemStack struct {
	Name  string
	Count int
}

type itemState struct {
	stack       ItemStack
	age         int
	pickupDelay int
}

func newItemState(stack ItemStack) itemState {
	if stack.Count <= 0 {
		stack.Count = 1
	}
	return itemState{stack: stack, pickupDelay: game.ItemPickupDelay}
}

// Stack returns the stack held by an item entity.
func (e *Entity) Stack() ItemStack {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.item.stack
}

// PickupDelay returns the remaining ticks before an item entity can be picked up.
func (e *Entity) PickupDelay() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.item.pickupDelay
}

// SetPickupDelay changes the pickup delay of an item entity. game.ItemNeverPickup disables pickup and
// merging entirely.
func (e *Entity) SetPickupDelay(delay int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.item.pickupDelay = delay
}

// TickItem counts down the pickup delay and ages an item entity. It returns true once the item has
// reached its despawn age.
func (e *Entity) TickItem() (despawn bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.kind != KindItem {
		return false
	}
	if e.item.pickupDelay > 0 && e.item.pickupDelay != game.ItemNeverPickup {
		e.item.pickupDelay--
	}
	age := e.item.age
	e.item.age++
	return age >= game.ItemDespawnTicks
}

// Mergeable reports whether the stack of an item entity can still take part in merging.
func (e *Entity) Mergeable() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mergeable()
}

func (e *Entity) mergeable() bool {
	return e.kind == KindItem &&
		e.item.pickupDelay != game.ItemNeverPickup &&
		e.item.age < game.ItemDespawnTicks &&
		e.item.stack.Count > 0 &&
		e.item.stack.Count < game.ItemMaxStack
}

// MergeFrom moves as many items as fit from the stack of other into the stack of e. It returns the
// amount moved and whether other is now empty. e and other must be different entities.
func (e *Entity) MergeFrom(other *Entity) (moved int, emptied bool) {
	if e == other {
		return 0, false
	}
	// Lock in ID order so two items merging into each other cannot deadlock.
	first, second := e, other
	if other.id < e.id {
		first, second = other, e
	}
	first.mu.Lock()
	defer first.mu.Unlock()
	second.mu.Lock()
	defer second.mu.Unlock()

	if !e.mergeable() || !other.mergeable() || e.item.stack.Name != other.item.stack.Name {
		return 0, false
	}
	space := game.ItemMaxStack - e.item.stack.Count
	moved = min(space, other.item.stack.Count)
	e.item.stack.Count += moved
	other.item.stack.Count -= moved
	return moved, other.item.stack.Count == 0
}
