package entity

import (
	"testing"

	"github.com/oomph-ac/kinetic/game"
)

func TestItemDespawn(t *testing.T) {
	e := New(NewID(0, 0), Config{Kind: KindItem, Item: ItemStack{Name: "minecraft:dirt", Count: 3}})
	for i := range game.ItemDespawnTicks {
		if e.TickItem() {
			t.Fatalf("despawned early at tick %d", i)
		}
	}
	if !e.TickItem() {
		t.Fatal("expected despawn once the item reached its despawn age")
	}
	if e.PickupDelay() != 0 {
		t.Fatalf("pickup delay should have run out, got %d", e.PickupDelay())
	}
}

func TestItemNeverPickupDelayIsKept(t *testing.T) {
	e := New(NewID(0, 0), Config{Kind: KindItem})
	e.SetPickupDelay(game.ItemNeverPickup)
	e.TickItem()
	if e.PickupDelay() != game.ItemNeverPickup {
		t.Fatalf("expected delay to stay at %d, got %d", game.ItemNeverPickup, e.PickupDelay())
	}
	if e.Mergeable() {
		t.Fatal("items that can never be picked up should not merge")
	}
}

func TestMergeFrom(t *testing.T) {
	a := New(NewID(0, 0), Config{Kind: KindItem, Item: ItemStack{Name: "minecraft:stone", Count: 60}})
	b := New(NewID(1, 0), Config{Kind: KindItem, Item: ItemStack{Name: "minecraft:stone", Count: 10}})
	c := New(NewID(2, 0), Config{Kind: KindItem, Item: ItemStack{Name: "minecraft:dirt", Count: 10}})

	if moved, _ := a.MergeFrom(c); moved != 0 {
		t.Fatalf("different items should not merge, moved %d", moved)
	}
	moved, emptied := a.MergeFrom(b)
	if moved != 4 || emptied {
		t.Fatalf("expected 4 items moved without emptying, got %d (emptied %v)", moved, emptied)
	}
	if a.Stack().Count != game.ItemMaxStack || b.Stack().Count != 6 {
		t.Fatalf("unexpected counts %d and %d", a.Stack().Count, b.Stack().Count)
	}
	if moved, _ := a.MergeFrom(b); moved != 0 {
		t.Fatalf("full stacks should not take more items, moved %d", moved)
	}

	moved, emptied = b.MergeFrom(New(NewID(3, 0), Config{Kind: KindItem, Item: ItemStack{Name: "minecraft:stone", Count: 2}}))
	if moved != 2 || !emptied {
		t.Fatalf("expected the small stack to be absorbed, got %d (emptied %v)", moved, emptied)
	}
}
