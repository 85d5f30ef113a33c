package world

import (
	"errors"
	"math"
	"testing"

	"github.com/df-mc/dragonfly/server/block"
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/oomph-ac/kinetic/collision"
	"github.com/oomph-ac/kinetic/entity"
	"github.com/oomph-ac/kinetic/oerror"
	kblock "github.com/oomph-ac/kinetic/world/block"
	"github.com/sandertv/gophertunnel/minecraft/protocol"
)

func TestBlockAvailability(t *testing.T) {
	w := New(Config{Dimension: Flat})

	if _, ok := w.BlockState(cube.Pos{0, 0, 0}); ok {
		t.Fatal("blocks in unloaded chunks should be unavailable")
	}
	w.SetBlock(cube.Pos{1, 0, 1}, block.Stone{}, nil)
	if !w.ChunkLoaded(protocol.ChunkPos{0, 0}) {
		t.Fatal("setting a block should load its chunk")
	}
	if s, ok := w.BlockState(cube.Pos{2, 0, 2}); !ok || s.Solid {
		t.Fatalf("expected available air, got %+v (available %v)", s, ok)
	}
	if _, ok := w.BlockAt(cube.Pos{0, 16, 0}); ok {
		t.Fatal("positions above the dimension should be unavailable")
	}
	w.SetBlock(cube.Pos{0, -1, 0}, block.Stone{}, nil)
	if w.Block(cube.Pos{0, -1, 0}) != (block.Air{}) {
		t.Fatal("blocks outside of the dimension should not be set")
	}

	w.UnloadChunk(protocol.ChunkPos{0, 0})
	if _, ok := w.BlockState(cube.Pos{1, 0, 1}); ok {
		t.Fatal("unloaded chunk should no longer be available")
	}
}

func TestNegativeCoordinates(t *testing.T) {
	w := New(Config{})
	pos := cube.Pos{-1, 64, -17}
	w.SetBlock(pos, block.Stone{}, nil)
	if !w.ChunkLoaded(protocol.ChunkPos{-1, -2}) {
		t.Fatal("expected chunk -1, -2 to be loaded")
	}
	if w.Block(pos) != (block.Stone{}) {
		t.Fatalf("unexpected block %#v", w.Block(pos))
	}
	if w.Block(cube.Pos{15, 64, 15}) == (block.Stone{}) {
		t.Fatal("block leaked into another chunk position")
	}
}

func TestBlockStateDerivation(t *testing.T) {
	w := New(Config{Dimension: Flat})
	w.SetBlock(cube.Pos{0, 0, 0}, block.Stone{}, nil)
	w.SetBlock(cube.Pos{1, 0, 0}, block.Water{Still: true, Depth: 8}, nil)
	w.SetBlock(cube.Pos{2, 0, 0}, kblock.Cobweb{}, nil)
	w.SetBlock(cube.Pos{3, 0, 0}, kblock.Slab("custom:slab"), nil)
	w.SetBlock(cube.Pos{4, 0, 0}, kblock.Fixture{Name: "minecraft:soul_sand", Boxes: []cube.BBox{cube.Box(0, 0, 0, 1, 1, 1)}}, nil)

	tests := []struct {
		name  string
		pos   cube.Pos
		solid bool
		typ   collision.CollisionType
	}{
		{"stone", cube.Pos{0, 0, 0}, true, collision.CollisionTypeFull},
		{"water", cube.Pos{1, 0, 0}, false, collision.CollisionTypeEmpty},
		{"cobweb", cube.Pos{2, 0, 0}, false, collision.CollisionTypeEmpty},
		{"slab", cube.Pos{3, 0, 0}, true, collision.CollisionTypePartial},
		{"shape table override", cube.Pos{4, 0, 0}, true, collision.CollisionTypePartial},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, ok := w.BlockState(tt.pos)
			if !ok {
				t.Fatal("expected block to be available")
			}
			if s.Solid != tt.solid || s.Shape().Type() != tt.typ {
				t.Fatalf("expected solid=%v type=%v, got solid=%v type=%v", tt.solid, tt.typ, s.Solid, s.Shape().Type())
			}
		})
	}

	slab, _ := w.BlockState(cube.Pos{3, 0, 0})
	if slab.Boxes[0] != collision.Box(0, 0, 0, 1, 0.5, 1) {
		t.Fatalf("unexpected slab box %v", slab.Boxes[0])
	}
	if w.BlockName(cube.Pos{2, 0, 0}) != "minecraft:web" {
		t.Fatalf("unexpected cobweb name %q", w.BlockName(cube.Pos{2, 0, 0}))
	}
}

func TestCleanChunks(t *testing.T) {
	w := New(Config{Dimension: Flat})
	w.SetBlock(cube.Pos{0, 0, 0}, block.Stone{}, nil)
	w.SetBlock(cube.Pos{16 * 5, 0, 0}, block.Stone{}, nil)

	w.CleanChunks(2, protocol.ChunkPos{0, 0})
	if !w.ChunkLoaded(protocol.ChunkPos{0, 0}) {
		t.Fatal("chunk in range should stay loaded")
	}
	if w.ChunkLoaded(protocol.ChunkPos{5, 0}) {
		t.Fatal("chunk out of range should be unloaded")
	}
}

func TestSlotReuse(t *testing.T) {
	w := New(Config{Seed: 42})
	a, err := w.Spawn(entity.Config{Kind: entity.KindZombie})
	if err != nil {
		t.Fatalf("spawn: %v", err)
	}
	b, _ := w.Spawn(entity.Config{Kind: entity.KindItem})
	if a.ID().Index() != 0 || b.ID().Index() != 1 {
		t.Fatalf("unexpected slot indices %v and %v", a.ID(), b.ID())
	}

	if !w.RemoveEntity(a.ID()) {
		t.Fatal("expected removal to succeed")
	}
	if !a.Removed() {
		t.Fatal("removed entity should be marked as removed")
	}
	if w.RemoveEntity(a.ID()) {
		t.Fatal("removing a stale ID should fail")
	}
	if _, err := w.Entity(a.ID()); !errors.Is(err, oerror.ErrStaleEntity) {
		t.Fatalf("expected a stale entity error, got %v", err)
	}

	c, _ := w.Spawn(entity.Config{Kind: entity.KindTNT})
	if c.ID().Index() != 0 || c.ID().Generation() != 1 {
		t.Fatalf("expected the released slot to be reused with generation 1, got %v", c.ID())
	}
	if got, err := w.Entity(c.ID()); err != nil || got != c {
		t.Fatalf("expected to resolve the new entity, got %v (%v)", got, err)
	}
	if _, err := w.Entity(a.ID()); err == nil {
		t.Fatal("old ID should not resolve to the entity reusing its slot")
	}

	order := w.Entities()
	if len(order) != 2 || order[0] != b || order[1] != c {
		t.Fatalf("expected spawn order [b c], got %v", order)
	}
}

func TestSpawnValidation(t *testing.T) {
	w := New(Config{})
	id := uuid.New()
	if _, err := w.Spawn(entity.Config{Kind: entity.KindPlayer, UUID: id}); err != nil {
		t.Fatalf("spawn: %v", err)
	}
	if _, err := w.Spawn(entity.Config{Kind: entity.KindPlayer, UUID: id}); err == nil {
		t.Fatal("expected duplicate UUIDs to be rejected")
	}
	if e, ok := w.EntityByUUID(id); !ok || e.UUID() != id {
		t.Fatal("expected to find the entity by its UUID")
	}

	nan := mgl64.Vec3{0, math.NaN(), 0}
	if _, err := w.Spawn(entity.Config{Kind: entity.KindPlayer, Position: nan}); !errors.Is(err, oerror.ErrNonFinite) {
		t.Fatalf("expected a non-finite error, got %v", err)
	}
}

func TestEntitiesInBox(t *testing.T) {
	w := New(Config{})
	a, _ := w.Spawn(entity.Config{Kind: entity.KindPlayer, Position: mgl64.Vec3{0, 64, 0}})
	w.Spawn(entity.Config{Kind: entity.KindPlayer, Position: mgl64.Vec3{10, 64, 0}})
	item, _ := w.Spawn(entity.Config{Kind: entity.KindItem, Position: mgl64.Vec3{0.5, 64, 0}})

	obstacles := w.EntitiesInBox(collision.Box(-1, 64, -1, 1, 65, 1))
	if len(obstacles) != 2 || obstacles[0].ID != uint64(a.ID()) || obstacles[1].ID != uint64(item.ID()) {
		t.Fatalf("unexpected obstacles %+v", obstacles)
	}
	if obstacles[0].Box != a.BBox() {
		t.Fatalf("expected the box of the entity, got %v", obstacles[0].Box)
	}

	items := w.ItemsNear(a.ID(), a.BBox(), 0.5)
	if len(items) != 1 || items[0] != item {
		t.Fatalf("expected one nearby item, got %v", items)
	}
	if items := w.ItemsNear(item.ID(), item.BBox(), 0.5); len(items) != 0 {
		t.Fatalf("an item should not find itself, got %v", items)
	}
}

func TestDimensionByName(t *testing.T) {
	if d, ok := DimensionByName("flat"); !ok || d != Flat {
		t.Fatalf("expected the flat dimension, got %v", d)
	}
	if d, ok := DimensionByName("OVERWORLD"); !ok || d.Range() != Overworld.Range() {
		t.Fatalf("expected the overworld, got %v", d)
	}
	if _, ok := DimensionByName("nether"); ok {
		t.Fatal("unknown dimensions should not resolve")
	}
}
