package collision

import (
	"math"
	"testing"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
)

type mockBlocks struct {
	states   map[cube.Pos]BlockState
	unloaded map[cube.Pos]bool
}

func (m mockBlocks) BlockState(pos cube.Pos) (BlockState, bool) {
	if m.unloaded[pos] {
		return BlockState{}, false
	}
	return m.states[pos], true
}

type mockEntities []Obstacle

func (m mockEntities) EntitiesInBox(box BBox) []Obstacle {
	var out []Obstacle
	for _, o := range m {
		if o.Box.Intersects(box) {
			out = append(out, o)
		}
	}
	return out
}

func TestPotentialBlockShapes(t *testing.T) {
	src := mockBlocks{
		states: map[cube.Pos]BlockState{
			{2, 0, 0}:  {Solid: true},
			{0, -1, 0}: {Solid: true, Boxes: []BBox{Box(0, 0, 0, 1, 0.5, 1)}},
			{1, 0, 0}:  {Solid: false},
			{9, 9, 9}:  {Solid: true},
		},
		unloaded: map[cube.Pos]bool{{-1, 0, 0}: true},
	}

	shapes := PotentialBlockShapes(src, Box(0, 0, 0, 1, 1, 1), mgl64.Vec3{1, 0, 0})
	if len(shapes) != 2 {
		t.Fatalf("expected 2 shapes, got %d: %+v", len(shapes), shapes)
	}

	// The range is walked Y first so the slab below comes before the wall.
	if shapes[0].Pos != (cube.Pos{0, -1, 0}) || shapes[0].Shape.Type() != CollisionTypePartial {
		t.Fatalf("unexpected first shape %+v", shapes[0])
	}
	if got := shapes[0].Shape.Boxes()[0]; got != Box(0, -1, 0, 1, -0.5, 1) {
		t.Fatalf("slab should be translated to world space, got %v", got)
	}
	if shapes[1].Pos != (cube.Pos{2, 0, 0}) || shapes[1].Shape.Type() != CollisionTypeFull {
		t.Fatalf("unexpected second shape %+v", shapes[1])
	}
	if got := shapes[1].Shape.Boxes()[0]; got != Box(2, 0, 0, 3, 1, 1) {
		t.Fatalf("full cube should be translated to world space, got %v", got)
	}
}

func TestPotentialBlockShapesNilSource(t *testing.T) {
	if shapes := PotentialBlockShapes(nil, Box(0, 0, 0, 1, 1, 1), mgl64.Vec3{1, 0, 0}); shapes != nil {
		t.Fatalf("expected no shapes without a source, got %v", shapes)
	}
}

func TestEntityCollisionsExcludesSelf(t *testing.T) {
	src := mockEntities{
		{ID: 1, Box: Box(0, 0, 0, 1, 1, 1)},
		{ID: 2, Box: Box(0.5, 0, 0, 1.5, 1, 1)},
		{ID: 3, Box: Box(5, 0, 0, 6, 1, 1)},
	}
	boxes := EntityCollisions(src, 1, Box(0, 0, 0, 1, 1, 1))
	if len(boxes) != 1 || boxes[0] != src[1].Box {
		t.Fatalf("expected only entity 2, got %v", boxes)
	}
}

func TestProbeBox(t *testing.T) {
	box := Box(0, 1, 0, 1, 2, 1)
	if got := ProbeBox(box, mgl64.Vec3{0, -0.5, 0}); got != Box(0, 0.5, 0, 1, 1, 1) {
		t.Fatalf("falling should probe below, got %v", got)
	}
	if got := ProbeBox(box, mgl64.Vec3{0, 0.5, 0}); got != Box(0, 2, 0, 1, 2.5, 1) {
		t.Fatalf("rising should probe above, got %v", got)
	}
	if got := ProbeBox(box, mgl64.Vec3{1, -0.5, 0}); got != Box(0, 0.5, 0, 2, 2, 1) {
		t.Fatalf("diagonal movement should sweep, got %v", got)
	}
}

func TestResolveShortCircuits(t *testing.T) {
	box := Box(0, 1, 0, 1, 2, 1)
	m := mgl64.Vec3{0, -0.5, 0}
	shapes := []PositionedShape{
		{Pos: cube.Pos{0, 0, 0}, Shape: FullCube()},
	}
	got := Resolve(box, ProbeBox(box, m), m, shapes, []BBox{Box(0, -5, 0, 1, 0.75, 1)})
	if got != (mgl64.Vec3{}) {
		t.Fatalf("resting on a block should block all movement, got %v", got)
	}
}

func TestResolveEntities(t *testing.T) {
	box := Box(0, 0, 0, 1, 1, 1)
	m := mgl64.Vec3{2, 0, 0}
	got := Resolve(box, ProbeBox(box, m), m, nil, []BBox{Box(1.5, 0, 0, 2.5, 1, 1)})
	if got != (mgl64.Vec3{0.5, 0, 0}) {
		t.Fatalf("expected to stop against the entity, got %v", got)
	}
}

func TestResolveOverlappingEntity(t *testing.T) {
	src := mockEntities{
		{ID: 1, Box: Box(0.2, 0, 0.2, 0.8, 1.95, 0.8)},
		{ID: 2, Box: Box(0.6, 0, 0.2, 1.2, 1.95, 0.8)},
	}
	box := src[0].Box
	m := mgl64.Vec3{0.5, 0, 0}
	entities := EntityCollisions(src, 1, box)
	if len(entities) != 1 {
		t.Fatalf("expected the overlapping entity to be gathered, got %v", entities)
	}
	got := Resolve(box, ProbeBox(box, m), m, nil, entities)
	if math.Abs(got[0]+0.2) > 1e-9 || got[1] != 0 || got[2] != 0 {
		t.Fatalf("expected to be pushed back out of the entity, got %v", got)
	}
}

func TestHasObstruction(t *testing.T) {
	src := mockBlocks{states: map[cube.Pos]BlockState{{0, 0, 0}: {Solid: true}}}
	if !HasObstruction(src, Box(0.2, 0.5, 0.2, 0.8, 1.5, 0.8)) {
		t.Fatal("expected obstruction")
	}
	if HasObstruction(src, Box(0.2, 1, 0.2, 0.8, 2, 0.8)) {
		t.Fatal("box resting on top should not be obstructed")
	}
}
