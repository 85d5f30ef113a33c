package collision

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestShapeConstructors(t *testing.T) {
	if s := FullCube(); s.Type() != CollisionTypeFull || len(s.Boxes()) != 1 || s.Boxes()[0] != Box(0, 0, 0, 1, 1, 1) {
		t.Fatalf("unexpected full cube %+v", s)
	}
	if s := FromBoxes(nil); !s.IsEmpty() || s.Type() != CollisionTypeEmpty {
		t.Fatalf("expected empty shape from no boxes, got %v", s.Type())
	}
	if s := FromBoxes([]BBox{Box(0, 0, 0, 1, 0.5, 1)}); s.Type() != CollisionTypePartial {
		t.Fatalf("expected partial shape, got %v", s.Type())
	}
}

func TestUnion(t *testing.T) {
	slab := FromBoxes([]BBox{Box(0, 0, 0, 1, 0.5, 1)})
	stairs := FromBoxes([]BBox{Box(0, 0, 0, 1, 0.5, 1), Box(0, 0.5, 0, 1, 1, 0.5)})

	tests := []struct {
		name      string
		a, b      VoxelShape
		wantBoxes int
		wantType  CollisionType
	}{
		{"empty with empty", Empty(), Empty(), 0, CollisionTypeEmpty},
		{"empty with full", Empty(), FullCube(), 1, CollisionTypePartial},
		{"full with full", FullCube(), FullCube(), 2, CollisionTypePartial},
		{"slab with stairs", slab, stairs, 3, CollisionTypePartial},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := tt.a.Union(tt.b)
			if len(u.Boxes()) != tt.wantBoxes {
				t.Fatalf("expected %d boxes, got %d", tt.wantBoxes, len(u.Boxes()))
			}
			if u.Type() != tt.wantType {
				t.Fatalf("expected %v, got %v", tt.wantType, u.Type())
			}
		})
	}
}

func TestCollidesWith(t *testing.T) {
	s := FromBoxes([]BBox{Box(0, 0, 0, 1, 0.5, 1), Box(0, 0.5, 0, 1, 1, 0.5)})
	if !s.CollidesWith(Box(0.2, 0.6, 0.2, 0.4, 0.8, 0.4)) {
		t.Fatal("expected collision with the upper step")
	}
	if s.CollidesWith(Box(0.2, 0.6, 0.6, 0.4, 0.8, 0.8)) {
		t.Fatal("expected no collision above the lower step")
	}
}

func TestCollisionOffsetBlocksAgainstWall(t *testing.T) {
	wall := Single(Box(2, 0, 0, 3, 1, 1))
	got := wall.CalculateCollisionOffset(Box(0, 0, 0, 1, 1, 1), mgl64.Vec3{2, 0, 0})
	if got != (mgl64.Vec3{1, 0, 0}) {
		t.Fatalf("expected x to resolve to 1, got %v", got)
	}

	got = wall.CalculateCollisionOffset(Box(4, 0, 0, 5, 1, 1), mgl64.Vec3{-3, 0, 0})
	if got != (mgl64.Vec3{-1, 0, 0}) {
		t.Fatalf("expected x to resolve to -1 moving negative, got %v", got)
	}
}

func TestCollisionOffsetIdentity(t *testing.T) {
	wall := Single(Box(1, 0, 0, 2, 1, 1))
	for _, m := range []mgl64.Vec3{{}, {1e-4, 0, 0}, {1e-4, -1e-4, 2e-4}} {
		if got := wall.CalculateCollisionOffset(Box(0, 0, 0, 1, 1, 1), m); got != m {
			t.Fatalf("negligible movement %v should be returned unchanged, got %v", m, got)
		}
	}
	m := mgl64.Vec3{5, 5, 5}
	if got := Empty().CalculateCollisionOffset(Box(0, 0, 0, 1, 1, 1), m); got != m {
		t.Fatalf("empty shape should not clamp, got %v", got)
	}
}

func TestCollisionOffsetSnapsToZero(t *testing.T) {
	floor := Single(Box(0, 0, 0, 1, 1, 1))
	box := Box(0, 1+5e-8, 0, 1, 2, 1)
	got := floor.CalculateCollisionOffset(box, mgl64.Vec3{0, -0.5, 0})
	if got[1] != 0 {
		t.Fatalf("expected sub-epsilon gap to snap to 0, got %v", got[1])
	}
}

// resolveYFirst clamps Y before X, which is what the collision offset must not do.
func resolveYFirst(s VoxelShape, box BBox, m mgl64.Vec3) mgl64.Vec3 {
	y := s.CalculateCollisionOffset(box, mgl64.Vec3{0, m[1], 0})
	x := s.CalculateCollisionOffset(box.OffsetRaw(0, y[1], 0), mgl64.Vec3{m[0], 0, 0})
	return mgl64.Vec3{x[0], y[1], 0}
}

func TestCollisionOffsetAxisOrder(t *testing.T) {
	// An L made of a post standing level with the box and a beam capping it.
	l := FromBoxes([]BBox{
		Box(2, 0, 0, 3, 2, 1),
		Box(2, 2, 0, 5, 3, 1),
	})
	box := Box(0, 0, 0, 1, 1, 1)
	m := mgl64.Vec3{2, -1, 0}

	got := l.CalculateCollisionOffset(box, m)
	if got != (mgl64.Vec3{1, -1, 0}) {
		t.Fatalf("expected X-first resolution (1, -1, 0), got %v", got)
	}
	if alt := resolveYFirst(l, box, m); alt == got {
		t.Fatalf("Y-first resolution should differ from X-first, both gave %v", got)
	}
}

func TestCollisionOffsetNeverExceedsDesired(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	obstruction := Single(Box(3, 3, 3, 4, 4, 4))
	for range 500 {
		box := FromCenterDims(r.Float64()*6, r.Float64()*6, r.Float64()*6, 0.6, 1.8)
		if box.Intersects(obstruction.Boxes()[0]) {
			continue
		}
		m := mgl64.Vec3{r.Float64()*4 - 2, r.Float64()*4 - 2, r.Float64()*4 - 2}
		got := obstruction.CalculateCollisionOffset(box, m)
		for axis := range 3 {
			if math.Abs(got[axis]) > math.Abs(m[axis])+1e-12 {
				t.Fatalf("axis %d grew from %v to %v (box %v)", axis, m[axis], got[axis], box)
			}
			if got[axis] != 0 && math.Signbit(got[axis]) != math.Signbit(m[axis]) {
				t.Fatalf("axis %d reversed from %v to %v (box %v)", axis, m[axis], got[axis], box)
			}
		}
	}
}

func TestTranslateKeepsType(t *testing.T) {
	s := FullCube().Translate(mgl64.Vec3{3, 4, 5})
	if s.Type() != CollisionTypeFull || s.Boxes()[0] != Box(3, 4, 5, 4, 5, 6) {
		t.Fatalf("unexpected translated cube %+v", s)
	}
}

func TestCollisionOffsetPushesOutOfOverlap(t *testing.T) {
	tests := []struct {
		name     string
		shape    VoxelShape
		box      BBox
		movement mgl64.Vec3
		want     mgl64.Vec3
	}{
		{"sunk into floor", FullCube(), Box(0.2, 0.9, 0.2, 0.8, 2.85, 0.8), mgl64.Vec3{0, -0.08, 0}, mgl64.Vec3{0, 0.1, 0}},
		{"overlapping ahead", Single(Box(0.2, 0, 0, 1.2, 1, 1)), Box(0, 0, 0, 1, 1, 1), mgl64.Vec3{0.5, 0, 0}, mgl64.Vec3{-0.8, 0, 0}},
		{"overlapping behind", Single(Box(-0.5, 0, 0, 0.25, 1, 1)), Box(0, 0, 0, 1, 1, 1), mgl64.Vec3{-0.5, 0, 0}, mgl64.Vec3{0.25, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.shape.CalculateCollisionOffset(tt.box, tt.movement)
			for axis := range 3 {
				if math.Abs(got[axis]-tt.want[axis]) > 1e-9 {
					t.Fatalf("expected %v, got %v", tt.want, got)
				}
			}
		})
	}
}

func TestSingleClassification(t *testing.T) {
	tests := []struct {
		name  string
		shape VoxelShape
		want  CollisionType
	}{
		{"unit cube", Single(Box(0, 0, 0, 1, 1, 1)), CollisionTypeFull},
		{"unit cube corners", Cube(0, 0, 0, 1, 1, 1), CollisionTypeFull},
		{"offset block", Single(Box(2, 0, 0, 3, 1, 1)), CollisionTypePartial},
		{"slab corners", Cube(0, 0, 0, 1, 0.5, 1), CollisionTypePartial},
		{"entity box", Single(FromCenterDims(0.5, 1, 0.5, 0.6, 1.8)), CollisionTypePartial},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.shape.Type(); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
