package collision

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/kinetic/game"
)

// CollisionType classifies the geometry held by a VoxelShape.
type CollisionType uint8

const (
	CollisionTypeEmpty CollisionType = iota
	CollisionTypePartial
	CollisionTypeFull
)

func (t CollisionType) String() string {
	switch t {
	case CollisionTypeEmpty:
		return "empty"
	case CollisionTypePartial:
		return "partial"
	case CollisionTypeFull:
		return "full"
	}
	return "unknown"
}

// VoxelShape is the collision geometry of a block or entity, expressed as a union of boxes.
type VoxelShape struct {
	boxes []BBox
	typ   CollisionType
}

// Empty returns a shape with no geometry.
func Empty() VoxelShape {
	return VoxelShape{typ: CollisionTypeEmpty}
}

// unitCube is the box of a whole block in block-local coordinates.
var unitCube = Box(0, 0, 0, 1, 1, 1)

// Single returns a shape made of exactly one box. It is full only if the box is the whole unit cube.
func Single(b BBox) VoxelShape {
	if b == unitCube {
		return FullCube()
	}
	return VoxelShape{boxes: []BBox{b}, typ: CollisionTypePartial}
}

// Cube returns a shape spanning the given corners.
func Cube(minX, minY, minZ, maxX, maxY, maxZ float64) VoxelShape {
	return Single(Box(minX, minY, minZ, maxX, maxY, maxZ))
}

// FullCube returns the shape covering the whole unit block.
func FullCube() VoxelShape {
	return VoxelShape{boxes: []BBox{unitCube}, typ: CollisionTypeFull}
}

// FromBoxes returns a partial shape made of the boxes passed, or an empty shape if there are none.
func FromBoxes(boxes []BBox) VoxelShape {
	if len(boxes) == 0 {
		return Empty()
	}
	return VoxelShape{boxes: boxes, typ: CollisionTypePartial}
}

// Boxes returns the boxes making up the shape. The slice must not be modified.
func (s VoxelShape) Boxes() []BBox {
	return s.boxes
}

// Type returns the collision classification of the shape.
func (s VoxelShape) Type() CollisionType {
	return s.typ
}

// IsEmpty reports whether the shape has no geometry.
func (s VoxelShape) IsEmpty() bool {
	return s.typ == CollisionTypeEmpty
}

// CollidesWith reports whether any box of the shape intersects b.
func (s VoxelShape) CollidesWith(b BBox) bool {
	for _, box := range s.boxes {
		if box.Intersects(b) {
			return true
		}
	}
	return false
}

// Union returns a shape holding the boxes of both shapes, in order.
func (s VoxelShape) Union(o VoxelShape) VoxelShape {
	boxes := make([]BBox, 0, len(s.boxes)+len(o.boxes))
	boxes = append(boxes, s.boxes...)
	boxes = append(boxes, o.boxes...)
	return FromBoxes(boxes)
}

// Translate returns the shape moved by offset, keeping its classification.
func (s VoxelShape) Translate(offset mgl64.Vec3) VoxelShape {
	if len(s.boxes) == 0 {
		return s
	}
	boxes := make([]BBox, len(s.boxes))
	for i, b := range s.boxes {
		boxes[i] = b.Translate(offset)
	}
	return VoxelShape{boxes: boxes, typ: s.typ}
}

// CalculateCollisionOffset clamps movement so that box, moved by the result, does not pass into any
// box of the shape. Axes are resolved in the fixed order X, Y, Z, and each axis sweeps the box as
// already displaced by the axes resolved before it. The order decides which face wins at corners
// and steps and must not change.
func (s VoxelShape) CalculateCollisionOffset(box BBox, movement mgl64.Vec3) mgl64.Vec3 {
	if len(s.boxes) == 0 || movement.LenSqr() < game.CollisionEpsilon {
		return movement
	}

	result := movement
	moved := box
	for axis := range 3 {
		if movement[axis] == 0 {
			continue
		}
		result[axis] = s.clampAxis(axis, moved, movement[axis], result[axis])
		var offset mgl64.Vec3
		offset[axis] = result[axis]
		moved = moved.Translate(offset)
	}
	return result
}

// clampAxis resolves the offset along a single axis for a box that has already been moved by the
// offsets resolved on previous axes.
func (s VoxelShape) clampAxis(axis int, box BBox, delta, current float64) float64 {
	var sweep mgl64.Vec3
	sweep[axis] = delta
	swept := box.ExpandTowardsVec(sweep)

	for _, obstruction := range s.boxes {
		if !obstruction.Intersects(swept) {
			continue
		}
		// A box the moving box already sinks into yields an offset against the movement, pushing it back
		// out of the obstruction.
		if delta > 0 {
			current = math.Min(current, obstruction.Min[axis]-box.Max[axis])
		} else {
			current = math.Max(current, obstruction.Max[axis]-box.Min[axis])
		}
		if math.Abs(current) < game.CollisionEpsilon {
			current = 0
		}
	}
	return current
}
