package collision

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/kinetic/game"
	"github.com/oomph-ac/kinetic/oerror"
)

// BBox is an axis-aligned bounding box. The minimum corner must not exceed the maximum corner on any
// axis; Box does not check this, NewBBox does. All methods return new boxes and never mutate.
type BBox struct {
	Min, Max mgl64.Vec3
}

// Box returns a bounding box with the given corners. The caller guarantees min <= max on every axis.
func Box(minX, minY, minZ, maxX, maxY, maxZ float64) BBox {
	return BBox{Min: mgl64.Vec3{minX, minY, minZ}, Max: mgl64.Vec3{maxX, maxY, maxZ}}
}

// NewBBox validates and returns a bounding box spanning min to max. An error wrapping
// oerror.ErrMalformedBox is returned if a corner is not finite or min exceeds max on some axis.
func NewBBox(min, max mgl64.Vec3) (BBox, error) {
	if !game.Vec3Finite(min) || !game.Vec3Finite(max) {
		return BBox{}, oerror.Wrap(oerror.ErrMalformedBox, "non-finite corner %v -> %v", min, max)
	}
	for i := range 3 {
		if min[i] > max[i] {
			return BBox{}, oerror.Wrap(oerror.ErrMalformedBox, "min %v exceeds max %v on axis %d", min, max, i)
		}
	}
	return BBox{Min: min, Max: max}, nil
}

// FromCenterDims returns a box horizontally centred on (x, z) with its bottom face at y, measuring
// width on both horizontal axes and height vertically.
func FromCenterDims(x, y, z, width, height float64) BBox {
	h := width / 2
	return Box(x-h, y, z-h, x+h, y+height, z+h)
}

// FromCube converts a dragonfly bounding box.
func FromCube(b cube.BBox) BBox {
	return BBox{Min: b.Min(), Max: b.Max()}
}

// Cube converts the box to a dragonfly bounding box.
func (b BBox) Cube() cube.BBox {
	return cube.Box(b.Min[0], b.Min[1], b.Min[2], b.Max[0], b.Max[1], b.Max[2])
}

// Intersects reports whether the two boxes overlap on all three axes. Boxes that only touch do not
// intersect.
func (b BBox) Intersects(o BBox) bool {
	return b.Min[0] < o.Max[0] && b.Max[0] > o.Min[0] &&
		b.Min[1] < o.Max[1] && b.Max[1] > o.Min[1] &&
		b.Min[2] < o.Max[2] && b.Max[2] > o.Min[2]
}

// ExpandTowards grows the box along each axis in the direction of the signed delta: the max face
// moves for positive deltas and the min face for negative ones.
func (b BBox) ExpandTowards(dx, dy, dz float64) BBox {
	n := b
	d := [3]float64{dx, dy, dz}
	for i, v := range d {
		if v < 0 {
			n.Min[i] += v
		} else if v > 0 {
			n.Max[i] += v
		}
	}
	return n
}

// ExpandTowardsVec is ExpandTowards with the deltas taken from a vector.
func (b BBox) ExpandTowardsVec(v mgl64.Vec3) BBox {
	return b.ExpandTowards(v[0], v[1], v[2])
}

// OffsetRaw translates the box without resizing it.
func (b BBox) OffsetRaw(dx, dy, dz float64) BBox {
	d := mgl64.Vec3{dx, dy, dz}
	return BBox{Min: b.Min.Add(d), Max: b.Max.Add(d)}
}

// Translate is OffsetRaw with the offset taken from a vector.
func (b BBox) Translate(v mgl64.Vec3) BBox {
	return BBox{Min: b.Min.Add(v), Max: b.Max.Add(v)}
}

// Grow extends every face outwards by x, y and z respectively.
func (b BBox) Grow(x, y, z float64) BBox {
	d := mgl64.Vec3{x, y, z}
	return BBox{Min: b.Min.Sub(d), Max: b.Max.Add(d)}
}

// CutDownwards returns the slice of space directly below the box that a movement of dy (negative)
// sweeps through.
func (b BBox) CutDownwards(dy float64) BBox {
	return Box(b.Min[0], b.Min[1]+dy, b.Min[2], b.Max[0], b.Min[1], b.Max[2])
}

// CutUpwards returns the slice of space directly above the box that a movement of dy (positive)
// sweeps through.
func (b BBox) CutUpwards(dy float64) BBox {
	return Box(b.Min[0], b.Max[1], b.Min[2], b.Max[0], b.Max[1]+dy, b.Max[2])
}

// Center returns the centre point of the box.
func (b BBox) Center() mgl64.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Width returns the size of the box along the X axis.
func (b BBox) Width() float64 {
	return b.Max[0] - b.Min[0]
}

// Height returns the size of the box along the Y axis.
func (b BBox) Height() float64 {
	return b.Max[1] - b.Min[1]
}

// HasZeroVolume returns true if the bounding box is degenerate on every axis.
func (b BBox) HasZeroVolume() bool {
	return b.Min == b.Max
}
