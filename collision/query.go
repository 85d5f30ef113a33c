package collision

import (
	"math"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
)

// BlockState is the collision-relevant state of the block at a position. Boxes are in block-local
// coordinates; a solid block without boxes is a full cube.
type BlockState struct {
	Solid bool
	Boxes []BBox
}

// Shape returns the block-local voxel shape of the state.
func (s BlockState) Shape() VoxelShape {
	if !s.Solid {
		return Empty()
	}
	if len(s.Boxes) == 0 {
		return FullCube()
	}
	return FromBoxes(s.Boxes)
}

// BlockSource provides block collision data. A false ok means the data is unavailable, for example
// because the chunk is not loaded, and is treated as no obstruction.
type BlockSource interface {
	BlockState(pos cube.Pos) (state BlockState, ok bool)
}

// Obstacle is an entity reported by an EntitySource.
type Obstacle struct {
	ID  uint64
	Box BBox
}

// EntitySource provides the entities whose bounding box intersects a box.
type EntitySource interface {
	EntitiesInBox(box BBox) []Obstacle
}

// PositionedShape is a block shape in world coordinates along with the block it belongs to.
type PositionedShape struct {
	Pos   cube.Pos
	Shape VoxelShape
}

// PotentialBlockShapes returns the shapes of every solid block near the path of box moving by
// movement. The swept box is padded by one block on each face and the block range is half-open,
// walked Y, then Z, then X. Returned shapes are translated to world coordinates.
func PotentialBlockShapes(src BlockSource, box BBox, movement mgl64.Vec3) []PositionedShape {
	if src == nil {
		return nil
	}
	swept := box.ExpandTowardsVec(movement)
	minX, minY, minZ := int(math.Floor(swept.Min[0]-1)), int(math.Floor(swept.Min[1]-1)), int(math.Floor(swept.Min[2]-1))
	maxX, maxY, maxZ := int(math.Ceil(swept.Max[0]+1)), int(math.Ceil(swept.Max[1]+1)), int(math.Ceil(swept.Max[2]+1))

	var shapes []PositionedShape
	for y := minY; y < maxY; y++ {
		for z := minZ; z < maxZ; z++ {
			for x := minX; x < maxX; x++ {
				pos := cube.Pos{x, y, z}
				state, ok := src.BlockState(pos)
				if !ok || !state.Solid {
					continue
				}
				shapes = append(shapes, PositionedShape{Pos: pos, Shape: state.Shape().Translate(pos.Vec3())})
			}
		}
	}
	return shapes
}

// EntityCollisions returns the boxes of the entities intersecting box, excluding the entity with the
// ID self.
func EntityCollisions(src EntitySource, self uint64, box BBox) []BBox {
	if src == nil {
		return nil
	}
	var boxes []BBox
	for _, o := range src.EntitiesInBox(box) {
		if o.ID == self {
			continue
		}
		boxes = append(boxes, o.Box)
	}
	return boxes
}

// ProbeBox returns the box used to clamp movement. Purely vertical movement only needs the slice
// above or below the box; anything else uses the full sweep.
func ProbeBox(box BBox, movement mgl64.Vec3) BBox {
	if movement[0] == 0 && movement[2] == 0 {
		if movement[1] < 0 {
			return box.CutDownwards(movement[1])
		}
		return box.CutUpwards(movement[1])
	}
	return box.ExpandTowardsVec(movement)
}

// Resolve passes movement through every block shape and then every entity box in order, returning
// the movement that remains. Only obstructions touching the probe box (see ProbeBox) take part, and
// offsets are measured from box itself. It returns the zero vector as soon as the movement is fully
// blocked.
func Resolve(box, probe BBox, movement mgl64.Vec3, shapes []PositionedShape, entities []BBox) mgl64.Vec3 {
	result := movement
	for _, s := range shapes {
		if !s.Shape.CollidesWith(probe) {
			continue
		}
		result = s.Shape.CalculateCollisionOffset(box, result)
		if result == (mgl64.Vec3{}) {
			return mgl64.Vec3{}
		}
	}
	for _, b := range entities {
		if !b.Intersects(probe) {
			continue
		}
		result = Single(b).CalculateCollisionOffset(box, result)
		if result == (mgl64.Vec3{}) {
			return mgl64.Vec3{}
		}
	}
	return result
}

// HasObstruction reports whether any solid block intersects box.
func HasObstruction(src BlockSource, box BBox) bool {
	if src == nil {
		return false
	}
	minX, minY, minZ := int(math.Floor(box.Min[0])), int(math.Floor(box.Min[1])), int(math.Floor(box.Min[2]))
	maxX, maxY, maxZ := int(math.Ceil(box.Max[0])), int(math.Ceil(box.Max[1])), int(math.Ceil(box.Max[2]))
	for y := minY; y < maxY; y++ {
		for z := minZ; z < maxZ; z++ {
			for x := minX; x < maxX; x++ {
				pos := cube.Pos{x, y, z}
				state, ok := src.BlockState(pos)
				if !ok || !state.Solid {
					continue
				}
				if state.Shape().Translate(pos.Vec3()).CollidesWith(box) {
					return true
				}
			}
		}
	}
	return false
}
