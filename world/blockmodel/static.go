package blockmodel

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/world"
)

// Static is a model with a fixed set of block-local boxes that does not depend on neighbouring
// blocks.
type Static struct {
	Boxes []cube.BBox
}

func (s Static) BBox(cube.Pos, world.BlockSource) []cube.BBox {
	return s.Boxes
}

// FaceSolid reports whether one of the boxes covers the whole face.
func (s Static) FaceSolid(_ cube.Pos, face cube.Face, _ world.BlockSource) bool {
	for _, bb := range s.Boxes {
		min, max := bb.Min(), bb.Max()
		switch face {
		case cube.FaceDown, cube.FaceUp:
			if bb.Width() != 1 || bb.Length() != 1 {
				continue
			}
			if (face == cube.FaceDown && min[1] == 0) || (face == cube.FaceUp && max[1] == 1) {
				return true
			}
		case cube.FaceWest, cube.FaceEast:
			if bb.Height() != 1 || bb.Length() != 1 {
				continue
			}
			if (face == cube.FaceWest && min[0] == 0) || (face == cube.FaceEast && max[0] == 1) {
				return true
			}
		case cube.FaceNorth, cube.FaceSouth:
			if bb.Width() != 1 || bb.Height() != 1 {
				continue
			}
			if (face == cube.FaceNorth && min[2] == 0) || (face == cube.FaceSouth && max[2] == 1) {
				return true
			}
		}
	}
	return false
}
