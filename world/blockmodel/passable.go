package blockmodel

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/world"
)

// Passable is the model of blocks that entities move through, such as cobwebs.
type Passable struct{}

func (Passable) BBox(cube.Pos, world.BlockSource) []cube.BBox {
	return nil
}

func (Passable) FaceSolid(cube.Pos, cube.Face, world.BlockSource) bool {
	return false
}
