package sim

import (
	"math"
	"sync"

	"github.com/df-mc/dragonfly/server/block"
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/oomph-ac/kinetic/collision"
	"github.com/oomph-ac/kinetic/game"
)

var (
	blockNameMapping     map[uint64]string
	blockNameMappingOnce sync.Once
)

func initBlockNameMapping() {
	blockNameMapping = make(map[uint64]string, len(world.Blocks()))
	for _, b := range world.Blocks() {
		x, y := b.Hash()
		if x == 0 && y == math.MaxUint64 {
			continue
		}
		name, _ := b.EncodeBlock()
		blockNameMapping[world.BlockHash(b)] = name
	}
}

// BlockName returns the canonical name of a block.
func BlockName(b world.Block) string {
	blockNameMappingOnce.Do(initBlockNameMapping)
	if n, ok := blockNameMapping[world.BlockHash(b)]; ok {
		return n
	}
	n, _ := b.EncodeBlock()
	return n
}

// BlockFriction returns the slipperiness of the block.
func BlockFriction(b world.Block) float64 {
	if f, ok := b.(block.Frictional); ok {
		return f.Friction()
	}

	switch BlockName(b) {
	case "minecraft:slime":
		return 0.8
	case "minecraft:ice", "minecraft:packed_ice", "minecraft:frosted_ice":
		return 0.98
	case "minecraft:blue_ice":
		return 0.989
	default:
		return game.DefaultBlockFriction
	}
}

// Fluid returns the horizontal drag of the fluid the block is, if it is water or lava.
func Fluid(b world.Block) (drag float64, ok bool) {
	switch b.(type) {
	case block.Water:
		return game.WaterDrag, true
	case block.Lava:
		return game.LavaDrag, true
	}
	return 0, false
}


func (s *Simulator) blockAtPos(pos cube.Pos) world.Block {
	if s.World == nil {
		return block.Air{}
	}
	return s.World.Block(pos)
}

// blocksInside returns the blocks whose collision shape, or whole cell if the block has no shape,
// overlaps bb.
func (s *Simulator) blocksInside(bb collision.BBox) []world.Block {
	if s.World == nil {
		return nil
	}
	minX, minY, minZ := int(math.Floor(bb.Min[0])), int(math.Floor(bb.Min[1])), int(math.Floor(bb.Min[2]))
	maxX, maxY, maxZ := int(math.Ceil(bb.Max[0])), int(math.Ceil(bb.Max[1])), int(math.Ceil(bb.Max[2]))

	var blocks []world.Block
	for y := minY; y < maxY; y++ {
		for x := minX; x < maxX; x++ {
			for z := minZ; z < maxZ; z++ {
				pos := cube.Pos{x, y, z}
				b := s.World.Block(pos)
				if _, isAir := b.(block.Air); isAir {
					continue
				}
				cell := collision.FullCube().Translate(pos.Vec3())
				if state, ok := s.World.BlockState(pos); ok && state.Solid {
					cell = state.Shape().Translate(pos.Vec3())
				}
				if cell.CollidesWith(bb) {
					blocks = append(blocks, b)
				}
			}
		}
	}
	return blocks
}
