package block

import (
	"github.com/df-mc/dragonfly/server/block"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/oomph-ac/kinetic/world/blockmodel"
)

var cobwebHash = block.NextHash()

// Cobweb is a block that entities pass through, slowing them down while they are inside it.
type Cobweb struct{}

func (Cobweb) EncodeBlock() (string, map[string]any) {
	return "minecraft:web", nil
}

func (Cobweb) Hash() (uint64, uint64) {
	return cobwebHash, 0
}

func (Cobweb) Model() world.BlockModel {
	return blockmodel.Passable{}
}
