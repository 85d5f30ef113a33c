package sim

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/oomph-ac/kinetic/collision"
	"github.com/oomph-ac/kinetic/entity"
)

// WorldProvider bridges the world for collision, block and entity lookups.
type WorldProvider interface {
	collision.BlockSource
	collision.EntitySource

	// Block returns the block at the position passed, or air if it is unavailable.
	Block(pos cube.Pos) world.Block
	// RemoveEntity removes an entity from the world, returning false if it was already gone.
	RemoveEntity(id entity.ID) bool
	// ItemsNear returns the item entities within radius blocks of box, excluding self.
	ItemsNear(self entity.ID, box collision.BBox, radius float64) []*entity.Entity
}

// Recorder receives the result of every tick run by a Simulator.
type Recorder interface {
	Record(res TickResult) error
}
