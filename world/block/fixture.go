package block

import (
	"github.com/df-mc/dragonfly/server/block"
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/oomph-ac/kinetic/world/blockmodel"
)

var fixtureHash = block.NextHash()

// Fixture is a block with a fixed collision shape, used to build worlds with geometry that has no
// dragonfly block of its own.
type Fixture struct {
	// Name is the name the block encodes to.
	Name string
	// Boxes are the block-local collision boxes of the block.
	Boxes []cube.BBox
	// Slipperiness is the friction of the block. Zero means the default friction of 0.6.
	Slipperiness float64
}

// Slab returns a fixture shaped like a bottom slab.
func Slab(name string) Fixture {
	return Fixture{Name: name, Boxes: []cube.BBox{cube.Box(0, 0, 0, 1, 0.5, 1)}}
}

func (f Fixture) EncodeBlock() (string, map[string]any) {
	return f.Name, nil
}

func (f Fixture) Hash() (uint64, uint64) {
	return fixtureHash, 0
}

func (f Fixture) Model() world.BlockModel {
	return blockmodel.Static{Boxes: f.Boxes}
}

// Friction returns the slipperiness of the fixture.
func (f Fixture) Friction() float64 {
	if f.Slipperiness == 0 {
		return 0.6
	}
	return f.Slipperiness
}
