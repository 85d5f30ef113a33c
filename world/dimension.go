package world

import (
	"strings"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/world"
)

var (
	// Overworld is the default dimension of a world.
	Overworld = dimension{name: "Overworld", r: world.Overworld.Range()}
	// Flat is a dimension one sub chunk high, used by tests and the demo.
	Flat = dimension{name: "Flat", r: cube.Range{0, 15}}
)

// Dimension describes the vertical bounds of a world. Blocks outside of the range are always air.
type Dimension interface {
	Range() cube.Range
	String() string
}

type dimension struct {
	name string
	r    cube.Range
}

func (d dimension) Range() cube.Range { return d.r }
func (d dimension) String() string    { return d.name }

// DimensionByName returns the dimension with the name passed, ignoring case.
func DimensionByName(name string) (Dimension, bool) {
	for _, d := range []Dimension{Overworld, Flat} {
		if strings.EqualFold(d.String(), name) {
			return d, true
		}
	}
	return nil, false
}
