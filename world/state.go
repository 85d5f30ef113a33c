package world

import (
	"github.com/df-mc/dragonfly/server/block"
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/oomph-ac/kinetic/collision"
)

var fullCube = cube.Box(0, 0, 0, 1, 1, 1)

// BlockState returns the collision state of the block at the position passed. ok is false if the
// block is unavailable.
func (w *World) BlockState(pos cube.Pos) (collision.BlockState, bool) {
	b, ok := w.BlockAt(pos)
	if !ok {
		return collision.BlockState{}, false
	}
	return w.stateOf(pos, b), true
}

// stateOf derives the collision state of a block. The shape table takes precedence over the model of
// the block. The model is queried without holding the world lock, since models look up neighbouring
// blocks.
func (w *World) stateOf(pos cube.Pos, b world.Block) collision.BlockState {
	if _, ok := b.(block.Air); ok {
		return collision.BlockState{}
	}
	if _, ok := b.(world.Liquid); ok {
		return collision.BlockState{}
	}
	name, _ := b.EncodeBlock()
	if s, ok := w.shapes.Lookup(name); ok {
		return s
	}

	bbs := b.Model().BBox(pos, w)
	switch {
	case len(bbs) == 0:
		return collision.BlockState{}
	case len(bbs) == 1 && bbs[0] == fullCube:
		return collision.BlockState{Solid: true}
	}
	boxes := make([]collision.BBox, len(bbs))
	for i, bb := range bbs {
		boxes[i] = collision.FromCube(bb)
	}
	return collision.BlockState{Solid: true, Boxes: boxes}
}

// BlockName returns the name the block at the position passed encodes to.
func (w *World) BlockName(pos cube.Pos) string {
	name, _ := w.Block(pos).EncodeBlock()
	return name
}
