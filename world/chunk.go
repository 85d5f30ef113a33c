package world

import (
	"github.com/df-mc/dragonfly/server/block"
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/sandertv/gophertunnel/minecraft/protocol"
)

// Chunk is a 16 block wide column of blocks. Only blocks that were set are stored; every other
// position in a loaded chunk holds air.
type Chunk struct {
	blocks map[localPos]world.Block
}

type localPos struct {
	x, z uint8
	y    int16
}

// NewChunk returns an empty chunk.
func NewChunk() *Chunk {
	return &Chunk{blocks: make(map[localPos]world.Block)}
}

// Block returns the block at the chunk-local position passed.
func (c *Chunk) Block(x uint8, y int16, z uint8) world.Block {
	if b, ok := c.blocks[localPos{x: x & 15, y: y, z: z & 15}]; ok {
		return b
	}
	return block.Air{}
}

// SetBlock sets the block at the chunk-local position passed. Setting air clears the position.
func (c *Chunk) SetBlock(x uint8, y int16, z uint8, b world.Block) {
	p := localPos{x: x & 15, y: y, z: z & 15}
	if _, ok := b.(block.Air); ok || b == nil {
		delete(c.blocks, p)
		return
	}
	c.blocks[p] = b
}

// Len returns the amount of non-air blocks in the chunk.
func (c *Chunk) Len() int {
	return len(c.blocks)
}

// ChunkPosOf returns the position of the chunk holding the block position passed.
func ChunkPosOf(pos cube.Pos) protocol.ChunkPos {
	return protocol.ChunkPos{int32(pos[0]) >> 4, int32(pos[2]) >> 4}
}
