package world

import (
	"log/slog"

	"github.com/chewxy/math32"
	"github.com/df-mc/dragonfly/server/block"
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/oomph-ac/kinetic/shape"
	"github.com/sandertv/gophertunnel/minecraft/protocol"
	"github.com/sasha-s/go-deadlock"
)

// Config holds the parameters a World is created with.
type Config struct {
	// Seed is mixed into the random source of every entity spawned in the world.
	Seed int64
	// Dimension bounds the world vertically. Overworld is used if nil.
	Dimension Dimension
	// Shapes overrides the collision geometry of blocks by name. The built-in table is used if nil.
	Shapes *shape.Table
	// Log is the logger of the world. slog.Default() is used if nil.
	Log *slog.Logger
}

// World is a sparse store of chunks and the entities living in them. Blocks in chunks that are not
// loaded are unavailable, which collision queries treat as no obstruction.
type World struct {
	seed         int64
	dim          Dimension
	shapes       *shape.Table
	log          *slog.Logger
	lastCleanPos *protocol.ChunkPos

	chunks map[protocol.ChunkPos]*Chunk

	entities *entityIndex

	deadlock.RWMutex
}

// New creates an empty world using the config passed.
func New(conf Config) *World {
	if conf.Dimension == nil {
		conf.Dimension = Overworld
	}
	if conf.Shapes == nil {
		conf.Shapes = shape.Default()
	}
	if conf.Log == nil {
		conf.Log = slog.Default()
	}
	return &World{
		seed:     conf.Seed,
		dim:      conf.Dimension,
		shapes:   conf.Shapes,
		log:      conf.Log,
		chunks:   make(map[protocol.ChunkPos]*Chunk),
		entities: newEntityIndex(),
	}
}

// Seed returns the seed of the world.
func (w *World) Seed() int64 {
	return w.seed
}

// Dimension returns the dimension of the world.
func (w *World) Dimension() Dimension {
	return w.dim
}

// LoadChunk adds a chunk to the world, replacing any chunk at the same position.
func (w *World) LoadChunk(pos protocol.ChunkPos, c *Chunk) {
	w.Lock()
	defer w.Unlock()
	w.chunks[pos] = c
}

// UnloadChunk removes the chunk at the position passed.
func (w *World) UnloadChunk(pos protocol.ChunkPos) {
	w.Lock()
	defer w.Unlock()
	delete(w.chunks, pos)
}

// ChunkLoaded reports whether the chunk at the position passed is loaded.
func (w *World) ChunkLoaded(pos protocol.ChunkPos) bool {
	w.RLock()
	defer w.RUnlock()
	_, ok := w.chunks[pos]
	return ok
}

// BlockAt returns the block at the position passed. ok is false if the position is outside of the
// dimension or its chunk is not loaded.
func (w *World) BlockAt(pos cube.Pos) (b world.Block, ok bool) {
	if pos.OutOfBounds(w.dim.Range()) {
		return block.Air{}, false
	}
	w.RLock()
	c, ok := w.chunks[ChunkPosOf(pos)]
	if !ok {
		w.RUnlock()
		return block.Air{}, false
	}
	b = c.Block(uint8(pos[0]), int16(pos[1]), uint8(pos[2]))
	w.RUnlock()
	return b, true
}

// Block returns the block at the position passed, or air if it is unavailable.
func (w *World) Block(pos cube.Pos) world.Block {
	b, _ := w.BlockAt(pos)
	return b
}

// SetBlock sets the block at the position passed. The chunk holding the position is loaded if it was
// not yet. Positions outside of the dimension are ignored.
func (w *World) SetBlock(pos cube.Pos, b world.Block, _ *world.SetOpts) {
	if pos.OutOfBounds(w.dim.Range()) {
		return
	}
	chunkPos := ChunkPosOf(pos)

	w.Lock()
	defer w.Unlock()

	c, ok := w.chunks[chunkPos]
	if !ok {
		c = NewChunk()
		w.chunks[chunkPos] = c
	}
	c.SetBlock(uint8(pos[0]), int16(pos[1]), uint8(pos[2]), b)
}

// Fill sets every block in the box spanned by the two corners passed, both inclusive.
func (w *World) Fill(from, to cube.Pos, b world.Block) {
	for x := min(from[0], to[0]); x <= max(from[0], to[0]); x++ {
		for y := min(from[1], to[1]); y <= max(from[1], to[1]); y++ {
			for z := min(from[2], to[2]); z <= max(from[2], to[2]); z++ {
				w.SetBlock(cube.Pos{x, y, z}, b, nil)
			}
		}
	}
}

// CleanChunks unloads every chunk outside of the given chunk radius around the chunk position.
func (w *World) CleanChunks(radius int32, pos protocol.ChunkPos) {
	w.Lock()
	defer w.Unlock()

	if w.lastCleanPos != nil && pos == *w.lastCleanPos {
		return
	}
	w.lastCleanPos = &pos

	for chunkPos := range w.chunks {
		if chunkInRange(radius, chunkPos, pos) {
			continue
		}
		delete(w.chunks, chunkPos)
		w.log.Debug("unloaded chunk out of range", "chunkPos", chunkPos, "radius", radius, "pos", pos)
	}
}

// chunkInRange returns true if the chunk position is within the given radius of the chunk position.
func chunkInRange(radius int32, chunkPos, pos protocol.ChunkPos) bool {
	diffX, diffZ := pos[0]-chunkPos[0], pos[1]-chunkPos[1]
	dist := math32.Sqrt(float32(diffX*diffX) + float32(diffZ*diffZ))

	return int32(dist) <= radius
}
