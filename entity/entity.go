package entity

import (
	"math/rand"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/oomph-ac/kinetic/collision"
	"github.com/oomph-ac/kinetic/game"
	"github.com/zeebo/xxh3"
)

// historySize is the amount of committed positions kept for each entity.
const historySize = 20

// Kinetics is the mutable movement state of an entity. It is only handed out by Entity.Mutate, while
// the entity's lock is held.
type Kinetics struct {
	// Position is the position of the feet of the entity.
	Position mgl64.Vec3
	// Velocity is the velocity of the entity, in blocks per tick.
	Velocity mgl64.Vec3
	// OnGround is true if the last movement of the entity was blocked while moving down.
	OnGround bool
	// StuckMultiplier scales the next movement of the entity once, after which it is cleared.
	StuckMultiplier mgl64.Vec3
	// FallDistance is the distance the entity has fallen since it last touched the ground.
	FallDistance float32
	// Rand is the random source of the entity, used for knockback and spawn motion.
	Rand *rand.Rand
}

// Config holds the parameters an entity is created with.
type Config struct {
	Kind     Kind
	Position mgl64.Vec3
	Velocity mgl64.Vec3
	// UUID is the persistent identity of the entity. A random UUID is generated if it is zero.
	UUID uuid.UUID
	// Seed is mixed with the UUID to seed the random source of the entity.
	Seed int64
	// OnGround is the initial ground state, as set on spawn.
	OnGround     bool
	Invulnerable bool
	Immunities   []DamageType
	// Item is the stack held by item entities.
	Item ItemStack
	// Fuse is the fuse length of TNT, in ticks. Zero selects the default fuse.
	Fuse int
}

// Entity is an entity in a world. The kinetic state of the entity is owned by the entity and is only
// mutated by its own tick; other goroutines observe it through Snapshot and the getters.
type Entity struct {
	id   ID
	uuid uuid.UUID
	kind Kind

	// tickMu serialises ticks of this entity.
	tickMu sync.Mutex

	// mu protects all the following fields.
	mu sync.Mutex
	// k is the kinetic state of the entity.
	k Kinetics
	// box is the bounding box of the entity, derived from its position every time it changes.
	box collision.BBox
	// sneaking is true if the entity (a player) is sneaking, which keeps it from walking off edges.
	sneaking bool
	// ticks is the amount of ticks the entity has existed for.
	ticks int64
	// invulnerable makes the entity immune to all damage.
	invulnerable bool
	// immunities are the damage types the entity is immune to.
	immunities []DamageType
	// removed is set once the entity has been removed from its world.
	removed bool
	// history holds the most recently committed positions.
	history *RingBuffer

	living livingState
	item   itemState
	fuse   int
}

// Seed derives the seed of an entity's random source from a world seed and the UUID of the entity.
func Seed(worldSeed int64, id uuid.UUID) int64 {
	return int64(xxh3.HashSeed(id[:], uint64(worldSeed)))
}

// New creates an entity with the ID passed. New is called by the world, which owns ID allocation.
func New(id ID, conf Config) *Entity {
	if conf.UUID == uuid.Nil {
		conf.UUID = uuid.New()
	}
	e := &Entity{
		id:           id,
		uuid:         conf.UUID,
		kind:         conf.Kind,
		invulnerable: conf.Invulnerable,
		immunities:   append([]DamageType(nil), conf.Immunities...),
		history:      NewRingBuffer(historySize),
		k: Kinetics{
			Position: conf.Position,
			Velocity: conf.Velocity,
			OnGround: conf.OnGround,
			Rand:     rand.New(rand.NewSource(Seed(conf.Seed, conf.UUID))),
		},
	}
	e.box = e.boxAt(conf.Position)
	if conf.Kind.Living() {
		e.living = newLivingState()
	}
	if conf.Kind == KindItem {
		e.item = newItemState(conf.Item)
	}
	if conf.Kind == KindTNT {
		e.fuse = conf.Fuse
		if e.fuse <= 0 {
			e.fuse = game.TNTDefaultFuse
		}
	}
	return e
}

// ID returns the world-assigned ID of the entity.
func (e *Entity) ID() ID {
	return e.id
}

// UUID returns the persistent UUID of the entity.
func (e *Entity) UUID() uuid.UUID {
	return e.uuid
}

// Kind returns the kind of the entity.
func (e *Entity) Kind() Kind {
	return e.kind
}

func (e *Entity) boxAt(pos mgl64.Vec3) collision.BBox {
	w, h := e.kind.Dimensions()
	return collision.FromCenterDims(pos[0], pos[1], pos[2], w, h)
}

// Mutate runs fn with the kinetic state of the entity while holding its lock. The bounding box is
// derived again if fn changed the position. fn must not call back into the entity or block on the
// world.
func (e *Entity) Mutate(fn func(k *Kinetics)) {
	e.mu.Lock()
	defer e.mu.Unlock()

	old := e.k.Position
	fn(&e.k)
	if e.k.Position != old {
		e.box = e.boxAt(e.k.Position)
	}
}

// Position returns the position of the entity.
func (e *Entity) Position() mgl64.Vec3 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.k.Position
}

// Velocity returns the velocity of the entity.
func (e *Entity) Velocity() mgl64.Vec3 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.k.Velocity
}

// SetVelocity updates the velocity of the entity.
func (e *Entity) SetVelocity(vel mgl64.Vec3) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.k.Velocity = vel
}

// OnGround returns whether the entity is on the ground.
func (e *Entity) OnGround() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.k.OnGround
}

// FallDistance returns the distance the entity has fallen since it last landed.
func (e *Entity) FallDistance() float32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.k.FallDistance
}

// BBox returns the bounding box of the entity at its current position.
func (e *Entity) BBox() collision.BBox {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.box
}

// Teleport moves the entity to pos without any collision checks, resetting its velocity, fall
// distance and ground state.
func (e *Entity) Teleport(pos mgl64.Vec3, onGround bool) {
	e.Mutate(func(k *Kinetics) {
		k.Position = pos
		k.Velocity = mgl64.Vec3{}
		k.FallDistance = 0
		k.OnGround = onGround
	})
}

// MakeStuckInBlock sets a one-shot multiplier applied to the next movement of the entity, and resets
// its fall distance. It is called when the entity is inside a block such as a cobweb.
func (e *Entity) MakeStuckInBlock(multiplier mgl64.Vec3) {
	e.Mutate(func(k *Kinetics) {
		k.FallDistance = 0
		k.StuckMultiplier = multiplier
	})
}

// Sneaking returns whether the entity is sneaking.
func (e *Entity) Sneaking() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sneaking
}

// SetSneaking updates whether the entity is sneaking.
func (e *Entity) SetSneaking(sneaking bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sneaking = sneaking
}

// Ticks returns the amount of ticks the entity has existed for.
func (e *Entity) Ticks() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ticks
}

// IncrementTicks advances the tick counter of the entity, returning the value it had before.
func (e *Entity) IncrementTicks() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	t := e.ticks
	e.ticks++
	return t
}

// Record stores the current position of the entity in its history under the given tick.
func (e *Entity) Record(tick int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.history.Add(HistoricalPosition{Tick: tick, Position: e.k.Position, OnGround: e.k.OnGround})
}

// PositionAt returns the position the entity had at the tick passed, if it is still in its history.
func (e *Entity) PositionAt(tick int64) (HistoricalPosition, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.history.Get(tick)
}

// Removed reports whether the entity has been removed from its world.
func (e *Entity) Removed() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.removed
}

// MarkRemoved flags the entity as removed. The world calls it when the entity leaves; after that no
// further ticks run for it.
func (e *Entity) MarkRemoved() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.removed = true
}

// LockTick acquires the tick lock of the entity. Only one tick of an entity runs at a time.
func (e *Entity) LockTick() {
	e.tickMu.Lock()
}

// UnlockTick releases the tick lock of the entity.
func (e *Entity) UnlockTick() {
	e.tickMu.Unlock()
}

// Snapshot is a copy of the observable state of an entity taken at one instant.
type Snapshot struct {
	ID           ID
	UUID         string
	Kind         Kind
	Position     mgl64.Vec3
	Velocity     mgl64.Vec3
	OnGround     bool
	FallDistance float32
	BBox         collision.BBox
	Health       float32
	Ticks        int64
	Removed      bool
}

// Snapshot returns a copy of the state of the entity.
func (e *Entity) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Snapshot{
		ID:           e.id,
		UUID:         e.uuid.String(),
		Kind:         e.kind,
		Position:     e.k.Position,
		Velocity:     e.k.Velocity,
		OnGround:     e.k.OnGround,
		FallDistance: e.k.FallDistance,
		BBox:         e.box,
		Health:       e.living.health,
		Ticks:        e.ticks,
		Removed:      e.removed,
	}
}
