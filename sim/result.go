package sim

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/kinetic/entity"
)

// Outcome describes which path the simulator took for an entity.
type Outcome uint8

const (
	OutcomeNormal Outcome = iota
	// OutcomeNonFinite means the movement or state of the entity was not finite and was left alone.
	OutcomeNonFinite
	// OutcomeIdle means the entity skipped movement this tick, such as an item resting on the ground.
	OutcomeIdle
	// OutcomeRemoved means the entity was removed from the world, during or before the tick.
	OutcomeRemoved
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNormal:
		return "normal"
	case OutcomeNonFinite:
		return "non_finite"
	case OutcomeIdle:
		return "idle"
	case OutcomeRemoved:
		return "removed"
	}
	return "unknown"
}

// MoveResult captures the outcome of moving an entity once.
type MoveResult struct {
	// Desired is the movement after the stuck multiplier and edge avoidance were applied.
	Desired mgl64.Vec3
	// Resolved is the movement left after collisions.
	Resolved mgl64.Vec3

	Position mgl64.Vec3
	Velocity mgl64.Vec3

	OnGround bool
	CollideX bool
	CollideY bool
	CollideZ bool

	// Landed is the fall distance consumed by landing this move, if any.
	Landed float32
	// Damage is the fall damage applied on landing.
	Damage float32
	// Sound is the landing sound to play, if fall damage was applied.
	Sound entity.Sound

	Outcome Outcome
}

// TickResult captures the outcome of a single entity tick.
type TickResult struct {
	ID   entity.ID
	Kind entity.Kind
	// Tick is the tick number of the entity this result belongs to.
	Tick int64

	Move MoveResult

	// Stuck is true if the entity was inside a cobweb at the start of the tick.
	Stuck bool
	// Exploded is true if the entity was TNT whose fuse ran out.
	Exploded bool
	// Merged is the amount of items taken from nearby item entities.
	Merged int

	Outcome Outcome
}
