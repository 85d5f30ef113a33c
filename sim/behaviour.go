package sim

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/kinetic/collision"
	"github.com/oomph-ac/kinetic/entity"
	"github.com/oomph-ac/kinetic/game"
)

// Behaviour is the kind-specific part of simulating an entity. Implementations embed DefaultBehaviour
// and override the hooks they need.
type Behaviour interface {
	// BackOffFromEdge returns the movement adjusted so the entity does not move off a ledge.
	BackOffFromEdge(s *Simulator, e *entity.Entity, movement mgl64.Vec3) mgl64.Vec3
	// PreTick runs kind-specific state before the entity moves. It returns true if the entity should be
	// removed from the world instead of moving.
	PreTick(s *Simulator, e *entity.Entity, res *TickResult) (remove bool)
	// ShouldMove reports whether the entity moves on the tick passed.
	ShouldMove(e *entity.Entity, tick int64) bool
	// ApplyFriction slows the entity down after it moved.
	ApplyFriction(s *Simulator, e *entity.Entity)
	// PostTick runs after the entity moved.
	PostTick(s *Simulator, e *entity.Entity, tick int64, res *TickResult)
}

var behaviours = map[entity.Kind]Behaviour{}

func init() {
	RegisterBehaviour(entity.KindGeneric, DefaultBehaviour{})
	RegisterBehaviour(entity.KindZombie, LivingBehaviour{})
	RegisterBehaviour(entity.KindPlayer, PlayerBehaviour{})
	RegisterBehaviour(entity.KindItem, ItemBehaviour{})
	RegisterBehaviour(entity.KindTNT, TNTBehaviour{})
}

// RegisterBehaviour sets the behaviour used for entities of the kind passed. It must be called before
// any entity is ticked, typically from an init function.
func RegisterBehaviour(k entity.Kind, b Behaviour) {
	behaviours[k] = b
}

// BehaviourOf returns the behaviour registered for the kind passed, or DefaultBehaviour.
func BehaviourOf(k entity.Kind) Behaviour {
	if b, ok := behaviours[k]; ok {
		return b
	}
	return DefaultBehaviour{}
}

// DefaultBehaviour is the behaviour of entities without special movement rules.
type DefaultBehaviour struct{}

// BackOffFromEdge leaves the movement untouched.
func (DefaultBehaviour) BackOffFromEdge(_ *Simulator, _ *entity.Entity, movement mgl64.Vec3) mgl64.Vec3 {
	return movement
}

func (DefaultBehaviour) PreTick(*Simulator, *entity.Entity, *TickResult) bool {
	return false
}

func (DefaultBehaviour) ShouldMove(*entity.Entity, int64) bool {
	return true
}

// ApplyFriction multiplies the horizontal velocity by the friction of the block the entity stands on,
// or the air friction while airborne, and applies vertical drag.
func (DefaultBehaviour) ApplyFriction(s *Simulator, e *entity.Entity) {
	friction := game.DefaultAirFriction
	if e.OnGround() {
		friction *= BlockFriction(s.blockAtPos(game.OnPos(e.Position(), game.MovementAffectingOffset)))
	}
	e.Mutate(func(k *entity.Kinetics) {
		k.Velocity[0] *= friction
		k.Velocity[1] *= game.NormalGravityMultiplier
		k.Velocity[2] *= friction
	})
}

func (DefaultBehaviour) PostTick(*Simulator, *entity.Entity, int64, *TickResult) {}

// LivingBehaviour is the behaviour of mobs. Mobs count down their invulnerability frames and are
// removed some time after they die.
type LivingBehaviour struct {
	DefaultBehaviour
}

func (LivingBehaviour) PreTick(_ *Simulator, e *entity.Entity, _ *TickResult) bool {
	return e.TickLiving()
}

// PlayerBehaviour is the behaviour of players, who do not walk off ledges while sneaking.
type PlayerBehaviour struct {
	LivingBehaviour
}

// BackOffFromEdge shortens the horizontal movement of a sneaking player on the ground until there is
// ground within step height below the box at its destination.
func (PlayerBehaviour) BackOffFromEdge(s *Simulator, e *entity.Entity, movement mgl64.Vec3) mgl64.Vec3 {
	if s.World == nil || !e.Sneaking() || !e.OnGround() || movement[1] > 0 {
		return movement
	}

	bb := e.BBox().Grow(-game.EdgeBoundary, 0, -game.EdgeBoundary)
	down := -game.StepHeight * 1.01
	xMov, zMov := movement[0], movement[2]
	unsupported := func(dx, dz float64) bool {
		return !collision.HasObstruction(s.World, bb.OffsetRaw(dx, down, dz))
	}

	for xMov != 0.0 && unsupported(xMov, 0) {
		xMov = backOff(xMov)
	}
	for zMov != 0.0 && unsupported(0, zMov) {
		zMov = backOff(zMov)
	}
	for xMov != 0.0 && zMov != 0.0 && unsupported(xMov, zMov) {
		xMov, zMov = backOff(xMov), backOff(zMov)
	}

	if xMov != movement[0] || zMov != movement[2] {
		s.debugf("%v backed off from edge: (%v, %v) -> (%v, %v)", e.ID(), movement[0], movement[2], xMov, zMov)
	}
	movement[0], movement[2] = xMov, zMov
	return movement
}

func backOff(v float64) float64 {
	switch {
	case v < game.EdgeStep && v >= -game.EdgeStep:
		return 0
	case v > 0:
		return v - game.EdgeStep
	default:
		return v + game.EdgeStep
	}
}

// ItemBehaviour is the behaviour of dropped items. Items resting on the ground only move every fourth
// tick, merge with nearby stacks and despawn once they get old.
type ItemBehaviour struct {
	DefaultBehaviour
}

func (ItemBehaviour) PreTick(_ *Simulator, e *entity.Entity, _ *TickResult) bool {
	return e.TickItem()
}

func (ItemBehaviour) ShouldMove(e *entity.Entity, tick int64) bool {
	snap := e.Snapshot()
	return !snap.OnGround ||
		game.Vec3HzDistSqr(snap.Velocity) > game.ItemIdleVelocitySqr ||
		(tick+int64(e.ID().Index()))%4 == 0
}

func (ItemBehaviour) ApplyFriction(s *Simulator, e *entity.Entity) {
	friction := game.ItemAirFriction
	onGround := e.OnGround()
	if onGround {
		friction *= BlockFriction(s.blockAtPos(game.OnPos(e.Position(), game.ItemAffectingOffset)))
	}
	e.Mutate(func(k *entity.Kinetics) {
		k.Velocity[0] *= friction
		k.Velocity[1] *= game.NormalGravityMultiplier
		k.Velocity[2] *= friction
		if onGround && k.Velocity[1] < 0 {
			k.Velocity[1] *= game.ItemGroundBounce
		}
	})
}

// PostTick merges nearby stacks of the same item into this one every few ticks.
func (ItemBehaviour) PostTick(s *Simulator, e *entity.Entity, tick int64, res *TickResult) {
	if s.World == nil || tick%game.ItemMergeInterval != 0 || !e.Mergeable() {
		return
	}
	for _, other := range s.World.ItemsNear(e.ID(), e.BBox(), game.ItemMergeRadius) {
		moved, emptied := e.MergeFrom(other)
		res.Merged += moved
		if emptied {
			s.World.RemoveEntity(other.ID())
		}
		if !e.Mergeable() {
			break
		}
	}
}

// TNTBehaviour is the behaviour of primed TNT, which is removed once its fuse runs out.
type TNTBehaviour struct {
	DefaultBehaviour
}

func (TNTBehaviour) PreTick(_ *Simulator, e *entity.Entity, res *TickResult) bool {
	if e.TickFuse() {
		res.Exploded = true
		return true
	}
	return false
}

func (TNTBehaviour) ApplyFriction(_ *Simulator, e *entity.Entity) {
	e.Mutate(func(k *entity.Kinetics) {
		k.Velocity = k.Velocity.Mul(game.NormalGravityMultiplier)
		if k.OnGround {
			k.Velocity[0] *= game.TNTGroundFriction
			k.Velocity[1] *= game.TNTGroundBounce
			k.Velocity[2] *= game.TNTGroundFriction
		}
	})
}
