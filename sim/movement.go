package sim

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/kinetic/collision"
	"github.com/oomph-ac/kinetic/entity"
	"github.com/oomph-ac/kinetic/game"
)

// ResolveCollision returns the movement left of movement once box is moved through the blocks of the
// world. Entities are not taken into account.
func (s *Simulator) ResolveCollision(box collision.BBox, movement mgl64.Vec3) mgl64.Vec3 {
	if movement == (mgl64.Vec3{}) || s.World == nil {
		return movement
	}
	shapes := collision.PotentialBlockShapes(s.World, box, movement)
	return collision.Resolve(box, collision.ProbeBox(box, movement), movement, shapes, nil)
}

// Collide gathers the blocks and entities around e that may obstruct movement and returns the movement
// that remains after colliding with them.
func (s *Simulator) Collide(e *entity.Entity, movement mgl64.Vec3) mgl64.Vec3 {
	if movement == (mgl64.Vec3{}) || s.World == nil {
		return movement
	}
	box := e.BBox()
	shapes := collision.PotentialBlockShapes(s.World, box, movement)
	entities := collision.EntityCollisions(s.World, uint64(e.ID()), box)
	return collision.Resolve(box, collision.ProbeBox(box, movement), movement, shapes, entities)
}

// Move moves e by movement, colliding with the world around it. The velocity, ground state and fall
// distance of the entity are updated from the collision, and fall damage is dealt on landing. Non-finite
// movement leaves the entity untouched.
func (s *Simulator) Move(e *entity.Entity, movement mgl64.Vec3) (res MoveResult) {
	res.Desired = movement
	if !game.Vec3Finite(movement) {
		s.log().Warn("rejected non-finite movement", "id", e.ID(), "movement", movement)
		res.Outcome = OutcomeNonFinite
		return res
	}

	var finite bool
	e.Mutate(func(k *entity.Kinetics) {
		finite = game.Vec3Finite(k.Position) && game.Vec3Finite(k.Velocity)
		if !finite {
			return
		}
		if k.StuckMultiplier.LenSqr() > game.CollisionEpsilon {
			movement = mgl64.Vec3{
				movement[0] * k.StuckMultiplier[0],
				movement[1] * k.StuckMultiplier[1],
				movement[2] * k.StuckMultiplier[2],
			}
			k.StuckMultiplier = mgl64.Vec3{}
			k.Velocity = mgl64.Vec3{}
		}
	})
	if !finite {
		s.log().Warn("rejected entity with non-finite state", "id", e.ID())
		res.Outcome = OutcomeNonFinite
		return res
	}

	movement = BehaviourOf(e.Kind()).BackOffFromEdge(s, e, movement)
	res.Desired = movement
	resolved := s.Collide(e, movement)
	res.Resolved = resolved
	res.CollideX = resolved[0] != movement[0]
	res.CollideY = resolved[1] != movement[1]
	res.CollideZ = resolved[2] != movement[2]

	var landed float32
	e.Mutate(func(k *entity.Kinetics) {
		for i := range 3 {
			if resolved[i] != movement[i] {
				k.Velocity[i] = 0
			}
		}
		k.Position = k.Position.Add(resolved)
		k.OnGround = res.CollideY && movement[1] < 0

		if k.OnGround {
			landed, k.FallDistance = k.FallDistance, 0
		} else if movement[1] < 0 {
			k.FallDistance += float32(-movement[1])
		}

		res.Position = k.Position
		res.Velocity = k.Velocity
		res.OnGround = k.OnGround
	})
	res.Landed = landed

	if landed > 0 {
		s.handleFallDamage(e, landed, &res)
	}
	return res
}

// handleFallDamage deals damage for a landing after falling the distance passed. Landing in a liquid
// never deals damage.
func (s *Simulator) handleFallDamage(e *entity.Entity, distance float32, res *MoveResult) {
	if s.Options.DisableFallDamage {
		return
	}
	if _, inFluid := Fluid(s.blockAtPos(game.BlockPosAt(res.Position))); inFluid {
		return
	}
	dmg := game.FallDamage(distance)
	if dmg <= 0 {
		return
	}
	if e.Damage(dmg, entity.DamageFall) {
		res.Damage = dmg
		res.Sound = entity.FallSound(int(distance))
		s.debugf("%v took %v fall damage after falling %v blocks", e.ID(), dmg, distance)
	}
}

// checkInsideBlocks makes e stuck if its box overlaps a cobweb. It returns true if it did.
func (s *Simulator) checkInsideBlocks(e *entity.Entity) bool {
	for _, b := range s.blocksInside(e.BBox()) {
		if BlockName(b) == "minecraft:web" {
			e.MakeStuckInBlock(mgl64.Vec3(game.CobwebMultiplier))
			return true
		}
	}
	return false
}
