package sim

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/kinetic/entity"
	"github.com/oomph-ac/kinetic/game"
)

// ApplyKnockback pushes e away from the horizontal direction (x, z) with the strength passed. Non-finite
// input is ignored.
func (s *Simulator) ApplyKnockback(e *entity.Entity, strength, x, z float64) {
	if !game.IsFinite(strength) || !game.IsFinite(x) || !game.IsFinite(z) {
		s.log().Warn("ignored non-finite knockback", "id", e.ID(), "strength", strength, "x", x, "z", z)
		return
	}

	e.Mutate(func(k *entity.Kinetics) {
		x, z = knockbackDirection(k.Rand, x, z)
		push := mgl64.Vec3{x, 0, z}.Normalize().Mul(strength)

		vel := k.Velocity
		y := vel[1]
		if k.OnGround {
			y = math.Min(vel[1]/2+strength, game.KnockbackMaxVertical)
		}
		k.Velocity = mgl64.Vec3{vel[0]/2 - push[0], y, vel[2]/2 - push[2]}
	})
	s.debugf("%v knocked back with strength %v towards (%v, %v)", e.ID(), strength, x, z)
}

// knockbackDirection returns the direction passed, or a small random direction drawn from r if it is
// too short to normalise.
func knockbackDirection(r *rand.Rand, x, z float64) (float64, float64) {
	for x*x+z*z < game.KnockbackMinDirSqr {
		x = (r.Float64() - r.Float64()) * game.KnockbackRandomScale
		z = (r.Float64() - r.Float64()) * game.KnockbackRandomScale
	}
	return x, z
}
