package sim

import (
	"github.com/oomph-ac/kinetic/entity"
	"github.com/oomph-ac/kinetic/game"
)

// ApplyFluidOrGravity updates the velocity of e for the fluid at its feet. In water or lava the
// horizontal velocity is dragged and a sinking entity is pushed up slightly. Outside of fluids gravity
// is applied instead. Only the block containing the feet of the entity is checked.
func (s *Simulator) ApplyFluidOrGravity(e *entity.Entity) {
	drag, inFluid := Fluid(s.blockAtPos(game.BlockPosAt(e.Position())))
	gravity := s.Gravity(e.Kind())

	e.Mutate(func(k *entity.Kinetics) {
		if inFluid {
			k.Velocity[0] *= drag
			k.Velocity[2] *= drag
			if k.Velocity[1] < game.FluidBuoyancyLimit {
				k.Velocity[1] += game.FluidBuoyancy
			}
			return
		}
		if gravity != 0 {
			k.Velocity[1] -= gravity
		}
	})
}
