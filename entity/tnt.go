package entity

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/kinetic/game"
)

// Fuse returns the remaining fuse ticks of a TNT entity.
func (e *Entity) Fuse() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.fuse
}

// TickFuse burns one tick of the fuse of a TNT entity and reports whether it has run out.
func (e *Entity) TickFuse() (exploded bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.kind != KindTNT || e.fuse <= 0 {
		return false
	}
	e.fuse--
	return e.fuse == 0
}

// Prime gives a freshly spawned TNT entity its initial pop: a small push in a random horizontal
// direction and a fixed upward velocity.
func (e *Entity) Prime() {
	e.Mutate(func(k *Kinetics) {
		angle := k.Rand.Float64() * 2 * math.Pi
		k.Velocity = mgl64.Vec3{
			-game.MCSin(angle) * game.TNTInitialSideways,
			game.TNTInitialUpward,
			-game.MCCos(angle) * game.TNTInitialSideways,
		}
	})
}
