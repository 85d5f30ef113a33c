package entity

import (
	"slices"

	"github.com/oomph-ac/kinetic/game"
)

type livingState struct {
	health         float32
	timeUntilRegen int
	lastDamage     float32
	deathTime      int
}

func newLivingState() livingState {
	return livingState{health: game.DefaultHealth}
}

// Health returns the health of a living entity. Non-living entities always have zero health.
func (e *Entity) Health() float32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.living.health
}

// SetHealth sets the health of a living entity. It has no effect on non-living entities.
func (e *Entity) SetHealth(health float32) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.kind.Living() {
		e.living.health = max(health, 0)
	}
}

// Dead reports whether a living entity has run out of health.
func (e *Entity) Dead() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.kind.Living() && e.living.health <= 0
}

// InvulnerableTo reports whether the entity ignores damage of the type passed.
func (e *Entity) InvulnerableTo(t DamageType) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.invulnerableTo(t)
}

func (e *Entity) invulnerableTo(t DamageType) bool {
	return e.invulnerable || slices.Contains(e.immunities, t)
}

// checkDamage applies invulnerability frames. While the regeneration timer is above the ignore
// window, only damage larger than the last damage taken gets through.
func (e *Entity) checkDamage(amount float32) bool {
	if e.living.timeUntilRegen > game.RegenIgnoreWindow {
		if amount <= e.living.lastDamage {
			return false
		}
	} else {
		e.living.timeUntilRegen = game.RegenTicks
	}
	e.living.lastDamage = amount
	return amount > 0
}

// Damage deals damage of the type passed to the entity and reports whether it was applied. Only
// living entities can be damaged. The entity is killed once its health reaches zero.
func (e *Entity) Damage(amount float32, t DamageType) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.kind.Living() || e.living.health <= 0 {
		return false
	}
	if !e.checkDamage(amount) {
		return false
	}
	if e.invulnerableTo(t) {
		return false
	}
	e.living.health = max(e.living.health-amount, 0)
	return true
}

// Heal adds health to a living entity.
func (e *Entity) Heal(amount float32) {
	if amount <= 0 {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.kind.Living() && e.living.health > 0 {
		e.living.health += amount
	}
}

// TickLiving advances the regeneration and death timers of a living entity. It returns true once the
// entity has been dead long enough to be removed.
func (e *Entity) TickLiving() (remove bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.kind.Living() {
		return false
	}
	if e.living.timeUntilRegen > 0 {
		e.living.timeUntilRegen--
	}
	if e.living.health <= 0 {
		t := e.living.deathTime
		e.living.deathTime++
		return t == game.DeathRemovalTicks
	}
	return false
}
