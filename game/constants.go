package game

const (
	// CollisionEpsilon is the magnitude under which a resolved axis offset is snapped to zero, and the
	// squared length under which a movement is treated as no movement at all.
	CollisionEpsilon = 1e-7
	// KnockbackMinDirSqr is the squared horizontal length under which a knockback direction is
	// considered degenerate and replaced by a random one.
	KnockbackMinDirSqr = 1e-5
	// KnockbackRandomScale bounds each component of a substituted knockback direction.
	KnockbackRandomScale = 0.01
	// KnockbackMaxVertical caps the upward velocity given to a grounded entity by knockback.
	KnockbackMaxVertical = 0.4

	SafeFallDistance   = float32(3.0)
	BigFallSoundHeight = 4

	WaterDrag          = 0.99
	LavaDrag           = 0.95
	FluidBuoyancy      = 5e-4
	FluidBuoyancyLimit = 0.06

	NormalGravity           = 0.08
	ItemGravity             = 0.04
	NormalGravityMultiplier = 0.98
	DefaultAirFriction      = 0.91
	ItemAirFriction         = 0.98
	DefaultBlockFriction    = 0.6
	ItemGroundBounce        = -0.5
	StepHeight              = 0.6

	// MovementAffectingOffset is subtracted from the feet Y to find the block that affects movement.
	MovementAffectingOffset = 0.500001
	// ItemAffectingOffset is the same offset used for item entities.
	ItemAffectingOffset = 0.999999

	DefaultHealth     = float32(20)
	RegenTicks        = 20
	RegenIgnoreWindow = 10
	DeathRemovalTicks = 20
	ItemDespawnTicks  = 6000
	ItemMergeRadius   = 0.5
	ItemMergeInterval = 40
	ItemPickupDelay   = 40
	ItemNeverPickup   = 32767
	ItemMaxStack      = 64
	// ItemIdleVelocitySqr is the squared horizontal velocity under which an item on the ground only
	// moves every fourth tick.
	ItemIdleVelocitySqr = 1e-5
	TNTDefaultFuse      = 80
	TNTInitialUpward    = 0.2
	TNTInitialSideways  = 0.02
	TNTGroundFriction   = 0.7
	TNTGroundBounce     = -0.5
	// EdgeBoundary shrinks the box of a sneaking player horizontally when looking for ledges.
	EdgeBoundary = 0.025
	// EdgeStep is the amount movement is reduced by per attempt while backing off from a ledge.
	EdgeStep = 0.05
)

// CobwebMultiplier is the stuck speed multiplier applied to entities inside cobwebs.
var CobwebMultiplier = [3]float64{0.25, 0.05, 0.25}
