package entity

import "github.com/oomph-ac/kinetic/game"

// Kind is the type of an entity. The kind decides the immutable properties of the entity, such as its
// dimensions and gravity, and selects the movement behaviour used to tick it.
type Kind uint8

const (
	KindGeneric Kind = iota
	KindPlayer
	KindZombie
	KindItem
	KindTNT
	kindCount
)

type kindInfo struct {
	name      string
	width     float64
	height    float64
	eyeHeight float64
	gravity   float64
	living    bool
}

var kinds = [kindCount]kindInfo{
	KindGeneric: {name: "generic", width: 0.6, height: 1.8, eyeHeight: 1.62, gravity: game.NormalGravity},
	KindPlayer:  {name: "player", width: 0.6, height: 1.8, eyeHeight: 1.62, gravity: game.NormalGravity, living: true},
	KindZombie:  {name: "zombie", width: 0.6, height: 1.95, eyeHeight: 1.74, gravity: game.NormalGravity, living: true},
	KindItem:    {name: "item", width: 0.25, height: 0.25, eyeHeight: 0.2125, gravity: game.ItemGravity},
	KindTNT:     {name: "tnt", width: 0.98, height: 0.98, eyeHeight: 0.15, gravity: game.ItemGravity},
}

func (k Kind) info() kindInfo {
	if k >= kindCount {
		return kinds[KindGeneric]
	}
	return kinds[k]
}

func (k Kind) String() string {
	return k.info().name
}

// Dimensions returns the width and height of the bounding box of entities of this kind.
func (k Kind) Dimensions() (width, height float64) {
	i := k.info()
	return i.width, i.height
}

// EyeHeight returns the height of the eyes above the feet.
func (k Kind) EyeHeight() float64 {
	return k.info().eyeHeight
}

// Gravity returns the default downward acceleration applied to the kind every tick.
func (k Kind) Gravity() float64 {
	return k.info().gravity
}

// Living reports whether entities of the kind have health and can take damage.
func (k Kind) Living() bool {
	return k.info().living
}

// KindByName looks up a kind by its name, as used in settings files.
func KindByName(name string) (Kind, bool) {
	for k, i := range kinds {
		if i.name == name {
			return Kind(k), true
		}
	}
	return 0, false
}

// DamageType is the cause of damage dealt to an entity.
type DamageType uint8

const (
	DamageGeneric DamageType = iota
	DamageFall
	DamageLava
	DamageExplosion
)

func (d DamageType) String() string {
	switch d {
	case DamageFall:
		return "fall"
	case DamageLava:
		return "lava"
	case DamageExplosion:
		return "explosion"
	}
	return "generic"
}

// Sound is a sound emitted by the movement core.
type Sound uint8

const (
	SoundNone Sound = iota
	SoundSmallFall
	SoundBigFall
)

func (s Sound) String() string {
	switch s {
	case SoundSmallFall:
		return "entity.generic.small_fall"
	case SoundBigFall:
		return "entity.generic.big_fall"
	}
	return ""
}

// FallSound returns the landing sound for a fall of the given whole distance.
func FallSound(distance int) Sound {
	if distance > game.BigFallSoundHeight {
		return SoundBigFall
	}
	return SoundSmallFall
}
