package game

import (
	"math"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
)

var sinTable []float64

func init() {
	sinTable = make([]float64, 65536)
	for i := range 65536 {
		sinTable[i] = math.Sin(float64(i) * math.Pi * 2 / 65536)
	}
}

// MCSin returns the Minecraft sin of the given angle.
func MCSin(val float64) float64 {
	return sinTable[uint16(val*10430.378)&65535]
}

// MCCos returns the Minecraft cos of the given angle.
func MCCos(val float64) float64 {
	return sinTable[uint16(val*10430.378+16384.0)&65535]
}

// BlockPosAt returns the block position containing the given point, flooring every axis.
func BlockPosAt(pos mgl64.Vec3) cube.Pos {
	return cube.Pos{int(math.Floor(pos[0])), int(math.Floor(pos[1])), int(math.Floor(pos[2]))}
}

// OnPos returns the block position below pos that affects movement, found by lowering the Y
// coordinate by yOffset before flooring.
func OnPos(pos mgl64.Vec3, yOffset float64) cube.Pos {
	return BlockPosAt(mgl64.Vec3{pos[0], pos[1] - yOffset, pos[2]})
}
