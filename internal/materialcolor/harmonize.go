// internal/materialcolor/harmonize.go
package materialcolor

import (
	"math"

	"goki.dev/cam/hct"
)

// Harmonize shifts the hue of design toward source by half the angular
// distance between them, capped at 15 degrees. Chroma and tone are kept,
// so the accent stays recognizably itself while sitting closer to the
// theme.
func Harmonize(design, source ARGB) ARGB {
	from := hct.FromColor(design)
	to := hct.FromColor(source)

	diff := differenceDegrees(from.Hue, to.Hue)
	rotation := diff * 0.5
	if rotation > 15 {
		rotation = 15
	}
	hue := sanitizeDegrees(from.Hue + rotation*rotationDirection(from.Hue, to.Hue))

	return fromRGBA(hct.New(hue, from.Chroma, from.Tone).AsRGBA())
}

// sanitizeDegrees maps an angle into [0, 360).
func sanitizeDegrees(deg float32) float32 {
	deg = float32(math.Mod(float64(deg), 360))
	if deg < 0 {
		deg += 360
	}
	return deg
}

// differenceDegrees returns the shortest angular distance between two
// hues, in [0, 180].
func differenceDegrees(a, b float32) float32 {
	return 180 - float32(math.Abs(math.Abs(float64(a-b))-180))
}

// rotationDirection returns +1 when the shortest rotation from one hue to
// the other is clockwise, -1 otherwise.
func rotationDirection(from, to float32) float32 {
	if sanitizeDegrees(to-from) <= 180 {
		return 1
	}
	return -1
}
