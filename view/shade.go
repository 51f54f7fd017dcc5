package view

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	spotlightConePower = 10.0
	minChannel         = 7
)

func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Shade darkens base by the light reaching a face. The light is a
// spotlight at the eye pointing down the view axis plus a flat ambient
// term. normal is the unit face normal and centroid the face centre, both
// in camera space.
func Shade(base color.RGBA, normal, centroid mgl64.Vec3, ambient float64) color.RGBA {
	diffuseFactor := math.Max(normal.Z(), 0)

	spotlightFactor := 1.0
	if l := centroid.Len(); l > 0 {
		cosAngle := math.Max(-centroid.Z()/l, 0)
		spotlightFactor = math.Pow(cosAngle, spotlightConePower)
	}

	brightness := ambient + diffuseFactor*spotlightFactor*(1-ambient)

	// full brightness keeps the colour, zero takes 240 off every channel
	c := 240 - int(brightness*240)
	return color.RGBA{
		R: uint8(clamp(int(base.R)-c, minChannel, 255)),
		G: uint8(clamp(int(base.G)-c, minChannel, 255)),
		B: uint8(clamp(int(base.B)-c, minChannel, 255)),
		A: base.A,
	}
}

// Tint mixes amount of tint into c, keeping c's alpha.
func Tint(c, tint color.RGBA, amount float64) color.RGBA {
	mix := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(a)*(1-amount) + float64(b)*amount))
	}
	return color.RGBA{R: mix(c.R, tint.R), G: mix(c.G, tint.G), B: mix(c.B, tint.B), A: c.A}
}
