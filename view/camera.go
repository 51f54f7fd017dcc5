// Package view turns loaded meshes into flat-shaded, depth-sorted screen
// polygons. It does no drawing itself so it can run without a display.
package view

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	defaultFocal = 700
	defaultNear  = 0.1
	maxPitch     = math.Pi/2 - 0.01
	minDistance  = 1e-3
)

// Camera orbits a target point. Camera space is right handed with the
// camera looking down -z.
type Camera struct {
	Target   mgl64.Vec3
	Yaw      float64
	Pitch    float64
	Distance float64

	// Focal scales camera-space x/depth into pixels.
	Focal float64
	Near  float64
}

func NewCamera() *Camera {
	return &Camera{
		Distance: 10,
		Focal:    defaultFocal,
		Near:     defaultNear,
	}
}

// Eye returns the camera position in world space.
func (c *Camera) Eye() mgl64.Vec3 {
	cp := math.Cos(c.Pitch)
	offset := mgl64.Vec3{
		cp * math.Sin(c.Yaw),
		math.Sin(c.Pitch),
		cp * math.Cos(c.Yaw),
	}
	return c.Target.Add(offset.Mul(c.Distance))
}

// View returns the world to camera matrix.
func (c *Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Eye(), c.Target, mgl64.Vec3{0, 1, 0})
}

// Orbit rotates the eye around the target. Pitch stops short of the poles
// so the up vector never lines up with the view direction.
func (c *Camera) Orbit(dYaw, dPitch float64) {
	c.Yaw += dYaw
	c.Pitch = mgl64.Clamp(c.Pitch+dPitch, -maxPitch, maxPitch)
}

// Zoom multiplies the eye distance by factor.
func (c *Camera) Zoom(factor float64) {
	if factor <= 0 {
		return
	}
	c.Distance = math.Max(c.Distance*factor, minDistance)
}

// Frame aims the camera at the centre of the box and backs off until the
// whole box fits in a viewport of the given height in pixels.
func (c *Camera) Frame(min, max mgl32.Vec3, height int) {
	lo := mgl64.Vec3{float64(min[0]), float64(min[1]), float64(min[2])}
	hi := mgl64.Vec3{float64(max[0]), float64(max[1]), float64(max[2])}
	c.Target = lo.Add(hi).Mul(0.5)

	radius := hi.Sub(lo).Len() / 2
	if radius == 0 {
		radius = 1
	}
	halfHeight := float64(height) / 2
	if halfHeight <= 0 {
		halfHeight = 1
	}
	// radius projects to 80% of the half height at the target's depth
	c.Distance = radius + c.Focal*radius/(0.8*halfHeight)
	c.Near = math.Max(c.Distance/1000, defaultNear/100)
}

// ToCamera transforms a world space point by view.
func ToCamera(view mgl64.Mat4, p mgl32.Vec3) mgl64.Vec3 {
	v := mgl64.Vec4{float64(p[0]), float64(p[1]), float64(p[2]), 1}
	return view.Mul4x1(v).Vec3()
}

// Project maps a point given as (x, y, depth) to screen pixels centred on
// a width by height viewport. Depth must be positive.
func (c *Camera) Project(p [3]float64, width, height int) (float32, float32) {
	x := c.Focal*p[0]/p[2] + float64(width)/2
	y := -c.Focal*p[1]/p[2] + float64(height)/2
	return float32(x), float32(y)
}
