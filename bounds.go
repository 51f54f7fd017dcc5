package gosiemesh

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Bounds returns the axis-aligned bounding box of the mesh's vertices.
// An empty mesh returns two zero vectors.
func (m *Mesh) Bounds() (min, max mgl32.Vec3) {
	if m.VertexCount() == 0 {
		return mgl32.Vec3{}, mgl32.Vec3{}
	}

	min = mgl32.Vec3{math32.Inf(1), math32.Inf(1), math32.Inf(1)}
	max = mgl32.Vec3{math32.Inf(-1), math32.Inf(-1), math32.Inf(-1)}
	for i := 0; i < m.VertexCount(); i++ {
		p := m.Position(uint32(i))
		for axis := 0; axis < 3; axis++ {
			min[axis] = math32.Min(min[axis], p[axis])
			max[axis] = math32.Max(max[axis], p[axis])
		}
	}
	return min, max
}

// Extents returns the size of the bounding box along each axis.
func (m *Mesh) Extents() mgl32.Vec3 {
	min, max := m.Bounds()
	return max.Sub(min)
}

// Bounds returns the box enclosing every mesh of the registry.
func (r *Registry) Bounds() (min, max mgl32.Vec3) {
	first := true
	for _, m := range r.Meshes() {
		if m.VertexCount() == 0 {
			continue
		}
		lo, hi := m.Bounds()
		if first {
			min, max, first = lo, hi, false
			continue
		}
		for axis := 0; axis < 3; axis++ {
			min[axis] = math32.Min(min[axis], lo[axis])
			max[axis] = math32.Max(max[axis], hi[axis])
		}
	}
	return min, max
}
