package gosiemesh

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// SynthesizeNormals computes one unit normal per vertex by summing the
// unnormalized cross product of every triangle touching it. A vertex that
// only touches zero-area triangles gets the zero vector.
func SynthesizeNormals(positions []float32, indices []uint32) []float32 {
	normals, _ := synthesizeNormals(positions, indices)
	return normals
}

// synthesizeNormals also reports how many vertices fell back to zero.
func synthesizeNormals(positions []float32, indices []uint32) ([]float32, int) {
	nVerts := len(positions) / 3
	acc := make([]mgl32.Vec3, nVerts)

	at := func(i uint32) mgl32.Vec3 {
		return mgl32.Vec3{positions[3*i], positions[3*i+1], positions[3*i+2]}
	}

	for t := 0; t+2 < len(indices); t += 3 {
		i0, i1, i2 := indices[t], indices[t+1], indices[t+2]
		v0 := at(i0)
		u := at(i1).Sub(v0)
		v := at(i2).Sub(v0)
		n := u.Cross(v)

		acc[i0] = acc[i0].Add(n)
		acc[i1] = acc[i1].Add(n)
		acc[i2] = acc[i2].Add(n)
	}

	normals := make([]float32, 0, 3*nVerts)
	degenerate := 0
	for _, n := range acc {
		unit, ok := normalize(n)
		if !ok {
			degenerate++
		}
		normals = append(normals, unit[0], unit[1], unit[2])
	}
	return normals, degenerate
}

// normalize scales n to unit length. The zero vector stays zero and
// reports false instead of producing NaNs.
func normalize(n mgl32.Vec3) (mgl32.Vec3, bool) {
	length := math32.Sqrt(n[0]*n[0] + n[1]*n[1] + n[2]*n[2])
	if length == 0 || math32.IsNaN(length) {
		return mgl32.Vec3{}, false
	}
	return n.Mul(1 / length), true
}

// fillNormals writes synthesized normals into the placeholder slots of m.
// When every vertex is a placeholder the whole array is replaced.
func fillNormals(m *Mesh, placeholders []uint32) int {
	if len(placeholders) == 0 {
		return 0
	}
	synth, _ := synthesizeNormals(m.Positions, m.Indices)
	if len(placeholders) == m.VertexCount() {
		m.Normals = synth
	} else {
		for _, v := range placeholders {
			copy(m.Normals[3*v:3*v+3], synth[3*v:3*v+3])
		}
	}

	degenerate := 0
	for _, v := range placeholders {
		if m.Normals[3*v] == 0 && m.Normals[3*v+1] == 0 && m.Normals[3*v+2] == 0 {
			degenerate++
		}
	}
	return degenerate
}
