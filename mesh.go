// Package gosiemesh loads Wavefront OBJ/MTL text into indexed triangle
// meshes, one per named sub-object, ready for upload to a GPU.
package gosiemesh

import "github.com/go-gl/mathgl/mgl32"

// Mesh is one finished sub-object. Positions and Normals hold 3 floats per
// vertex, UVs 2, Indices 3 per triangle. FaceMaterials holds one material
// name per triangle when material tracking is enabled.
type Mesh struct {
	Name          string
	Positions     []float32
	UVs           []float32
	Normals       []float32
	Indices       []uint32
	FaceMaterials []string

	// IsHighlighted belongs to the consumer; loading never sets it.
	IsHighlighted bool
}

func NewMesh(name string) *Mesh {
	return &Mesh{Name: name}
}

func (m *Mesh) VertexCount() int {
	return len(m.Positions) / 3
}

func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Triangle returns the vertex indices of triangle i.
func (m *Mesh) Triangle(i int) [3]uint32 {
	return [3]uint32{m.Indices[3*i], m.Indices[3*i+1], m.Indices[3*i+2]}
}

// Position returns vertex i's position.
func (m *Mesh) Position(i uint32) mgl32.Vec3 {
	return mgl32.Vec3{m.Positions[3*i], m.Positions[3*i+1], m.Positions[3*i+2]}
}

// Normal returns vertex i's normal.
func (m *Mesh) Normal(i uint32) mgl32.Vec3 {
	return mgl32.Vec3{m.Normals[3*i], m.Normals[3*i+1], m.Normals[3*i+2]}
}

// meshBuilder turns rebased faces into an indexed mesh, emitting each
// distinct VertexKey exactly once.
type meshBuilder struct {
	mesh       *Mesh
	index      map[VertexKey]uint32
	missingNrm []uint32 // vertices whose normal is still a placeholder
	track      bool

	positions []mgl32.Vec3
	uvs       []mgl32.Vec2
	normals   []mgl32.Vec3
}

func newMeshBuilder(m *Mesh, positions []mgl32.Vec3, uvs []mgl32.Vec2, normals []mgl32.Vec3, track bool) *meshBuilder {
	return &meshBuilder{
		mesh:      m,
		index:     make(map[VertexKey]uint32, len(positions)),
		track:     track,
		positions: positions,
		uvs:       uvs,
		normals:   normals,
	}
}

// AddVertex uses the map for an average O(1) lookup.
func (b *meshBuilder) AddVertex(key VertexKey) uint32 {
	if index, found := b.index[key]; found {
		return index
	}

	m := b.mesh
	newIndex := uint32(len(m.Positions) / 3)

	p := b.positions[key.Pos]
	m.Positions = append(m.Positions, p[0], p[1], p[2])

	if key.UV.Valid {
		uv := b.uvs[key.UV.Index]
		m.UVs = append(m.UVs, uv[0], uv[1])
	} else {
		m.UVs = append(m.UVs, 0, 0)
	}

	if key.Normal.Valid {
		n := b.normals[key.Normal.Index]
		m.Normals = append(m.Normals, n[0], n[1], n[2])
	} else {
		m.Normals = append(m.Normals, 0, 0, 0)
		b.missingNrm = append(b.missingNrm, newIndex)
	}

	b.index[key] = newIndex
	return newIndex
}

// AddFace fan-triangulates a rebased polygon into the mesh.
func (b *meshBuilder) AddFace(corners []VertexKey, material string) {
	indices := make([]uint32, len(corners))
	for i, c := range corners {
		indices[i] = b.AddVertex(c)
	}
	for _, tri := range fanTriangles(len(corners)) {
		b.mesh.Indices = append(b.mesh.Indices, indices[tri[0]], indices[tri[1]], indices[tri[2]])
		if b.track {
			b.mesh.FaceMaterials = append(b.mesh.FaceMaterials, material)
		}
	}
}
