package gosiemesh

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
)

// missingColour is used for triangles whose material is unknown.
var missingColour = color.RGBA{R: 200, G: 200, B: 200, A: 255}

// WritePLY writes m as ASCII PLY with one colour per triangle taken from
// the diffuse colour of its material in table.
func WritePLY(w io.Writer, m *Mesh, table *MaterialTable) error {
	writer := bufio.NewWriter(w)

	_, _ = fmt.Fprintln(writer, "ply")
	_, _ = fmt.Fprintln(writer, "format ascii 1.0")
	_, _ = fmt.Fprintf(writer, "comment object %s\n", m.Name)
	_, _ = fmt.Fprintf(writer, "element vertex %d\n", m.VertexCount())
	_, _ = fmt.Fprintln(writer, "property float x")
	_, _ = fmt.Fprintln(writer, "property float y")
	_, _ = fmt.Fprintln(writer, "property float z")
	_, _ = fmt.Fprintf(writer, "element face %d\n", m.TriangleCount())
	_, _ = fmt.Fprintln(writer, "property list uchar int vertex_indices")
	_, _ = fmt.Fprintln(writer, "property uchar red")
	_, _ = fmt.Fprintln(writer, "property uchar green")
	_, _ = fmt.Fprintln(writer, "property uchar blue")
	_, _ = fmt.Fprintln(writer, "end_header")

	for i := 0; i < m.VertexCount(); i++ {
		p := m.Position(uint32(i))
		_, _ = fmt.Fprintf(writer, "%f %f %f\n", p[0], p[1], p[2])
	}

	for t := 0; t < m.TriangleCount(); t++ {
		tri := m.Triangle(t)
		col := triangleColour(m, t, table)
		_, _ = fmt.Fprintf(writer, "3 %d %d %d %d %d %d\n", tri[0], tri[1], tri[2], col.R, col.G, col.B)
	}

	return writer.Flush()
}

func triangleColour(m *Mesh, t int, table *MaterialTable) color.RGBA {
	if t >= len(m.FaceMaterials) {
		return missingColour
	}
	rec, ok := table.Lookup(m.FaceMaterials[t])
	if !ok {
		return missingColour
	}
	return rec.RGBA()
}

// WriteDXF writes every triangle of m as a 3DFACE entity.
func WriteDXF(w io.Writer, m *Mesh) error {
	writer := bufio.NewWriter(w)

	writePair := func(code int, value interface{}) {
		_, _ = fmt.Fprintf(writer, "%d\n%v\n", code, value)
	}

	writePair(0, "SECTION")
	writePair(2, "HEADER")
	writePair(0, "ENDSEC")

	writePair(0, "SECTION")
	writePair(2, "ENTITIES")

	layer := m.Name
	if layer == "" {
		layer = "0"
	}
	for t := 0; t < m.TriangleCount(); t++ {
		tri := m.Triangle(t)
		writePair(0, "3DFACE")
		writePair(8, layer)

		// 3DFACE always has 4 corners; a triangle repeats its last one
		corners := [4]uint32{tri[0], tri[1], tri[2], tri[2]}
		for c, idx := range corners {
			p := m.Position(idx)
			writePair(10+c, p[0])
			writePair(20+c, p[1])
			writePair(30+c, p[2])
		}
	}

	writePair(0, "ENDSEC")
	writePair(0, "EOF")

	return writer.Flush()
}
