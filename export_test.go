package gosiemesh

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exportFixture() (*Mesh, *MaterialTable) {
	m := &Mesh{
		Name:          "quad",
		Positions:     []float32{0, 0, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0},
		Indices:       []uint32{0, 1, 2, 0, 2, 3},
		FaceMaterials: []string{"red", "unknown"},
	}
	table := NewMaterialTable()
	table.Add(&MaterialRecord{Name: "red", Kd: [3]float32{1, 0, 0}})
	return m, table
}

func TestWritePLY(t *testing.T) {
	m, table := exportFixture()
	var buf bytes.Buffer
	require.NoError(t, WritePLY(&buf, m, table))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, "ply", lines[0])
	assert.Contains(t, lines, "element vertex 4")
	assert.Contains(t, lines, "element face 2")

	end := 0
	for i, l := range lines {
		if l == "end_header" {
			end = i
		}
	}
	require.NotZero(t, end)
	body := lines[end+1:]
	require.Len(t, body, 6)
	assert.Equal(t, "1.000000 1.000000 0.000000", body[2])
	assert.Equal(t, "3 0 1 2 255 0 0", body[4])
	assert.Equal(t, "3 0 2 3 200 200 200", body[5])
}

func TestWriteDXF(t *testing.T) {
	m, _ := exportFixture()
	var buf bytes.Buffer
	require.NoError(t, WriteDXF(&buf, m))

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, "3DFACE\n"))
	assert.True(t, strings.HasSuffix(out, "0\nEOF\n"))
	assert.Contains(t, out, "8\nquad\n")
	// fourth corner of the first triangle repeats the third
	assert.Contains(t, out, "12\n1\n22\n1\n32\n0\n13\n1\n23\n1\n33\n0\n")
}
