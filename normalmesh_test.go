package gosiemesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesizeNormals(t *testing.T) {
	testCases := []struct {
		name      string
		positions []float32
		indices   []uint32
		expected  []float32
	}{
		{
			name:      "Single triangle in XY plane",
			positions: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
			indices:   []uint32{0, 1, 2},
			expected:  []float32{0, 0, 1, 0, 0, 1, 0, 0, 1},
		},
		{
			name:      "Reversed winding",
			positions: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
			indices:   []uint32{0, 2, 1},
			expected:  []float32{0, 0, -1, 0, 0, -1, 0, 0, -1},
		},
		{
			name: "Shared edge of a folded pair",
			// the XY triangle has twice the area of the XZ one so it counts double
			positions: []float32{0, 0, 0, 1, 0, 0, 0, 2, 0, 0, 0, -1},
			indices:   []uint32{0, 1, 2, 0, 1, 3},
			expected: []float32{
				0, 0.4472136, 0.8944272,
				0, 0.4472136, 0.8944272,
				0, 0, 1,
				0, 1, 0,
			},
		},
		{
			name:      "Degenerate triangle falls back to zero",
			positions: []float32{0, 0, 0, 1, 1, 1, 2, 2, 2},
			indices:   []uint32{0, 1, 2},
			expected:  []float32{0, 0, 0, 0, 0, 0, 0, 0, 0},
		},
		{
			name:      "Unreferenced vertex is zero",
			positions: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0, 9, 9, 9},
			indices:   []uint32{0, 1, 2},
			expected:  []float32{0, 0, 1, 0, 0, 1, 0, 0, 1, 0, 0, 0},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			normals := SynthesizeNormals(tc.positions, tc.indices)
			if !almostEqualSlice(normals, tc.expected) {
				t.Errorf("SynthesizeNormals() = %v, want %v", normals, tc.expected)
			}
		})
	}
}

func TestSynthesizeNormalsIdempotent(t *testing.T) {
	positions := []float32{0, 0, 0, 1, 0, 0, 1, 1, 0.5, 0, 1, 0.25, 0.5, 0.5, 2}
	indices := []uint32{0, 1, 4, 1, 2, 4, 2, 3, 4, 3, 0, 4}

	first := SynthesizeNormals(positions, indices)
	second := SynthesizeNormals(positions, indices)
	assert.True(t, almostEqualSlice(first, second))

	for v := 0; v < len(first)/3; v++ {
		n := first[3*v : 3*v+3]
		assert.InDelta(t, 1, n[0]*n[0]+n[1]*n[1]+n[2]*n[2], 1e-5, "vertex %d", v)
	}
}

func TestFillNormalsOnlyPlaceholders(t *testing.T) {
	m := &Mesh{
		Positions: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
		Normals:   []float32{1, 0, 0, 0, 0, 0, 0, 0, 0},
		Indices:   []uint32{0, 1, 2},
	}
	degenerate := fillNormals(m, []uint32{1, 2})
	assert.Equal(t, 0, degenerate)
	assert.Equal(t, []float32{1, 0, 0, 0, 0, 1, 0, 0, 1}, m.Normals)
}

func TestFillNormalsCountsDegenerate(t *testing.T) {
	m := &Mesh{
		Positions: []float32{0, 0, 0, 1, 1, 1, 2, 2, 2},
		Normals:   make([]float32, 9),
		Indices:   []uint32{0, 1, 2},
	}
	degenerate := fillNormals(m, []uint32{0, 1, 2})
	require.Equal(t, 3, degenerate)
	assert.Equal(t, make([]float32, 9), m.Normals)
}
