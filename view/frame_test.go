package view

import (
	"image/color"
	"testing"

	"github.com/smasonuk/gosiemesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoQuads has a near quad facing the camera and a far one behind it,
// both at z = const in world space.
func twoQuads() *gosiemesh.Result {
	reg := gosiemesh.NewRegistry()
	reg.Add(&gosiemesh.Mesh{
		Name:          "near",
		Positions:     []float32{-1, -1, 2, 1, -1, 2, 1, 1, 2, -1, 1, 2},
		Indices:       []uint32{0, 1, 2, 0, 2, 3},
		FaceMaterials: []string{"red", "red"},
	})
	reg.Add(&gosiemesh.Mesh{
		Name:      "far",
		Positions: []float32{-1, -1, -2, 1, -1, -2, 1, 1, -2, -1, 1, -2},
		Indices:   []uint32{0, 1, 2, 0, 2, 3},
	})
	table := gosiemesh.NewMaterialTable()
	table.Add(&gosiemesh.MaterialRecord{Name: "red", Kd: [3]float32{1, 0, 0}, D: 1})
	return &gosiemesh.Result{Models: reg, Materials: table}
}

func TestBuildFrameSortsFarToNear(t *testing.T) {
	res := twoQuads()
	groups, _ := gosiemesh.PartitionAll(res.Models, res.Materials)
	cam := NewCamera()

	polys := BuildFrame(res, groups, cam, DefaultFrameOptions(800, 600))
	require.Len(t, polys, 4)
	assert.Equal(t, "far", polys[0].Mesh)
	assert.Equal(t, "far", polys[1].Mesh)
	assert.Equal(t, "near", polys[3].Mesh)
	for i := 1; i < len(polys); i++ {
		assert.GreaterOrEqual(t, polys[i-1].Depth, polys[i].Depth)
	}

	// near quad faces the camera head on, so only the spotlight falloff darkens it
	assert.Equal(t, uint8(7), polys[3].Color.G)
	assert.Greater(t, polys[3].Color.R, uint8(200))
}

func TestBuildFrameCulling(t *testing.T) {
	res := twoQuads()
	cam := NewCamera()
	cam.Yaw = 3.14159265 // look from behind

	opts := DefaultFrameOptions(800, 600)
	assert.Empty(t, BuildFrame(res, nil, cam, opts))

	opts.Cull = false
	polys := BuildFrame(res, nil, cam, opts)
	assert.Len(t, polys, 4)
	for _, p := range polys {
		assert.Equal(t, opts.DefaultColor.A, p.Color.A)
	}
}

func TestBuildFrameClipsBehindCamera(t *testing.T) {
	res := twoQuads()
	cam := NewCamera()
	cam.Distance = 0.5 // eye between the quads at z = 0.5

	opts := DefaultFrameOptions(800, 600)
	opts.Cull = false
	polys := BuildFrame(res, nil, cam, opts)
	require.Len(t, polys, 2)
	for _, p := range polys {
		assert.Equal(t, "far", p.Mesh)
	}
}

func TestBuildFrameHighlight(t *testing.T) {
	res := twoQuads()
	near, _ := res.Models.Get("near")
	near.IsHighlighted = true

	opts := DefaultFrameOptions(800, 600)
	opts.Highlight = color.RGBA{G: 255, A: 255}
	polys := BuildFrame(res, nil, NewCamera(), opts)

	for _, p := range polys {
		if p.Mesh == "near" {
			assert.True(t, p.Highlighted)
			assert.Greater(t, p.Color.G, p.Color.R)
		} else {
			assert.False(t, p.Highlighted)
		}
	}
}
