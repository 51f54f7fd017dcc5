package gosiemesh

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestRegistryOrder(t *testing.T) {
	reg := NewRegistry()
	reg.Add(NewMesh("b"))
	reg.Add(NewMesh("a"))
	reg.Add(NewMesh(""))

	assert.Equal(t, []string{"b", "a", ""}, reg.Names())
	assert.Equal(t, "a", reg.At(1).Name)

	replacement := NewMesh("b")
	replacement.IsHighlighted = true
	reg.Add(replacement)
	assert.Equal(t, 3, reg.Len())
	assert.Same(t, replacement, reg.At(0))

	_, ok := reg.Get("missing")
	assert.False(t, ok)
}

func TestRegistryRemove(t *testing.T) {
	reg := NewRegistry()
	reg.Add(NewMesh(""))
	reg.Add(NewMesh("a"))

	assert.True(t, reg.Remove(""))
	assert.False(t, reg.Remove("missing"))
	assert.Equal(t, []string{"a"}, reg.Names())
	assert.Equal(t, "a", reg.At(0).Name)
}

func TestRegistryBounds(t *testing.T) {
	reg := NewRegistry()
	reg.Add(&Mesh{Name: "a", Positions: []float32{-1, 0, 0, 1, 2, 0}})
	reg.Add(NewMesh("empty"))
	reg.Add(&Mesh{Name: "b", Positions: []float32{0, -3, 5}})

	min, max := reg.Bounds()
	assert.Equal(t, mgl32.Vec3{-1, -3, 0}, min)
	assert.Equal(t, mgl32.Vec3{1, 2, 5}, max)
}
