package view

import (
	"image/color"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/smasonuk/gosiemesh"
)

// Polygon is one clipped, projected and shaded triangle.
type Polygon struct {
	Mesh        string
	XS, YS      []float32
	Color       color.RGBA
	Depth       float64
	Highlighted bool
}

type FrameOptions struct {
	Width, Height int
	Cull          bool
	Ambient       float64
	// DefaultColor is used for groups without a material.
	DefaultColor color.RGBA
	Highlight    color.RGBA
}

func DefaultFrameOptions(width, height int) FrameOptions {
	return FrameOptions{
		Width:        width,
		Height:       height,
		Cull:         true,
		Ambient:      0.65,
		DefaultColor: color.RGBA{R: 200, G: 200, B: 200, A: 255},
		Highlight:    color.RGBA{R: 255, G: 220, B: 0, A: 255},
	}
}

// BuildFrame returns every visible triangle of res as a screen polygon,
// ordered far to near for painter's drawing. groups comes from
// Result.Partition; a mesh without groups is drawn in the default colour.
func BuildFrame(res *gosiemesh.Result, groups map[string][]gosiemesh.MaterialGroup, cam *Camera, opts FrameOptions) []Polygon {
	view := cam.View()
	var polys []Polygon

	for _, m := range res.Models.Meshes() {
		if m.TriangleCount() == 0 {
			continue
		}
		camPts := make([]mgl64.Vec3, m.VertexCount())
		for i := range camPts {
			camPts[i] = ToCamera(view, m.Position(uint32(i)))
		}

		meshGroups := groups[m.Name]
		if meshGroups == nil {
			meshGroups = []gosiemesh.MaterialGroup{{Indices: m.Indices}}
		}
		for _, g := range meshGroups {
			base := opts.DefaultColor
			if g.Material != nil {
				base = g.Material.RGBA()
			}
			if m.IsHighlighted {
				base = Tint(base, opts.Highlight, 0.5)
			}
			for t := 0; t < g.TriangleCount(); t++ {
				tri := [3]mgl64.Vec3{
					camPts[g.Indices[3*t]],
					camPts[g.Indices[3*t+1]],
					camPts[g.Indices[3*t+2]],
				}
				if p, ok := buildPolygon(tri, base, cam, opts); ok {
					p.Mesh = m.Name
					p.Highlighted = m.IsHighlighted
					polys = append(polys, p)
				}
			}
		}
	}

	slices.SortStableFunc(polys, func(a, b Polygon) int {
		switch {
		case a.Depth > b.Depth:
			return -1
		case a.Depth < b.Depth:
			return 1
		}
		return 0
	})
	return polys
}

// buildPolygon shades, clips and projects one camera space triangle.
func buildPolygon(tri [3]mgl64.Vec3, base color.RGBA, cam *Camera, opts FrameOptions) (Polygon, bool) {
	normal := tri[1].Sub(tri[0]).Cross(tri[2].Sub(tri[0]))
	if normal.Len() == 0 {
		return Polygon{}, false
	}
	normal = normal.Normalize()

	// the eye is at the origin, so a front face points back along -tri[0]
	if normal.Dot(tri[0].Mul(-1)) <= 0 {
		if opts.Cull {
			return Polygon{}, false
		}
		normal = normal.Mul(-1)
	}

	poly := make([][3]float64, len(tri))
	for i, p := range tri {
		poly[i] = [3]float64{p.X(), p.Y(), -p.Z()}
	}
	poly = ClipNearPlane(poly, cam.Near)
	if len(poly) < 3 {
		return Polygon{}, false
	}

	centroid := tri[0].Add(tri[1]).Add(tri[2]).Mul(1.0 / 3)
	out := Polygon{
		XS:    make([]float32, len(poly)),
		YS:    make([]float32, len(poly)),
		Color: Shade(base, normal, centroid, opts.Ambient),
		Depth: -centroid.Z(),
	}
	for i, p := range poly {
		out.XS[i], out.YS[i] = cam.Project(p, opts.Width, opts.Height)
	}
	return out, true
}
