package main

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DrawTriangles indexes vertices with uint16.
const maxBatchVertices = math.MaxUint16

var (
	whiteImage = ebiten.NewImage(3, 3)
	whiteSub   *ebiten.Image
)

func init() {
	whiteImage.Fill(color.White)
	whiteSub = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// polygonBatcher collects filled and stroked polygons and draws them with
// as few DrawTriangles calls as the index size allows. Draw order is kept.
type polygonBatcher struct {
	screen   *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
	op       ebiten.DrawTrianglesOptions
}

func newPolygonBatcher() *polygonBatcher {
	return &polygonBatcher{op: ebiten.DrawTrianglesOptions{AntiAlias: true}}
}

func (b *polygonBatcher) Begin(screen *ebiten.Image) {
	b.screen = screen
	b.vertices = b.vertices[:0]
	b.indices = b.indices[:0]
}

func (b *polygonBatcher) reserve(n int) {
	if len(b.vertices)+n > maxBatchVertices {
		b.Flush()
	}
}

func colorVertices(vs []ebiten.Vertex, clr color.RGBA) {
	cr := float32(clr.R) / 255.0
	cg := float32(clr.G) / 255.0
	cb := float32(clr.B) / 255.0
	ca := float32(clr.A) / 255.0
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = cr
		vs[i].ColorG = cg
		vs[i].ColorB = cb
		vs[i].ColorA = ca
	}
}

// AddPolygon queues a filled convex polygon.
func (b *polygonBatcher) AddPolygon(xp, yp []float32, clr color.RGBA) {
	if len(xp) < 3 {
		return
	}
	b.reserve(len(xp))

	base := uint16(len(b.vertices))
	start := len(b.vertices)
	for i := range xp {
		b.vertices = append(b.vertices, ebiten.Vertex{DstX: xp[i], DstY: yp[i]})
	}
	colorVertices(b.vertices[start:], clr)
	for i := 2; i < len(xp); i++ {
		b.indices = append(b.indices, base, base+uint16(i-1), base+uint16(i))
	}
}

// AddPolygonAndOutline queues a filled polygon with a stroked border.
func (b *polygonBatcher) AddPolygonAndOutline(xp, yp []float32, fillClr, strokeClr color.RGBA, strokeWidth float32) {
	b.AddPolygon(xp, yp, fillClr)
	if len(xp) < 2 {
		return
	}

	var path vector.Path
	path.MoveTo(xp[0], yp[0])
	for i := 1; i < len(xp); i++ {
		path.LineTo(xp[i], yp[i])
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{Width: strokeWidth})
	b.reserve(len(vs))
	colorVertices(vs, strokeClr)

	base := uint16(len(b.vertices))
	b.vertices = append(b.vertices, vs...)
	for _, idx := range is {
		b.indices = append(b.indices, base+idx)
	}
}

// Flush draws everything queued so far.
func (b *polygonBatcher) Flush() {
	if len(b.indices) > 0 && b.screen != nil {
		b.screen.DrawTriangles(b.vertices, b.indices, whiteSub, &b.op)
	}
	b.vertices = b.vertices[:0]
	b.indices = b.indices[:0]
}
