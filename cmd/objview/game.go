package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"
	"github.com/smasonuk/gosiemesh"
	"github.com/smasonuk/gosiemesh/view"
	"github.com/urfave/cli/v2"
)

var outlineColor = color.RGBA{R: 20, G: 20, B: 20, A: 160}

type Game struct {
	res    *gosiemesh.Result
	groups map[string][]gosiemesh.MaterialGroup
	cam    *view.Camera
	opts   view.FrameOptions
	batch  *polygonBatcher

	outlines     bool
	highlighted  int // index into the registry, -1 for none
	isDragging   bool
	lastX, lastY int
}

func NewGame(res *gosiemesh.Result, cfg Config) (*Game, error) {
	highlight, err := parseHexColor(cfg.Render.Highlight)
	if err != nil {
		return nil, err
	}
	opts := view.DefaultFrameOptions(cfg.Window.Width, cfg.Window.Height)
	opts.Cull = cfg.Render.Cull
	opts.Ambient = cfg.Render.Ambient
	opts.Highlight = highlight

	g := &Game{
		res:         res,
		groups:      res.Partition(gosiemesh.WithLogger(logrus.StandardLogger())),
		cam:         view.NewCamera(),
		opts:        opts,
		batch:       newPolygonBatcher(),
		outlines:    cfg.Render.Outlines,
		highlighted: -1,
	}
	g.frame()
	return g, nil
}

func (g *Game) frame() {
	min, max := g.res.Models.Bounds()
	g.cam.Frame(min, max, g.opts.Height)
}

// cycleHighlight moves IsHighlighted to the next mesh, then to none.
func (g *Game) cycleHighlight() {
	if g.highlighted >= 0 {
		g.res.Models.At(g.highlighted).IsHighlighted = false
	}
	g.highlighted++
	if g.highlighted >= g.res.Models.Len() {
		g.highlighted = -1
		return
	}
	g.res.Models.At(g.highlighted).IsHighlighted = true
}

func (g *Game) Update() error {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.isDragging = true
		g.lastX, g.lastY = ebiten.CursorPosition()
	}
	if g.isDragging {
		x, y := ebiten.CursorPosition()
		g.cam.Orbit(-float64(x-g.lastX)/200.0, float64(y-g.lastY)/200.0)
		g.lastX, g.lastY = x, y
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.isDragging = false
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		g.cam.Zoom(math.Pow(0.9, wy))
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		g.cycleHighlight()
	case inpututil.IsKeyJustPressed(ebiten.KeyL):
		g.outlines = !g.outlines
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.opts.Cull = !g.opts.Cull
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		g.frame()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	polys := view.BuildFrame(g.res, g.groups, g.cam, g.opts)
	g.batch.Begin(screen)
	for _, p := range polys {
		if g.outlines {
			g.batch.AddPolygonAndOutline(p.XS, p.YS, p.Color, outlineColor, 1)
		} else {
			g.batch.AddPolygon(p.XS, p.YS, p.Color)
		}
	}
	g.batch.Flush()

	selected := "none"
	if g.highlighted >= 0 {
		selected = g.res.Models.At(g.highlighted).Name
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %0.2f  polygons: %d  selected: %q\n"+
		"drag: orbit  wheel: zoom  tab: select  L: outlines  C: cull  F: frame",
		ebiten.ActualFPS(), len(polys), selected))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.opts.Width, g.opts.Height
}

func viewCommand(ctx *cli.Context) error {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	res, err := loadModel(ctx, cfg)
	if err != nil {
		return err
	}
	game, err := NewGame(res, cfg)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	return ebiten.RunGame(game)
}
