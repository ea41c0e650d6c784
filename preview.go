package main

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"xtreelang/pkg/pipeline"
)

var (
	boxFill   = color.RGBA{R: 160, G: 202, B: 252, A: 255}
	lineColor = color.Black
)

// treeView is an ebiten.Game that paints a static tree diagram: no game
// loop state, just a redraw of the same geometry the PNG back end
// rasterized.
type treeView struct {
	scene  []drawable
	width  int
	height int
}

type drawable struct {
	x1, y1, x2, y2 int
	label          string
	isBox          bool
	w, h           int
}

func newTreeView(r *pipeline.Result) *treeView {
	v := &treeView{width: r.Scene.Width, height: r.Scene.Height}
	for _, e := range r.Scene.Edges {
		v.scene = append(v.scene, drawable{x1: e.X1, y1: e.Y1, x2: e.X2, y2: e.Y2})
	}
	for _, p := range r.Scene.Primitives {
		v.scene = append(v.scene, drawable{x1: p.X, y1: p.Y, label: p.Label, isBox: true, w: p.W, h: p.H})
	}
	return v
}

func (v *treeView) Update() error { return nil }

func (v *treeView) Draw(screen *ebiten.Image) {
	for _, d := range v.scene {
		if d.isBox {
			ebitenutil.DrawRect(screen, float64(d.x1), float64(d.y1), float64(d.w), float64(d.h), boxFill)
			ebitenutil.DebugPrintAt(screen, d.label, d.x1+4, d.y1+d.h/3)
			continue
		}
		ebitenutil.DrawLine(screen, float64(d.x1), float64(d.y1), float64(d.x2), float64(d.y2), lineColor)
	}
}

func (v *treeView) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.width, v.height
}

// runPreview opens a window showing the same layout that was rasterized
// to PNG. It blocks until the window is closed.
func runPreview(r *pipeline.Result) {
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(r.Scene.Width, r.Scene.Height)
	ebiten.SetWindowTitle("xtree preview")

	if err := ebiten.RunGame(newTreeView(r)); err != nil {
		log.Println("preview closed:", err)
	}
}
