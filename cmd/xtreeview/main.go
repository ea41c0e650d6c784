// Command xtreeview is a standalone viewer: given a source file it runs the
// full pipeline and opens the tree diagram directly in an ebiten window,
// without going through the PNG file on disk.
package main

import (
	"fmt"
	"image/color"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"xtreelang/pkg/pipeline"
	"xtreelang/pkg/utils"
)

var (
	nodeFill = color.RGBA{R: 160, G: 202, B: 252, A: 255}
	lineInk  = color.Black
)

type game struct {
	primitives []primBox
	lines      []primLine
	width      int
	height     int
}

type primBox struct {
	x, y, w, h int
	label      string
}

type primLine struct {
	x1, y1, x2, y2 int
}

func newGame(r *pipeline.Result) *game {
	g := &game{width: r.Scene.Width, height: r.Scene.Height}
	for _, e := range r.Scene.Edges {
		g.lines = append(g.lines, primLine{e.X1, e.Y1, e.X2, e.Y2})
	}
	for _, p := range r.Scene.Primitives {
		g.primitives = append(g.primitives, primBox{p.X, p.Y, p.W, p.H, p.Label})
	}
	return g
}

func (g *game) Update() error { return nil }

func (g *game) Draw(screen *ebiten.Image) {
	for _, l := range g.lines {
		ebitenutil.DrawLine(screen, float64(l.x1), float64(l.y1), float64(l.x2), float64(l.y2), lineInk)
	}
	for _, b := range g.primitives {
		ebitenutil.DrawRect(screen, float64(b.x), float64(b.y), float64(b.w), float64(b.h), nodeFill)
		ebitenutil.DebugPrintAt(screen, b.label, b.x+4, b.y+b.h/3)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: xtreeview <source-file>")
		os.Exit(2)
	}

	fullPath, _, err := utils.GetPathInfo(os.Args[1])
	if err != nil {
		log.Fatalf("failed to resolve %q: %v", os.Args[1], err)
	}

	result, err := pipeline.Run(fullPath)
	if err != nil {
		log.Fatalf("pipeline failed: %v", err)
	}
	result.DumpAST(os.Stdout)

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(result.Scene.Width, result.Scene.Height)
	ebiten.SetWindowTitle("xtreeview: " + fullPath)

	if err := ebiten.RunGame(newGame(result)); err != nil {
		log.Fatal(err)
	}
}
