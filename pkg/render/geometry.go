// Package render turns a Layout plus its AST into geometry records and, from
// those, pixel output: a headless PNG and, optionally, a live preview
// window (see cmd/xtreeview).
package render

import (
	"xtreelang/pkg/ast"
	"xtreelang/pkg/layout"
)

// Fixed layout constants for node boxes and the spacing between them.
const (
	NodeW    = 80
	NodeH    = 30
	VertSep  = 50
	HorizSep = 10
)

// Primitive is a single node's drawable box.
type Primitive struct {
	Label string
	X, Y  int
	W, H  int
}

// Edge is a single line from a parent's bottom edge to a child's top edge.
type Edge struct {
	X1, Y1, X2, Y2 int
}

// Scene is everything the draw pass emits for one AST: box and edge
// records plus the canvas dimensions they were sized against.
type Scene struct {
	Primitives    []Primitive
	Edges         []Edge
	Width, Height int
}

// Draw is Pass 3: a walk over the Layout in its insertion order
// (post-order, children before their parent) that emits one Primitive per
// node and one Edge per parent-child pair.
func Draw(l *layout.Layout, maxDepth int) Scene {
	hstep := NodeW + HorizSep
	vstep := NodeH + VertSep

	scene := Scene{
		Width:  (l.MaxOffset()+1)*hstep + HorizSep,
		Height: (maxDepth+1)*vstep + VertSep,
	}

	l.Each(func(n *ast.Node, pos layout.Position) {
		x := pos.Offset*hstep + HorizSep/2
		y := pos.Depth*vstep + VertSep/2
		scene.Primitives = append(scene.Primitives, Primitive{
			Label: n.Label(), X: x, Y: y, W: NodeW, H: NodeH,
		})

		startX := x + NodeW/2
		startY := y + NodeH
		for _, child := range n.Children {
			childPos, ok := l.Get(child)
			if !ok {
				continue
			}
			endX := childPos.Offset*hstep + HorizSep/2 + NodeW/2
			endY := childPos.Depth*vstep + VertSep/2
			scene.Edges = append(scene.Edges, Edge{X1: startX, Y1: startY, X2: endX, Y2: endY})
		}
	})

	return scene
}
