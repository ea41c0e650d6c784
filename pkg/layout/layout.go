// Package layout implements the two-pass tidy-tree algorithm that assigns
// every AST node an (offset, depth) coordinate on an integer lattice, with
// collision resolution that shifts entire subtrees.
package layout

import "xtreelang/pkg/ast"

// Position is an integer lattice coordinate assigned to an AST node.
type Position struct {
	Offset int
	Depth  int
}

// entry pairs a node with its position, preserving insertion order.
type entry struct {
	node *ast.Node
	pos  Position
}

// Layout is an insertion-ordered mapping from AST node identity to
// Position. Insertion order equals the post-order of Pass 2, and the draw
// pass (pkg/render) relies on iterating it in that order.
type Layout struct {
	entries []entry
	index   map[*ast.Node]int
}

func newLayout() *Layout {
	return &Layout{index: make(map[*ast.Node]int)}
}

func (l *Layout) set(n *ast.Node, pos Position) {
	if i, ok := l.index[n]; ok {
		l.entries[i].pos = pos
		return
	}
	l.index[n] = len(l.entries)
	l.entries = append(l.entries, entry{node: n, pos: pos})
}

// Get returns the position assigned to n.
func (l *Layout) Get(n *ast.Node) (Position, bool) {
	i, ok := l.index[n]
	if !ok {
		return Position{}, false
	}
	return l.entries[i].pos, true
}

// Len reports how many nodes have a position.
func (l *Layout) Len() int { return len(l.entries) }

// Each iterates entries in insertion (post-order) order.
func (l *Layout) Each(fn func(n *ast.Node, pos Position)) {
	for _, e := range l.entries {
		fn(e.node, e.pos)
	}
}

// MaxOffset returns the largest offset assigned to any node.
func (l *Layout) MaxOffset() int {
	max := 0
	for _, e := range l.entries {
		if e.pos.Offset > max {
			max = e.pos.Offset
		}
	}
	return max
}
