package ast

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes a textual dump of the tree to w, one line per node, indented
// proportionally to depth.
func Dump(w io.Writer, root *Node) {
	dump(w, root, 0)
}

func dump(w io.Writer, n *Node, depth int) {
	if n == nil {
		return
	}
	fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), n.Label())
	for _, child := range n.Children {
		dump(w, child, depth+1)
	}
}
