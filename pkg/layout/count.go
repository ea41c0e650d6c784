package layout

import "xtreelang/pkg/ast"

// Count is Pass 1: a post-order traversal that increments nCount[depth]
// for every visited node and tracks the maximum depth reached. The
// returned slice is dense over [0, maxDepth].
func Count(root *ast.Node) (nCount []int, maxDepth int) {
	counts := map[int]int{}
	maxDepth = countVisit(root, 0, counts)

	nCount = make([]int, maxDepth+1)
	for depth, n := range counts {
		nCount[depth] = n
	}
	return nCount, maxDepth
}

func countVisit(n *ast.Node, depth int, counts map[int]int) (maxDepth int) {
	maxDepth = depth
	for _, child := range n.Children {
		if d := countVisit(child, depth+1, counts); d > maxDepth {
			maxDepth = d
		}
	}
	counts[depth]++
	return maxDepth
}
