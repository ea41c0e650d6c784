package layout

import "xtreelang/pkg/ast"

// chain builds a linear spine of n nested Block nodes, innermost empty.
func chain(n int) *ast.Node {
	cur := ast.New(ast.Block)
	for i := 1; i < n; i++ {
		cur = ast.New(ast.Block, cur)
	}
	return cur
}

// balanced builds a balanced binary tree of the given depth using List
// nodes as internal branches and Block as leaves.
func balanced(depth int) *ast.Node {
	if depth == 0 {
		return ast.New(ast.Block)
	}
	return ast.New(ast.List, balanced(depth-1), balanced(depth-1))
}
