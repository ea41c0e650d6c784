package parser

import (
	"os"
	"path/filepath"
	"testing"

	"xtreelang/pkg/ast"
	"xtreelang/pkg/lexer"
	"xtreelang/pkg/symbol"
)

func parseString(t *testing.T, src string) (*ast.Node, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "src.x")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	tokens, err := lexer.Lex(path, symbol.NewTable())
	if err != nil {
		t.Fatalf("lex failed: %v", err)
	}
	return Parse(tokens)
}

func requireKind(t *testing.T, n *ast.Node, k ast.Kind) {
	t.Helper()
	if n == nil {
		t.Fatalf("expected kind %s, got nil node", k)
	}
	if n.Kind != k {
		t.Fatalf("expected kind %s, got %s", k, n.Kind)
	}
}

func requireChildCount(t *testing.T, n *ast.Node, want int) {
	t.Helper()
	if len(n.Children) != want {
		t.Fatalf("%s: expected %d children, got %d", n.Kind, want, len(n.Children))
	}
}

func TestParseEmptyProgram(t *testing.T) {
	root, err := parseString(t, "program { }")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	requireKind(t, root, ast.Program)
	requireChildCount(t, root, 1)
	block := root.Children[0]
	requireKind(t, block, ast.Block)
	requireChildCount(t, block, 0)
}

func TestParseDeepNesting(t *testing.T) {
	const depth = 32
	src := "program "
	for i := 0; i < depth; i++ {
		src += "{ "
	}
	for i := 0; i < depth; i++ {
		src += "} "
	}
	root, err := parseString(t, src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	n := root
	requireKind(t, n, ast.Program)
	n = n.Children[0]
	for i := 0; i < depth-1; i++ {
		requireKind(t, n, ast.Block)
		requireChildCount(t, n, 1)
		n = n.Children[0]
	}
	requireKind(t, n, ast.Block)
	requireChildCount(t, n, 0)
}

func TestParseDeclAndAssign(t *testing.T) {
	root, err := parseString(t, "program { int x x = 3 }")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	block := root.Children[0]
	requireChildCount(t, block, 2)

	decl := block.Children[0]
	requireKind(t, decl, ast.Decl)
	requireChildCount(t, decl, 2)
	requireKind(t, decl.Children[0], ast.IntType)
	requireKind(t, decl.Children[1], ast.Id)

	assign := block.Children[1]
	requireKind(t, assign, ast.Assign)
	requireChildCount(t, assign, 2)
	requireKind(t, assign.Children[0], ast.Id)
	requireKind(t, assign.Children[1], ast.IntLit)
	if assign.Children[1].Sym.Lexeme != "3" {
		t.Fatalf("expected literal 3, got %q", assign.Children[1].Sym.Lexeme)
	}
}

func TestParseIfThenElse(t *testing.T) {
	root, err := parseString(t, "program { boolean y if y then { return 1 } else { return 0 } }")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	block := root.Children[0]
	ifNode := block.Children[1]
	requireKind(t, ifNode, ast.If)
	requireChildCount(t, ifNode, 3)

	then := ifNode.Children[1]
	requireKind(t, then, ast.Block)
	requireChildCount(t, then, 1)
	requireKind(t, then.Children[0], ast.Return)

	els := ifNode.Children[2]
	requireKind(t, els, ast.Block)
	requireChildCount(t, els, 1)
	requireKind(t, els.Children[0], ast.Return)
}

func TestParseFunctionDecl(t *testing.T) {
	root, err := parseString(t, "program { int f(int a, int b) { return a + b } }")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fn := root.Children[0].Children[0]
	requireKind(t, fn, ast.FunctionDecl)
	requireChildCount(t, fn, 4)

	formals := fn.Children[2]
	requireKind(t, formals, ast.Formals)
	requireChildCount(t, formals, 2)
	requireKind(t, formals.Children[0], ast.Decl)
	requireKind(t, formals.Children[1], ast.Decl)

	body := fn.Children[3]
	ret := body.Children[0]
	requireKind(t, ret, ast.Return)
	sum := ret.Children[0]
	requireKind(t, sum, ast.AddOp)
	if sum.Sym.Lexeme != "+" {
		t.Fatalf("expected + operator, got %q", sum.Sym.Lexeme)
	}
}

func TestParseNumberLiteral(t *testing.T) {
	root, err := parseString(t, "program { number pi pi = 3.14 }")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assign := root.Children[0].Children[1]
	lit := assign.Children[1]
	requireKind(t, lit, ast.NumberLitNode)
	if lit.Sym.Lexeme != "3.14" {
		t.Fatalf("expected lexeme 3.14, got %q", lit.Sym.Lexeme)
	}
}

func TestParseDateLiteral(t *testing.T) {
	root, err := parseString(t, "program { date d d = 12~31~2024 }")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assign := root.Children[0].Children[1]
	lit := assign.Children[1]
	requireKind(t, lit, ast.DateLitNode)
	if lit.Sym.Lexeme != "12~31~2024" {
		t.Fatalf("expected lexeme 12~31~2024, got %q", lit.Sym.Lexeme)
	}
}

func TestParseDoloop(t *testing.T) {
	root, err := parseString(t, "program { do { x = x - 1 } until x == 0 }")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	do := root.Children[0].Children[0]
	requireKind(t, do, ast.Doloop)
	requireChildCount(t, do, 2)

	body := do.Children[0]
	assign := body.Children[0]
	requireKind(t, assign, ast.Assign)
	sub := assign.Children[1]
	requireKind(t, sub, ast.AddOp)
	if sub.Sym.Lexeme != "-" {
		t.Fatalf("expected - operator, got %q", sub.Sym.Lexeme)
	}

	cond := do.Children[1]
	requireKind(t, cond, ast.RelOp)
	if cond.Sym.Lexeme != "==" {
		t.Fatalf("expected == operator, got %q", cond.Sym.Lexeme)
	}
}

func TestParseForRequiresElse(t *testing.T) {
	_, err := parseString(t, "program { for x in [1,2] { return x } }")
	if err == nil {
		t.Fatal("expected a syntax error for a for-loop missing its else block")
	}
}

func TestParseSyntaxErrorNamesExpectedKind(t *testing.T) {
	_, err := parseString(t, "program { int }")
	if err == nil {
		t.Fatal("expected a syntax error")
	}
	se, ok := err.(*SyntaxError)
	if !ok {
		t.Fatalf("expected *SyntaxError, got %T", err)
	}
	if se.Expected.String() == "" {
		t.Fatal("expected kind should have a name")
	}
}
