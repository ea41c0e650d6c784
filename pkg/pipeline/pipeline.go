// Package pipeline wires the lexer, parser, layout engine and renderer into
// the single sequential run the CLI drivers invoke: source file in,
// (AST dump, PNG) out.
package pipeline

import (
	"fmt"
	"io"

	"xtreelang/pkg/ast"
	"xtreelang/pkg/layout"
	"xtreelang/pkg/lexer"
	"xtreelang/pkg/parser"
	"xtreelang/pkg/render"
	"xtreelang/pkg/symbol"
)

// Result carries everything a caller needs after a successful run: the AST
// itself, the layout, and the rendered scene, so the CLI can dump, save a
// PNG, and/or open a live preview from the same pass.
type Result struct {
	Root   *ast.Node
	Nodes  []int // per-depth node counts (Pass 1)
	Depth  int
	Layout *layout.Layout
	Scene  render.Scene
}

// Run executes the full pipeline against the source file at path:
// lex -> parse -> count -> offset -> draw. Every stage error is wrapped
// with the stage name that produced it, matching the layered error
// reporting a compiler driver uses to tell a caller where in the pipeline
// things went wrong.
func Run(path string) (*Result, error) {
	syms := symbol.NewTable()

	tokens, err := lexer.Lex(path, syms)
	if err != nil {
		return nil, fmt.Errorf("lex error: %w", err)
	}

	root, err := parser.Parse(tokens)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	nCount, maxDepth := layout.Count(root)
	l := layout.Offset(root)
	scene := render.Draw(l, maxDepth)

	return &Result{Root: root, Nodes: nCount, Depth: maxDepth, Layout: l, Scene: scene}, nil
}

// DumpAST writes the textual AST dump to w.
func (r *Result) DumpAST(w io.Writer) {
	ast.Dump(w, r.Root)
}

// SavePNG rasterizes the scene and writes it to path.
func (r *Result) SavePNG(path string) error {
	img := render.Raster(r.Scene)
	return render.SavePNG(img, path)
}

// DefaultOutputPath appends .png to a source path, following the
// convention of saving the diagram next to the source.
func DefaultOutputPath(inPath string) string {
	return inPath + ".png"
}
