package render

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"xtreelang/pkg/ast"
	"xtreelang/pkg/layout"
)

func TestDrawSizesCanvasFromLayout(t *testing.T) {
	root := ast.New(ast.Program, ast.New(ast.Block))
	l := layout.Offset(root)
	_, maxDepth := layout.Count(root)

	scene := Draw(l, maxDepth)

	wantW := (l.MaxOffset()+1)*(NodeW+HorizSep) + HorizSep
	wantH := (maxDepth+1)*(NodeH+VertSep) + VertSep
	if scene.Width != wantW || scene.Height != wantH {
		t.Fatalf("got %dx%d, want %dx%d", scene.Width, scene.Height, wantW, wantH)
	}
	if len(scene.Primitives) != 2 {
		t.Fatalf("got %d primitives, want 2", len(scene.Primitives))
	}
	if len(scene.Edges) != 1 {
		t.Fatalf("got %d edges, want 1", len(scene.Edges))
	}
}

func TestDrawEdgeConnectsParentBottomToChildTop(t *testing.T) {
	root := ast.New(ast.Program, ast.New(ast.Block))
	l := layout.Offset(root)
	_, maxDepth := layout.Count(root)
	scene := Draw(l, maxDepth)

	edge := scene.Edges[0]
	parentPos, _ := l.Get(root)
	childPos, _ := l.Get(root.Children[0])

	wantY1 := parentPos.Depth*(NodeH+VertSep) + VertSep/2 + NodeH
	wantY2 := childPos.Depth*(NodeH+VertSep) + VertSep/2
	if edge.Y1 != wantY1 || edge.Y2 != wantY2 {
		t.Fatalf("got Y1=%d Y2=%d, want Y1=%d Y2=%d", edge.Y1, edge.Y2, wantY1, wantY2)
	}
}

func TestRasterAndSavePNGProduceValidImage(t *testing.T) {
	root := ast.New(ast.Program, ast.New(ast.Block))
	l := layout.Offset(root)
	_, maxDepth := layout.Count(root)
	scene := Draw(l, maxDepth)

	img := Raster(scene)
	if img.Bounds().Dx() != scene.Width || img.Bounds().Dy() != scene.Height {
		t.Fatalf("raster canvas %v does not match scene size %dx%d", img.Bounds(), scene.Width, scene.Height)
	}

	path := filepath.Join(t.TempDir(), "out.png")
	if err := SavePNG(img, path); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("could not reopen saved PNG: %v", err)
	}
	defer f.Close()
	decoded, _, err := image.Decode(f)
	if err != nil {
		t.Fatalf("saved file did not decode as an image: %v", err)
	}
	if decoded.Bounds().Dx() != scene.Width {
		t.Fatalf("decoded width %d, want %d", decoded.Bounds().Dx(), scene.Width)
	}
}
