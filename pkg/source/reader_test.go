package source

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "src.x")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func readAll(t *testing.T, r *Reader) string {
	t.Helper()
	var out []rune
	for {
		ch, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out = append(out, ch)
	}
	return string(out)
}

func TestReadNormalizesEOLToSpace(t *testing.T) {
	r, err := Open(writeFixture(t, "ab\ncd"))
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer r.Close()
	if got := readAll(t, r); got != "ab cd" {
		t.Fatalf("got %q, want %q", got, "ab cd")
	}
}

func TestReadBlankLineYieldsSingleSpace(t *testing.T) {
	r, err := Open(writeFixture(t, "a\n\nb"))
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer r.Close()
	if got := readAll(t, r); got != "a  b" {
		t.Fatalf("got %q, want %q", got, "a  b")
	}
}

func TestReadTracksLineAndColumn(t *testing.T) {
	r, err := Open(writeFixture(t, "xy\nz"))
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer r.Close()

	ch, _ := r.Read() // 'x'
	if ch != 'x' || r.Line() != 1 || r.Column() != 0 {
		t.Fatalf("got ch=%q line=%d col=%d", ch, r.Line(), r.Column())
	}
	ch, _ = r.Read() // 'y'
	if ch != 'y' || r.Line() != 1 || r.Column() != 1 {
		t.Fatalf("got ch=%q line=%d col=%d", ch, r.Line(), r.Column())
	}
	ch, _ = r.Read() // EOL -> space
	if ch != ' ' {
		t.Fatalf("expected EOL to yield a space, got %q", ch)
	}
	ch, _ = r.Read() // 'z' on line 2
	if ch != 'z' || r.Line() != 2 {
		t.Fatalf("got ch=%q line=%d, want 'z' on line 2", ch, r.Line())
	}
}

func TestReadEOFAfterExhaustion(t *testing.T) {
	r, err := Open(writeFixture(t, "a"))
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer r.Close()

	r.Read()          // 'a'
	r.Read()          // EOL space
	_, err = r.Read() // exhausted
	if err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
	if _, err := r.Read(); err != io.EOF {
		t.Fatalf("expected io.EOF on repeated read past end, got %v", err)
	}
}

func TestCurrentLineReflectsLastLineRead(t *testing.T) {
	r, err := Open(writeFixture(t, "hello\nworld"))
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer r.Close()

	for i := 0; i < 5; i++ {
		r.Read()
	}
	if got := r.CurrentLine(); got != "hello" {
		t.Fatalf("got %q, want %q", got, "hello")
	}
}
