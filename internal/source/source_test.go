package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetKeepsContentVerbatim(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.ts")
	raw := []byte("\xEF\xBB\xBFvar a;\r\nvar b;\n")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}
	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	f := fs.Get(id)
	if string(f.Content) != string(raw) {
		t.Fatalf("content was modified: %q", f.Content)
	}
	if f.Flags&FileHasBOM == 0 || f.Flags&FileHasCRLF == 0 {
		t.Fatalf("flags not detected: %b", f.Flags)
	}
	if got := f.GetLine(1); got != "\xEF\xBB\xBFvar a;" {
		t.Fatalf("GetLine(1) = %q", got)
	}
	if got := f.GetLine(2); got != "var b;" {
		t.Fatalf("GetLine(2) = %q", got)
	}
}

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()
	id1 := fs.Add("test.ts", []byte("hello world"), 0)
	id2 := fs.Add("test.ts", []byte("hello universe"), 0)
	if id1 == id2 {
		t.Fatalf("expected distinct ids")
	}
	latest, ok := fs.GetLatest("./test.ts")
	if !ok || latest != id2 {
		t.Fatalf("GetLatest = %d, %v", latest, ok)
	}
	if string(fs.Get(id1).Content) != "hello world" {
		t.Fatalf("old version lost")
	}
}

func TestPosition(t *testing.T) {
	f := NewVirtualFile("p.ts", "ab\ncd\n\nx")
	cases := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{1, 1}},
		{2, LineCol{1, 3}},
		{3, LineCol{2, 1}},
		{6, LineCol{3, 1}},
		{7, LineCol{4, 1}},
		{8, LineCol{4, 2}},
	}
	for _, c := range cases {
		if got := f.Position(c.off); got != c.want {
			t.Errorf("Position(%d) = %+v, want %+v", c.off, got, c.want)
		}
	}
}

func TestInterner(t *testing.T) {
	in := NewInterner()
	a := in.InternBytes([]byte("foo"))
	b := in.InternBytes([]byte("foo"))
	if a != "foo" || b != "foo" {
		t.Fatalf("unexpected canonical strings %q %q", a, b)
	}
	if in.Len() != 2 {
		t.Fatalf("Len = %d, want 2", in.Len())
	}
	id := in.Intern("bar")
	if s, ok := in.Lookup(id); !ok || s != "bar" {
		t.Fatalf("Lookup = %q, %v", s, ok)
	}
	if _, ok := in.Lookup(StringID(99)); ok {
		t.Fatalf("Lookup of unknown id should fail")
	}
}

func TestSpanOf(t *testing.T) {
	sp := SpanOf(1, 4, 3)
	if sp.Start != 4 || sp.End != 7 || sp.Len() != 3 {
		t.Fatalf("SpanOf = %v", sp)
	}
	if c := sp.Clamp(5); c.Start != 4 || c.End != 5 {
		t.Fatalf("Clamp = %v", c)
	}
}
