package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.fanc", []byte("void main() {\n  int x;\n}\n"))

	cases := []struct {
		off  uint32
		line uint32
		col  uint32
	}{
		{0, 1, 1},
		{13, 1, 14}, // the '\n' itself belongs to line 1
		{14, 2, 1},
		{16, 2, 3},
		{23, 3, 1},
	}
	for _, tc := range cases {
		start, _ := fs.Resolve(Span{File: id, Start: tc.off, End: tc.off})
		if start.Line != tc.line || start.Col != tc.col {
			t.Fatalf("offset %d: got %d:%d, want %d:%d", tc.off, start.Line, start.Col, tc.line, tc.col)
		}
	}
}

func TestFileGetLine(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("a.fanc", []byte("first\nsecond\nthird")))

	if got := f.GetLine(1); got != "first" {
		t.Fatalf("line 1: %q", got)
	}
	if got := f.GetLine(3); got != "third" {
		t.Fatalf("line 3: %q", got)
	}
	if got := f.GetLine(4); got != "" {
		t.Fatalf("line 4 should be empty, got %q", got)
	}
	if got := f.GetLine(0); got != "" {
		t.Fatalf("line 0 should be empty, got %q", got)
	}
}

func TestLoadNormalizesCRLFAndBOM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crlf.fanc")
	content := append([]byte{0xEF, 0xBB, 0xBF}, []byte("a\r\nb\r\n")...)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	f := fs.Get(id)
	if string(f.Content) != "a\nb\n" {
		t.Fatalf("unexpected content %q", f.Content)
	}
	if f.Flags&FileHadBOM == 0 || f.Flags&FileNormalizedCRLF == 0 {
		t.Fatalf("expected BOM and CRLF flags, got %b", f.Flags)
	}
	if got, ok := fs.GetByPath(path); !ok || got.ID != id {
		t.Fatalf("GetByPath did not return the loaded file")
	}
}

func TestInterner(t *testing.T) {
	in := NewInterner()
	a := in.Intern("main")
	b := in.Intern("x")
	if a == b || a == NoStringID {
		t.Fatalf("unexpected ids %d %d", a, b)
	}
	if again := in.InternBytes([]byte("main")); again != a {
		t.Fatalf("re-interning returned %d, want %d", again, a)
	}
	if s := in.MustLookup(b); s != "x" {
		t.Fatalf("lookup: %q", s)
	}
	if _, ok := in.Lookup(StringID(99)); ok {
		t.Fatalf("lookup of unknown id succeeded")
	}
	if in.Len() != 3 {
		t.Fatalf("len = %d", in.Len())
	}
}
