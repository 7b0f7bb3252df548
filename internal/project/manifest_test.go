package project

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestFindManifestWalksUp(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ManifestName), "[package]\nname = \"demo\"\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	path, ok, err := FindManifest(nested)
	if err != nil || !ok {
		t.Fatalf("FindManifest: ok=%v err=%v", ok, err)
	}
	if path != filepath.Join(root, ManifestName) {
		t.Fatalf("path = %q", path)
	}
}

func TestDiscoverWithoutManifest(t *testing.T) {
	m, ok, err := Discover(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// A temp dir may sit under a directory that has a manifest; only check
	// consistency.
	if ok != (m != nil) {
		t.Fatalf("ok=%v but manifest=%v", ok, m)
	}
}

func TestLoad(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, ManifestName)
	writeFile(t, path, `
[package]
name = "demo"

[build]
sources = ["src/*.fanc", "main.fanc"]
out_dir = "out"
verify = true
jobs = 4
cache = true
`)
	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Config.Package.Name != "demo" {
		t.Fatalf("name = %q", m.Config.Package.Name)
	}
	b := m.Config.Build
	if !b.Verify || !b.Cache || b.Jobs != 4 {
		t.Fatalf("build config = %+v", b)
	}
	if m.OutDir() != filepath.Join(root, "out") {
		t.Fatalf("OutDir = %q", m.OutDir())
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"no package", "[build]\njobs = 1\n", "missing [package]"},
		{"no name", "[package]\n", "missing [package].name"},
		{"blank name", "[package]\nname = \"  \"\n", "missing [package].name"},
		{"negative jobs", "[package]\nname = \"x\"\n[build]\njobs = -1\n", "must not be negative"},
		{"unknown key", "[package]\nname = \"x\"\nversion = \"1\"\n", "unknown key package.version"},
		{"bad toml", "[package\n", "failed to parse TOML"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), ManifestName)
			writeFile(t, path, tt.content)
			_, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("err = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestSources(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, ManifestName)
	writeFile(t, path, "[package]\nname = \"demo\"\n[build]\nsources = [\"*.fanc\", \"lib/*.fanc\", \"b.fanc\"]\n")
	writeFile(t, filepath.Join(root, "b.fanc"), "")
	writeFile(t, filepath.Join(root, "a.fanc"), "")
	writeFile(t, filepath.Join(root, "lib", "c.fanc"), "")
	writeFile(t, filepath.Join(root, "notes.txt"), "")

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	got, err := m.Sources()
	if err != nil {
		t.Fatalf("Sources: %v", err)
	}
	want := []string{
		filepath.Join(root, "a.fanc"),
		filepath.Join(root, "b.fanc"),
		filepath.Join(root, "lib", "c.fanc"),
	}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("Sources = %v, want %v", got, want)
	}
}

func TestDefaultSources(t *testing.T) {
	path := filepath.Join(t.TempDir(), ManifestName)
	writeFile(t, path, "[package]\nname = \"demo\"\n")
	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(m.Config.Build.Sources) != 1 || m.Config.Build.Sources[0] != "*.fanc" {
		t.Fatalf("sources = %v", m.Config.Build.Sources)
	}
	if m.OutDir() != "" {
		t.Fatalf("OutDir = %q", m.OutDir())
	}
}

func TestCacheKey(t *testing.T) {
	a := CacheKey([]byte("void main() {}"), "0.1.0", "verify")
	if a != CacheKey([]byte("void main() {}"), "0.1.0", "verify") {
		t.Fatal("CacheKey is not deterministic")
	}
	if a == CacheKey([]byte("void main() {}"), "0.2.0", "verify") {
		t.Fatal("version does not affect key")
	}
	if a == CacheKey([]byte("void main() { }"), "0.1.0", "verify") {
		t.Fatal("content does not affect key")
	}
	if a == CacheKey([]byte("void main() {}"), "0.1.0") {
		t.Fatal("options do not affect key")
	}
}
