package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

// execute runs a fresh root command and returns stdout, stderr and the
// command error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--color=off"}, args...))
	err := root.Execute()
	runCleanups()
	return stdout.String(), stderr.String(), err
}

func TestCheckPrintsLanguageError(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.fanc", "void main() {\n  int x = true;\n}\n")
	stdout, _, err := execute(t, "check", path)
	if err != nil {
		t.Fatalf("language errors must not fail the command: %v", err)
	}
	if stdout != "line 2: type mismatch\n" {
		t.Fatalf("stdout = %q", stdout)
	}
}

func TestCheckMissingMain(t *testing.T) {
	path := writeFile(t, t.TempDir(), "nomain.fanc", "int main() {\n  return 0;\n}\n")
	stdout, _, err := execute(t, "check", path)
	if err != nil {
		t.Fatal(err)
	}
	if stdout != "Program has no 'void main()' function\n" {
		t.Fatalf("stdout = %q", stdout)
	}
}

func TestCheckFormats(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.fanc", "void main() {\n  int x = true;\n}\n")

	stdout, _, err := execute(t, "check", "--format", "pretty", path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout, "bad.fanc:2:") || !strings.Contains(stdout, "int x = true;") {
		t.Fatalf("pretty output:\n%s", stdout)
	}

	stdout, _, err = execute(t, "check", "--format", "json", path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout, `"text": "line 2: type mismatch"`) {
		t.Fatalf("json output:\n%s", stdout)
	}

	if _, _, err := execute(t, "check", "--format", "xml", path); err == nil {
		t.Fatal("expected unknown format error")
	}
}

func TestCheckScopesAndIR(t *testing.T) {
	path := writeFile(t, t.TempDir(), "ok.fanc", "void main() {\n  int x = 1;\n  printi(x);\n}\n")
	stdout, _, err := execute(t, "check", "--scopes", "--emit-ir", "--verify", path)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"---begin global scope---", "  x int 0\n", "define void @main()"} {
		if !strings.Contains(stdout, want) {
			t.Fatalf("missing %q in:\n%s", want, stdout)
		}
	}
}

func TestCheckMissingFile(t *testing.T) {
	_, _, err := execute(t, "check", filepath.Join(t.TempDir(), "nope.fanc"))
	if err == nil {
		t.Fatal("expected an I/O error")
	}
}

func TestBuildToStdout(t *testing.T) {
	path := writeFile(t, t.TempDir(), "ok.fanc", "void main() {\n  printi(42);\n}\n")
	stdout, _, err := execute(t, "build", "-o", "-", path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout, "call void @printi(i32 42)") {
		t.Fatalf("stdout:\n%s", stdout)
	}
	if _, err := os.Stat(filepath.Join(filepath.Dir(path), "ok.ll")); !os.IsNotExist(err) {
		t.Fatal("-o - must not write files")
	}
}

func TestBuildWritesFiles(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.fanc", "void main() {\n  printi(1);\n}\n")
	bad := writeFile(t, dir, "bad.fanc", "void main() {\n  y = 1;\n}\n")
	out := filepath.Join(dir, "out")

	stdout, stderr, err := execute(t, "build", "--ui=off", "-o", out, good, bad)
	if err != nil {
		t.Fatal(err)
	}
	if stdout != bad+": line 2: variable y is not defined\n" {
		t.Fatalf("stdout = %q", stdout)
	}
	if !strings.Contains(stderr, "1 of 2 files failed") {
		t.Fatalf("stderr = %q", stderr)
	}
	if _, err := os.Stat(filepath.Join(out, "good.ll")); err != nil {
		t.Fatal(err)
	}
}

func TestBuildFromManifest(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "fanc.toml", "[package]\nname = \"demo\"\n\n[build]\nsources = [\"src/*.fanc\"]\nout_dir = \"out\"\nverify = true\n")
	writeFile(t, dir, "src/a.fanc", "void main() {\n  printi(1);\n}\n")
	writeFile(t, dir, "src/b.fanc", "int f() {\n  return 2;\n}\n\nvoid main() {\n  printi(f());\n}\n")
	t.Chdir(dir)

	_, stderr, err := execute(t, "--quiet", "--timings", "build", "--ui=off")
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"a.ll", "b.ll"} {
		if _, err := os.Stat(filepath.Join(dir, "out", name)); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
	}
	if !strings.Contains(stderr, "compiled") || !strings.Contains(stderr, "timings:") {
		t.Fatalf("stderr = %q", stderr)
	}
}

func TestBuildWithoutSources(t *testing.T) {
	t.Chdir(t.TempDir())
	_, _, err := execute(t, "build")
	if err == nil || !strings.Contains(err.Error(), "no fanc.toml found") {
		t.Fatalf("err = %v", err)
	}
}

func TestTokenizeAndParse(t *testing.T) {
	path := writeFile(t, t.TempDir(), "ok.fanc", "void main() {\n  printi(1);\n}\n")

	stdout, _, err := execute(t, "tokenize", path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout, `"printi"`) {
		t.Fatalf("tokens:\n%s", stdout)
	}

	stdout, _, err = execute(t, "parse", path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(stdout, "Program\n") || !strings.Contains(stdout, "main") {
		t.Fatalf("tree:\n%s", stdout)
	}

	bad := writeFile(t, t.TempDir(), "bad.fanc", "void main( {\n}\n")
	stdout, _, err = execute(t, "parse", bad)
	if err != nil {
		t.Fatal(err)
	}
	if stdout != "line 1: syntax error\n" {
		t.Fatalf("stdout = %q", stdout)
	}
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(stdout, "fanc ") {
		t.Fatalf("stdout = %q", stdout)
	}
	stdout, _, err = execute(t, "version", "--format", "json")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout, `"tool": "fanc"`) {
		t.Fatalf("stdout = %q", stdout)
	}
}

func TestTraceFlags(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "ok.fanc", "void main() {\n  printi(1);\n}\n")
	tracePath := filepath.Join(dir, "trace.ndjson")
	if _, _, err := execute(t, "--trace", tracePath, "--trace-level", "debug", "check", path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(tracePath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "fn:main") {
		t.Fatalf("trace:\n%s", data)
	}

	if _, _, err := execute(t, "--trace-level", "loud", "check", path); err == nil {
		t.Fatal("expected invalid trace level error")
	}
}
