package testkit

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nalgeon/be"

	"fanc/internal/ast"
	"fanc/internal/lexer"
	"fanc/internal/parser"
	"fanc/internal/source"
)

func TestCorpus(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "*.md"))
	be.Err(t, err, nil)
	be.True(t, len(files) > 0)

	for _, path := range files {
		cases, err := LoadCases(path)
		be.Err(t, err, nil)
		be.True(t, len(cases) > 0)
		for _, c := range cases {
			t.Run(filepath.Base(path)+"/"+c.Name, func(t *testing.T) {
				if err := RunCase(context.Background(), c); err != nil {
					t.Fatalf("%s:%d: %v", path, c.Line, err)
				}
			})
		}
	}
}

func TestExtractCases(t *testing.T) {
	src := "# Title\n\nIntro text.\n\n```\nplain fence\n```\n\n## Test: one\n\n```fanc\nvoid main() { printi(1); }\n```\n\n```ir-contains\ncall void @printi(i32 1)\n```\n\n## Not a test\n\n## Test: two\n\n```fanc\nvoid main() { x = 1; }\n```\n\n```error\nline 1: variable x is not defined\n```\n"
	cases, err := ExtractCases([]byte(src))
	be.Err(t, err, nil)
	be.Equal(t, len(cases), 2)

	be.Equal(t, cases[0].Name, "one")
	be.Equal(t, cases[0].Input, "void main() { printi(1); }\n")
	be.Equal(t, len(cases[0].Assertions), 1)
	be.Equal(t, cases[0].Assertions[0].Type, AssertIRContains)
	be.Equal(t, cases[0].Assertions[0].Content, "call void @printi(i32 1)")

	be.Equal(t, cases[1].Name, "two")
	be.Equal(t, cases[1].Assertions[0].Type, AssertError)
	be.True(t, cases[1].Line > cases[0].Line)

	for _, c := range cases {
		be.Err(t, RunCase(context.Background(), c), nil)
	}
}

func TestExtractCasesErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		src  string
		want string
	}{
		{"fence outside test", "```fanc\nvoid main() {}\n```\n", "outside of a test case"},
		{"unknown fence", "## Test: a\n\n```rust\nfn main() {}\n```\n", "unknown fence language"},
		{"missing input", "## Test: a\n\n```error\nline 1: syntax error\n```\n", "has no fanc fence"},
		{"missing assertions", "## Test: a\n\n```fanc\nvoid main() { printi(1); }\n```\n", "no assertion fences"},
		{"two inputs", "## Test: a\n\n```fanc\nx\n```\n\n```fanc\ny\n```\n", "multiple fanc fences"},
		{
			"error combined",
			"## Test: a\n\n```fanc\nx\n```\n\n```error\nline 1: syntax error\n```\n\n```ir-contains\ndefine\n```\n",
			"cannot be combined",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ExtractCases([]byte(tc.src))
			be.Err(t, err, tc.want)
		})
	}
}

func TestRunCaseReportsMismatch(t *testing.T) {
	c := Case{
		Name:       "wrong error",
		Input:      "void main() { x = 1; }\n",
		Assertions: []Assertion{{Type: AssertError, Content: "line 1: type mismatch", Line: 3}},
	}
	err := RunCase(context.Background(), c)
	be.Err(t, err, "variable x is not defined")

	c = Case{
		Name:       "missing line",
		Input:      "void main() { printi(1); }\n",
		Assertions: []Assertion{{Type: AssertIRContains, Content: "sdiv", Line: 3}},
	}
	be.Err(t, RunCase(context.Background(), c), "does not contain \"sdiv\"")

	c = Case{
		Name:       "unexpected success",
		Input:      "void main() { printi(1); }\n",
		Assertions: []Assertion{{Type: AssertError, Content: "line 1: syntax error", Line: 3}},
	}
	be.Err(t, RunCase(context.Background(), c), "compilation succeeded")
}

func parse(t *testing.T, input string) (*ast.Builder, *ast.Program, *source.File) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("spans.fanc", []byte(input)))
	b := ast.NewBuilder(ast.Hints{}, nil)
	prog, err := parser.ParseFile(file, lexer.New(file, lexer.Options{}), b)
	be.Err(t, err, nil)
	return b, prog, file
}

func TestCheckSpanInvariants(t *testing.T) {
	input := strings.Join([]string{
		"int f(int a, byte b) {",
		"  if (a < 3 and not false) {",
		"    return a + (int) b;",
		"  } else {",
		"    while (a > 0) a = a - 1;",
		"  }",
		"  return f(a, 1b);",
		"}",
		"",
		"void main() {",
		"  printi(f(1, 2b));",
		"}",
		"",
	}, "\n")
	b, prog, file := parse(t, input)
	be.Err(t, CheckSpanInvariants(b, prog, file), nil)
}

func TestCheckSpanInvariantsDetectsBadSpan(t *testing.T) {
	b, prog, file := parse(t, "void main() { printi(1); }\nvoid g() { printi(2); }\n")
	be.Equal(t, len(prog.Funcs), 2)

	fn := b.Func(prog.Funcs[1])
	fn.Span.Start = 0
	be.Err(t, CheckSpanInvariants(b, prog, file), "overlaps previous function")

	be.Err(t, CheckSpanInvariants(nil, prog, file), "nil builder")
}
