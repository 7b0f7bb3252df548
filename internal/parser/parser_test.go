package parser

import (
	"testing"

	"fanc/internal/ast"
	"fanc/internal/diag"
	"fanc/internal/types"
)

func TestParseFunctionHeader(t *testing.T) {
	b, prog := mustParse(t, "int add(int a, byte b) { return a + b; }\nvoid main() { printi(add(1, 2b)); }")
	if len(prog.Funcs) != 2 {
		t.Fatalf("got %d funcs", len(prog.Funcs))
	}
	add := b.Func(prog.Funcs[0])
	if b.Name(add.Name) != "add" || add.Ret != types.Int || len(add.Params) != 2 {
		t.Fatalf("unexpected add header: %+v", add)
	}
	if add.Params[1].Type != types.Byte || b.Name(add.Params[1].Name) != "b" {
		t.Fatalf("unexpected second param %+v", add.Params[1])
	}
	main := b.Func(prog.Funcs[1])
	if main.Ret != types.Void || len(main.Params) != 0 || main.Line != 2 {
		t.Fatalf("unexpected main header: %+v", main)
	}
}

func TestParsePrecedence(t *testing.T) {
	b, prog := mustParse(t, "void main() { bool x = 1 + 2 * 3 < 4 and not true or false; }")
	fn := b.Func(prog.Funcs[0])
	decl := b.Stmts.VarDecl(fn.Body[0])
	if decl == nil || decl.Type != types.Bool {
		t.Fatalf("expected bool declaration")
	}
	v := b.View(prog)[0].Body[0].Expr
	// ((((1 + (2 * 3)) < 4) and (not true)) or false)
	if v.Text != "or" {
		t.Fatalf("root is %q, want or", v.Text)
	}
	and := v.Args[0]
	if and.Text != "and" || and.Args[1].Kind != "Not" {
		t.Fatalf("unexpected and node %+v", and)
	}
	lt := and.Args[0]
	if lt.Text != "<" || lt.Args[0].Text != "+" || lt.Args[0].Args[1].Text != "*" {
		t.Fatalf("unexpected comparison %+v", lt)
	}
}

func TestParseLeftAssociative(t *testing.T) {
	b, prog := mustParse(t, "void main() { int x = 8 - 4 - 2; }")
	v := b.View(prog)[0].Body[0].Expr
	if v.Text != "-" || v.Args[0].Text != "-" || v.Args[1].Text != "2" {
		t.Fatalf("subtraction should associate to the left: %+v", v)
	}
}

func TestParseCastAndGrouping(t *testing.T) {
	b, prog := mustParse(t, "void main() { byte x = (byte)(300 + 1) ; int y = (x); }")
	body := b.View(prog)[0].Body
	cast := body[0].Expr
	if cast.Kind != "Cast" || cast.Text != "byte" || cast.Args[0].Text != "+" {
		t.Fatalf("unexpected cast %+v", cast)
	}
	if body[1].Expr.Kind != "Ident" || body[1].Expr.Text != "x" {
		t.Fatalf("grouping should disappear: %+v", body[1].Expr)
	}
}

func TestParseStatements(t *testing.T) {
	src := `void main() {
	int i = 0;
	while (i < 10) {
		if (i == 5) break; else { i = i + 1; continue; }
	}
	print("done");
	return;
}`
	b, prog := mustParse(t, src)
	fn := b.Func(prog.Funcs[0])
	kinds := []ast.StmtKind{ast.StmtVarDecl, ast.StmtWhile, ast.StmtCall, ast.StmtReturn}
	if len(fn.Body) != len(kinds) {
		t.Fatalf("got %d statements", len(fn.Body))
	}
	for i, k := range kinds {
		if got := b.Stmts.Get(fn.Body[i]).Kind; got != k {
			t.Fatalf("statement %d is %v, want %v", i, got, k)
		}
	}
	w := b.Stmts.While(fn.Body[1])
	block := b.Stmts.Block(w.Body)
	ifs := b.Stmts.If(block.Stmts[0])
	if ifs == nil || !ifs.Else.IsValid() {
		t.Fatalf("expected if/else inside loop")
	}
	if b.Stmts.Get(ifs.Then).Kind != ast.StmtBreak {
		t.Fatalf("then branch should be break")
	}
	if b.Stmts.Get(ifs.Then).Line != 4 {
		t.Fatalf("break on line %d", b.Stmts.Get(ifs.Then).Line)
	}
	if r := b.Stmts.Return(fn.Body[3]); r.Value.IsValid() {
		t.Fatalf("bare return should carry no value")
	}
}

func TestDanglingElse(t *testing.T) {
	b, prog := mustParse(t, "void main() { if (true) if (false) printi(1); else printi(2); }")
	fn := b.Func(prog.Funcs[0])
	outer := b.Stmts.If(fn.Body[0])
	if outer.Else.IsValid() {
		t.Fatalf("else must bind to the inner if")
	}
	inner := b.Stmts.If(outer.Then)
	if inner == nil || !inner.Else.IsValid() {
		t.Fatalf("inner if should own the else")
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		code  diag.Code
		line  uint32
	}{
		{"empty body", "void main() { }", diag.SynUnexpectedToken, 1},
		{"missing semicolon", "void main() {\n int x = 3\n}", diag.SynUnexpectedToken, 3},
		{"void variable", "void main() { void x; }", diag.SynUnexpectedToken, 1},
		{"string param", "void f(string s) { return; }", diag.SynUnexpectedToken, 1},
		{"unexpected eof", "void main() { return;", diag.SynUnexpectedEOF, 1},
		{"lexical wins", "void main() {\n int x = 3 $ 4; }", diag.LexUnknownChar, 2},
		{"expression statement", "void main() { 3; }", diag.SynUnexpectedToken, 1},
		{"trailing comma", "void main() { f(1,); }", diag.SynUnexpectedToken, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := parseSource(t, tc.input)
			if err == nil {
				t.Fatalf("expected error")
			}
			if err.Code != tc.code || err.Line != tc.line {
				t.Fatalf("got %s line %d (%v), want %s line %d", err.Code.ID(), err.Line, err, tc.code.ID(), tc.line)
			}
		})
	}
}

func TestParseEmptyProgram(t *testing.T) {
	_, prog := mustParse(t, "// nothing here\n")
	if len(prog.Funcs) != 0 {
		t.Fatalf("expected no functions")
	}
}
