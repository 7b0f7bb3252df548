package parser

import (
	"errors"
	"testing"

	"fanc/internal/ast"
	"fanc/internal/diag"
	"fanc/internal/lexer"
	"fanc/internal/source"
)

func parseSource(t *testing.T, input string) (*ast.Builder, *ast.Program, *diag.Error) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.fanc", []byte(input))
	file := fs.Get(id)
	b := ast.NewBuilder(ast.Hints{}, nil)
	prog, err := ParseFile(file, lexer.New(file, lexer.Options{}), b)
	if err == nil {
		return b, prog, nil
	}
	var de *diag.Error
	if !errors.As(err, &de) {
		t.Fatalf("parse returned non-diagnostic error %v", err)
	}
	return b, nil, de
}

func mustParse(t *testing.T, input string) (*ast.Builder, *ast.Program) {
	t.Helper()
	b, prog, err := parseSource(t, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return b, prog
}
