package driver

import (
	"fmt"

	"fanc/internal/ast"
	"fanc/internal/diag"
	"fanc/internal/lexer"
	"fanc/internal/parser"
	"fanc/internal/source"
	"fanc/internal/token"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize lexes the whole file. Unlike compilation it keeps going after a
// lexical error and reports every one into Bag.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  lx.All(),
		Bag:     bag,
	}, nil
}

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Builder *ast.Builder
	Program *ast.Program
}

// Parse loads and parses path. A lexical or syntax error is returned as a
// *diag.Error.
func Parse(path string) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	file := fs.Get(fileID)
	builder := ast.NewBuilder(ast.Hints{}, nil)
	prog, err := parser.ParseFile(file, lexer.New(file, lexer.Options{}), builder)
	if err != nil {
		return nil, err
	}
	return &ParseResult{
		FileSet: fs,
		File:    file,
		Builder: builder,
		Program: prog,
	}, nil
}
