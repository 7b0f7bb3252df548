package parser

import (
	"slices"

	"fanc/internal/ast"
	"fanc/internal/diag"
	"fanc/internal/lexer"
	"fanc/internal/source"
	"fanc/internal/token"
	"fanc/internal/types"
)

// Parser holds the state for one file. It stops at the first lexical or
// syntax error.
type Parser struct {
	lx     *lexer.Lexer
	arenas *ast.Builder
	file   source.FileID
	err    *diag.Error
}

// ParseFile parses a whole program. The returned error is a *diag.Error
// with a lexical or syntax code.
func ParseFile(file *source.File, lx *lexer.Lexer, arenas *ast.Builder) (*ast.Program, error) {
	p := Parser{lx: lx, arenas: arenas, file: file.ID}
	prog := p.parseProgram()
	if p.err != nil {
		return nil, p.err
	}
	return prog, nil
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

func (p *Parser) atOneOf(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.lx.Peek().Kind)
}

// Funcs = FuncDecl*
func (p *Parser) parseProgram() *ast.Program {
	prog := &ast.Program{File: p.file}
	for !p.at(token.EOF) {
		fn, ok := p.parseFunc()
		if !ok {
			return nil
		}
		prog.Funcs = append(prog.Funcs, fn)
	}
	return prog
}

// FuncDecl = RetType ID '(' Formals ')' '{' Statements '}'
func (p *Parser) parseFunc() (ast.FuncID, bool) {
	start := p.lx.Peek()
	ret := types.Void
	if !p.at(token.KwVoid) {
		t, ok := p.parseType()
		if !ok {
			return ast.NoFuncID, false
		}
		ret = t
	} else {
		p.advance()
	}

	name, ok := p.expect(token.Ident)
	if !ok {
		return ast.NoFuncID, false
	}
	if _, ok = p.expect(token.LParen); !ok {
		return ast.NoFuncID, false
	}
	params, ok := p.parseFormals()
	if !ok {
		return ast.NoFuncID, false
	}
	if _, ok = p.expect(token.LBrace); !ok {
		return ast.NoFuncID, false
	}
	body, ok := p.parseStatements()
	if !ok {
		return ast.NoFuncID, false
	}
	end, ok := p.expect(token.RBrace)
	if !ok {
		return ast.NoFuncID, false
	}

	return p.arenas.NewFunc(ast.FnDecl{
		Name:   p.arenas.StringsInt.Intern(name.Text),
		Ret:    ret,
		Params: params,
		Body:   body,
		Span:   start.Span.Cover(end.Span),
		Line:   name.Line,
	}), true
}

// Formals = empty | Type ID (',' Type ID)* ; consumes the closing ')'.
func (p *Parser) parseFormals() ([]ast.FnParam, bool) {
	var params []ast.FnParam
	if p.at(token.RParen) {
		p.advance()
		return params, true
	}
	for {
		typ, ok := p.parseType()
		if !ok {
			return nil, false
		}
		name, ok := p.expect(token.Ident)
		if !ok {
			return nil, false
		}
		params = append(params, ast.FnParam{
			Type: typ,
			Name: p.arenas.StringsInt.Intern(name.Text),
			Span: name.Span,
			Line: name.Line,
		})
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		if _, ok := p.expect(token.RParen); !ok {
			return nil, false
		}
		return params, true
	}
}

// Type = int | byte | bool
func (p *Parser) parseType() (types.Type, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.KwInt:
		p.advance()
		return types.Int, true
	case token.KwByte:
		p.advance()
		return types.Byte, true
	case token.KwBool:
		p.advance()
		return types.Bool, true
	}
	return types.Invalid, p.fail(tok)
}
