package parser

import (
	"fanc/internal/ast"
	"fanc/internal/token"
)

// Statements = Statement+ ; stops before '}'.
func (p *Parser) parseStatements() ([]ast.StmtID, bool) {
	var out []ast.StmtID
	for {
		st, ok := p.parseStatement()
		if !ok {
			return nil, false
		}
		out = append(out, st)
		if p.atOneOf(token.RBrace, token.EOF) {
			return out, true
		}
	}
}

func (p *Parser) parseStatement() (ast.StmtID, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.LBrace:
		p.advance()
		body, ok := p.parseStatements()
		if !ok {
			return ast.NoStmtID, false
		}
		end, ok := p.expect(token.RBrace)
		if !ok {
			return ast.NoStmtID, false
		}
		return p.arenas.Stmts.NewBlock(tok.Span.Cover(end.Span), tok.Line, body), true

	case token.KwInt, token.KwByte, token.KwBool:
		return p.parseVarDecl()

	case token.Ident:
		return p.parseAssignOrCall()

	case token.KwReturn:
		p.advance()
		value := ast.NoExprID
		if !p.at(token.Semicolon) {
			v, ok := p.parseExpr()
			if !ok {
				return ast.NoStmtID, false
			}
			value = v
		}
		end, ok := p.expect(token.Semicolon)
		if !ok {
			return ast.NoStmtID, false
		}
		return p.arenas.Stmts.NewReturn(tok.Span.Cover(end.Span), tok.Line, value), true

	case token.KwIf:
		return p.parseIf()

	case token.KwWhile:
		p.advance()
		cond, ok := p.parseParenCond()
		if !ok {
			return ast.NoStmtID, false
		}
		body, ok := p.parseStatement()
		if !ok {
			return ast.NoStmtID, false
		}
		span := tok.Span.Cover(p.arenas.Stmts.Get(body).Span)
		return p.arenas.Stmts.NewWhile(span, tok.Line, cond, body), true

	case token.KwBreak, token.KwContinue:
		p.advance()
		end, ok := p.expect(token.Semicolon)
		if !ok {
			return ast.NoStmtID, false
		}
		span := tok.Span.Cover(end.Span)
		if tok.Kind == token.KwBreak {
			return p.arenas.Stmts.NewBreak(span, tok.Line), true
		}
		return p.arenas.Stmts.NewContinue(span, tok.Line), true
	}
	return ast.NoStmtID, p.fail(tok)
}

// Type ID ';' | Type ID '=' Exp ';'
func (p *Parser) parseVarDecl() (ast.StmtID, bool) {
	start := p.lx.Peek()
	typ, ok := p.parseType()
	if !ok {
		return ast.NoStmtID, false
	}
	name, ok := p.expect(token.Ident)
	if !ok {
		return ast.NoStmtID, false
	}
	init := ast.NoExprID
	if p.at(token.Assign) {
		p.advance()
		if init, ok = p.parseExpr(); !ok {
			return ast.NoStmtID, false
		}
	}
	end, ok := p.expect(token.Semicolon)
	if !ok {
		return ast.NoStmtID, false
	}
	return p.arenas.Stmts.NewVarDecl(start.Span.Cover(end.Span), start.Line, typ,
		p.arenas.StringsInt.Intern(name.Text), init), true
}

// ID '=' Exp ';' | Call ';'
func (p *Parser) parseAssignOrCall() (ast.StmtID, bool) {
	name := p.advance()
	switch p.lx.Peek().Kind {
	case token.Assign:
		p.advance()
		value, ok := p.parseExpr()
		if !ok {
			return ast.NoStmtID, false
		}
		end, ok := p.expect(token.Semicolon)
		if !ok {
			return ast.NoStmtID, false
		}
		return p.arenas.Stmts.NewAssign(name.Span.Cover(end.Span), name.Line,
			p.arenas.StringsInt.Intern(name.Text), value), true
	case token.LParen:
		call, ok := p.parseCallAfterName(name)
		if !ok {
			return ast.NoStmtID, false
		}
		end, ok := p.expect(token.Semicolon)
		if !ok {
			return ast.NoStmtID, false
		}
		return p.arenas.Stmts.NewCall(name.Span.Cover(end.Span), name.Line, call), true
	}
	return ast.NoStmtID, p.fail(p.lx.Peek())
}

// if '(' Exp ')' Statement [else Statement]; else binds to the nearest if.
func (p *Parser) parseIf() (ast.StmtID, bool) {
	tok := p.advance()
	cond, ok := p.parseParenCond()
	if !ok {
		return ast.NoStmtID, false
	}
	then, ok := p.parseStatement()
	if !ok {
		return ast.NoStmtID, false
	}
	span := tok.Span.Cover(p.arenas.Stmts.Get(then).Span)
	els := ast.NoStmtID
	if p.at(token.KwElse) {
		p.advance()
		if els, ok = p.parseStatement(); !ok {
			return ast.NoStmtID, false
		}
		span = span.Cover(p.arenas.Stmts.Get(els).Span)
	}
	return p.arenas.Stmts.NewIf(span, tok.Line, cond, then, els), true
}

func (p *Parser) parseParenCond() (ast.ExprID, bool) {
	if _, ok := p.expect(token.LParen); !ok {
		return ast.NoExprID, false
	}
	cond, ok := p.parseExpr()
	if !ok {
		return ast.NoExprID, false
	}
	if _, ok := p.expect(token.RParen); !ok {
		return ast.NoExprID, false
	}
	return cond, true
}
