package parser

import (
	"fanc/internal/ast"
	"fanc/internal/token"
)

func (p *Parser) parseExpr() (ast.ExprID, bool) {
	return p.parseBinary(precLogicalOr)
}

// parseBinary is precedence climbing over the table in op_table.go.
func (p *Parser) parseBinary(minPrec int) (ast.ExprID, bool) {
	left, ok := p.parseUnary()
	if !ok {
		return ast.NoExprID, false
	}
	for {
		opTok := p.lx.Peek()
		op, prec := binaryOp(opTok.Kind)
		if prec == precNone || prec < minPrec {
			return left, true
		}
		p.advance()
		right, ok := p.parseBinary(prec + 1)
		if !ok {
			return ast.NoExprID, false
		}
		span := p.arenas.Exprs.Get(left).Span.Cover(p.arenas.Exprs.Get(right).Span)
		left = p.arenas.Exprs.NewBinary(span, opTok.Line, op, left, right)
	}
}

// Unary = 'not' Unary | '(' Type ')' Unary | Primary
func (p *Parser) parseUnary() (ast.ExprID, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.KwNot:
		p.advance()
		operand, ok := p.parseUnary()
		if !ok {
			return ast.NoExprID, false
		}
		span := tok.Span.Cover(p.arenas.Exprs.Get(operand).Span)
		return p.arenas.Exprs.NewNot(span, tok.Line, operand), true

	case token.LParen:
		p.advance()
		if p.lx.Peek().IsTypeName() {
			return p.parseCastAfterParen(tok)
		}
		inner, ok := p.parseExpr()
		if !ok {
			return ast.NoExprID, false
		}
		if _, ok := p.expect(token.RParen); !ok {
			return ast.NoExprID, false
		}
		return inner, true
	}
	return p.parsePrimary()
}

func (p *Parser) parseCastAfterParen(open token.Token) (ast.ExprID, bool) {
	target, ok := p.parseType()
	if !ok {
		return ast.NoExprID, false
	}
	if _, ok := p.expect(token.RParen); !ok {
		return ast.NoExprID, false
	}
	value, ok := p.parseUnary()
	if !ok {
		return ast.NoExprID, false
	}
	span := open.Span.Cover(p.arenas.Exprs.Get(value).Span)
	return p.arenas.Exprs.NewCast(span, open.Line, target, value), true
}

func (p *Parser) parsePrimary() (ast.ExprID, bool) {
	tok := p.lx.Peek()
	exprs := p.arenas.Exprs
	strs := p.arenas.StringsInt
	switch tok.Kind {
	case token.Ident:
		p.advance()
		if p.at(token.LParen) {
			return p.parseCallAfterName(tok)
		}
		return exprs.NewIdent(tok.Span, tok.Line, strs.Intern(tok.Text)), true
	case token.NumLit:
		p.advance()
		return exprs.NewLiteral(tok.Span, tok.Line, ast.LitNum, strs.Intern(tok.Value)), true
	case token.ByteLit:
		p.advance()
		return exprs.NewLiteral(tok.Span, tok.Line, ast.LitByte, strs.Intern(tok.Value)), true
	case token.StringLit:
		p.advance()
		return exprs.NewLiteral(tok.Span, tok.Line, ast.LitString, strs.Intern(tok.Value)), true
	case token.KwTrue:
		p.advance()
		return exprs.NewLiteral(tok.Span, tok.Line, ast.LitTrue, strs.Intern("1")), true
	case token.KwFalse:
		p.advance()
		return exprs.NewLiteral(tok.Span, tok.Line, ast.LitFalse, strs.Intern("0")), true
	}
	return ast.NoExprID, p.fail(tok)
}

// Call = ID '(' [Exp (',' Exp)*] ')' ; name is already consumed.
func (p *Parser) parseCallAfterName(name token.Token) (ast.ExprID, bool) {
	if _, ok := p.expect(token.LParen); !ok {
		return ast.NoExprID, false
	}
	var args []ast.ExprID
	if !p.at(token.RParen) {
		for {
			arg, ok := p.parseExpr()
			if !ok {
				return ast.NoExprID, false
			}
			args = append(args, arg)
			if !p.at(token.Comma) {
				break
			}
			p.advance()
		}
	}
	end, ok := p.expect(token.RParen)
	if !ok {
		return ast.NoExprID, false
	}
	return p.arenas.Exprs.NewCall(name.Span.Cover(end.Span), name.Line,
		p.arenas.StringsInt.Intern(name.Text), args), true
}

