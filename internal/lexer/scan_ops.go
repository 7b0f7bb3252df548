package lexer

import (
	"fanc/internal/diag"
	"fanc/internal/token"
)

func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	b := lx.cursor.Bump()

	var kind token.Kind
	switch b {
	case ';':
		kind = token.Semicolon
	case ',':
		kind = token.Comma
	case '(':
		kind = token.LParen
	case ')':
		kind = token.RParen
	case '{':
		kind = token.LBrace
	case '}':
		kind = token.RBrace
	case '+':
		kind = token.Plus
	case '-':
		kind = token.Minus
	case '*':
		kind = token.Star
	case '/':
		kind = token.Slash
	case '=':
		kind = token.Assign
		if lx.cursor.Eat('=') {
			kind = token.EqEq
		}
	case '<':
		kind = token.Lt
		if lx.cursor.Eat('=') {
			kind = token.LtEq
		}
	case '>':
		kind = token.Gt
		if lx.cursor.Eat('=') {
			kind = token.GtEq
		}
	case '!':
		if !lx.cursor.Eat('=') {
			return lx.errLex(diag.LexUnknownChar, lx.cursor.SpanFrom(start), "unexpected '!'")
		}
		kind = token.BangEq
	default:
		return lx.errLex(diag.LexUnknownChar, lx.cursor.SpanFrom(start), "unknown character")
	}
	return lx.makeToken(kind, lx.cursor.SpanFrom(start))
}
