package parser

import (
	"fanc/internal/diag"
	"fanc/internal/token"
)

func (p *Parser) advance() token.Token {
	return p.lx.Next()
}

// expect consumes a token of kind k or fails on the current token.
func (p *Parser) expect(k token.Kind) (token.Token, bool) {
	tok := p.lx.Peek()
	if tok.Kind == k {
		return p.advance(), true
	}
	return tok, p.fail(tok)
}

// fail records the first error: lexical if tok is Invalid, syntax otherwise.
// It always returns false so call sites can write `return x, p.fail(tok)`.
func (p *Parser) fail(tok token.Token) bool {
	if p.err != nil {
		return false
	}
	switch tok.Kind {
	case token.Invalid:
		if lexErr := p.lx.Err(); lexErr != nil {
			p.err = lexErr
			return false
		}
		p.err = diag.New(diag.LexUnknownChar, tok.Line, tok.Span, "")
	case token.EOF:
		p.err = diag.New(diag.SynUnexpectedEOF, tok.Line, tok.Span, "")
	default:
		p.err = diag.New(diag.SynUnexpectedToken, tok.Line, tok.Span, "")
	}
	return false
}
