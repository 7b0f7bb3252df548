package lexer

import (
	"strings"

	"fanc/internal/diag"
	"fanc/internal/token"
)

// scanString reads a one-line "..." literal and unescapes
// \n \r \t \0 \\ \" and \xHH into Token.Value.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'
	var val strings.Builder
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch b {
		case '"':
			lx.cursor.Bump()
			tok := lx.makeToken(token.StringLit, lx.cursor.SpanFrom(start))
			tok.Value = val.String()
			return tok
		case '\n', '\r':
			return lx.errLex(diag.LexBadString, lx.cursor.SpanFrom(start), "newline in string literal")
		case '\\':
			lx.cursor.Bump()
			c, ok := lx.scanEscape()
			if !ok {
				return lx.errLex(diag.LexBadString, lx.cursor.SpanFrom(start), "invalid escape sequence")
			}
			val.WriteByte(c)
		default:
			val.WriteByte(lx.cursor.Bump())
		}
	}
	return lx.errLex(diag.LexBadString, lx.cursor.SpanFrom(start), "unterminated string literal")
}

func (lx *Lexer) scanEscape() (byte, bool) {
	switch lx.cursor.Peek() {
	case 'n':
		lx.cursor.Bump()
		return '\n', true
	case 'r':
		lx.cursor.Bump()
		return '\r', true
	case 't':
		lx.cursor.Bump()
		return '\t', true
	case '0':
		lx.cursor.Bump()
		return 0, true
	case '\\', '"':
		return lx.cursor.Bump(), true
	case 'x':
		lx.cursor.Bump()
		if !isHex(lx.cursor.Peek()) {
			return 0, false
		}
		hi := hexVal(lx.cursor.Bump())
		if !isHex(lx.cursor.Peek()) {
			return 0, false
		}
		lo := hexVal(lx.cursor.Bump())
		return hi<<4 | lo, true
	}
	return 0, false
}
