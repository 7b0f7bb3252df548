package lexer

import (
	"math"
	"strconv"

	"fanc/internal/diag"
	"fanc/internal/token"
)

// scanNumber accepts 0|[1-9][0-9]* with an optional 'b' suffix.
// Leading zeros and letters glued to the digits are lexical errors.
// Byte range is checked later, the literal only has to fit in int.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	first := lx.cursor.Bump()
	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	digits := lx.cursor.SpanFrom(start)

	kind := token.NumLit
	if lx.cursor.Peek() == 'b' {
		lx.cursor.Bump()
		kind = token.ByteLit
	}

	if isIdentContinueByte(lx.cursor.Peek()) {
		for isIdentContinueByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		return lx.errLex(diag.LexBadNumber, lx.cursor.SpanFrom(start), "invalid number suffix")
	}
	if first == '0' && digits.Len() > 1 {
		return lx.errLex(diag.LexBadNumber, lx.cursor.SpanFrom(start), "leading zero in number")
	}
	text := string(lx.file.Content[digits.Start:digits.End])
	if v, err := strconv.ParseInt(text, 10, 64); err != nil || v > math.MaxInt32 {
		return lx.errLex(diag.LexNumberTooBig, lx.cursor.SpanFrom(start), "number does not fit in int")
	}

	tok := lx.makeToken(kind, lx.cursor.SpanFrom(start))
	tok.Value = text
	return tok
}
