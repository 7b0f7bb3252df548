package lexer

import (
	"fanc/internal/diag"
	"fanc/internal/source"
	"fanc/internal/token"
)

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token
	err    *diag.Error
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next returns the next significant token. After EOF it keeps returning EOF.
// A malformed lexeme yields token.Invalid; the parser stops on it.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.skipTrivia()

	if lx.cursor.EOF() {
		sp := source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
		return token.Token{Kind: token.EOF, Span: sp, Line: lx.line(sp)}
	}

	ch := lx.cursor.Peek()
	switch {
	case isIdentStartByte(ch):
		return lx.scanIdentOrKeyword()
	case isDec(ch):
		return lx.scanNumber()
	case ch == '"':
		return lx.scanString()
	default:
		return lx.scanOperatorOrPunct()
	}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// Err returns the first lexical error seen so far.
func (lx *Lexer) Err() *diag.Error {
	return lx.err
}

// All drains the lexer, returning every token up to and including EOF.
func (lx *Lexer) All() []token.Token {
	var out []token.Token
	for {
		tok := lx.Next()
		out = append(out, tok)
		if tok.Kind == token.EOF {
			return out
		}
	}
}

func (lx *Lexer) line(sp source.Span) uint32 {
	return lx.file.Line(sp.Start)
}

func (lx *Lexer) makeToken(kind token.Kind, sp source.Span) token.Token {
	return token.Token{
		Kind: kind,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
		Line: lx.line(sp),
	}
}

// errLex records a lexical error and returns the Invalid token covering sp.
func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) token.Token {
	tok := lx.makeToken(token.Invalid, sp)
	if lx.err == nil {
		lx.err = diag.New(code, tok.Line, sp, "")
	}
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, tok.Line, sp, msg)
	}
	return tok
}
