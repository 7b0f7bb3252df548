package token

import (
	"fanc/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind  Kind
	Span  source.Span
	Text  string
	Value string // unescaped payload of a StringLit
	Line  uint32
}

// IsLiteral reports whether the token is a numeric, boolean, or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case NumLit, ByteLit, StringLit, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// IsTypeName reports whether the token starts a variable type (int, byte, bool).
func (t Token) IsTypeName() bool {
	switch t.Kind {
	case KwInt, KwByte, KwBool:
		return true
	default:
		return false
	}
}

// IsRelational reports whether the token is an ordering comparison.
func (t Token) IsRelational() bool {
	switch t.Kind {
	case Lt, Gt, LtEq, GtEq:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
