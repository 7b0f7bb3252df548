package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	Ident
	NumLit  // 42
	ByteLit // 42b
	StringLit

	KwVoid
	KwInt
	KwByte
	KwBool
	KwAnd
	KwOr
	KwNot
	KwTrue
	KwFalse
	KwReturn
	KwIf
	KwElse
	KwWhile
	KwBreak
	KwContinue

	Semicolon // ;
	Comma     // ,
	LParen    // (
	RParen    // )
	LBrace    // {
	RBrace    // }
	Assign    // =

	EqEq   // ==
	BangEq // !=
	Lt     // <
	Gt     // >
	LtEq   // <=
	GtEq   // >=

	Plus  // +
	Minus // -
	Star  // *
	Slash // /
)

var kindNames = [...]string{
	Invalid:    "Invalid",
	EOF:        "EOF",
	Ident:      "Ident",
	NumLit:     "NumLit",
	ByteLit:    "ByteLit",
	StringLit:  "StringLit",
	KwVoid:     "void",
	KwInt:      "int",
	KwByte:     "byte",
	KwBool:     "bool",
	KwAnd:      "and",
	KwOr:       "or",
	KwNot:      "not",
	KwTrue:     "true",
	KwFalse:    "false",
	KwReturn:   "return",
	KwIf:       "if",
	KwElse:     "else",
	KwWhile:    "while",
	KwBreak:    "break",
	KwContinue: "continue",
	Semicolon:  ";",
	Comma:      ",",
	LParen:     "(",
	RParen:     ")",
	LBrace:     "{",
	RBrace:     "}",
	Assign:     "=",
	EqEq:       "==",
	BangEq:     "!=",
	Lt:         "<",
	Gt:         ">",
	LtEq:       "<=",
	GtEq:       ">=",
	Plus:       "+",
	Minus:      "-",
	Star:       "*",
	Slash:      "/",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}
