package lexer

import (
	"fanc/internal/diag"
)

type Options struct {
	// Reporter receives every lexical error; may be nil. The first error is
	// also kept on the Lexer and returned by Err.
	Reporter diag.Reporter
}
