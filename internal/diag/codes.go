package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// lexical
	LexInfo         Code = 1000
	LexUnknownChar  Code = 1001
	LexBadString    Code = 1002
	LexBadNumber    Code = 1003
	LexNumberTooBig Code = 1004

	// syntax
	SynInfo            Code = 2000
	SynUnexpectedToken Code = 2001
	SynUnexpectedEOF   Code = 2002

	// semantic
	SemaInfo                        Code = 3000
	SemaUndefinedVariable           Code = 3001
	SemaUsedAsVariableButIsFunction Code = 3002
	SemaUsedAsFunctionButIsVariable Code = 3003
	SemaAlreadyDefined              Code = 3004
	SemaUndefinedFunction           Code = 3005
	SemaTypeMismatch                Code = 3006
	SemaPrototypeMismatch           Code = 3007
	SemaUnexpectedBreak             Code = 3008
	SemaUnexpectedContinue          Code = 3009
	SemaMainMissing                 Code = 3010
	SemaByteOutOfRange              Code = 3011

	// io
	IOLoadFileError  Code = 4001
	IOWriteFileError Code = 4002
)

var codeDescription = map[Code]string{
	UnknownCode:                     "Unknown error",
	LexInfo:                         "Lexical information",
	LexUnknownChar:                  "Unknown character",
	LexBadString:                    "Malformed string literal",
	LexBadNumber:                    "Malformed number literal",
	LexNumberTooBig:                 "Number literal does not fit in int",
	SynInfo:                         "Syntax information",
	SynUnexpectedToken:              "Unexpected token",
	SynUnexpectedEOF:                "Unexpected end of file",
	SemaInfo:                        "Semantic information",
	SemaUndefinedVariable:           "Undefined variable",
	SemaUsedAsVariableButIsFunction: "Function used as a variable",
	SemaUsedAsFunctionButIsVariable: "Variable used as a function",
	SemaAlreadyDefined:              "Symbol already defined",
	SemaUndefinedFunction:           "Undefined function",
	SemaTypeMismatch:                "Type mismatch",
	SemaPrototypeMismatch:           "Call does not match function prototype",
	SemaUnexpectedBreak:             "break outside of a loop",
	SemaUnexpectedContinue:          "continue outside of a loop",
	SemaMainMissing:                 "Missing void main()",
	SemaByteOutOfRange:              "Byte literal out of range",
	IOLoadFileError:                 "Failed to load file",
	IOWriteFileError:                "Failed to write file",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}

// IsLexical reports whether c belongs to the LEX range.
func (c Code) IsLexical() bool { return c >= 1000 && c < 2000 }

// IsSyntax reports whether c belongs to the SYN range.
func (c Code) IsSyntax() bool { return c >= 2000 && c < 3000 }
