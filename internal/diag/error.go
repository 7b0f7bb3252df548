package diag

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"fanc/internal/source"
)

// Error is a fatal language error. Analysis stops at the first one.
type Error struct {
	Code Code
	Line uint32
	Span source.Span
	// Name is the offending identifier, or the literal text for SemaByteOutOfRange.
	Name string
	// Params lists the expected parameter types for SemaPrototypeMismatch.
	Params []string
}

var upper = cases.Upper(language.Und)

// New builds an Error for codes that carry no payload besides Name.
func New(code Code, line uint32, span source.Span, name string) *Error {
	return &Error{Code: code, Line: line, Span: span, Name: name}
}

// Prototype builds a SemaPrototypeMismatch error for callee name.
func Prototype(line uint32, span source.Span, name string, params []string) *Error {
	return &Error{Code: SemaPrototypeMismatch, Line: line, Span: span, Name: name, Params: params}
}

// MainMissing is not tied to a source line.
func MainMissing() *Error {
	return &Error{Code: SemaMainMissing}
}

// Message returns the diagnostic text without the line prefix.
func (e *Error) Message() string {
	switch e.Code {
	case LexUnknownChar, LexBadString, LexBadNumber, LexNumberTooBig:
		return "lexical error"
	case SynUnexpectedToken, SynUnexpectedEOF:
		return "syntax error"
	case SemaUndefinedVariable:
		return fmt.Sprintf("variable %s is not defined", e.Name)
	case SemaUsedAsVariableButIsFunction:
		return fmt.Sprintf("symbol %s is a function", e.Name)
	case SemaUsedAsFunctionButIsVariable:
		return fmt.Sprintf("symbol %s is a variable", e.Name)
	case SemaAlreadyDefined:
		return fmt.Sprintf("symbol %s is already defined", e.Name)
	case SemaUndefinedFunction:
		return fmt.Sprintf("function %s is not defined", e.Name)
	case SemaTypeMismatch:
		return "type mismatch"
	case SemaPrototypeMismatch:
		return fmt.Sprintf("prototype mismatch, function %s expects parameters (%s)",
			e.Name, upper.String(strings.Join(e.Params, ",")))
	case SemaUnexpectedBreak:
		return "unexpected break statement"
	case SemaUnexpectedContinue:
		return "unexpected continue statement"
	case SemaMainMissing:
		return "Program has no 'void main()' function"
	case SemaByteOutOfRange:
		return fmt.Sprintf("byte value %s out of range", e.Name)
	}
	return e.Code.Title()
}

// LinePrefix is "line <n>: ", or empty for errors not tied to a line.
func (e *Error) LinePrefix() string {
	if e.Code == SemaMainMissing {
		return ""
	}
	return fmt.Sprintf("line %d: ", e.Line)
}

// Error renders the single-line form printed at the command boundary.
func (e *Error) Error() string {
	return e.LinePrefix() + e.Message()
}

// Diagnostic converts the error into the generic diagnostic record.
func (e *Error) Diagnostic() Diagnostic {
	return Diagnostic{
		Severity: SevError,
		Code:     e.Code,
		Message:  e.Message(),
		Line:     e.Line,
		Primary:  e.Span,
	}
}
