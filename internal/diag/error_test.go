package diag

import (
	"errors"
	"fmt"
	"testing"

	"fanc/internal/source"
)

func TestErrorMessages(t *testing.T) {
	sp := source.Span{}
	cases := []struct {
		err  *Error
		want string
	}{
		{New(LexUnknownChar, 2, sp, ""), "line 2: lexical error"},
		{New(SynUnexpectedToken, 5, sp, ""), "line 5: syntax error"},
		{New(SemaUndefinedVariable, 3, sp, "x"), "line 3: variable x is not defined"},
		{New(SemaUsedAsVariableButIsFunction, 3, sp, "f"), "line 3: symbol f is a function"},
		{New(SemaUsedAsFunctionButIsVariable, 3, sp, "x"), "line 3: symbol x is a variable"},
		{New(SemaAlreadyDefined, 4, sp, "x"), "line 4: symbol x is already defined"},
		{New(SemaUndefinedFunction, 7, sp, "g"), "line 7: function g is not defined"},
		{New(SemaTypeMismatch, 1, sp, ""), "line 1: type mismatch"},
		{Prototype(9, sp, "f", []string{"int", "byte"}), "line 9: prototype mismatch, function f expects parameters (INT,BYTE)"},
		{Prototype(9, sp, "g", nil), "line 9: prototype mismatch, function g expects parameters ()"},
		{New(SemaUnexpectedBreak, 6, sp, ""), "line 6: unexpected break statement"},
		{New(SemaUnexpectedContinue, 6, sp, ""), "line 6: unexpected continue statement"},
		{MainMissing(), "Program has no 'void main()' function"},
		{New(SemaByteOutOfRange, 2, sp, "300"), "line 2: byte value 300 out of range"},
	}
	for _, tc := range cases {
		if got := tc.err.Error(); got != tc.want {
			t.Fatalf("%s: got %q, want %q", tc.err.Code.ID(), got, tc.want)
		}
	}
}

func TestErrorUnwrapsThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("compile a.fanc: %w", New(SemaTypeMismatch, 4, source.Span{}, ""))
	var de *Error
	if !errors.As(wrapped, &de) {
		t.Fatalf("errors.As failed")
	}
	if de.Line != 4 || de.Code != SemaTypeMismatch {
		t.Fatalf("unexpected error %+v", de)
	}
	d := de.Diagnostic()
	if d.Severity != SevError || d.Message != "type mismatch" {
		t.Fatalf("unexpected diagnostic %+v", d)
	}
}

func TestCodeID(t *testing.T) {
	if LexBadNumber.ID() != "LEX1003" || SemaMainMissing.ID() != "SEM3010" || IOWriteFileError.ID() != "IO4002" {
		t.Fatalf("unexpected ids: %s %s %s", LexBadNumber.ID(), SemaMainMissing.ID(), IOWriteFileError.ID())
	}
	if Code(9999).ID() != "E0000" {
		t.Fatalf("unknown range should map to E0000")
	}
	if !LexUnknownChar.IsLexical() || !SynUnexpectedEOF.IsSyntax() || SemaTypeMismatch.IsSyntax() {
		t.Fatalf("range predicates broken")
	}
}

func TestBagSortAndLimit(t *testing.T) {
	b := NewBag(2)
	r := BagReporter{Bag: b}
	r.Report(LexBadNumber, SevError, 2, source.Span{Start: 10, End: 12}, "lexical error")
	r.Report(LexUnknownChar, SevError, 1, source.Span{Start: 1, End: 2}, "lexical error")
	r.Report(LexUnknownChar, SevError, 3, source.Span{Start: 20, End: 21}, "lexical error")

	if b.Len() != 2 {
		t.Fatalf("limit not honoured: %d", b.Len())
	}
	b.Sort()
	if b.Items()[0].Line != 1 {
		t.Fatalf("sort order wrong: %+v", b.Items())
	}
	if !b.HasErrors() {
		t.Fatalf("expected errors")
	}
	if b.Dropped() != 1 {
		t.Fatalf("dropped = %d", b.Dropped())
	}
}

func TestSeverityString(t *testing.T) {
	if SevError.String() != "ERROR" || SevNote.String() != "NOTE" || Severity(9).String() != "UNKNOWN" {
		t.Fatalf("severity names: %s %s %s", SevError, SevNote, Severity(9))
	}
}
