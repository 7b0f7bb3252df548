package token

import (
	"testing"
)

func TestLookupKeyword(t *testing.T) {
	cases := map[string]Kind{
		"void":     KwVoid,
		"byte":     KwByte,
		"and":      KwAnd,
		"not":      KwNot,
		"continue": KwContinue,
		"true":     KwTrue,
	}
	for lexeme, want := range cases {
		got, ok := LookupKeyword(lexeme)
		if !ok || got != want {
			t.Fatalf("LookupKeyword(%q) = %v,%v want %v", lexeme, got, ok, want)
		}
	}

	for _, s := range []string{"Void", "INT", "printi", "main", "string"} {
		if k, ok := LookupKeyword(s); ok {
			t.Fatalf("LookupKeyword(%q) = %v, want not a keyword", s, k)
		}
	}
}

func TestKindString(t *testing.T) {
	if KwWhile.String() != "while" || LtEq.String() != "<=" || EOF.String() != "EOF" {
		t.Fatalf("unexpected kind names: %s %s %s", KwWhile, LtEq, EOF)
	}
	if Kind(250).String() != "Kind(?)" {
		t.Fatalf("unknown kind should not panic")
	}
}
