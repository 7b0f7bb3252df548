package sema

import (
	"fanc/internal/diag"
	"fanc/internal/source"
)

// Site locates the node a rule is checking.
type Site struct {
	Line uint32
	Span source.Span
}

func (s Site) fail(code diag.Code, name string) *diag.Error {
	return diag.New(code, s.Line, s.Span, name)
}

func (s Site) mismatch() error {
	return s.fail(diag.SemaTypeMismatch, "")
}
