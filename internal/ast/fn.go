package ast

import (
	"fanc/internal/source"
	"fanc/internal/types"
)

type FnParam struct {
	Type types.Type
	Name source.StringID
	Span source.Span
	Line uint32
}

// FnDecl is one top-level function. Body holds the statements between the
// braces; they share the function's scope with the parameters.
type FnDecl struct {
	Name   source.StringID
	Ret    types.Type
	Params []FnParam
	Body   []StmtID
	Span   source.Span
	Line   uint32
}

// Program is the root: functions in declaration order.
type Program struct {
	File  source.FileID
	Funcs []FuncID
}
