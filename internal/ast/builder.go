package ast

import (
	"fanc/internal/source"
)

// Builder owns every arena of one parsed program.
type Builder struct {
	Funcs      *Arena[FnDecl]
	Stmts      *Stmts
	Exprs      *Exprs
	StringsInt *source.Interner
}

type Hints struct {
	Funcs, Stmts, Exprs uint
}

// NewBuilder creates a Builder; a nil interner gets a fresh one.
func NewBuilder(hints Hints, interner *source.Interner) *Builder {
	if interner == nil {
		interner = source.NewInterner()
	}
	if hints.Funcs == 0 {
		hints.Funcs = 1 << 4
	}
	return &Builder{
		Funcs:      NewArena[FnDecl](hints.Funcs),
		Stmts:      NewStmts(hints.Stmts),
		Exprs:      NewExprs(hints.Exprs),
		StringsInt: interner,
	}
}

func (b *Builder) NewFunc(fn FnDecl) FuncID {
	return FuncID(b.Funcs.Allocate(fn))
}

func (b *Builder) Func(id FuncID) *FnDecl {
	return b.Funcs.Get(uint32(id))
}

// Name resolves an interned identifier or literal payload.
func (b *Builder) Name(id source.StringID) string {
	return b.StringsInt.MustLookup(id)
}
