package ast

import (
	"fanc/internal/source"
	"fanc/internal/types"
)

// Exprs manages allocation of expressions.
type Exprs struct {
	Arena    *Arena[Expr]
	Idents   *Arena[ExprIdentData]
	Literals *Arena[ExprLiteralData]
	Binaries *Arena[ExprBinaryData]
	Nots     *Arena[ExprNotData]
	Casts    *Arena[ExprCastData]
	Calls    *Arena[ExprCallData]
}

// NewExprs creates a new Exprs; capHint 0 selects a default of 1<<8.
func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Exprs{
		Arena:    NewArena[Expr](capHint),
		Idents:   NewArena[ExprIdentData](capHint),
		Literals: NewArena[ExprLiteralData](capHint),
		Binaries: NewArena[ExprBinaryData](capHint),
		Nots:     NewArena[ExprNotData](capHint),
		Casts:    NewArena[ExprCastData](capHint),
		Calls:    NewArena[ExprCallData](capHint),
	}
}

func (e *Exprs) new(kind ExprKind, span source.Span, line uint32, payload uint32) ExprID {
	return ExprID(e.Arena.Allocate(Expr{
		Kind:    kind,
		Span:    span,
		Line:    line,
		Payload: PayloadID(payload),
	}))
}

// Get returns the expression with the given ID.
func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

func (e *Exprs) NewIdent(span source.Span, line uint32, name source.StringID) ExprID {
	return e.new(ExprIdent, span, line, e.Idents.Allocate(ExprIdentData{Name: name}))
}

func (e *Exprs) Ident(id ExprID) (*ExprIdentData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprIdent {
		return nil, false
	}
	return e.Idents.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewLiteral(span source.Span, line uint32, kind ExprLitKind, value source.StringID) ExprID {
	return e.new(ExprLit, span, line, e.Literals.Allocate(ExprLiteralData{Kind: kind, Value: value}))
}

func (e *Exprs) Literal(id ExprID) (*ExprLiteralData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprLit {
		return nil, false
	}
	return e.Literals.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewBinary(span source.Span, line uint32, op ExprBinaryOp, left, right ExprID) ExprID {
	return e.new(ExprBinary, span, line, e.Binaries.Allocate(ExprBinaryData{Op: op, Left: left, Right: right}))
}

func (e *Exprs) Binary(id ExprID) (*ExprBinaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprBinary {
		return nil, false
	}
	return e.Binaries.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewNot(span source.Span, line uint32, operand ExprID) ExprID {
	return e.new(ExprNot, span, line, e.Nots.Allocate(ExprNotData{Operand: operand}))
}

func (e *Exprs) Not(id ExprID) (*ExprNotData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprNot {
		return nil, false
	}
	return e.Nots.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewCast(span source.Span, line uint32, target types.Type, value ExprID) ExprID {
	return e.new(ExprCast, span, line, e.Casts.Allocate(ExprCastData{Target: target, Value: value}))
}

func (e *Exprs) Cast(id ExprID) (*ExprCastData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprCast {
		return nil, false
	}
	return e.Casts.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewCall(span source.Span, line uint32, callee source.StringID, args []ExprID) ExprID {
	return e.new(ExprCall, span, line, e.Calls.Allocate(ExprCallData{Callee: callee, Args: args}))
}

func (e *Exprs) Call(id ExprID) (*ExprCallData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprCall {
		return nil, false
	}
	return e.Calls.Get(uint32(expr.Payload)), true
}
