package ast

import (
	"fanc/internal/source"
	"fanc/internal/types"
)

type ExprKind uint8

const (
	ExprIdent ExprKind = iota
	ExprLit
	ExprBinary
	ExprNot
	ExprCast
	ExprCall
)

func (k ExprKind) String() string {
	switch k {
	case ExprIdent:
		return "Ident"
	case ExprLit:
		return "Lit"
	case ExprBinary:
		return "Binary"
	case ExprNot:
		return "Not"
	case ExprCast:
		return "Cast"
	case ExprCall:
		return "Call"
	}
	return "ExprKind(?)"
}

// Expr is the tagged header; Payload indexes the per-kind arena selected by Kind.
type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Line    uint32
	Payload PayloadID
}

type ExprLitKind uint8

const (
	LitNum ExprLitKind = iota
	LitByte
	LitString
	LitTrue
	LitFalse
)

type ExprBinaryOp uint8

const (
	OpAdd ExprBinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpEq
	OpNe
	OpLt
	OpGt
	OpLe
	OpGe
	OpAnd
	OpOr
)

var binaryOpNames = [...]string{
	OpAdd: "+", OpSub: "-", OpMul: "*", OpDiv: "/",
	OpEq: "==", OpNe: "!=", OpLt: "<", OpGt: ">", OpLe: "<=", OpGe: ">=",
	OpAnd: "and", OpOr: "or",
}

func (op ExprBinaryOp) String() string {
	if int(op) < len(binaryOpNames) {
		return binaryOpNames[op]
	}
	return "op(?)"
}

// IsArithmetic reports whether op is one of + - * /.
func (op ExprBinaryOp) IsArithmetic() bool { return op <= OpDiv }

// IsRelational reports whether op is a comparison.
func (op ExprBinaryOp) IsRelational() bool { return op >= OpEq && op <= OpGe }

// IsLogical reports whether op is a short-circuit operator.
func (op ExprBinaryOp) IsLogical() bool { return op == OpAnd || op == OpOr }

type ExprIdentData struct {
	Name source.StringID
}

type ExprLiteralData struct {
	Kind ExprLitKind
	// Value is the decimal digits for numbers and the unescaped bytes for strings.
	Value source.StringID
}

type ExprBinaryData struct {
	Op    ExprBinaryOp
	Left  ExprID
	Right ExprID
}

type ExprNotData struct {
	Operand ExprID
}

type ExprCastData struct {
	Target types.Type
	Value  ExprID
}

type ExprCallData struct {
	Callee source.StringID
	Args   []ExprID
}
