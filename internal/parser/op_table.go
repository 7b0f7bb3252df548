package parser

import (
	"fanc/internal/ast"
	"fanc/internal/token"
)

// Binary precedence, higher binds tighter. not and casts sit above all of these.
const (
	precNone           = 0
	precLogicalOr      = 1 // or
	precLogicalAnd     = 2 // and
	precEquality       = 3 // == !=
	precComparison     = 4 // < <= > >=
	precAdditive       = 5 // + -
	precMultiplicative = 6 // * /
)

// binaryOp maps a token to its operator and precedence; all are left-associative.
func binaryOp(kind token.Kind) (ast.ExprBinaryOp, int) {
	switch kind {
	case token.KwOr:
		return ast.OpOr, precLogicalOr
	case token.KwAnd:
		return ast.OpAnd, precLogicalAnd
	case token.EqEq:
		return ast.OpEq, precEquality
	case token.BangEq:
		return ast.OpNe, precEquality
	case token.Lt:
		return ast.OpLt, precComparison
	case token.Gt:
		return ast.OpGt, precComparison
	case token.LtEq:
		return ast.OpLe, precComparison
	case token.GtEq:
		return ast.OpGe, precComparison
	case token.Plus:
		return ast.OpAdd, precAdditive
	case token.Minus:
		return ast.OpSub, precAdditive
	case token.Star:
		return ast.OpMul, precMultiplicative
	case token.Slash:
		return ast.OpDiv, precMultiplicative
	}
	return 0, precNone
}
