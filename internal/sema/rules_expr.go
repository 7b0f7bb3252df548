package sema

import (
	"strconv"

	"fanc/internal/ast"
	"fanc/internal/diag"
	"fanc/internal/types"
)

// LiteralType returns the fixed type of a literal kind.
func LiteralType(kind ast.ExprLitKind) types.Type {
	switch kind {
	case ast.LitNum:
		return types.Int
	case ast.LitByte:
		return types.Byte
	case ast.LitString:
		return types.String
	case ast.LitTrue, ast.LitFalse:
		return types.Bool
	}
	return types.Invalid
}

// ByteLiteral rejects byte literals above 255. digits is the literal without
// its 'b' suffix.
func ByteLiteral(digits string, at Site) error {
	v, err := strconv.ParseUint(digits, 10, 32)
	if err != nil || v > 255 {
		return at.fail(diag.SemaByteOutOfRange, digits)
	}
	return nil
}

// Binary types an arithmetic, relational or logical operator.
func Binary(op ast.ExprBinaryOp, left, right types.Type, at Site) (types.Type, error) {
	switch {
	case op.IsArithmetic():
		if !left.IsNumeric() || !right.IsNumeric() {
			return types.Invalid, at.mismatch()
		}
		return types.Promote(left, right), nil
	case op.IsRelational():
		if !left.IsNumeric() || !right.IsNumeric() {
			return types.Invalid, at.mismatch()
		}
		return types.Bool, nil
	case op.IsLogical():
		if left != types.Bool || right != types.Bool {
			return types.Invalid, at.mismatch()
		}
		return types.Bool, nil
	}
	return types.Invalid, at.mismatch()
}

// LogicalOperand checks one side of and/or as soon as it is evaluated, so a
// bad left operand is reported before the right one is lowered.
func LogicalOperand(t types.Type, at Site) error {
	if t != types.Bool {
		return at.mismatch()
	}
	return nil
}

// Not requires a BOOL operand.
func Not(operand types.Type, at Site) (types.Type, error) {
	if operand != types.Bool {
		return types.Invalid, at.mismatch()
	}
	return types.Bool, nil
}

// Cast allows numeric-to-numeric conversions only.
func Cast(target, value types.Type, at Site) (types.Type, error) {
	if !target.IsNumeric() || !value.IsNumeric() {
		return types.Invalid, at.mismatch()
	}
	return target, nil
}

// Truncates reports whether a cast needs the value masked to 8 bits.
func Truncates(target, value types.Type) bool {
	return target == types.Byte && value == types.Int
}
