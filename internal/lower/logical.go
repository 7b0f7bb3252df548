package lower

import (
	"fanc/internal/ast"
	"fanc/internal/sema"
	"fanc/internal/types"
)

// lowerLogical evaluates `and` / `or` with short-circuiting:
//
//	left:   %l = icmp ne i32 <left>, 0 ; br %anchorL
//	anchorL: br i1 %l, <and: right, end | or: end, right>
//	right:  %r = icmp ne i32 <right>, 0 ; br %anchorR
//	anchorR: br %end
//	end:    phi i1 [known, %anchorL], [%r, %anchorR]
//
// The anchor blocks give the phi two predecessors whose names are fixed
// before the right operand is lowered, whatever blocks it creates.
func (c *Context) lowerLogical(e *ast.Expr, data *ast.ExprBinaryData) (Value, error) {
	at := exprSite(e)
	left, err := c.LowerExpr(data.Left)
	if err != nil {
		return Value{}, err
	}
	if err := sema.LogicalOperand(left.Type, at); err != nil {
		return Value{}, err
	}
	leftBit := c.buf.FreshTemp()
	c.buf.Emit("%s = icmp ne i32 %s, 0", leftBit, left.Ref)

	rightLabel := c.buf.FreshLabel()
	endLabel := c.buf.FreshLabel()
	leftAnchor := c.buf.FreshLabel()
	c.buf.Br(leftAnchor)
	c.buf.EmitLabel(leftAnchor)

	known := "0"
	if data.Op == ast.OpAnd {
		c.buf.CondBr(leftBit, rightLabel, endLabel)
	} else {
		known = "1"
		c.buf.CondBr(leftBit, endLabel, rightLabel)
	}

	c.buf.EmitLabel(rightLabel)
	right, err := c.LowerExpr(data.Right)
	if err != nil {
		return Value{}, err
	}
	if err := sema.LogicalOperand(right.Type, at); err != nil {
		return Value{}, err
	}
	rightBit := c.buf.FreshTemp()
	c.buf.Emit("%s = icmp ne i32 %s, 0", rightBit, right.Ref)
	rightAnchor := c.buf.FreshLabel()
	c.buf.Br(rightAnchor)
	c.buf.EmitLabel(rightAnchor)
	c.buf.Br(endLabel)

	c.buf.EmitLabel(endLabel)
	phi := c.buf.FreshTemp()
	c.buf.Emit("%s = phi i1 [ %s, %s ], [ %s, %s ]", phi, known, leftAnchor, rightBit, rightAnchor)
	v := c.buf.FreshTemp()
	c.buf.Emit("%s = zext i1 %s to i32", v, phi)
	return Value{Ref: v, Type: types.Bool}, nil
}
