package lower

import (
	"fmt"
	"strings"

	"fanc/internal/ast"
	"fanc/internal/backend/llvm"
	"fanc/internal/sema"
	"fanc/internal/types"
)

// LowerExpr lowers one expression and returns its value handle.
func (c *Context) LowerExpr(id ast.ExprID) (Value, error) {
	e := c.ast.Exprs.Get(id)
	if e == nil {
		return Value{}, fmt.Errorf("lower: expression %d out of range", id)
	}
	switch e.Kind {
	case ast.ExprIdent:
		data, _ := c.ast.Exprs.Ident(id)
		return c.lowerIdent(e, data)
	case ast.ExprLit:
		data, _ := c.ast.Exprs.Literal(id)
		return c.lowerLiteral(e, data)
	case ast.ExprBinary:
		data, _ := c.ast.Exprs.Binary(id)
		if data.Op.IsLogical() {
			return c.lowerLogical(e, data)
		}
		return c.lowerBinary(e, data)
	case ast.ExprNot:
		data, _ := c.ast.Exprs.Not(id)
		return c.lowerNot(e, data)
	case ast.ExprCast:
		data, _ := c.ast.Exprs.Cast(id)
		return c.lowerCast(e, data)
	case ast.ExprCall:
		data, _ := c.ast.Exprs.Call(id)
		return c.lowerCall(e, data)
	}
	return Value{}, fmt.Errorf("lower: unknown expression kind %s", e.Kind)
}

func (c *Context) lowerIdent(e *ast.Expr, data *ast.ExprIdentData) (Value, error) {
	sym := c.lookup(data.Name)
	t, err := sema.Identifier(sym, c.name(data.Name), exprSite(e))
	if err != nil {
		return Value{}, err
	}
	v := c.buf.FreshTemp()
	c.buf.Emit("%s = load i32, i32* %s", v, sym.Storage)
	return Value{Ref: v, Type: t}, nil
}

// lowerLiteral: numbers and booleans are immediate operands; strings are
// pooled and addressed through a getelementptr.
func (c *Context) lowerLiteral(e *ast.Expr, data *ast.ExprLiteralData) (Value, error) {
	t := sema.LiteralType(data.Kind)
	switch data.Kind {
	case ast.LitNum:
		return Value{Ref: c.name(data.Value), Type: t}, nil
	case ast.LitByte:
		digits := c.name(data.Value)
		if err := sema.ByteLiteral(digits, exprSite(e)); err != nil {
			return Value{}, err
		}
		return Value{Ref: digits, Type: t, Narrow: true}, nil
	case ast.LitTrue:
		return Value{Ref: "1", Type: t, Narrow: true}, nil
	case ast.LitFalse:
		return Value{Ref: "0", Type: t, Narrow: true}, nil
	case ast.LitString:
		global, n := c.buf.InternString(c.name(data.Value))
		v := c.buf.FreshTemp()
		c.buf.Emit("%s = getelementptr [%d x i8], [%d x i8]* %s, i32 0, i32 0", v, n, n, global)
		return Value{Ref: v, Type: t}, nil
	}
	return Value{}, fmt.Errorf("lower: unknown literal kind %d", data.Kind)
}

var icmpPredicates = map[ast.ExprBinaryOp]string{
	ast.OpEq: "eq",
	ast.OpNe: "ne",
	ast.OpLt: "slt",
	ast.OpGt: "sgt",
	ast.OpLe: "sle",
	ast.OpGe: "sge",
}

// lowerBinary handles arithmetic and relational operators. Both operands
// are lowered before either is checked.
func (c *Context) lowerBinary(e *ast.Expr, data *ast.ExprBinaryData) (Value, error) {
	left, err := c.LowerExpr(data.Left)
	if err != nil {
		return Value{}, err
	}
	right, err := c.LowerExpr(data.Right)
	if err != nil {
		return Value{}, err
	}
	t, err := sema.Binary(data.Op, left.Type, right.Type, exprSite(e))
	if err != nil {
		return Value{}, err
	}

	if data.Op.IsRelational() {
		bit := c.buf.FreshTemp()
		c.buf.Emit("%s = icmp %s i32 %s, %s", bit, icmpPredicates[data.Op], left.Ref, right.Ref)
		v := c.buf.FreshTemp()
		c.buf.Emit("%s = zext i1 %s to i32", v, bit)
		return Value{Ref: v, Type: t}, nil
	}

	var inst string
	switch data.Op {
	case ast.OpAdd:
		inst = "add"
	case ast.OpSub:
		inst = "sub"
	case ast.OpMul:
		inst = "mul"
	case ast.OpDiv:
		c.guardDivision(right.Ref)
		inst = "sdiv"
		if t == types.Byte {
			inst = "udiv"
		}
	default:
		return Value{}, fmt.Errorf("lower: unexpected operator %s", data.Op)
	}
	v := c.buf.FreshTemp()
	c.buf.Emit("%s = %s i32 %s, %s", v, inst, left.Ref, right.Ref)
	if t == types.Byte {
		masked := c.buf.FreshTemp()
		c.buf.Emit("%s = and i32 %s, 255", masked, v)
		v = masked
	}
	return Value{Ref: v, Type: t}, nil
}

// guardDivision branches to a block that reports division by zero and
// exits when divisor is zero. The division itself is emitted by the caller
// on the fallthrough path.
func (c *Context) guardDivision(divisor string) {
	isZero := c.buf.FreshTemp()
	c.buf.Emit("%s = icmp eq i32 %s, 0", isZero, divisor)
	fail := c.buf.FreshLabel()
	ok := c.buf.FreshLabel()
	c.buf.CondBr(isZero, fail, ok)

	c.buf.EmitLabel(fail)
	msg, n := c.buf.DivZeroMessage()
	c.buf.Emit("call void @print(i8* %s)", llvm.StringPtr(msg, n))
	c.buf.Emit("call void @exit(i32 0)")
	c.buf.Terminate("unreachable")
	c.buf.EmitLabel(ok)
}

func (c *Context) lowerNot(e *ast.Expr, data *ast.ExprNotData) (Value, error) {
	operand, err := c.LowerExpr(data.Operand)
	if err != nil {
		return Value{}, err
	}
	t, err := sema.Not(operand.Type, exprSite(e))
	if err != nil {
		return Value{}, err
	}
	v := c.buf.FreshTemp()
	c.buf.Emit("%s = xor i32 %s, 1", v, operand.Ref)
	return Value{Ref: v, Type: t}, nil
}

func (c *Context) lowerCast(e *ast.Expr, data *ast.ExprCastData) (Value, error) {
	operand, err := c.LowerExpr(data.Value)
	if err != nil {
		return Value{}, err
	}
	t, err := sema.Cast(data.Target, operand.Type, exprSite(e))
	if err != nil {
		return Value{}, err
	}
	v := c.buf.FreshTemp()
	if sema.Truncates(data.Target, operand.Type) {
		c.buf.Emit("%s = and i32 %s, 255", v, operand.Ref)
	} else {
		c.buf.Emit("%s = add i32 %s, 0", v, operand.Ref)
	}
	return Value{Ref: v, Type: t}, nil
}

// lowerCall checks the callee and the argument count before evaluating any
// argument, then checks each argument right after lowering it.
func (c *Context) lowerCall(e *ast.Expr, data *ast.ExprCallData) (Value, error) {
	at := exprSite(e)
	name := c.name(data.Callee)
	callee := c.lookup(data.Callee)
	if err := sema.Callee(callee, name, at); err != nil {
		return Value{}, err
	}
	if err := sema.ArgCount(callee, name, len(data.Args), at); err != nil {
		return Value{}, err
	}
	args := make([]string, 0, len(data.Args))
	for i, argID := range data.Args {
		arg, err := c.LowerExpr(argID)
		if err != nil {
			return Value{}, err
		}
		if err := sema.Argument(callee, name, i, arg.Type, at); err != nil {
			return Value{}, err
		}
		args = append(args, arg.Type.IRType()+" "+arg.Ref)
	}

	target := llvm.FuncName(name, callee.IsBuiltin())
	argList := strings.Join(args, ", ")
	if callee.Type == types.Void {
		c.buf.Emit("call void @%s(%s)", target, argList)
		return Value{Type: types.Void}, nil
	}
	v := c.buf.FreshTemp()
	c.buf.Emit("%s = call %s @%s(%s)", v, callee.Type.IRType(), target, argList)
	return Value{Ref: v, Type: callee.Type}, nil
}
