package lower

import (
	"fmt"

	"fanc/internal/ast"
	"fanc/internal/diag"
	"fanc/internal/sema"
	"fanc/internal/symbols"
	"fanc/internal/types"
)

func (c *Context) lowerStmts(ids []ast.StmtID) error {
	for _, id := range ids {
		if err := c.LowerStmt(id); err != nil {
			return err
		}
	}
	return nil
}

// LowerStmt lowers one statement in the current scope.
func (c *Context) LowerStmt(id ast.StmtID) error {
	st := c.ast.Stmts.Get(id)
	if st == nil {
		return fmt.Errorf("lower: statement %d out of range", id)
	}
	switch st.Kind {
	case ast.StmtBlock:
		scope := c.res.Open(symbols.ScopeBlock)
		if err := c.lowerStmts(c.ast.Stmts.Block(id).Stmts); err != nil {
			return err
		}
		c.res.Close(scope)
		return nil
	case ast.StmtVarDecl:
		return c.lowerVarDecl(st, c.ast.Stmts.VarDecl(id))
	case ast.StmtAssign:
		return c.lowerAssign(st, c.ast.Stmts.Assign(id))
	case ast.StmtCall:
		_, err := c.LowerExpr(c.ast.Stmts.Call(id).Call)
		return err
	case ast.StmtReturn:
		return c.lowerReturn(st, c.ast.Stmts.Return(id))
	case ast.StmtIf:
		return c.lowerIf(c.ast.Stmts.If(id))
	case ast.StmtWhile:
		return c.lowerWhile(c.ast.Stmts.While(id))
	case ast.StmtBreak:
		return c.lowerJump(st, diag.SemaUnexpectedBreak)
	case ast.StmtContinue:
		return c.lowerJump(st, diag.SemaUnexpectedContinue)
	}
	return fmt.Errorf("lower: unknown statement kind %s", st.Kind)
}

// lowerBody lowers the body of an if, else or while in the scope the caller
// already opened for it. A braced body does not open a second scope.
func (c *Context) lowerBody(id ast.StmtID) error {
	if st := c.ast.Stmts.Get(id); st != nil && st.Kind == ast.StmtBlock {
		return c.lowerStmts(c.ast.Stmts.Block(id).Stmts)
	}
	return c.LowerStmt(id)
}

func (c *Context) store(v Value, slot string) {
	if v.Narrow {
		wide := c.buf.FreshTemp()
		c.buf.Emit("%s = zext i8 %s to i32", wide, v.Ref)
		c.buf.Emit("store i32 %s, i32* %s", wide, slot)
		return
	}
	c.buf.Emit("store i32 %s, i32* %s", v.Ref, slot)
}

// lowerVarDecl checks the name, then the initializer, and only then
// allocates the slot, so the initializer cannot see the new variable.
func (c *Context) lowerVarDecl(st *ast.Stmt, d *ast.StmtVarDeclData) error {
	at := stmtSite(st)
	if c.res.LookupLocal(d.Name).IsValid() {
		return diag.New(diag.SemaAlreadyDefined, st.Line, st.Span, c.name(d.Name))
	}
	var init *Value
	if d.Init.IsValid() {
		v, err := c.LowerExpr(d.Init)
		if err != nil {
			return err
		}
		if err := sema.Assignable(d.Type, v.Type, at); err != nil {
			return err
		}
		init = &v
	}
	id, err := c.res.Declare(symbols.Decl{
		Name: d.Name,
		Kind: symbols.SymbolVariable,
		Type: d.Type,
		Span: st.Span,
		Line: st.Line,
	})
	if err != nil {
		return err
	}
	slot := c.res.Symbol(id).Storage
	if init == nil {
		c.buf.Emit("store i32 0, i32* %s", slot)
		return nil
	}
	c.store(*init, slot)
	return nil
}

func (c *Context) lowerAssign(st *ast.Stmt, a *ast.StmtAssignData) error {
	at := stmtSite(st)
	name := c.name(a.Name)
	sym := c.lookup(a.Name)
	if _, err := sema.Identifier(sym, name, at); err != nil {
		return err
	}
	v, err := c.LowerExpr(a.Value)
	if err != nil {
		return err
	}
	if err := sema.Assignable(sym.Type, v.Type, at); err != nil {
		return err
	}
	c.store(v, sym.Storage)
	return nil
}

func (c *Context) lowerReturn(st *ast.Stmt, r *ast.StmtReturnData) error {
	if c.fn == nil {
		return fmt.Errorf("lower: return outside a function")
	}
	got := Value{Type: types.Void}
	if r.Value.IsValid() {
		v, err := c.LowerExpr(r.Value)
		if err != nil {
			return err
		}
		got = v
	}
	if err := sema.Return(c.fn.ret, got.Type, stmtSite(st)); err != nil {
		return err
	}
	if got.Type == types.Void {
		c.buf.Terminate("ret void")
	} else {
		c.buf.Terminate("ret i32 %s", got.Ref)
	}
	c.buf.EmitLabel(c.buf.FreshLabel())
	return nil
}

// lowerJump emits break or continue as a branch to the innermost loop,
// followed by a dead block so later statements still have a block to go in.
func (c *Context) lowerJump(st *ast.Stmt, code diag.Code) error {
	loop := c.res.Scope(c.res.NearestLoop())
	if loop == nil {
		return diag.New(code, st.Line, st.Span, "")
	}
	target := loop.ExitLabel
	if code == diag.SemaUnexpectedContinue {
		target = loop.ContinueLabel
	}
	c.buf.Br(target)
	c.buf.EmitLabel(c.buf.FreshLabel())
	return nil
}

// condition lowers a BOOL expression and converts it to i1.
func (c *Context) condition(id ast.ExprID) (string, error) {
	v, err := c.LowerExpr(id)
	if err != nil {
		return "", err
	}
	if err := sema.Condition(v.Type, exprSite(c.ast.Exprs.Get(id))); err != nil {
		return "", err
	}
	cond := c.buf.FreshTemp()
	c.buf.Emit("%s = icmp ne i32 %s, 0", cond, v.Ref)
	return cond, nil
}

// lowerIf: the condition and the then branch share one scope; the else
// branch gets its own.
func (c *Context) lowerIf(s *ast.StmtIfData) error {
	scope := c.res.Open(symbols.ScopeBlock)
	cond, err := c.condition(s.Cond)
	if err != nil {
		return err
	}
	thenLabel := c.buf.FreshLabel()
	endLabel := c.buf.FreshLabel()
	elseLabel := endLabel
	if s.Else.IsValid() {
		elseLabel = c.buf.FreshLabel()
	}
	c.buf.CondBr(cond, thenLabel, elseLabel)
	c.buf.EmitLabel(thenLabel)
	c.buf.Comment(">>> if block")
	if err := c.lowerBody(s.Then); err != nil {
		return err
	}
	c.res.Close(scope)
	c.buf.Br(endLabel)

	if s.Else.IsValid() {
		c.buf.EmitLabel(elseLabel)
		c.buf.Comment(">>> else block")
		scope = c.res.Open(symbols.ScopeBlock)
		if err := c.lowerBody(s.Else); err != nil {
			return err
		}
		c.res.Close(scope)
		c.buf.Br(endLabel)
	}
	c.buf.EmitLabel(endLabel)
	return nil
}

// lowerWhile records the loop's break and continue targets before the body
// is lowered, so nested jumps resolve to the innermost loop.
func (c *Context) lowerWhile(s *ast.StmtWhileData) error {
	outer := c.res.Open(symbols.ScopeBlock)
	bodyLabel := c.buf.FreshLabel()
	condLabel := c.buf.FreshLabel()
	endLabel := c.buf.FreshLabel()

	c.buf.Br(condLabel)
	c.buf.EmitLabel(condLabel)
	cond, err := c.condition(s.Cond)
	if err != nil {
		return err
	}
	c.buf.CondBr(cond, bodyLabel, endLabel)

	loop := c.res.Open(symbols.ScopeLoop)
	c.res.SetLoopLabels(loop, endLabel, condLabel)
	c.buf.EmitLabel(bodyLabel)
	if err := c.lowerBody(s.Body); err != nil {
		return err
	}
	c.buf.Br(condLabel)
	c.res.Close(loop)

	c.buf.EmitLabel(endLabel)
	c.res.Close(outer)
	return nil
}
