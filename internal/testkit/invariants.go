package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"fanc/internal/ast"
	"fanc/internal/source"
)

// CheckSpanInvariants runs a minimal set of span invariants on a parsed program:
// 1) every function span is non-empty, points at sf and lies within its content
// 2) functions appear in source order and do not overlap
// 3) every statement and expression span lies within its function's span
// 4) every recorded line number falls inside the node's span
func CheckSpanInvariants(b *ast.Builder, prog *ast.Program, sf *source.File) error {
	if b == nil || prog == nil || sf == nil {
		return fmt.Errorf("nil builder, program or file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	var prevEnd uint32
	for i, id := range prog.Funcs {
		fn := b.Func(id)
		if fn == nil {
			return fmt.Errorf("nil function for id=%d", id)
		}
		sp := fn.Span
		if sp.Empty() || sp.End < sp.Start {
			return fmt.Errorf("function %d: empty span %v", i, sp)
		}
		if sp.File != sf.ID {
			return fmt.Errorf("function %d: span points to file %d, want %d", i, sp.File, sf.ID)
		}
		if sp.End > lenContent {
			return fmt.Errorf("function %d: span end beyond content: %d > %d", i, sp.End, lenContent)
		}
		if sp.Start < prevEnd {
			return fmt.Errorf("function %d: overlaps previous function (%d < %d)", i, sp.Start, prevEnd)
		}
		prevEnd = sp.End

		c := spanChecker{b: b, file: sf, outer: sp}
		for _, p := range fn.Params {
			if err := c.within("param", p.Span, p.Line); err != nil {
				return err
			}
		}
		for _, st := range fn.Body {
			if err := c.stmt(st); err != nil {
				return fmt.Errorf("function %s: %w", b.Name(fn.Name), err)
			}
		}
	}
	return nil
}

type spanChecker struct {
	b     *ast.Builder
	file  *source.File
	outer source.Span
}

func (c *spanChecker) within(what string, sp source.Span, line uint32) error {
	if sp.File != c.outer.File || sp.Start < c.outer.Start || sp.End > c.outer.End {
		return fmt.Errorf("%s span %v escapes %v", what, sp, c.outer)
	}
	first, last := c.file.Line(sp.Start), c.file.Line(sp.End)
	if line < first || line > last {
		return fmt.Errorf("%s at %v: line %d outside %d..%d", what, sp, line, first, last)
	}
	return nil
}

func (c *spanChecker) stmt(id ast.StmtID) error {
	st := c.b.Stmts.Get(id)
	if st == nil {
		return fmt.Errorf("nil statement for id=%d", id)
	}
	if err := c.within(st.Kind.String(), st.Span, st.Line); err != nil {
		return err
	}
	var exprs []ast.ExprID
	var stmts []ast.StmtID
	switch st.Kind {
	case ast.StmtBlock:
		stmts = c.b.Stmts.Block(id).Stmts
	case ast.StmtVarDecl:
		exprs = append(exprs, c.b.Stmts.VarDecl(id).Init)
	case ast.StmtAssign:
		exprs = append(exprs, c.b.Stmts.Assign(id).Value)
	case ast.StmtCall:
		exprs = append(exprs, c.b.Stmts.Call(id).Call)
	case ast.StmtReturn:
		exprs = append(exprs, c.b.Stmts.Return(id).Value)
	case ast.StmtIf:
		d := c.b.Stmts.If(id)
		exprs = append(exprs, d.Cond)
		stmts = append(stmts, d.Then, d.Else)
	case ast.StmtWhile:
		d := c.b.Stmts.While(id)
		exprs = append(exprs, d.Cond)
		stmts = append(stmts, d.Body)
	}
	for _, e := range exprs {
		if err := c.expr(e); err != nil {
			return err
		}
	}
	for _, s := range stmts {
		if !s.IsValid() {
			continue
		}
		if err := c.stmt(s); err != nil {
			return err
		}
	}
	return nil
}

func (c *spanChecker) expr(id ast.ExprID) error {
	if !id.IsValid() {
		return nil
	}
	e := c.b.Exprs.Get(id)
	if e == nil {
		return fmt.Errorf("nil expression for id=%d", id)
	}
	if err := c.within(e.Kind.String(), e.Span, e.Line); err != nil {
		return err
	}
	var children []ast.ExprID
	switch e.Kind {
	case ast.ExprBinary:
		d, _ := c.b.Exprs.Binary(id)
		children = []ast.ExprID{d.Left, d.Right}
	case ast.ExprNot:
		d, _ := c.b.Exprs.Not(id)
		children = []ast.ExprID{d.Operand}
	case ast.ExprCast:
		d, _ := c.b.Exprs.Cast(id)
		children = []ast.ExprID{d.Value}
	case ast.ExprCall:
		d, _ := c.b.Exprs.Call(id)
		children = d.Args
	}
	for _, child := range children {
		if err := c.expr(child); err != nil {
			return err
		}
	}
	return nil
}
