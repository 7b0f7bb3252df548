package ast

// View types are a pointer-free nested copy of the arenas, used for debug
// dumps and structural assertions in tests.

type FnView struct {
	Name   string
	Ret    string
	Params []string
	Body   []StmtView
}

type StmtView struct {
	Kind string
	Line uint32
	Name string     `json:",omitempty"`
	Type string     `json:",omitempty"`
	Expr *ExprView  `json:",omitempty"`
	Body []StmtView `json:",omitempty"`
	Else []StmtView `json:",omitempty"`
}

type ExprView struct {
	Kind string
	Line uint32
	Text string
	Args []ExprView
}

// View returns the nested form of every function in prog.
func (b *Builder) View(prog *Program) []FnView {
	out := make([]FnView, 0, len(prog.Funcs))
	for _, id := range prog.Funcs {
		fn := b.Func(id)
		v := FnView{Name: b.Name(fn.Name), Ret: fn.Ret.String()}
		for _, p := range fn.Params {
			v.Params = append(v.Params, p.Type.String()+" "+b.Name(p.Name))
		}
		for _, st := range fn.Body {
			v.Body = append(v.Body, b.stmtView(st))
		}
		out = append(out, v)
	}
	return out
}

func (b *Builder) stmtView(id StmtID) StmtView {
	st := b.Stmts.Get(id)
	v := StmtView{Kind: st.Kind.String(), Line: st.Line}
	switch st.Kind {
	case StmtBlock:
		for _, inner := range b.Stmts.Block(id).Stmts {
			v.Body = append(v.Body, b.stmtView(inner))
		}
	case StmtVarDecl:
		d := b.Stmts.VarDecl(id)
		v.Name, v.Type = b.Name(d.Name), d.Type.String()
		v.Expr = b.exprViewPtr(d.Init)
	case StmtAssign:
		d := b.Stmts.Assign(id)
		v.Name = b.Name(d.Name)
		v.Expr = b.exprViewPtr(d.Value)
	case StmtCall:
		v.Expr = b.exprViewPtr(b.Stmts.Call(id).Call)
	case StmtReturn:
		v.Expr = b.exprViewPtr(b.Stmts.Return(id).Value)
	case StmtIf:
		d := b.Stmts.If(id)
		v.Expr = b.exprViewPtr(d.Cond)
		v.Body = []StmtView{b.stmtView(d.Then)}
		if d.Else.IsValid() {
			v.Else = []StmtView{b.stmtView(d.Else)}
		}
	case StmtWhile:
		d := b.Stmts.While(id)
		v.Expr = b.exprViewPtr(d.Cond)
		v.Body = []StmtView{b.stmtView(d.Body)}
	case StmtBreak, StmtContinue:
	}
	return v
}

func (b *Builder) exprViewPtr(id ExprID) *ExprView {
	if !id.IsValid() {
		return nil
	}
	v := b.exprView(id)
	return &v
}

func (b *Builder) exprView(id ExprID) ExprView {
	e := b.Exprs.Get(id)
	v := ExprView{Kind: e.Kind.String(), Line: e.Line}
	switch e.Kind {
	case ExprIdent:
		d, _ := b.Exprs.Ident(id)
		v.Text = b.Name(d.Name)
	case ExprLit:
		d, _ := b.Exprs.Literal(id)
		switch d.Kind {
		case LitTrue:
			v.Text = "true"
		case LitFalse:
			v.Text = "false"
		case LitByte:
			v.Text = b.Name(d.Value) + "b"
		case LitString:
			v.Text = "\"" + b.Name(d.Value) + "\""
		default:
			v.Text = b.Name(d.Value)
		}
	case ExprBinary:
		d, _ := b.Exprs.Binary(id)
		v.Text = d.Op.String()
		v.Args = []ExprView{b.exprView(d.Left), b.exprView(d.Right)}
	case ExprNot:
		d, _ := b.Exprs.Not(id)
		v.Text = "not"
		v.Args = []ExprView{b.exprView(d.Operand)}
	case ExprCast:
		d, _ := b.Exprs.Cast(id)
		v.Text = d.Target.String()
		v.Args = []ExprView{b.exprView(d.Value)}
	case ExprCall:
		d, _ := b.Exprs.Call(id)
		v.Text = b.Name(d.Callee)
		for _, a := range d.Args {
			v.Args = append(v.Args, b.exprView(a))
		}
	}
	return v
}
