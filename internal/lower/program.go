package lower

import (
	"fmt"

	"fanc/internal/ast"
	"fanc/internal/backend/llvm"
	"fanc/internal/sema"
	"fanc/internal/symbols"
	"fanc/internal/trace"
	"fanc/internal/types"
)

// Options configures CompileProgram.
type Options struct {
	// Listing, when set, receives the scope listing of the whole program.
	Listing *symbols.Listing
	// Tracer receives one ScopeNode span per function, parented to
	// TraceParent. Nil disables tracing.
	Tracer      trace.Tracer
	TraceParent uint64
}

// Result is a successfully lowered program.
type Result struct {
	IR    string
	Table *symbols.Table
	Funcs int
}

// CompileProgram registers every function signature, checks for main, then
// lowers each function body in declaration order. The returned error is a
// *diag.Error.
func CompileProgram(arenas *ast.Builder, prog *ast.Program, opts Options) (*Result, error) {
	if prog == nil {
		return nil, fmt.Errorf("lower: nil program")
	}
	c := NewContext(arenas, opts.Listing)
	if opts.Tracer != nil {
		c.tracer, c.traceParent = opts.Tracer, opts.TraceParent
	}
	if err := c.registerSignatures(prog); err != nil {
		return nil, err
	}
	mainSym := c.lookup(arenas.StringsInt.Intern("main"))
	if err := sema.Main(mainSym); err != nil {
		return nil, err
	}
	for _, id := range prog.Funcs {
		if err := c.lowerFunc(arenas.Func(id)); err != nil {
			return nil, err
		}
	}
	return &Result{
		IR:    c.buf.Render(),
		Table: c.res.Table(),
		Funcs: len(prog.Funcs),
	}, nil
}

// registerSignatures makes every function visible before any body is
// lowered, so calls may refer forward.
func (c *Context) registerSignatures(prog *ast.Program) error {
	for _, id := range prog.Funcs {
		fn := c.ast.Func(id)
		params := make([]types.Type, 0, len(fn.Params))
		for _, p := range fn.Params {
			params = append(params, p.Type)
		}
		if _, err := c.res.Declare(symbols.Decl{
			Name:   fn.Name,
			Kind:   symbols.SymbolFunction,
			Type:   fn.Ret,
			Params: params,
			Span:   fn.Span,
			Line:   fn.Line,
		}); err != nil {
			return err
		}
	}
	return nil
}

// lowerFunc emits one function definition. Parameters arrive as %0, %1, ...
// and are copied into their own slots so the body can assign to them.
func (c *Context) lowerFunc(fn *ast.FnDecl) error {
	irParams := make([]string, 0, len(fn.Params))
	for _, p := range fn.Params {
		irParams = append(irParams, p.Type.IRType())
	}
	span := trace.Begin(c.tracer, trace.ScopeNode, "fn:"+c.name(fn.Name), c.traceParent)
	detail := "ok"
	defer func() { span.End(detail) }()

	ret := fn.Ret.IRType()
	c.buf.BeginFunc(ret, llvm.FuncName(c.name(fn.Name), false), irParams)

	scope := c.res.Open(symbols.ScopeFunction)
	c.fn = &funcState{decl: fn, ret: fn.Ret, scope: scope}
	defer func() { c.fn = nil }()

	for i, p := range fn.Params {
		id, err := c.res.Declare(symbols.Decl{
			Name: p.Name,
			Kind: symbols.SymbolParam,
			Type: p.Type,
			Span: p.Span,
			Line: p.Line,
		})
		if err != nil {
			detail = "error"
			return err
		}
		c.buf.Emit("store i32 %%%d, i32* %s", i, c.res.Symbol(id).Storage)
	}
	if err := c.lowerStmts(fn.Body); err != nil {
		detail = "error"
		return err
	}
	c.buf.EndFunc(ret)
	c.res.Close(scope)
	return nil
}
