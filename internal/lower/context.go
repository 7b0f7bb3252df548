package lower

import (
	"fanc/internal/ast"
	"fanc/internal/backend/llvm"
	"fanc/internal/sema"
	"fanc/internal/source"
	"fanc/internal/symbols"
	"fanc/internal/trace"
	"fanc/internal/types"
)

// Value is the result of lowering an expression: an IR operand and its
// static type.
type Value struct {
	Ref  string
	Type types.Type
	// Narrow marks a bool or byte literal, which is widened with zext before
	// being stored.
	Narrow bool
}

// Context is the mutable state of one compilation run.
type Context struct {
	ast *ast.Builder
	res *symbols.Resolver
	buf *llvm.Buffer

	tracer      trace.Tracer
	traceParent uint64

	// fn is the function being lowered; nil between functions.
	fn *funcState
}

type funcState struct {
	decl  *ast.FnDecl
	ret   types.Type
	scope symbols.ScopeID
}

// NewContext prepares a resolver with the builtins installed in the global
// scope and a fresh IR buffer. listing may be nil.
func NewContext(arenas *ast.Builder, listing *symbols.Listing) *Context {
	buf := llvm.NewBuffer()
	table := symbols.NewTable(symbols.Hints{}, arenas.StringsInt)
	res := symbols.NewResolver(table, symbols.ResolverOptions{
		Prelude: symbols.Builtins(),
		Slots:   buf,
		Listing: listing,
	})
	return &Context{ast: arenas, res: res, buf: buf, tracer: trace.Nop}
}

// Resolver exposes the scope manager.
func (c *Context) Resolver() *symbols.Resolver { return c.res }

// Buffer exposes the IR buffer.
func (c *Context) Buffer() *llvm.Buffer { return c.buf }

func (c *Context) name(id source.StringID) string {
	return c.ast.Name(id)
}

func (c *Context) lookup(name source.StringID) *symbols.Symbol {
	return c.res.Symbol(c.res.Lookup(name))
}

func exprSite(e *ast.Expr) sema.Site {
	return sema.Site{Line: e.Line, Span: e.Span}
}

func stmtSite(s *ast.Stmt) sema.Site {
	return sema.Site{Line: s.Line, Span: s.Span}
}
