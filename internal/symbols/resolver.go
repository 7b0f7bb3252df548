package symbols

import (
	"fmt"

	"fanc/internal/diag"
	"fanc/internal/source"
	"fanc/internal/types"
)

// SlotAllocator hands out a fresh storage location for every declared variable.
type SlotAllocator interface {
	AllocSlot() string
}

// ResolverOptions configures resolver construction.
type ResolverOptions struct {
	Prelude []PreludeEntry
	Slots   SlotAllocator
	Listing *Listing
}

// Decl is the input to Declare.
type Decl struct {
	Name   source.StringID
	Kind   SymbolKind
	Type   types.Type
	Params []types.Type
	Flags  SymbolFlags
	Span   source.Span
	Line   uint32
}

// Resolver keeps the active root-to-current scope path as a stack over the
// table arena. Lookups walk the stack from the top.
type Resolver struct {
	table   *Table
	slots   SlotAllocator
	listing *Listing
	stack   []ScopeID
	// offsets mirrors the listing frame layout: one entry per live variable.
	offsets   []int
	argOffset int
}

// NewResolver creates the global scope, installs the prelude and makes the
// global scope current.
func NewResolver(table *Table, opts ResolverOptions) *Resolver {
	r := &Resolver{
		table:   table,
		slots:   opts.Slots,
		listing: opts.Listing,
		stack:   make([]ScopeID, 0, 8),
	}
	r.stack = append(r.stack, table.Scopes.New(ScopeGlobal, NoScopeID))
	for _, entry := range opts.Prelude {
		if _, err := r.Declare(Decl{
			Name:   table.Strings.Intern(entry.Name),
			Kind:   SymbolFunction,
			Type:   entry.Ret,
			Params: entry.Params,
			Flags:  entry.Flags,
		}); err != nil {
			panic(fmt.Errorf("prelude: %w", err))
		}
	}
	return r
}

// Table exposes the underlying arenas.
func (r *Resolver) Table() *Table { return r.table }

// CurrentScope returns the innermost active scope.
func (r *Resolver) CurrentScope() ScopeID {
	if len(r.stack) == 0 {
		return NoScopeID
	}
	return r.stack[len(r.stack)-1]
}

// Depth is the number of active scopes including the global one.
func (r *Resolver) Depth() int { return len(r.stack) }

// Open pushes a new empty child of the current scope.
func (r *Resolver) Open(kind ScopeKind) ScopeID {
	scope := r.table.Scopes.New(kind, r.CurrentScope())
	r.stack = append(r.stack, scope)
	if kind == ScopeFunction {
		r.argOffset = 0
	}
	r.listing.beginScope()
	return scope
}

// Close pops the innermost scope, which must be expected. A mismatch is a
// compiler bug and panics.
func (r *Resolver) Close(expected ScopeID) {
	if len(r.stack) <= 1 {
		panic("symbols: Close without matching Open")
	}
	top := r.stack[len(r.stack)-1]
	if top != expected {
		panic(fmt.Errorf("symbols: closing scope %d but %d is innermost", expected, top))
	}
	scope := r.table.Scopes.Get(top)
	r.offsets = r.offsets[:len(r.offsets)-scope.varCount]
	r.stack = r.stack[:len(r.stack)-1]
	r.listing.endScope()
}

// LookupLocal searches only the innermost scope.
func (r *Resolver) LookupLocal(name source.StringID) SymbolID {
	scope := r.table.Scopes.Get(r.CurrentScope())
	if scope == nil {
		return NoSymbolID
	}
	return scope.NameIndex[name]
}

// Lookup walks from the innermost scope outward and returns the first match.
func (r *Resolver) Lookup(name source.StringID) SymbolID {
	for i := len(r.stack) - 1; i >= 0; i-- {
		if id, ok := r.table.Scopes.Get(r.stack[i]).NameIndex[name]; ok {
			return id
		}
	}
	return NoSymbolID
}

// NearestLoop returns the innermost active loop scope, or NoScopeID.
func (r *Resolver) NearestLoop() ScopeID {
	for i := len(r.stack) - 1; i >= 0; i-- {
		if r.table.Scopes.Get(r.stack[i]).IsLoop() {
			return r.stack[i]
		}
	}
	return NoScopeID
}

// SetLoopLabels records the break and continue targets of a loop scope.
func (r *Resolver) SetLoopLabels(loop ScopeID, exit, cont string) {
	scope := r.table.Scopes.Get(loop)
	if scope == nil || !scope.IsLoop() {
		panic(fmt.Errorf("symbols: scope %d is not a loop", loop))
	}
	scope.ExitLabel = exit
	scope.ContinueLabel = cont
}

// Scope returns the scope record for id.
func (r *Resolver) Scope(id ScopeID) *Scope { return r.table.Scopes.Get(id) }

// Symbol returns the symbol record for id.
func (r *Resolver) Symbol(id SymbolID) *Symbol { return r.table.Symbols.Get(id) }

// Declare installs a symbol into the innermost scope. It fails with
// SemaAlreadyDefined when the name already exists in that scope; outer
// scopes are not consulted. Variables and parameters get a fresh storage slot.
func (r *Resolver) Declare(d Decl) (SymbolID, error) {
	scopeID := r.CurrentScope()
	scope := r.table.Scopes.Get(scopeID)
	if scope == nil {
		panic("symbols: Declare without an active scope")
	}
	if _, exists := scope.NameIndex[d.Name]; exists {
		return NoSymbolID, diag.New(diag.SemaAlreadyDefined, d.Line, d.Span, r.table.Strings.MustLookup(d.Name))
	}

	sym := &Symbol{
		Name:   d.Name,
		Kind:   d.Kind,
		Type:   d.Type,
		Flags:  d.Flags,
		Scope:  scopeID,
		Span:   d.Span,
		Line:   d.Line,
		Params: d.Params,
	}
	if d.Kind != SymbolFunction {
		sym.Params = nil
		sym.Offset = r.nextOffset(d.Kind == SymbolParam)
		r.offsets = append(r.offsets, sym.Offset)
		scope.varCount++
		if r.slots != nil {
			sym.Storage = r.slots.AllocSlot()
		}
	}

	id := r.table.Symbols.New(sym)
	scope.NameIndex[d.Name] = id
	scope.Symbols = append(scope.Symbols, id)
	r.listing.declared(r.table, sym)
	return id, nil
}

// nextOffset numbers parameters -1, -2, ... and locals upward from the
// innermost live local.
func (r *Resolver) nextOffset(param bool) int {
	if param {
		r.argOffset--
		return r.argOffset
	}
	if len(r.offsets) == 0 {
		return 0
	}
	if top := r.offsets[len(r.offsets)-1]; top >= 0 {
		return top + 1
	}
	return 0
}
