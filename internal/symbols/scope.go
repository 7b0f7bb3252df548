package symbols

import (
	"fanc/internal/source"
)

// ScopeKind enumerates supported scope categories.
type ScopeKind uint8

const (
	ScopeInvalid  ScopeKind = iota
	ScopeGlobal             // function signatures and built-ins
	ScopeFunction           // parameters and top-level body statements
	ScopeBlock              // nested block, if condition, else branch
	ScopeLoop               // while body; target of break/continue
)

func (k ScopeKind) String() string {
	switch k {
	case ScopeGlobal:
		return "global"
	case ScopeFunction:
		return "function"
	case ScopeBlock:
		return "block"
	case ScopeLoop:
		return "loop"
	default:
		return "invalid"
	}
}

// Scope is one lexical scope. Parent is an index into the same arena.
type Scope struct {
	Kind      ScopeKind
	Parent    ScopeID
	NameIndex map[source.StringID]SymbolID
	Symbols   []SymbolID
	Children  []ScopeID
	// ExitLabel and ContinueLabel are set only on loop scopes.
	ExitLabel     string
	ContinueLabel string
	// varCount is how many listing offsets this scope pushed.
	varCount int
}

// IsLoop reports whether break/continue may target this scope.
func (s *Scope) IsLoop() bool {
	return s.Kind == ScopeLoop
}
