package symbols

import (
	"fanc/internal/source"
	"fanc/internal/types"
)

// SymbolKind classifies how a symbol may be used.
type SymbolKind uint8

const (
	SymbolInvalid SymbolKind = iota
	SymbolVariable
	SymbolParam
	SymbolFunction
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolVariable:
		return "variable"
	case SymbolParam:
		return "param"
	case SymbolFunction:
		return "function"
	default:
		return "invalid"
	}
}

// SymbolFlags encode extra attributes.
type SymbolFlags uint8

const (
	// SymbolFlagBuiltin marks print and printi.
	SymbolFlagBuiltin SymbolFlags = 1 << iota
	// SymbolFlagAcceptsString marks the only call site allowed to take a string argument.
	SymbolFlagAcceptsString
)

// Symbol is immutable after Declare except for Storage, which is set once
// when the slot is allocated.
type Symbol struct {
	Name  source.StringID
	Kind  SymbolKind
	Type  types.Type // variable type, or the return type of a function
	Flags SymbolFlags
	// Params is meaningful only for functions.
	Params []types.Type
	// Storage is the IR location of a variable slot; empty for functions.
	Storage string
	// Offset is the frame offset shown in scope listings.
	Offset int
	Scope  ScopeID
	Span   source.Span
	Line   uint32
}

func (s *Symbol) IsFunction() bool {
	return s.Kind == SymbolFunction
}

func (s *Symbol) IsBuiltin() bool {
	return s.Flags&SymbolFlagBuiltin != 0
}
