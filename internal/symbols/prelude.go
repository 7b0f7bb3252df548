package symbols

import (
	"fanc/internal/types"
)

// PreludeEntry describes a function injected into the global scope before
// any source declaration.
type PreludeEntry struct {
	Name   string
	Ret    types.Type
	Params []types.Type
	Flags  SymbolFlags
}

// Builtins returns the functions every FanC program can call.
func Builtins() []PreludeEntry {
	return []PreludeEntry{
		{Name: "print", Ret: types.Void, Params: []types.Type{types.String}, Flags: SymbolFlagBuiltin | SymbolFlagAcceptsString},
		{Name: "printi", Ret: types.Void, Params: []types.Type{types.Int}, Flags: SymbolFlagBuiltin},
	}
}
