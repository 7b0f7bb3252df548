package sema

import (
	"fanc/internal/diag"
	"fanc/internal/symbols"
	"fanc/internal/types"
)

// Identifier checks a variable reference. sym is nil when the name did not resolve.
func Identifier(sym *symbols.Symbol, name string, at Site) (types.Type, error) {
	if sym == nil {
		return types.Invalid, at.fail(diag.SemaUndefinedVariable, name)
	}
	if sym.IsFunction() {
		return types.Invalid, at.fail(diag.SemaUsedAsVariableButIsFunction, name)
	}
	return sym.Type, nil
}

// Callee checks the target of a call. sym is nil when the name did not resolve.
func Callee(sym *symbols.Symbol, name string, at Site) error {
	if sym == nil {
		return at.fail(diag.SemaUndefinedFunction, name)
	}
	if !sym.IsFunction() {
		return at.fail(diag.SemaUsedAsFunctionButIsVariable, name)
	}
	return nil
}

// ArgCount is checked before any argument is evaluated.
func ArgCount(callee *symbols.Symbol, name string, got int, at Site) error {
	if got != len(callee.Params) {
		return prototype(callee, name, at)
	}
	return nil
}

// Argument checks argument i against the callee prototype. BYTE widens to
// INT; STRING matches only a STRING parameter of a function flagged to
// accept strings.
func Argument(callee *symbols.Symbol, name string, i int, arg types.Type, at Site) error {
	param := callee.Params[i]
	if arg == types.String || param == types.String {
		if arg == param && callee.Flags&symbols.SymbolFlagAcceptsString != 0 {
			return nil
		}
		return prototype(callee, name, at)
	}
	if !arg.AssignableTo(param) {
		return prototype(callee, name, at)
	}
	return nil
}

func prototype(callee *symbols.Symbol, name string, at Site) error {
	params := make([]string, 0, len(callee.Params))
	for _, p := range callee.Params {
		params = append(params, p.String())
	}
	return diag.Prototype(at.Line, at.Span, name, params)
}

// Assignable checks an assignment or initialized declaration.
func Assignable(dst, src types.Type, at Site) error {
	if !dst.IsValue() || !src.AssignableTo(dst) {
		return at.mismatch()
	}
	return nil
}

// Condition requires a BOOL condition for if and while.
func Condition(t types.Type, at Site) error {
	if t != types.Bool {
		return at.mismatch()
	}
	return nil
}

// Return checks a return statement; got is types.Void for a bare return.
func Return(fnRet, got types.Type, at Site) error {
	if got == fnRet || (got == types.Byte && fnRet == types.Int) {
		return nil
	}
	return at.mismatch()
}

// Main checks that the program declares a niladic void main. sym is nil when
// main is not declared.
func Main(sym *symbols.Symbol) error {
	if sym == nil || !sym.IsFunction() || sym.Type != types.Void || len(sym.Params) != 0 {
		return diag.MainMissing()
	}
	return nil
}
