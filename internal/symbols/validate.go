package symbols

import (
	"errors"
	"fmt"
	"slices"

	"fortio.org/safecast"
)

// Validate walks the arenas checking structural invariants and aggregates
// every issue found.
func (t *Table) Validate() error {
	var errs []error

	for idx := 1; idx < len(t.Scopes.data); idx++ {
		value, err := safecast.Conv[uint32](idx)
		if err != nil {
			errs = append(errs, fmt.Errorf("scope index overflow: %w", err))
			continue
		}
		scopeID := ScopeID(value)
		scope := &t.Scopes.data[idx]
		if scope.Kind == ScopeInvalid {
			errs = append(errs, fmt.Errorf("scope %d has invalid kind", scopeID))
		}
		if scope.Parent.IsValid() {
			parent := t.Scopes.Get(scope.Parent)
			if parent == nil || scope.Parent >= scopeID {
				errs = append(errs, fmt.Errorf("scope %d has invalid parent %d", scopeID, scope.Parent))
			} else if !slices.Contains(parent.Children, scopeID) {
				errs = append(errs, fmt.Errorf("scope %d parent %d missing backlink", scopeID, scope.Parent))
			}
		} else if scope.Kind != ScopeGlobal {
			errs = append(errs, fmt.Errorf("scope %d (%s) has no parent", scopeID, scope.Kind))
		}
		if scope.Kind != ScopeLoop && (scope.ExitLabel != "" || scope.ContinueLabel != "") {
			errs = append(errs, fmt.Errorf("scope %d carries loop labels but is %s", scopeID, scope.Kind))
		}
		for name, symID := range scope.NameIndex {
			sym := t.Symbols.Get(symID)
			if sym == nil {
				errs = append(errs, fmt.Errorf("scope %d indexes missing symbol %d", scopeID, symID))
				continue
			}
			if sym.Name != name || sym.Scope != scopeID {
				errs = append(errs, fmt.Errorf("symbol %d is indexed by scope %d but belongs to %d", symID, scopeID, sym.Scope))
			}
		}
	}

	for idx := 1; idx < len(t.Symbols.data); idx++ {
		sym := &t.Symbols.data[idx]
		switch sym.Kind {
		case SymbolFunction:
			if sym.Storage != "" {
				errs = append(errs, fmt.Errorf("function symbol %d has storage %q", idx, sym.Storage))
			}
		case SymbolVariable, SymbolParam:
			if len(sym.Params) != 0 {
				errs = append(errs, fmt.Errorf("variable symbol %d has parameters", idx))
			}
		default:
			errs = append(errs, fmt.Errorf("symbol %d has invalid kind", idx))
		}
	}

	return errors.Join(errs...)
}
