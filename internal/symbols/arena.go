package symbols

import (
	"cmp"
	"fmt"

	"fortio.org/safecast"

	"fanc/internal/source"
)

// ScopeID indexes the scope arena. Zero is never allocated.
type ScopeID uint32

// SymbolID indexes the symbol arena. Zero is never allocated.
type SymbolID uint32

const (
	NoScopeID  ScopeID  = 0
	NoSymbolID SymbolID = 0
)

func (id ScopeID) IsValid() bool  { return id != NoScopeID }
func (id SymbolID) IsValid() bool { return id != NoSymbolID }

// arena is a slice addressed by 1-based IDs; slot 0 stays empty so the
// zero ID of every kind means "none".
type arena[ID ~uint32, T any] struct {
	data []T
}

func newArena[ID ~uint32, T any](capacity uint32) arena[ID, T] {
	return arena[ID, T]{data: make([]T, 1, capacity+1)}
}

func (a *arena[ID, T]) push(v T, what string) ID {
	n, err := safecast.Conv[uint32](len(a.data))
	if err != nil {
		panic(fmt.Errorf("%s arena overflow: %w", what, err))
	}
	a.data = append(a.data, v)
	return ID(n)
}

func (a *arena[ID, T]) at(id ID) *T {
	if id == 0 || int(id) >= len(a.data) {
		return nil
	}
	return &a.data[id]
}

func (a *arena[ID, T]) count() int { return len(a.data) - 1 }

// Scopes owns every scope opened during one compilation. Closed scopes stay
// in the arena so the listing and tests can still inspect them.
type Scopes struct {
	arena[ScopeID, Scope]
}

func NewScopes(capacity uint32) *Scopes {
	return &Scopes{newArena[ScopeID, Scope](cmp.Or(capacity, 32))}
}

// New allocates a scope under parent.
func (s *Scopes) New(kind ScopeKind, parent ScopeID) ScopeID {
	id := s.push(Scope{
		Kind:      kind,
		Parent:    parent,
		NameIndex: make(map[source.StringID]SymbolID),
	}, "scope")
	if p := s.at(parent); p != nil {
		p.Children = append(p.Children, id)
	}
	return id
}

// Get returns nil for an unknown ID.
func (s *Scopes) Get(id ScopeID) *Scope { return s.at(id) }

func (s *Scopes) Len() int { return s.count() }

// Symbols owns every declared symbol.
type Symbols struct {
	arena[SymbolID, Symbol]
}

func NewSymbols(capacity uint32) *Symbols {
	return &Symbols{newArena[SymbolID, Symbol](cmp.Or(capacity, 64))}
}

func (s *Symbols) New(sym *Symbol) SymbolID {
	if sym == nil {
		panic("symbols: nil symbol")
	}
	return s.push(*sym, "symbol")
}

func (s *Symbols) Get(id SymbolID) *Symbol { return s.at(id) }

func (s *Symbols) Len() int { return s.count() }
