package symbols

import (
	"errors"
	"fmt"
	"testing"

	"fanc/internal/diag"
	"fanc/internal/types"
)

type countingSlots struct{ n int }

func (c *countingSlots) AllocSlot() string {
	c.n++
	return fmt.Sprintf("%%slot%d", c.n)
}

func newTestResolver(listing *Listing) (*Resolver, *countingSlots) {
	slots := &countingSlots{}
	table := NewTable(Hints{}, nil)
	return NewResolver(table, ResolverOptions{Prelude: Builtins(), Slots: slots, Listing: listing}), slots
}

func declareVar(t *testing.T, r *Resolver, name string, typ types.Type) SymbolID {
	t.Helper()
	id, err := r.Declare(Decl{Name: r.Table().Strings.Intern(name), Kind: SymbolVariable, Type: typ, Line: 1})
	if err != nil {
		t.Fatalf("declare %s: %v", name, err)
	}
	return id
}

func TestBuiltinsInGlobalScope(t *testing.T) {
	r, slots := newTestResolver(nil)
	id := r.Lookup(r.Table().Strings.Intern("print"))
	sym := r.Symbol(id)
	if sym == nil || !sym.IsFunction() || !sym.IsBuiltin() || sym.Params[0] != types.String {
		t.Fatalf("print not installed correctly: %+v", sym)
	}
	if sym.Storage != "" || slots.n != 0 {
		t.Fatalf("functions must not get storage")
	}
	if !r.Lookup(r.Table().Strings.Intern("printi")).IsValid() {
		t.Fatalf("printi missing")
	}
}

func TestDeclareSameScopeFails(t *testing.T) {
	r, _ := newTestResolver(nil)
	fn := r.Open(ScopeFunction)
	declareVar(t, r, "x", types.Int)

	_, err := r.Declare(Decl{Name: r.Table().Strings.Intern("x"), Kind: SymbolVariable, Type: types.Byte, Line: 7})
	var de *diag.Error
	if !errors.As(err, &de) || de.Code != diag.SemaAlreadyDefined {
		t.Fatalf("expected AlreadyDefined, got %v", err)
	}
	if de.Error() != "line 7: symbol x is already defined" {
		t.Fatalf("message %q", de.Error())
	}
	r.Close(fn)
}

func TestShadowingInNestedScope(t *testing.T) {
	r, slots := newTestResolver(nil)
	fn := r.Open(ScopeFunction)
	outer := declareVar(t, r, "x", types.Int)

	block := r.Open(ScopeBlock)
	inner := declareVar(t, r, "x", types.Bool)
	name := r.Table().Strings.Intern("x")
	if got := r.Lookup(name); got != inner {
		t.Fatalf("lookup should find the inner symbol")
	}
	if r.Symbol(inner).Storage == r.Symbol(outer).Storage {
		t.Fatalf("each declaration needs its own slot")
	}
	r.Close(block)

	if got := r.Lookup(name); got != outer {
		t.Fatalf("after close lookup should find the outer symbol")
	}
	r.Close(fn)
	if r.Lookup(name).IsValid() {
		t.Fatalf("x must not be visible from the global scope")
	}
	if slots.n != 2 {
		t.Fatalf("expected 2 slots, got %d", slots.n)
	}
	if err := r.Table().Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestNearestLoop(t *testing.T) {
	r, _ := newTestResolver(nil)
	fn := r.Open(ScopeFunction)
	if r.NearestLoop().IsValid() {
		t.Fatalf("no loop expected")
	}
	outer := r.Open(ScopeLoop)
	r.SetLoopLabels(outer, "%label_2", "%label_0")
	inner := r.Open(ScopeLoop)
	r.SetLoopLabels(inner, "%label_5", "%label_3")
	block := r.Open(ScopeBlock)

	if got := r.NearestLoop(); got != inner {
		t.Fatalf("innermost loop should win, got %d", got)
	}
	if r.Scope(r.NearestLoop()).ExitLabel != "%label_5" {
		t.Fatalf("wrong exit label")
	}
	r.Close(block)
	r.Close(inner)
	if got := r.NearestLoop(); got != outer || r.Scope(got).ContinueLabel != "%label_0" {
		t.Fatalf("outer loop expected after closing inner")
	}
	r.Close(outer)
	r.Close(fn)
	if err := r.Table().Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestCloseMismatchPanics(t *testing.T) {
	r, _ := newTestResolver(nil)
	fn := r.Open(ScopeFunction)
	r.Open(ScopeBlock)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	r.Close(fn)
}

func TestListingOffsets(t *testing.T) {
	listing := NewListing()
	r, _ := newTestResolver(listing)
	intern := r.Table().Strings.Intern
	if _, err := r.Declare(Decl{Name: intern("main"), Kind: SymbolFunction, Type: types.Void}); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Declare(Decl{Name: intern("f"), Kind: SymbolFunction, Type: types.Int, Params: []types.Type{types.Int, types.Byte}}); err != nil {
		t.Fatal(err)
	}

	fn := r.Open(ScopeFunction)
	for _, p := range []string{"a", "b"} {
		if _, err := r.Declare(Decl{Name: intern(p), Kind: SymbolParam, Type: types.Int}); err != nil {
			t.Fatal(err)
		}
	}
	declareVar(t, r, "x", types.Int)
	block := r.Open(ScopeBlock)
	declareVar(t, r, "y", types.Bool)
	r.Close(block)
	declareVar(t, r, "z", types.Byte)
	r.Close(fn)

	want := `---begin global scope---
print (string) -> void
printi (int) -> void
main () -> void
f (int,byte) -> int
  ---begin scope---
  a int -1
  b int -2
  x int 0
    ---begin scope---
    y bool 1
    ---end scope---
  z byte 1
  ---end scope---
---end global scope---
`
	if got := listing.String(); got != want {
		t.Fatalf("listing mismatch:\n%s\nwant:\n%s", got, want)
	}
}
