package diag

import (
	"cmp"
	"slices"
)

// Bag collects diagnostics up to a fixed limit. The compiler proper stops
// at the first error; tools such as `fanc tokenize` keep going and fill a
// Bag instead.
type Bag struct {
	items   []Diagnostic
	max     int
	dropped int
}

func NewBag(maxItems int) *Bag {
	return &Bag{
		items: make([]Diagnostic, 0, max(maxItems, 0)),
		max:   maxItems,
	}
}

// Add stores d unless the limit is reached, in which case it only counts it.
func (b *Bag) Add(d Diagnostic) bool {
	if len(b.items) >= b.max {
		b.dropped++
		return false
	}
	b.items = append(b.items, d)
	return true
}

// HasErrors reports whether any stored diagnostic is an error.
func (b *Bag) HasErrors() bool {
	return slices.ContainsFunc(b.items, func(d Diagnostic) bool {
		return d.Severity >= SevError
	})
}

func (b *Bag) Len() int {
	return len(b.items)
}

// Dropped is the number of diagnostics rejected by the limit.
func (b *Bag) Dropped() int {
	return b.dropped
}

// Items returns the internal slice; do not modify it.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Sort orders diagnostics by file, line, start offset, then code.
func (b *Bag) Sort() {
	slices.SortStableFunc(b.items, func(x, y Diagnostic) int {
		return cmp.Or(
			cmp.Compare(x.Primary.File, y.Primary.File),
			cmp.Compare(x.Line, y.Line),
			cmp.Compare(x.Primary.Start, y.Primary.Start),
			cmp.Compare(x.Code, y.Code),
		)
	})
}
