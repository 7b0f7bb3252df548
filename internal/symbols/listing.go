package symbols

import (
	"strconv"
	"strings"
)

// Listing renders the scope-listing debug report: functions in the global
// section, then every opened scope with its variables and frame offsets.
// A nil *Listing ignores all calls.
type Listing struct {
	globals strings.Builder
	body    strings.Builder
	indent  int
}

func NewListing() *Listing {
	return &Listing{}
}

func (l *Listing) pad() string {
	return strings.Repeat("  ", l.indent)
}

func (l *Listing) beginScope() {
	if l == nil {
		return
	}
	l.indent++
	l.body.WriteString(l.pad() + "---begin scope---\n")
}

func (l *Listing) endScope() {
	if l == nil {
		return
	}
	l.body.WriteString(l.pad() + "---end scope---\n")
	l.indent--
}

func (l *Listing) declared(t *Table, sym *Symbol) {
	if l == nil {
		return
	}
	name := t.Strings.MustLookup(sym.Name)
	if sym.IsFunction() {
		params := make([]string, 0, len(sym.Params))
		for _, p := range sym.Params {
			params = append(params, p.String())
		}
		l.globals.WriteString(name + " (" + strings.Join(params, ",") + ") -> " + sym.Type.String() + "\n")
		return
	}
	l.body.WriteString(l.pad() + name + " " + sym.Type.String() + " " + strconv.Itoa(sym.Offset) + "\n")
}

// String returns the complete report.
func (l *Listing) String() string {
	if l == nil {
		return ""
	}
	return "---begin global scope---\n" + l.globals.String() + l.body.String() + "---end global scope---\n"
}
