package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"fanc/internal/diag"
	"fanc/internal/source"
)

type palette struct {
	sev, code, loc, gutter, caret *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		sev:    color.New(color.FgRed, color.Bold),
		code:   color.New(color.FgYellow),
		loc:    color.New(color.Bold),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgRed, color.Bold),
	}
	for _, c := range []*color.Color{p.sev, p.code, p.loc, p.gutter, p.caret} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Pretty formats diagnostics for humans. For each item it prints
//
//	<path>:<line>:<col>: <sev> <CODE>: <message>
//
// followed by the source line and a ^~~~ underline of the primary span.
// Program-level diagnostics print only the header without a location.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) error {
	p := newPalette(opts.Color)
	for _, d := range bag.Items() {
		if err := prettyOne(w, d, fs, opts, p); err != nil {
			return err
		}
	}
	return nil
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, p palette) error {
	sev := strings.ToLower(d.Severity.String())
	if !located(d, fs) {
		_, err := fmt.Fprintf(w, "%s %s: %s\n", p.sev.Sprint(sev), p.code.Sprint(d.Code.ID()), d.Message)
		return err
	}

	f := fs.Get(d.Primary.File)
	start, end := fs.Resolve(d.Primary)
	if _, err := fmt.Fprintf(w, "%s: %s %s: %s\n",
		p.loc.Sprintf("%s:%d:%d", formatPath(f, opts.PathMode), start.Line, start.Col),
		p.sev.Sprint(sev), p.code.Sprint(d.Code.ID()), d.Message); err != nil {
		return err
	}

	first := start.Line
	if opts.Context > 0 && uint32(opts.Context) < first {
		first -= uint32(opts.Context)
	} else if opts.Context > 0 {
		first = 1
	}
	width := len(fmt.Sprint(start.Line))
	for ln := first; ln <= start.Line; ln++ {
		gutter := p.gutter.Sprintf("%*d |", width, ln)
		if _, err := fmt.Fprintf(w, "%s %s\n", gutter, f.GetLine(ln)); err != nil {
			return err
		}
	}

	line := f.GetLine(start.Line)
	col := int(start.Col) - 1
	col = min(max(col, 0), len(line))
	stop := len(line)
	if end.Line == start.Line {
		stop = min(max(int(end.Col)-1, col+1), len(line))
	}
	pad := indentFor(line[:col])
	span := runewidth.StringWidth(line[col:max(stop, col)])
	underline := "^"
	if span > 1 {
		underline += strings.Repeat("~", span-1)
	}
	_, err := fmt.Fprintf(w, "%s %s%s\n", p.gutter.Sprintf("%*s |", width, ""), pad, p.caret.Sprint(underline))
	return err
}

// indentFor returns whitespace as wide as prefix on a terminal. Tabs are
// kept so the underline lines up with tab-indented source.
func indentFor(prefix string) string {
	var b strings.Builder
	for _, r := range prefix {
		if r == '\t' {
			b.WriteByte('\t')
			continue
		}
		b.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	return b.String()
}
