package diagfmt

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"fanc/internal/diag"
	"fanc/internal/source"
)

// Short writes the single-line form of a language error:
// `line <n>: <message>`, or the bare message when no line applies.
// It reports false when err is not a *diag.Error.
func Short(w io.Writer, err error) (bool, error) {
	var de *diag.Error
	if !errors.As(err, &de) {
		return false, nil
	}
	_, werr := fmt.Fprintln(w, de.Error())
	return true, werr
}

// FromError wraps a single language error in a Bag so it can go through
// the Pretty and JSON formatters.
func FromError(err *diag.Error) *diag.Bag {
	bag := diag.NewBag(1)
	if err != nil {
		bag.Add(err.Diagnostic())
	}
	return bag
}

func formatPath(f *source.File, mode PathMode) string {
	if f == nil {
		return "<unknown>"
	}
	if mode == PathModeBasename {
		return filepath.Base(f.Path)
	}
	return f.Path
}

// located reports whether d points at real source text. Program-level
// findings such as a missing main carry line 0.
func located(d diag.Diagnostic, fs *source.FileSet) bool {
	return d.Line > 0 && fs != nil && int(d.Primary.File) < fs.Len()
}
