package testkit

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fanc/internal/ast"
	"fanc/internal/diag"
	"fanc/internal/driver"
	"fanc/internal/lexer"
	"fanc/internal/parser"
	"fanc/internal/source"
)

// RunCase compiles c.Input with IR verification on and checks every
// assertion. Programs that parse also go through CheckSpanInvariants.
func RunCase(ctx context.Context, c Case) error {
	name := strings.ReplaceAll(c.Name, " ", "_") + ".fanc"
	if err := checkSpans(name, c.Input); err != nil {
		return fmt.Errorf("span invariants: %w", err)
	}

	opts := driver.Options{Verify: true}
	for _, a := range c.Assertions {
		if a.Type == AssertScopes {
			opts.Scopes = true
		}
	}
	res, err := driver.CompileSource(ctx, name, []byte(c.Input), opts)

	var de *diag.Error
	if err != nil && !errors.As(err, &de) {
		return fmt.Errorf("compile: %w", err)
	}
	for _, a := range c.Assertions {
		switch a.Type {
		case AssertError:
			want := strings.TrimSpace(a.Content)
			if de == nil {
				return fmt.Errorf("line %d: expected error %q, compilation succeeded", a.Line, want)
			}
			if got := de.Error(); got != want {
				return fmt.Errorf("line %d: error = %q, want %q", a.Line, got, want)
			}
		case AssertIRContains, AssertScopes:
			if de != nil {
				return fmt.Errorf("line %d: unexpected error %q", a.Line, de.Error())
			}
			haystack := res.IR
			if a.Type == AssertScopes {
				haystack = res.Scopes
			}
			if err := containsLines(haystack, a.Content); err != nil {
				return fmt.Errorf("line %d: %w", a.Line, err)
			}
		}
	}
	return nil
}

func containsLines(haystack, want string) error {
	for _, line := range strings.Split(want, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !strings.Contains(haystack, line) {
			return fmt.Errorf("output does not contain %q:\n%s", line, haystack)
		}
	}
	return nil
}

func checkSpans(name, input string) error {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual(name, []byte(input)))
	b := ast.NewBuilder(ast.Hints{}, nil)
	prog, err := parser.ParseFile(file, lexer.New(file, lexer.Options{}), b)
	if err != nil {
		return nil
	}
	return CheckSpanInvariants(b, prog, file)
}
