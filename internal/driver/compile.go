// Package driver runs one compilation of one source file: load, parse,
// lower to IR and optionally verify, with tracing, timings and an on-disk
// IR cache.
package driver

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"fanc/internal/ast"
	"fanc/internal/backend/llvm"
	"fanc/internal/diag"
	"fanc/internal/lexer"
	"fanc/internal/lower"
	"fanc/internal/observ"
	"fanc/internal/parser"
	"fanc/internal/project"
	"fanc/internal/source"
	"fanc/internal/symbols"
	"fanc/internal/trace"
	"fanc/internal/version"
)

// Options configures a compilation.
type Options struct {
	// Verify parses the produced IR back with the LLVM assembly parser.
	Verify bool
	// Scopes collects the scope listing into Result.Scopes.
	Scopes bool
	// Cache, when set, is consulted before compiling and filled after a
	// successful compilation.
	Cache *DiskCache
}

// Result is a successful compilation.
type Result struct {
	Path   string
	IR     string
	Funcs  int
	Scopes string
	Cached bool
	Timer  *observ.Timer
}

// CompileFile loads path and compiles it. A language error is returned as a
// *diag.Error; load and cache failures are wrapped.
func CompileFile(ctx context.Context, path string, opts Options) (*Result, error) {
	timer := observ.NewTimer()
	fs := source.NewFileSet()
	var id source.FileID
	err := timer.Measure("load", func() error {
		var err error
		id, err = fs.Load(path)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return compile(ctx, fs.Get(id), opts, timer)
}

// CompileSource compiles an in-memory program named name.
func CompileSource(ctx context.Context, name string, content []byte, opts Options) (*Result, error) {
	fs := source.NewFileSet()
	return compile(ctx, fs.Get(fs.AddVirtual(name, content)), opts, observ.NewTimer())
}

func cacheKey(file *source.File, opts Options) project.Digest {
	return project.CacheKey(file.Content, version.Version,
		"verify="+strconv.FormatBool(opts.Verify),
		"scopes="+strconv.FormatBool(opts.Scopes))
}

func compile(ctx context.Context, file *source.File, opts Options, timer *observ.Timer) (*Result, error) {
	ctx, span := trace.StartSpan(ctx, trace.ScopeFile, "file:"+file.Path)
	res, err := compileTraced(ctx, file, opts, timer)
	switch {
	case err != nil:
		span.End("error")
	case res.Cached:
		span.End("cached")
	default:
		span.End("ok")
	}
	return res, err
}

func compileTraced(ctx context.Context, file *source.File, opts Options, timer *observ.Timer) (*Result, error) {
	tracer := trace.FromContext(ctx)
	key := cacheKey(file, opts)
	if opts.Cache != nil {
		var payload DiskPayload
		hit, err := opts.Cache.Get(key, &payload)
		if err != nil {
			// A corrupt entry is rewritten below.
			trace.Point(tracer, trace.ScopeFile, "cache", err.Error(), trace.CurrentSpan(ctx))
		}
		if hit && payload.Path == file.Path {
			return &Result{
				Path:   file.Path,
				IR:     payload.IR,
				Funcs:  payload.Funcs,
				Scopes: payload.Scopes,
				Cached: true,
				Timer:  timer,
			}, nil
		}
	}

	builder := ast.NewBuilder(ast.Hints{}, nil)
	var prog *ast.Program
	err := runPass(ctx, timer, "parse", func(context.Context) error {
		var err error
		prog, err = parser.ParseFile(file, lexer.New(file, lexer.Options{}), builder)
		return err
	})
	if err != nil {
		return nil, err
	}

	var listing *symbols.Listing
	if opts.Scopes {
		listing = symbols.NewListing()
	}
	var lowered *lower.Result
	err = runPass(ctx, timer, "lower", func(ctx context.Context) error {
		var err error
		lowered, err = lower.CompileProgram(builder, prog, lower.Options{
			Listing:     listing,
			Tracer:      trace.FromContext(ctx),
			TraceParent: trace.CurrentSpan(ctx),
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	if opts.Verify {
		err = runPass(ctx, timer, "verify", func(context.Context) error {
			_, err := llvm.Verify(file.Path, lowered.IR)
			return err
		})
		if err != nil {
			return nil, err
		}
	}

	res := &Result{
		Path:  file.Path,
		IR:    lowered.IR,
		Funcs: lowered.Funcs,
		Timer: timer,
	}
	if listing != nil {
		res.Scopes = listing.String()
	}
	if opts.Cache != nil {
		err := opts.Cache.Put(key, &DiskPayload{
			Path:       file.Path,
			SourceHash: project.Digest(file.Hash),
			Version:    version.Version,
			IR:         res.IR,
			Funcs:      res.Funcs,
			Scopes:     res.Scopes,
			Timing:     timer.Report(),
		})
		if err != nil {
			return nil, fmt.Errorf("write cache: %w", err)
		}
	}
	return res, nil
}

// runPass wraps fn in a ScopePass span and a timer phase.
func runPass(ctx context.Context, timer *observ.Timer, name string, fn func(context.Context) error) error {
	ctx, span := trace.StartSpan(ctx, trace.ScopePass, name)
	err := timer.Measure(name, func() error { return fn(ctx) })
	detail := "ok"
	var de *diag.Error
	switch {
	case errors.As(err, &de):
		detail = de.Code.ID()
	case err != nil:
		detail = "error"
	}
	span.End(detail)
	return err
}
