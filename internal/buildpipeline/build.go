// Package buildpipeline compiles several source files concurrently and
// writes one .ll file per source.
package buildpipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"fanc/internal/diag"
	"fanc/internal/driver"
	"fanc/internal/observ"
)

// Request configures a build.
type Request struct {
	Files []string
	// OutDir receives the .ll files; empty writes each next to its source.
	OutDir string
	// NoWrite keeps the IR in memory only (for `-o -`).
	NoWrite bool
	// Jobs bounds concurrent compilations; 0 means GOMAXPROCS.
	Jobs     int
	Options  driver.Options
	Progress ProgressSink
}

// FileResult is the outcome for one source file. Err holds the language
// error, if any; infrastructure failures abort the whole build instead.
type FileResult struct {
	Path    string
	Output  string
	Compile *driver.Result
	Err     *diag.Error
}

// Result lists files in request order.
type Result struct {
	Files   []FileResult
	Timer   *observ.Timer
	Timings Timings
}

// Failed reports how many files had a language error.
func (r *Result) Failed() int {
	n := 0
	for i := range r.Files {
		if r.Files[i].Err != nil {
			n++
		}
	}
	return n
}

// OutputPath returns where the IR for src is written.
func OutputPath(src, outDir string) string {
	base := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src)) + ".ll"
	if outDir == "" {
		return filepath.Join(filepath.Dir(src), base)
	}
	return filepath.Join(outDir, base)
}

// Build compiles every file in req. Each compilation owns its own arenas,
// symbol table and IR buffer, so files are independent and run in parallel.
func Build(ctx context.Context, req *Request) (*Result, error) {
	if req == nil {
		return nil, fmt.Errorf("missing build request")
	}
	if len(req.Files) == 0 {
		return nil, fmt.Errorf("no source files")
	}
	if err := checkOutputCollisions(req); err != nil {
		return nil, err
	}
	if req.OutDir != "" && !req.NoWrite {
		if err := os.MkdirAll(req.OutDir, 0o750); err != nil {
			return nil, fmt.Errorf("failed to create output dir: %w", err)
		}
	}

	for _, f := range req.Files {
		emit(req.Progress, f, StageCompile, StatusQueued, nil, 0)
	}

	jobs := req.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	results := make([]FileResult, len(req.Files))
	compileDur := make([]time.Duration, len(req.Files))
	writeDur := make([]time.Duration, len(req.Files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range req.Files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fr, cd, wd, err := buildOne(gctx, req, path)
			results[i], compileDur[i], writeDur[i] = fr, cd, wd
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &Result{Files: results, Timer: observ.NewTimer()}
	for i := range results {
		if c := results[i].Compile; c != nil {
			res.Timer.Merge(filepath.Base(results[i].Path)+"/", c.Timer)
		}
		res.Timings.Add(StageCompile, compileDur[i])
		if results[i].Output != "" {
			res.Timings.Add(StageWrite, writeDur[i])
		}
	}
	return res, nil
}

func buildOne(ctx context.Context, req *Request, path string) (FileResult, time.Duration, time.Duration, error) {
	fr := FileResult{Path: path}
	start := time.Now()
	emit(req.Progress, path, StageCompile, StatusWorking, nil, 0)

	compiled, err := driver.CompileFile(ctx, path, req.Options)
	compileDur := time.Since(start)
	var de *diag.Error
	switch {
	case errors.As(err, &de):
		fr.Err = de
		emit(req.Progress, path, StageCompile, StatusError, de, compileDur)
		return fr, compileDur, 0, nil
	case err != nil:
		emit(req.Progress, path, StageCompile, StatusError, err, compileDur)
		return fr, compileDur, 0, err
	}
	fr.Compile = compiled
	status := StatusDone
	if compiled.Cached {
		status = StatusCached
	}
	emit(req.Progress, path, StageCompile, status, nil, compileDur)

	if req.NoWrite {
		return fr, compileDur, 0, nil
	}
	start = time.Now()
	emit(req.Progress, path, StageWrite, StatusWorking, nil, 0)
	fr.Output = OutputPath(path, req.OutDir)
	if err := os.WriteFile(fr.Output, []byte(compiled.IR), 0o600); err != nil {
		err = fmt.Errorf("failed to write %q: %w", fr.Output, err)
		emit(req.Progress, path, StageWrite, StatusError, err, time.Since(start))
		return fr, compileDur, time.Since(start), err
	}
	writeDur := time.Since(start)
	emit(req.Progress, path, StageWrite, StatusDone, nil, writeDur)
	return fr, compileDur, writeDur, nil
}

// checkOutputCollisions rejects two sources that would write the same .ll.
func checkOutputCollisions(req *Request) error {
	if req.NoWrite {
		return nil
	}
	seen := make(map[string]string, len(req.Files))
	for _, f := range req.Files {
		out := OutputPath(f, req.OutDir)
		if prev, dup := seen[out]; dup {
			return fmt.Errorf("%s and %s both write %s", prev, f, out)
		}
		seen[out] = f
	}
	return nil
}
