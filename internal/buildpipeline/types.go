package buildpipeline

import "time"

// Stage describes a high-level pipeline phase.
type Stage string

const (
	// StageCompile covers parse, lower and verify of one file.
	StageCompile Stage = "compile"
	// StageWrite is writing the .ll output.
	StageWrite Stage = "write"
)

// Status captures progress state within a stage.
type Status string

const (
	// StatusQueued indicates the task is waiting to start.
	StatusQueued Status = "queued"
	// StatusWorking indicates the task is currently working.
	StatusWorking Status = "working"
	// StatusDone indicates the task is done.
	StatusDone Status = "done"
	// StatusCached indicates the output came from the IR cache.
	StatusCached Status = "cached"
	// StatusError indicates the task encountered an error.
	StatusError Status = "error"
)

// Event reports progress for a file (or for the overall build when File is empty).
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// ProgressSink consumes progress events. Build calls OnEvent from several
// goroutines.
type ProgressSink interface {
	OnEvent(Event)
}

// Timings sums stage durations over every file of a build. Files compile
// in parallel, so the sums can exceed the wall time of the build.
type Timings struct {
	total [len(stageOrder)]time.Duration
	seen  [len(stageOrder)]bool
}

var stageOrder = [...]Stage{StageCompile, StageWrite}

func stageSlot(stage Stage) int {
	for i, s := range stageOrder {
		if s == stage {
			return i
		}
	}
	return -1
}

// Add accumulates dur for stage. Unknown stages are ignored.
func (t *Timings) Add(stage Stage, dur time.Duration) {
	i := stageSlot(stage)
	if t == nil || i < 0 {
		return
	}
	t.total[i] += dur
	t.seen[i] = true
}

// Has reports whether any duration was recorded for stage.
func (t Timings) Has(stage Stage) bool {
	i := stageSlot(stage)
	return i >= 0 && t.seen[i]
}

// Duration returns the summed duration for stage.
func (t Timings) Duration(stage Stage) time.Duration {
	if i := stageSlot(stage); i >= 0 {
		return t.total[i]
	}
	return 0
}
