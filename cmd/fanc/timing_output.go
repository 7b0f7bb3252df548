package main

import (
	"fmt"
	"io"
	"time"

	"fanc/internal/buildpipeline"
	"fanc/internal/observ"
)

func printStageTimings(out io.Writer, timings buildpipeline.Timings) {
	if timings.Has(buildpipeline.StageCompile) {
		fmt.Fprintf(out, "compiled %.1f ms\n", toMillis(timings.Duration(buildpipeline.StageCompile)))
	}
	if timings.Has(buildpipeline.StageWrite) {
		fmt.Fprintf(out, "wrote %.1f ms\n", toMillis(timings.Duration(buildpipeline.StageWrite)))
	}
}

func printPhaseTimings(out io.Writer, timer *observ.Timer) {
	if timer == nil {
		return
	}
	fmt.Fprint(out, timer.Summary())
}

func toMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
