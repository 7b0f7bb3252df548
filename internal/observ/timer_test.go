package observ

import (
	"errors"
	"strings"
	"testing"

	"github.com/nalgeon/be"
)

func TestTimerPhases(t *testing.T) {
	tm := NewTimer()
	idx := tm.Begin("lex")
	tm.End(idx, "12 tokens")
	err := tm.Measure("lower", func() error { return errors.New("boom") })
	be.Err(t, err, "boom")
	tm.End(99, "ignored")

	report := tm.Report()
	be.Equal(t, len(report.Phases), 2)
	be.Equal(t, report.Phases[0].Note, "12 tokens")
	be.Equal(t, report.Phases[1].Note, "failed")

	sum := tm.Summary()
	be.True(t, strings.HasPrefix(sum, "timings:\n  lex"))
	be.True(t, strings.Contains(sum, "total"))
}

func TestTimerMerge(t *testing.T) {
	file := NewTimer()
	file.End(file.Begin("parse"), "")
	all := NewTimer()
	all.Merge("a.fanc/", file)
	all.Merge("b.fanc/", nil)
	be.Equal(t, all.Report().Phases[0].Name, "a.fanc/parse")
}
