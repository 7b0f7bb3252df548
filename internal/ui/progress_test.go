package ui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"fanc/internal/buildpipeline"
)

func newModel(files ...string) *progressModel {
	return NewProgressModel("fanc build", files, nil).(*progressModel)
}

func send(m *progressModel, file string, stage buildpipeline.Stage, status buildpipeline.Status) {
	m.Update(eventMsg(buildpipeline.Event{File: file, Stage: stage, Status: status}))
}

func TestProgressTracksFiles(t *testing.T) {
	m := newModel("a.fanc", "b.fanc")
	if !strings.Contains(m.View(), "queued") {
		t.Fatalf("initial view:\n%s", m.View())
	}

	send(m, "a.fanc", buildpipeline.StageCompile, buildpipeline.StatusWorking)
	if !strings.Contains(m.View(), "compiling") {
		t.Fatalf("view:\n%s", m.View())
	}
	send(m, "a.fanc", buildpipeline.StageCompile, buildpipeline.StatusDone)
	send(m, "a.fanc", buildpipeline.StageWrite, buildpipeline.StatusDone)
	send(m, "b.fanc", buildpipeline.StageCompile, buildpipeline.StatusError)

	if got := m.percent(); got != 1.0 {
		t.Fatalf("percent = %v", got)
	}
	view := m.View()
	if !strings.Contains(view, "done") || !strings.Contains(view, "error") {
		t.Fatalf("view:\n%s", view)
	}
}

func TestProgressIgnoresUnknownFile(t *testing.T) {
	m := newModel("a.fanc")
	send(m, "zzz.fanc", buildpipeline.StageCompile, buildpipeline.StatusError)
	if m.percent() != 0 {
		t.Fatalf("percent = %v", m.percent())
	}
}

func TestProgressPartial(t *testing.T) {
	m := newModel("a.fanc", "b.fanc")
	send(m, "a.fanc", buildpipeline.StageCompile, buildpipeline.StatusCached)
	if got := m.percent(); got != 0.4 {
		t.Fatalf("percent = %v", got)
	}
}

func TestDoneQuits(t *testing.T) {
	m := newModel("a.fanc")
	_, cmd := m.Update(doneMsg{})
	if !m.done || cmd == nil {
		t.Fatalf("done=%v cmd=%v", m.done, cmd)
	}
	if !strings.Contains(m.View(), "done: fanc build") {
		t.Fatalf("view:\n%s", m.View())
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("abcdefghij", 6); got != "abc..." {
		t.Fatalf("truncate = %q", got)
	}
	if got := truncate("abcdefghij", 3); got != "abc" {
		t.Fatalf("truncate = %q", got)
	}
	if got := truncate("abc", 6); got != "abc" {
		t.Fatalf("truncate = %q", got)
	}
}

func TestProgressShowsFailure(t *testing.T) {
	m := newModel("a.fanc", "b.fanc")
	m.Update(eventMsg(buildpipeline.Event{
		File:    "b.fanc",
		Stage:   buildpipeline.StageCompile,
		Status:  buildpipeline.StatusError,
		Err:     errors.New("line 3: type mismatch"),
		Elapsed: 2 * time.Millisecond,
	}))
	view := m.View()
	for _, want := range []string{"[1/2, 1 failed]", "line 3: type mismatch", "2.0ms"} {
		if !strings.Contains(view, want) {
			t.Fatalf("missing %q in view:\n%s", want, view)
		}
	}
}

func TestNextStateIgnoresUnknownStatus(t *testing.T) {
	if _, ok := nextState(buildpipeline.StageCompile, buildpipeline.Status("paused")); ok {
		t.Fatal("unknown status must not move the row")
	}
	if s, ok := nextState(buildpipeline.StageWrite, buildpipeline.StatusDone); !ok || s != rowDone {
		t.Fatalf("write done = %v, %v", s, ok)
	}
}
