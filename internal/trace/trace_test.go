package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/nalgeon/be"
)

func TestLevelFiltersScopes(t *testing.T) {
	be.True(t, LevelPhase.ShouldEmit(ScopePass))
	be.True(t, !LevelPhase.ShouldEmit(ScopeFile))
	be.True(t, LevelDetail.ShouldEmit(ScopeFile))
	be.True(t, !LevelDetail.ShouldEmit(ScopeNode))
	be.True(t, LevelDebug.ShouldEmit(ScopeNode))
	be.True(t, !LevelOff.ShouldEmit(ScopeDriver))

	lvl, err := ParseLevel("DETAIL")
	be.Err(t, err, nil)
	be.Equal(t, lvl, LevelDetail)
	_, err = ParseLevel("loud")
	be.Err(t, err, "invalid trace level")
}

func TestStreamNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr, err := New(Config{Level: LevelPhase, Mode: ModeStream, Format: FormatNDJSON, Output: &buf})
	be.Err(t, err, nil)

	ctx := WithTracer(context.Background(), tr)
	ctx, build := StartSpan(ctx, ScopeDriver, "build")
	_, lower := StartSpan(ctx, ScopePass, "lower")
	lower.WithExtra("funcs", "2").End("")
	_, file := StartSpan(ctx, ScopeFile, "file:a.fanc") // filtered at phase level
	file.End("")
	build.End("ok")
	be.Err(t, tr.Close(), nil)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	be.Equal(t, len(lines), 4)
	var ev struct {
		Kind     string            `json:"kind"`
		Name     string            `json:"name"`
		ParentID uint64            `json:"parent_id"`
		Extra    map[string]string `json:"extra"`
	}
	be.Err(t, json.Unmarshal([]byte(lines[2]), &ev), nil)
	be.Equal(t, ev.Kind, "end")
	be.Equal(t, ev.Name, "lower")
	be.Equal(t, ev.ParentID, build.ID())
	be.Equal(t, ev.Extra["funcs"], "2")
}

func TestRingKeepsLatest(t *testing.T) {
	r := NewRingTracer(3, LevelDebug)
	for _, name := range []string{"a", "b", "c", "d"} {
		Point(r, ScopeNode, name, "", 0)
	}
	snap := r.Snapshot()
	be.Equal(t, len(snap), 3)
	be.Equal(t, snap[0].Name, "b")
	be.Equal(t, snap[2].Name, "d")

	var buf bytes.Buffer
	be.Err(t, r.Dump(&buf, FormatText), nil)
	be.True(t, strings.Contains(buf.String(), "• d"))
}

func TestRingAtErrorLevelRecordsSpans(t *testing.T) {
	tr, err := New(Config{Level: LevelError, Mode: ModeRing})
	be.Err(t, err, nil)
	Begin(tr, ScopeFile, "file:x.fanc", 0).End("")
	ring := Ring(tr)
	be.True(t, ring != nil)
	be.Equal(t, len(ring.Snapshot()), 2)
}

func TestOffIsNop(t *testing.T) {
	tr, err := New(Config{Level: LevelOff})
	be.Err(t, err, nil)
	be.True(t, !tr.Enabled())
	span := Begin(tr, ScopeDriver, "x", 0)
	be.Equal(t, span.ID(), uint64(0))
	be.Equal(t, FromContext(context.Background()), Nop)
}

func TestTextFormatSortsExtra(t *testing.T) {
	out := string(FormatEvent(&Event{
		Kind:  KindSpanEnd,
		Scope: ScopePass,
		Name:  "verify",
		Extra: map[string]string{"z": "1", "a": "2"},
	}, FormatText))
	be.True(t, strings.HasSuffix(out, "  ← verify {a=2, z=1}\n"))
}

func TestHeartbeat(t *testing.T) {
	be.True(t, StartHeartbeat(Nop, time.Millisecond) == nil)
	be.True(t, StartHeartbeat(NewRingTracer(8, LevelPhase), 0) == nil)

	ring := NewRingTracer(64, LevelPhase)
	h := StartHeartbeat(ring, time.Millisecond)
	deadline := time.Now().Add(5 * time.Second)
	for len(ring.Snapshot()) < 2 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	h.Stop()
	h.Stop()

	events := ring.Snapshot()
	be.True(t, len(events) >= 2)
	be.Equal(t, events[0].Kind, KindHeartbeat)
	be.Equal(t, events[0].Detail, "#1")
	be.Equal(t, events[1].Detail, "#2")

	var nilBeat *Heartbeat
	nilBeat.Stop()
}
