package trace

import (
	"strconv"
	"sync"
	"time"
)

// Heartbeat emits a driver-scoped "heartbeat" point every interval so a
// stuck build shows up in a stream trace as ticks without span ends.
type Heartbeat struct {
	tracer Tracer
	ticker *time.Ticker
	done   chan struct{}
	exited chan struct{}
	once   sync.Once
}

// StartHeartbeat returns nil when tracing is off or interval is not positive.
func StartHeartbeat(tracer Tracer, interval time.Duration) *Heartbeat {
	if tracer == nil || !tracer.Enabled() || interval <= 0 {
		return nil
	}
	h := &Heartbeat{
		tracer: tracer,
		ticker: time.NewTicker(interval),
		done:   make(chan struct{}),
		exited: make(chan struct{}),
	}
	go h.loop()
	return h
}

func (h *Heartbeat) loop() {
	defer close(h.exited)
	for beat := 1; ; beat++ {
		select {
		case <-h.done:
			return
		case now := <-h.ticker.C:
			h.tracer.Emit(&Event{
				Time:   now,
				Seq:    NextSeq(),
				Kind:   KindHeartbeat,
				Scope:  ScopeDriver,
				GID:    goroutineID(),
				Name:   "heartbeat",
				Detail: "#" + strconv.Itoa(beat),
			})
		}
	}
}

// Stop ends the ticker goroutine and waits for it. Safe on nil and safe to
// call more than once.
func (h *Heartbeat) Stop() {
	if h == nil {
		return
	}
	h.once.Do(func() {
		h.ticker.Stop()
		close(h.done)
	})
	<-h.exited
}
