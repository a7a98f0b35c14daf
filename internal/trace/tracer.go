// Package trace records traversal events: pass boundaries, dedup skips,
// yields and driver progress points. Drivers hold a Tracer and emit; a nop
// tracer makes tracing free when disabled.
package trace

import (
	"bufio"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"
)

// Tracer is the main interface for emitting traversal trace events.
type Tracer interface {
	// Emit records a trace event. Must be goroutine-safe.
	Emit(ev *Event)

	// Flush ensures all buffered events are written.
	Flush() error

	// Level returns the current tracing level.
	Level() Level

	// Enabled returns true if tracing is active (Level > LevelOff).
	Enabled() bool
}

// nopTracer is a no-op implementation for zero overhead when tracing is
// disabled.
type nopTracer struct{}

// Emit does nothing.
func (nopTracer) Emit(*Event) {}

// Flush does nothing.
func (nopTracer) Flush() error { return nil }

// Level returns LevelOff.
func (nopTracer) Level() Level { return LevelOff }

// Enabled always returns false.
func (nopTracer) Enabled() bool { return false }

// Nop is the package-level singleton nop tracer.
var Nop Tracer = nopTracer{}

// streamTracer writes events as text lines.
type streamTracer struct {
	mu    sync.Mutex
	w     *bufio.Writer
	seq   atomic.Uint64
	level Level
}

// NewStream returns a Tracer writing one line per event to w at the given
// level. LevelOff yields the nop tracer.
func NewStream(w io.Writer, level Level) Tracer {
	if level == LevelOff {
		return Nop
	}
	return &streamTracer{w: bufio.NewWriter(w), level: level}
}

// Emit writes the event if its kind passes the tracer's level.
func (t *streamTracer) Emit(ev *Event) {
	if !t.level.ShouldEmit(ev.Kind) {
		return
	}
	if ev.Time.IsZero() {
		ev.Time = time.Now()
	}
	ev.Seq = t.seq.Add(1)

	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.w, "%s seq=%d pass=%d kind=%s", ev.Time.Format(time.RFC3339Nano), ev.Seq, ev.Pass, ev.Kind)
	if ev.Name != "" {
		fmt.Fprintf(t.w, " name=%s", ev.Name)
	}
	if ev.N != 0 {
		fmt.Fprintf(t.w, " n=%d", ev.N)
	}
	fmt.Fprintln(t.w)
}

// Flush flushes buffered lines.
func (t *streamTracer) Flush() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.w.Flush()
}

// Level returns the configured level.
func (t *streamTracer) Level() Level { return t.level }

// Enabled returns true.
func (t *streamTracer) Enabled() bool { return true }
