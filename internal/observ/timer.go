// Package observ tracks wall-clock timings of traversal phases.
package observ

import (
	"fmt"
	"strings"
	"time"
)

// Phase records the duration of one traversal phase.
type Phase struct {
	Name  string
	Start time.Time
	Dur   time.Duration
}

// Timer tracks the execution time of the phases of one collection cycle.
type Timer struct {
	phases []Phase
}

// NewTimer creates a new empty Timer.
func NewTimer() *Timer { return &Timer{phases: make([]Phase, 0, 8)} }

// Start begins a phase and returns the function that ends it.
func (t *Timer) Start(name string) func() {
	idx := len(t.phases)
	t.phases = append(t.phases, Phase{Name: name, Start: time.Now()})
	return func() {
		p := &t.phases[idx]
		p.Dur = time.Since(p.Start)
	}
}

// Phases returns the recorded phases in start order.
func (t *Timer) Phases() []Phase { return t.phases }

// Summary returns a human-readable timing report.
func (t *Timer) Summary() string {
	var b strings.Builder
	b.WriteString("timings:\n")
	var total time.Duration
	for _, p := range t.phases {
		fmt.Fprintf(&b, "  %-20s %7.2f ms\n", p.Name, float64(p.Dur.Microseconds())/1000)
		total += p.Dur
	}
	fmt.Fprintf(&b, "  %-20s %7.2f ms\n", "total", float64(total.Microseconds())/1000)
	return b.String()
}
