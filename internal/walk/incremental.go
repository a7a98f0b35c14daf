package walk

import (
	"ember/internal/heap"
	"ember/internal/trace"
	"ember/internal/visit"
)

// Incremental runs units of work in order, polling the yield signal
// between units and suspending when asked. It returns the number of units
// completed; callers resume by re-invoking with the remaining units.
// The progress callback fires after each completed unit; pass nil to skip.
func (w *Walker) Incremental(p *heap.Pass, units []func(), y visit.YieldSignal, progress visit.VoidVisitor) int {
	tr := w.tracer()
	for i, unit := range units {
		if y != nil && (y.ShouldYieldFine() || y.ShouldYield()) {
			tr.Emit(&trace.Event{Kind: trace.KindYield, Pass: p.Epoch(), N: i})
			return i
		}
		unit()
		if progress != nil {
			progress()
			tr.Emit(&trace.Event{Kind: trace.KindProgress, Pass: p.Epoch(), N: i + 1})
		}
	}
	return len(units)
}
