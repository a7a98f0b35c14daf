package walk

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"ember/internal/heap"
	"ember/internal/trace"
	"ember/internal/visit"
)

// RootSet is one independent set of root slots, e.g. one thread's stack
// roots, plus the code regions reachable from it.
type RootSet struct {
	Name    string
	Slots   []*heap.Slot
	Regions []*heap.CodeRegion
}

// Roots walks root sets in parallel. Each worker gets its own reference
// visitor from newVisitor, preserving single-writer discipline for
// non-idempotent visitors: a root set is processed by exactly one worker.
// Region deduplication across workers is handled by the per-worker marking
// adaptor sharing the pass's atomic markers.
func (w *Walker) Roots(ctx context.Context, p *heap.Pass, sets []RootSet, jobs int,
	newVisitor func(worker int) visit.RefVisitor) error {

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	if jobs > len(sets) {
		jobs = len(sets)
	}
	if jobs == 0 {
		return nil
	}

	tr := w.tracer()
	tr.Emit(&trace.Event{Kind: trace.KindPassBegin, Pass: p.Epoch(), Name: "roots"})

	work := make(chan RootSet)
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < jobs; i++ {
		rv := newVisitor(i)
		marking := visit.NewMarkingCodeRegion(rv, visit.FixRelocations, p)
		g.Go(func() error {
			for set := range work {
				for _, s := range set.Slots {
					rv.VisitRef(s)
				}
				for _, r := range set.Regions {
					marking.VisitCodeRegion(r)
				}
			}
			return nil
		})
	}

	err := func() error {
		defer close(work)
		for _, set := range sets {
			select {
			case work <- set:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	}()
	if werr := g.Wait(); err == nil {
		err = werr
	}

	tr.Emit(&trace.Event{Kind: trace.KindPassEnd, Pass: p.Epoch(), Name: "roots", N: len(sets)})
	return err
}
