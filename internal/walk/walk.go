// Package walk provides reference traversal drivers over the ember heap
// model: sequential space and object walks, careful block walks, a
// parallel root walk and an incremental walk driven by the cooperative
// yield signal. Drivers own work partitioning; visitor operations stay
// lock-free per the protocol.
package walk

import (
	"ember/internal/heap"
	"ember/internal/trace"
	"ember/internal/visit"
)

// Walker runs traversals. The zero value is usable and traces nowhere.
type Walker struct {
	Tracer trace.Tracer
}

func (w *Walker) tracer() trace.Tracer {
	if w == nil || w.Tracer == nil {
		return trace.Nop
	}
	return w.Tracer
}

// Spaces applies the visitor once per space.
func (w *Walker) Spaces(spaces []*heap.Space, v visit.SpaceVisitor) {
	for _, s := range spaces {
		v.VisitSpace(s)
	}
}

// Objects applies the visitor once per live object in the space.
func (w *Walker) Objects(p *heap.Pass, s *heap.Space, v visit.ObjectVisitor) {
	w.ObjectsIf(p, s, visit.AlwaysTrue, v)
}

// ObjectsIf applies the visitor to each live object passing the predicate.
func (w *Walker) ObjectsIf(p *heap.Pass, s *heap.Space, pred visit.ObjectPredicate, v visit.ObjectVisitor) {
	tr := w.tracer()
	tr.Emit(&trace.Event{Kind: trace.KindPassBegin, Pass: p.Epoch(), Name: s.Name})
	n := 0
	for _, obj := range s.Objects() {
		if !pred.Test(obj) {
			continue
		}
		v.VisitObject(obj)
		n++
	}
	tr.Emit(&trace.Event{Kind: trace.KindPassEnd, Pass: p.Epoch(), Name: s.Name, N: n})
}

// BlocksCareful walks the space's raw block range in address order,
// advancing by the size each visit returns. The visitor must tolerate
// free and not-yet-initialized blocks.
func (w *Walker) BlocksCareful(s *heap.Space, v visit.CarefulBlockVisitor) {
	end := s.End()
	for addr := heap.BlockAddr(0); addr < end; {
		sz := v.VisitBlockCareful(addr)
		if sz == 0 {
			panic("walk: careful block visitor returned zero size")
		}
		addr += heap.BlockAddr(sz)
	}
}

// Regions applies the visitor once per code region. Deduplication across
// overlapping region lists is the visitor's concern (see
// visit.MarkingCodeRegion).
func (w *Walker) Regions(regions []*heap.CodeRegion, v visit.CodeRegionVisitor) {
	for _, r := range regions {
		v.VisitCodeRegion(r)
	}
}

// Monitors applies the visitor once per monitor.
func (w *Walker) Monitors(monitors []*heap.Monitor, v visit.MonitorVisitor) {
	for _, m := range monitors {
		v.VisitMonitor(m)
	}
}
