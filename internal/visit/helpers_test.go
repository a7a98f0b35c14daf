package visit

import "ember/internal/heap"

// testRef returns the i-th address of a compressible test window.
func testRef(i int) heap.Ref {
	return heap.Ref(0x0008_0000_0000) + heap.Ref((i+1)*heap.RefAlign)
}

// countRef counts applications per encoding.
type countRef struct {
	ExtendedBase

	wide   int
	narrow int
}

func (v *countRef) VisitRef(*heap.Slot)          { v.wide++ }
func (v *countRef) VisitNarrow(*heap.NarrowSlot) { v.narrow++ }

// modalRef is a countRef with an explicit iteration mode.
type modalRef struct {
	countRef

	mode RefIterationMode
}

func (v *modalRef) Mode() RefIterationMode { return v.mode }

// moveRef relocates every non-null referent by a fixed delta, the shape of
// a copying collector's forwarding visitor.
type moveRef struct {
	ExtendedBase

	delta  heap.Ref
	visits int
}

func (v *moveRef) VisitRef(s *heap.Slot) {
	v.visits++
	if !s.IsNull() {
		s.Store(s.Load() + v.delta)
	}
}

func (v *moveRef) VisitNarrow(s *heap.NarrowSlot) {
	v.visits++
	if !s.IsNull() {
		s.Store(s.Load() + v.delta)
	}
}

// recordingDiscoverer records candidates and answers a fixed verdict.
type recordingDiscoverer struct {
	accept bool
	seen   []*heap.Object
}

func (d *recordingDiscoverer) Discover(o *heap.Object) bool {
	d.seen = append(d.seen, o)
	return d.accept
}

// newSpecialRef builds a special-reference object with the given referent.
func newSpecialRef(referent, discovered heap.Ref) *heap.Object {
	return &heap.Object{
		Kind:       heap.KindSpecialRef,
		Referent:   heap.SlotOf(referent),
		Discovered: heap.SlotOf(discovered),
	}
}
