package visit

import "ember/internal/heap"

// CodeRegionToRef re-targets a reference visitor as a code-region visitor:
// the inner visitor is applied to every reference constant embedded in the
// region.
//
// When fixRelocations is set the inner visitor must relocate (copy) any
// moved referent before VisitCodeRegion returns; the region's relocation
// table maps references to code addresses and goes stale the instant an
// object moves, so deferred relocation is not an option here. The adaptor
// re-syncs the table after the inner visits.
type CodeRegionToRef struct {
	inner          RefVisitor
	fixRelocations bool
}

// FixRelocations is a readable constructor argument.
const FixRelocations = true

// NewCodeRegionToRef wraps the inner visitor.
func NewCodeRegionToRef(inner RefVisitor, fixRelocations bool) *CodeRegionToRef {
	return &CodeRegionToRef{inner: inner, fixRelocations: fixRelocations}
}

// FixesRelocations reports whether the adaptor re-syncs relocation tables.
func (a *CodeRegionToRef) FixesRelocations() bool { return a.fixRelocations }

// VisitCodeRegion applies the inner visitor to each embedded constant.
func (a *CodeRegionToRef) VisitCodeRegion(r *heap.CodeRegion) {
	a.visitConstants(r)
}

func (a *CodeRegionToRef) visitConstants(r *heap.CodeRegion) {
	for i := 0; i < r.NumConstants(); i++ {
		a.inner.VisitRef(r.Constant(i))
	}
	if a.fixRelocations {
		r.SyncRelocations()
	}
}

// MarkingCodeRegion is a CodeRegionToRef with a per-pass deduplication
// marker: a region reachable from several roots (e.g. several thread
// stacks) is visited at most once per pass. The marker is the one piece of
// protocol-owned shared state; TryMark is an atomic test-and-set, so
// concurrent workers may race on it and exactly one wins.
type MarkingCodeRegion struct {
	CodeRegionToRef

	pass *heap.Pass
}

// NewMarkingCodeRegion wraps the inner visitor for one traversal pass.
// A new pass needs a new adaptor; the old markers lapse with the old epoch.
func NewMarkingCodeRegion(inner RefVisitor, fixRelocations bool, pass *heap.Pass) *MarkingCodeRegion {
	return &MarkingCodeRegion{
		CodeRegionToRef: CodeRegionToRef{inner: inner, fixRelocations: fixRelocations},
		pass:            pass,
	}
}

// VisitCodeRegion applies the inner visitor unless another worker already
// claimed the region during this pass.
func (a *MarkingCodeRegion) VisitCodeRegion(r *heap.CodeRegion) {
	if !r.TryMark(a.pass) {
		return
	}
	a.visitConstants(r)
}
