package visit

import (
	"testing"

	"ember/internal/heap"
)

func TestCodeRegionToRefVisitsConstants(t *testing.T) {
	r := heap.NewCodeRegion("stub", testRef(1), testRef(2), testRef(3))
	cv := &countRef{}
	NewCodeRegionToRef(cv, false).VisitCodeRegion(r)
	if cv.wide != 3 {
		t.Fatalf("got %d invocations, want 3", cv.wide)
	}
}

func TestFixRelocationsResyncsAfterMove(t *testing.T) {
	r := heap.NewCodeRegion("stub", testRef(1), testRef(2))
	mv := &moveRef{delta: 8 * heap.RefAlign}

	NewCodeRegionToRef(mv, FixRelocations).VisitCodeRegion(r)
	if !r.RelocationsCurrent() {
		t.Fatalf("relocation table must be current when the call returns")
	}

	// Without the flag the table is left stale for the caller to handle.
	r2 := heap.NewCodeRegion("stub2", testRef(1))
	NewCodeRegionToRef(&moveRef{delta: 8 * heap.RefAlign}, false).VisitCodeRegion(r2)
	if r2.RelocationsCurrent() {
		t.Fatalf("expected a stale relocation table without the flag")
	}
}

func TestMarkingDeduplicatesAcrossRoots(t *testing.T) {
	// A region with 3 constants reachable from 2 distinct roots is visited
	// once per pass: 3 inner invocations, not 6.
	r := heap.NewCodeRegion("stub", testRef(1), testRef(2), testRef(3))
	cv := &countRef{}
	pass := heap.NewPass()

	rootA := NewMarkingCodeRegion(cv, false, pass)
	rootB := NewMarkingCodeRegion(cv, false, pass)
	rootA.VisitCodeRegion(r)
	rootB.VisitCodeRegion(r)

	if cv.wide != 3 {
		t.Fatalf("got %d invocations, want 3", cv.wide)
	}

	// The next pass resets the marker: visitable exactly once again.
	next := heap.NewPass()
	NewMarkingCodeRegion(cv, false, next).VisitCodeRegion(r)
	NewMarkingCodeRegion(cv, false, next).VisitCodeRegion(r)
	if cv.wide != 6 {
		t.Fatalf("got %d invocations after second pass, want 6", cv.wide)
	}
}
