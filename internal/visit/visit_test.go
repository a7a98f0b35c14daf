package visit

import (
	"testing"

	"ember/internal/heap"
)

func TestStockPredicates(t *testing.T) {
	obj := &heap.Object{Kind: heap.KindOrdinary}
	if !AlwaysTrue.Test(obj) {
		t.Fatalf("AlwaysTrue failed")
	}
	if AlwaysFalse.Test(obj) {
		t.Fatalf("AlwaysFalse passed")
	}
}

func TestNopRefIsShareable(t *testing.T) {
	s := heap.SlotOf(testRef(1))
	n := heap.NarrowSlotOf(testRef(2))
	NopRef.VisitRef(&s)
	NopRef.VisitNarrow(&n)
	if s.Load() != testRef(1) || n.Load() != testRef(2) {
		t.Fatalf("no-op visitor mutated a slot")
	}
}

// coarseYield yields after a fixed number of polls.
type coarseYield struct {
	NoFineYield

	after int
	polls int
}

func (y *coarseYield) ShouldYield() bool {
	y.polls++
	return y.polls > y.after
}

func TestYieldDefaults(t *testing.T) {
	var y YieldSignal = &coarseYield{after: 1}
	if y.ShouldYieldFine() {
		t.Fatalf("fine-grained check should default to false")
	}
	if y.ShouldYield() {
		t.Fatalf("first poll should not yield")
	}
	if !y.ShouldYield() {
		t.Fatalf("second poll should yield")
	}
}

func TestExtendedDefaults(t *testing.T) {
	cv := &countRef{}
	if cv.Mode() != DoDiscovery {
		t.Fatalf("default mode should be discovery, got %v", cv.Mode())
	}
	if cv.Metadata() || cv.Idempotent() || cv.Discoverer() != nil {
		t.Fatalf("extended defaults are wrong")
	}
}

func TestModeStrings(t *testing.T) {
	modes := map[RefIterationMode]string{
		DoDiscovery:              "discovery",
		DoDiscoveredAndDiscovery: "discovered+discovery",
		DoFields:                 "fields",
		RefIterationMode(99):     "unknown",
	}
	for m, want := range modes {
		if m.String() != want {
			t.Fatalf("%d.String() = %q, want %q", m, m.String(), want)
		}
	}
}
