package visit

import (
	"testing"

	"ember/internal/heap"
)

func TestObjectToRefVisitsEveryField(t *testing.T) {
	// An object with two compressed fields yields exactly one invocation
	// per field.
	obj := &heap.Object{
		Kind: heap.KindOrdinary,
		Narrow: []heap.NarrowSlot{
			heap.NarrowSlotOf(testRef(1)),
			heap.NarrowSlotOf(testRef(2)),
		},
	}
	cv := &countRef{}
	NewObjectToRef(cv).VisitObject(obj)
	if cv.narrow != 2 || cv.wide != 0 {
		t.Fatalf("got %d narrow, %d wide invocations, want 2, 0", cv.narrow, cv.wide)
	}
}

func TestDiscoveryDefersReferent(t *testing.T) {
	obj := newSpecialRef(testRef(1), heap.RefNull)
	d := &recordingDiscoverer{accept: true}
	cv := &countRef{}
	cv.SetDiscoverer(d)

	IterateFields[ExtendedRefVisitor](cv, obj)

	if len(d.seen) != 1 || d.seen[0] != obj {
		t.Fatalf("discoverer should see the candidate once")
	}
	if cv.wide != 0 {
		t.Fatalf("accepted referent must not be visited, got %d visits", cv.wide)
	}
}

func TestDiscoveryDeclinedVisitsReferent(t *testing.T) {
	obj := newSpecialRef(testRef(1), heap.RefNull)
	d := &recordingDiscoverer{accept: false}
	cv := &countRef{}
	cv.SetDiscoverer(d)

	IterateFields[ExtendedRefVisitor](cv, obj)

	if cv.wide != 1 {
		t.Fatalf("declined referent should be visited once, got %d", cv.wide)
	}
}

func TestDiscoveryWithoutDiscovererVisitsReferent(t *testing.T) {
	obj := newSpecialRef(testRef(1), heap.RefNull)
	cv := &countRef{}
	IterateFields[ExtendedRefVisitor](cv, obj)
	if cv.wide != 1 {
		t.Fatalf("unbound discovery should fall back to visiting, got %d", cv.wide)
	}
}

func TestDiscoveredAndDiscoveryVisitsBoth(t *testing.T) {
	obj := newSpecialRef(testRef(1), testRef(2))
	d := &recordingDiscoverer{accept: true}
	mv := &modalRef{mode: DoDiscoveredAndDiscovery}
	mv.SetDiscoverer(d)

	IterateFields[ExtendedRefVisitor](mv, obj)

	// Discovered field visited directly; referent handed to the discoverer.
	if mv.wide != 1 {
		t.Fatalf("discovered field should be visited once, got %d", mv.wide)
	}
	if len(d.seen) != 1 {
		t.Fatalf("discovery should still run, saw %d candidates", len(d.seen))
	}
}

func TestFieldsModeBypassesDiscovery(t *testing.T) {
	obj := newSpecialRef(testRef(1), testRef(2))
	d := &recordingDiscoverer{accept: true}
	mv := &modalRef{mode: DoFields}
	mv.SetDiscoverer(d)

	IterateFields[ExtendedRefVisitor](mv, obj)

	if len(d.seen) != 0 {
		t.Fatalf("fields mode must not consult the discoverer")
	}
	if mv.wide != 2 {
		t.Fatalf("referent and discovered should both be visited, got %d", mv.wide)
	}
}

// metaVisitor records every reference surfaced to it, metadata included.
type metaVisitor struct {
	MetadataBase

	seen []heap.Ref
}

func (v *metaVisitor) VisitRef(s *heap.Slot)          { v.seen = append(v.seen, s.Load()) }
func (v *metaVisitor) VisitNarrow(s *heap.NarrowSlot) { v.seen = append(v.seen, s.Load()) }

func TestMetadataSurfacesClassAndLoader(t *testing.T) {
	loader := heap.NewLoader("boot", testRef(10), testRef(11))
	class := &heap.Class{Name: "T", Mirror: heap.SlotOf(testRef(5)), Loader: loader}
	obj := &heap.Object{
		Kind:  heap.KindLoaderCarrier,
		Class: class,
		Wide:  []heap.Slot{heap.SlotOf(testRef(1))},
	}

	mv := &metaVisitor{}
	mv.Bind(mv)
	IterateFields[ExtendedRefVisitor](mv, obj)

	want := []heap.Ref{testRef(5), testRef(10), testRef(11), testRef(1)}
	if len(mv.seen) != len(want) {
		t.Fatalf("surfaced %d refs, want %d: %#x", len(mv.seen), len(want), mv.seen)
	}
	for i, r := range want {
		if mv.seen[i] != r {
			t.Fatalf("ref %d: got %#x, want %#x", i, mv.seen[i], r)
		}
	}
}

func TestMetadataFlagWithoutCapabilityPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected protocol misuse panic")
		}
	}()
	v := &flagOnly{}
	IterateFields[ExtendedRefVisitor](v, &heap.Object{Kind: heap.KindOrdinary, Class: &heap.Class{}})
}

// flagOnly claims metadata capability without implementing it.
type flagOnly struct {
	ExtendedBase
}

func (*flagOnly) VisitRef(*heap.Slot)          {}
func (*flagOnly) VisitNarrow(*heap.NarrowSlot) {}
func (*flagOnly) Metadata() bool               { return true }

func TestEncodingEquivalence(t *testing.T) {
	// Relocating through either encoding must leave the same logical
	// reference behind.
	r := testRef(4)
	delta := heap.Ref(8 * heap.RefAlign)

	wideObj := &heap.Object{Kind: heap.KindOrdinary, Wide: []heap.Slot{heap.SlotOf(r)}}
	narrowObj := &heap.Object{Kind: heap.KindOrdinary, Narrow: []heap.NarrowSlot{heap.NarrowSlotOf(r)}}

	mvWide := &moveRef{delta: delta}
	mvNarrow := &moveRef{delta: delta}
	IterateFields[ExtendedRefVisitor](mvWide, wideObj)
	IterateFields[ExtendedRefVisitor](mvNarrow, narrowObj)

	got := wideObj.Wide[0].Load()
	want := narrowObj.Narrow[0].Load()
	if got != want || got != r+delta {
		t.Fatalf("post-states diverge: wide %#x, narrow %#x, want %#x", got, want, r+delta)
	}
}
