package visit

import "ember/internal/heap"

// nopRef is a stateless reference visitor whose operations do nothing.
type nopRef struct{}

// VisitRef does nothing.
func (nopRef) VisitRef(*heap.Slot) {}

// VisitNarrow does nothing.
func (nopRef) VisitNarrow(*heap.NarrowSlot) {}

// NopRef is the shared no-op reference visitor for call sites that need a
// visitor but have no work to do. Stateless, safe to share everywhere.
var NopRef RefVisitor = nopRef{}
