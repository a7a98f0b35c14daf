package visit

import "ember/internal/heap"

// NoHeader exposes a plain RefVisitor through the ExtendedRefVisitor
// contract for drivers that iterate fields without metadata or discovery.
// The inner forwarding call is always an interface call, so this adaptor is
// dynamic-only: drive it through IterateFields[ExtendedRefVisitor], never
// through a specialized instantiation (checkDispatch rejects that).
type NoHeader struct {
	ExtendedBase

	inner RefVisitor
}

// NewNoHeader wraps the inner visitor. The result iterates with DoFields:
// header metadata and discovery are bypassed by construction.
func NewNoHeader(inner RefVisitor) *NoHeader {
	return &NoHeader{inner: inner}
}

// Mode returns DoFields.
func (*NoHeader) Mode() RefIterationMode { return DoFields }

// VisitRef forwards to the wrapped visitor.
func (a *NoHeader) VisitRef(s *heap.Slot) { a.inner.VisitRef(s) }

// VisitNarrow forwards to the wrapped visitor.
func (a *NoHeader) VisitNarrow(s *heap.NarrowSlot) { a.inner.VisitNarrow(s) }

func (*NoHeader) dynamicOnly() {}
