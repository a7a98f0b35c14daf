package visit

import "ember/internal/heap"

// RefIterationMode governs how the referent of a special-reference object
// is processed during field iteration.
type RefIterationMode uint8

const (
	// DoDiscovery applies the visitor to ordinary fields only and hands
	// special-reference referents to the discoverer instead of visiting
	// them directly. This is the default.
	DoDiscovery RefIterationMode = iota + 1
	// DoDiscoveredAndDiscovery additionally visits the already-discovered
	// field, for second passes that must process previously deferred
	// references.
	DoDiscoveredAndDiscovery
	// DoFields visits every field unconditionally, bypassing discovery.
	DoFields
)

// String returns the string representation of the mode.
func (m RefIterationMode) String() string {
	switch m {
	case DoDiscovery:
		return "discovery"
	case DoDiscoveredAndDiscovery:
		return "discovered+discovery"
	case DoFields:
		return "fields"
	default:
		return "unknown"
	}
}

// Discoverer is the external policy deciding whether a candidate special
// reference is deferred for later processing. A true return means the
// object was accepted and its referent must not be visited now.
type Discoverer interface {
	Discover(*heap.Object) bool
}

// ExtendedRefVisitor is a RefVisitor carrying the extra state field
// iteration needs: the iteration mode, an optional discoverer, whether
// class/loader metadata should be surfaced, and whether redundant
// application within one pass is safe.
type ExtendedRefVisitor interface {
	RefVisitor

	// Mode returns the reference-iteration mode. Fixed per visitor.
	Mode() RefIterationMode
	// Discoverer returns the bound discovery policy, or nil.
	Discoverer() Discoverer
	// Metadata reports whether class and loader metadata should be
	// visited alongside ordinary fields. Visitors returning true must
	// also implement ClassVisitor and LoaderVisitor.
	Metadata() bool
	// Idempotent reports whether this visitor may be applied more than
	// once to the same slot within one pass without corrupting results.
	// Only visitors with no mutating or counting side effects may answer
	// true.
	Idempotent() bool
}

// ExtendedBase supplies the ExtendedRefVisitor defaults: discovery mode,
// no discoverer, metadata off, non-idempotent. Embed it and override as
// needed.
type ExtendedBase struct {
	disc Discoverer
}

// Mode returns DoDiscovery.
func (*ExtendedBase) Mode() RefIterationMode { return DoDiscovery }

// Discoverer returns the bound discovery policy, or nil.
func (b *ExtendedBase) Discoverer() Discoverer { return b.disc }

// SetDiscoverer binds the discovery policy.
func (b *ExtendedBase) SetDiscoverer(d Discoverer) { b.disc = d }

// Metadata reports false.
func (*ExtendedBase) Metadata() bool { return false }

// Idempotent reports false.
func (*ExtendedBase) Idempotent() bool { return false }

// MetadataRefVisitor is the contract for visitors that participate in
// concurrent class unloading: metadata reachability is tracked through the
// same pass that tracks object reachability.
type MetadataRefVisitor interface {
	ExtendedRefVisitor
	ClassVisitor
	LoaderVisitor
}

// MetadataBase turns the metadata flag on and supplies default class and
// loader traversal: a class surfaces its mirror slot, a loader surfaces its
// owned roots, both through the bound reference visitor. Embedders must
// call Bind with the outer visitor before the first traversal.
type MetadataBase struct {
	ExtendedBase

	refs RefVisitor
}

// Bind sets the reference visitor the default metadata traversal forwards to.
func (b *MetadataBase) Bind(rv RefVisitor) { b.refs = rv }

// Metadata reports true.
func (*MetadataBase) Metadata() bool { return true }

// VisitClass applies the bound reference visitor to the class's mirror slot.
func (b *MetadataBase) VisitClass(c *heap.Class) {
	if b.refs == nil {
		misuse("MetadataBase used before Bind")
	}
	b.refs.VisitRef(&c.Mirror)
}

// VisitLoader applies the bound reference visitor to the loader's roots.
func (b *MetadataBase) VisitLoader(l *heap.Loader) {
	if b.refs == nil {
		misuse("MetadataBase used before Bind")
	}
	for i := 0; i < l.NumRoots(); i++ {
		b.refs.VisitRef(l.Root(i))
	}
}
