package heap

// ObjectKind identifies the traversal-relevant shape of an object.
type ObjectKind uint8

const (
	// KindOrdinary is a plain object: every field is visited directly.
	KindOrdinary ObjectKind = iota + 1
	// KindSpecialRef is a weak/soft/final-like reference object whose
	// referent field is subject to discovery.
	KindSpecialRef
	// KindMirror is the heap-side mirror of a class metadata record.
	KindMirror
	// KindLoaderCarrier is an object holding a class-loader record alive.
	KindLoaderCarrier
)

// String returns a human-readable name for the object kind.
func (k ObjectKind) String() string {
	switch k {
	case KindOrdinary:
		return "ordinary"
	case KindSpecialRef:
		return "specialref"
	case KindMirror:
		return "mirror"
	case KindLoaderCarrier:
		return "loadercarrier"
	default:
		return "unknown"
	}
}

// Object is a heap-resident object as seen by the traversal protocol:
// a kind, a class, and its reference-carrying fields. Fields may be stored
// full-width or narrow; both lists together form the field set.
type Object struct {
	Kind  ObjectKind
	Class *Class

	// Wide and Narrow hold the object's ordinary reference fields.
	Wide   []Slot
	Narrow []NarrowSlot

	// Referent and Discovered are meaningful only for KindSpecialRef.
	// Referent holds the specially-treated reference; Discovered links the
	// object into the discoverer's pending list.
	Referent   Slot
	Discovered Slot

	// Words is the object's size in words, used by block-level walks.
	Words uintptr
}

// NumFields returns the number of ordinary reference fields.
func (o *Object) NumFields() int { return len(o.Wide) + len(o.Narrow) }
