// Package heap defines the object model the traversal protocol operates
// over: managed references in full-width and narrow encodings, reference
// slots, objects with reference-field layouts, class and loader metadata
// records, code regions, monitors, spaces and symbols.
package heap

import "fortio.org/safecast"

// Ref is a full-width managed reference. The collector owns the referenced
// object and may relocate it; a Ref is only a location, never an identity.
type Ref uint64

// NarrowRef is the compressed encoding of a Ref, valid for references that
// fall inside the narrow window [narrowBase, narrowBase + 4G<<narrowShift).
type NarrowRef uint32

// RefNull is the null reference in both encodings.
const RefNull Ref = 0

const (
	// narrowBase is the lowest address representable in narrow encoding.
	narrowBase Ref = 0x0008_0000_0000
	// narrowShift exploits 8-byte object alignment.
	narrowShift = 3
)

// RefAlign is the minimum alignment of any managed reference.
const RefAlign = 1 << narrowShift

// CanCompress reports whether r has a narrow encoding.
func CanCompress(r Ref) bool {
	if r == RefNull {
		return true
	}
	// narrowBase itself would encode to 0 and collide with null.
	if r <= narrowBase || r%RefAlign != 0 {
		return false
	}
	_, err := safecast.Conv[uint32]((r - narrowBase) >> narrowShift)
	return err == nil
}

// Compress returns the narrow encoding of r.
// It panics if r is outside the narrow window; callers that cannot
// guarantee the window must check CanCompress first.
func Compress(r Ref) NarrowRef {
	if r == RefNull {
		return 0
	}
	if !CanCompress(r) {
		panic("heap: reference outside narrow window")
	}
	n, _ := safecast.Conv[uint32]((r - narrowBase) >> narrowShift)
	return NarrowRef(n)
}

// Decompress returns the full-width reference encoded by n.
func Decompress(n NarrowRef) Ref {
	if n == 0 {
		return RefNull
	}
	return narrowBase + (Ref(n) << narrowShift)
}
