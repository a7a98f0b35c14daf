// Package checkpoint implements the bidirectional serialization visitor
// used to persist and restore traversal-relevant runtime state. The stream
// is a flat sequence of typed records with no overall length prefix;
// section boundaries and format drift are guarded purely by tag records the
// caller places with Tag.
package checkpoint

import "ember/internal/heap"

// Serializer is the bidirectional visit-style contract. A writer
// serializes the value at each call; a reader deserializes into it.
// Operations are void to match the visitor protocol; errors latch inside
// the serializer and drivers check Err at section boundaries. After any
// error, later operations do nothing and apply nothing.
type Serializer interface {
	// Reading reports whether this serializer restores (true) or
	// persists (false).
	Reading() bool

	// Ptr reads or writes a pointer-sized word.
	Ptr(p *uint64)

	// U32 reads or writes a 32-bit unsigned integer.
	U32(p *uint32)

	// Region reads or writes a raw byte range. On read the stored region
	// must have exactly len(buf) bytes.
	Region(buf []byte)

	// Tag writes the tag value, or on read compares the stream's next tag
	// against expected and fails the load if they differ. This is the sole
	// correctness check guarding against stream format drift; a mismatch
	// is deterministic for a given stream.
	Tag(expected int)

	// Ref reads or writes a reference slot.
	Ref(s *heap.Slot)

	// Err returns the first error encountered, if any.
	Err() error
}

// Writing reports whether s persists rather than restores.
func Writing(s Serializer) bool { return !s.Reading() }

// recordKind types each stream record.
type recordKind uint8

const (
	recPtr recordKind = iota + 1
	recU32
	recRegion
	recTag
	recRef
)

// String returns a human-readable record kind name.
func (k recordKind) String() string {
	switch k {
	case recPtr:
		return "ptr"
	case recU32:
		return "u32"
	case recRegion:
		return "region"
	case recTag:
		return "tag"
	case recRef:
		return "ref"
	default:
		return "unknown"
	}
}
