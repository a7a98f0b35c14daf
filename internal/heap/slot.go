package heap

// Slot is an addressable location holding a full-width reference. Visitors
// may overwrite a slot in place (relocating the referent during copying or
// compaction) but must not retain the slot pointer past the visit call.
type Slot struct {
	ref Ref
}

// SlotOf returns a slot initialized to r.
func SlotOf(r Ref) Slot { return Slot{ref: r} }

// Load returns the reference currently held by the slot.
func (s *Slot) Load() Ref { return s.ref }

// Store overwrites the reference held by the slot.
func (s *Slot) Store(r Ref) { s.ref = r }

// IsNull reports whether the slot holds the null reference.
func (s *Slot) IsNull() bool { return s.ref == RefNull }

// NarrowSlot is an addressable location holding a narrow-encoded reference.
// Load and Store speak full-width references; the slot owns the encoding.
type NarrowSlot struct {
	ref NarrowRef
}

// NarrowSlotOf returns a narrow slot initialized to r.
// It panics if r has no narrow encoding.
func NarrowSlotOf(r Ref) NarrowSlot { return NarrowSlot{ref: Compress(r)} }

// Load returns the decompressed reference currently held by the slot.
func (s *NarrowSlot) Load() Ref { return Decompress(s.ref) }

// Store compresses and stores r. It panics if r has no narrow encoding.
func (s *NarrowSlot) Store(r Ref) { s.ref = Compress(r) }

// IsNull reports whether the slot holds the null reference.
func (s *NarrowSlot) IsNull() bool { return s.ref == 0 }
