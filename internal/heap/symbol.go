package heap

// SymbolRef is a reference to an interned symbol. Symbol references are
// always at least 2-aligned, so bit 0 is free for out-of-band use.
type SymbolRef uint64

// symbolTagBit is the low bit some callers repurpose as a side flag
// (constant-pool slots use it to record resolution state). The flag's
// meaning belongs to that caller, not to this package.
const symbolTagBit SymbolRef = 1

// SymbolSlot is a location holding a symbol reference whose low bit may be
// claimed by the slot's owner as a side flag.
type SymbolSlot struct {
	bits SymbolRef
}

// SymbolSlotOf returns a slot holding r with the side flag clear.
func SymbolSlotOf(r SymbolRef) SymbolSlot { return SymbolSlot{bits: r &^ symbolTagBit} }

// LoadSymbol returns the logical symbol reference, masking off the side flag.
func LoadSymbol(s *SymbolSlot) SymbolRef {
	return s.bits &^ symbolTagBit
}

// StoreSymbol writes r into the slot, preserving whatever side flag the
// slot already carries.
func StoreSymbol(s *SymbolSlot, r SymbolRef) {
	s.bits = (r &^ symbolTagBit) | (s.bits & symbolTagBit)
}

// SideBit reports the slot's side flag. Owned by the slot's caller context.
func (s *SymbolSlot) SideBit() bool { return s.bits&symbolTagBit != 0 }

// SetSideBit sets or clears the side flag without touching the reference.
func (s *SymbolSlot) SetSideBit(on bool) {
	if on {
		s.bits |= symbolTagBit
	} else {
		s.bits &^= symbolTagBit
	}
}
