package heap

import "testing"

func TestSymbolStorePreservesSideBit(t *testing.T) {
	for _, pre := range []bool{false, true} {
		slot := SymbolSlotOf(SymbolRef(0x1000))
		slot.SetSideBit(pre)

		next := SymbolRef(0x2000)
		StoreSymbol(&slot, next)

		if got := LoadSymbol(&slot); got != next {
			t.Fatalf("side bit %v: load gave %#x, want %#x", pre, got, next)
		}
		if slot.SideBit() != pre {
			t.Fatalf("side bit %v: store flipped the flag", pre)
		}
	}
}

func TestLoadSymbolMasksSideBit(t *testing.T) {
	slot := SymbolSlotOf(SymbolRef(0x1000))
	slot.SetSideBit(true)
	if got := LoadSymbol(&slot); got != 0x1000 {
		t.Fatalf("load gave %#x, want %#x", got, 0x1000)
	}
}

func TestSymbolStoreIgnoresCallerTagInValue(t *testing.T) {
	// A value arriving with its low bit set must not leak into the flag.
	slot := SymbolSlotOf(SymbolRef(0x1000))
	StoreSymbol(&slot, SymbolRef(0x2000|1))
	if slot.SideBit() {
		t.Fatalf("value low bit leaked into the side flag")
	}
	if got := LoadSymbol(&slot); got != 0x2000 {
		t.Fatalf("load gave %#x, want %#x", got, 0x2000)
	}
}
