// Package testkit holds invariant checks shared by tests across packages.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"ember/internal/heap"
)

// CheckSpaceInvariants runs a minimal set of space invariants:
// 1) every live object is non-nil with a positive word size
// 2) the block range walks to its end in block-sized steps, and every
//    initialized block agrees with the object list
// 3) the object count fits the u32 checkpoint counters
func CheckSpaceInvariants(s *heap.Space) error {
	if s == nil {
		return fmt.Errorf("nil space")
	}
	for i, obj := range s.Objects() {
		if obj == nil {
			return fmt.Errorf("space %q: nil object at %d", s.Name, i)
		}
		if obj.Words == 0 {
			return fmt.Errorf("space %q: object %d has zero size", s.Name, i)
		}
	}
	covered := 0
	for addr, end := heap.BlockAddr(0), s.End(); addr < end; {
		b := s.BlockAt(addr)
		if b == nil {
			return fmt.Errorf("space %q: no block at %d", s.Name, addr)
		}
		if b.Words == 0 {
			return fmt.Errorf("space %q: zero-sized block at %d", s.Name, addr)
		}
		if b.Initialized {
			if b.Obj == nil {
				return fmt.Errorf("space %q: initialized block at %d without object", s.Name, addr)
			}
			covered++
		}
		addr += heap.BlockAddr(b.Words)
	}
	if covered != len(s.Objects()) {
		return fmt.Errorf("space %q: %d object blocks for %d objects", s.Name, covered, len(s.Objects()))
	}
	if _, err := safecast.Conv[uint32](len(s.Objects())); err != nil {
		return fmt.Errorf("space %q: object count overflows u32: %w", s.Name, err)
	}
	return nil
}

// CheckRegionInvariants verifies a code region's relocation table is in
// sync with its embedded constants, the state every region must be in
// whenever its code could execute.
func CheckRegionInvariants(r *heap.CodeRegion) error {
	if r == nil {
		return fmt.Errorf("nil region")
	}
	if !r.RelocationsCurrent() {
		return fmt.Errorf("region %q: stale relocation table", r.Name)
	}
	if _, err := safecast.Conv[uint32](r.NumConstants()); err != nil {
		return fmt.Errorf("region %q: constant count overflows u32: %w", r.Name, err)
	}
	return nil
}
