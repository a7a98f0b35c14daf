package heap

import "sync/atomic"

// CodeRegion is a unit of generated executable code. It embeds reference
// constants whose values are duplicated into a relocation table; the table
// goes stale the instant a visitor moves one of the referents, so callers
// that relocate must re-sync before the region executes again.
type CodeRegion struct {
	Name string

	consts []Slot
	relocs []Ref

	mark atomic.Uint64
}

// NewCodeRegion returns a code region embedding the given reference
// constants, with its relocation table in sync.
func NewCodeRegion(name string, refs ...Ref) *CodeRegion {
	r := &CodeRegion{Name: name}
	for _, ref := range refs {
		r.consts = append(r.consts, SlotOf(ref))
		r.relocs = append(r.relocs, ref)
	}
	return r
}

// NumConstants returns the number of embedded reference constants.
func (r *CodeRegion) NumConstants() int { return len(r.consts) }

// Constant returns the i-th embedded constant slot.
func (r *CodeRegion) Constant(i int) *Slot { return &r.consts[i] }

// RelocationsCurrent reports whether the relocation table still matches the
// embedded constants.
func (r *CodeRegion) RelocationsCurrent() bool {
	for i := range r.consts {
		if r.consts[i].Load() != r.relocs[i] {
			return false
		}
	}
	return true
}

// SyncRelocations rewrites the relocation table from the current constants.
func (r *CodeRegion) SyncRelocations() {
	for i := range r.consts {
		r.relocs[i] = r.consts[i].Load()
	}
}

// TryMark atomically marks the region as visited during the given pass.
// Exactly one caller per pass observes true, even when independent workers
// reach the region from different roots concurrently. The mark lapses when
// a new pass begins.
func (r *CodeRegion) TryMark(p *Pass) bool {
	return claimEpoch(&r.mark, p)
}

// Marked reports whether the region has been visited during the given pass.
func (r *CodeRegion) Marked(p *Pass) bool {
	return r.mark.Load() == p.Epoch()
}
