package heap

import "sync/atomic"

// Class is a class metadata record. Its mirror slot ties the record to the
// heap object graph so metadata reachability can be tracked through the same
// pass that tracks object reachability.
type Class struct {
	Name   string
	Mirror Slot
	Loader *Loader
}

// Loader is a class-loader metadata record. It owns root slots that keep
// its loaded classes' objects alive, and a per-pass claim that lets
// concurrent workers agree on who traverses it.
type Loader struct {
	Name  string
	roots []Slot

	claim atomic.Uint64
}

// NewLoader returns a loader owning the given root references.
func NewLoader(name string, roots ...Ref) *Loader {
	l := &Loader{Name: name}
	for _, r := range roots {
		l.roots = append(l.roots, SlotOf(r))
	}
	return l
}

// NumRoots returns the number of root slots the loader owns.
func (l *Loader) NumRoots() int { return len(l.roots) }

// Root returns the i-th root slot.
func (l *Loader) Root(i int) *Slot { return &l.roots[i] }

// TryClaim atomically claims the loader for the given pass. Exactly one
// caller per pass observes true; the claim lapses when a new pass begins.
func (l *Loader) TryClaim(p *Pass) bool {
	return claimEpoch(&l.claim, p)
}

// Claimed reports whether the loader has been claimed during the given pass.
func (l *Loader) Claimed(p *Pass) bool {
	return l.claim.Load() == p.Epoch()
}
