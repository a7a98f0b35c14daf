package heap

import "sync/atomic"

// passEpoch is the global epoch source. Epochs never repeat within a run,
// so per-pass markers reset implicitly when a new pass begins.
var passEpoch atomic.Uint64

// Pass identifies one bounded traversal over some portion of the heap.
// It scopes deduplication markers, loader claims and idempotency guarantees.
type Pass struct {
	epoch uint64
}

// NewPass begins a new traversal pass with a fresh epoch.
func NewPass() *Pass {
	return &Pass{epoch: passEpoch.Add(1)}
}

// Epoch returns the pass epoch. Epochs are strictly increasing across passes.
func (p *Pass) Epoch() uint64 { return p.epoch }

// claimEpoch performs the shared test-and-set used by per-pass markers:
// it atomically moves m forward to the pass epoch and reports whether this
// caller won. A false return means another worker already holds the marker
// for this pass.
func claimEpoch(m *atomic.Uint64, p *Pass) bool {
	for {
		old := m.Load()
		if old >= p.epoch {
			return false
		}
		if m.CompareAndSwap(old, p.epoch) {
			return true
		}
	}
}
