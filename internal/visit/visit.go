// Package visit defines the traversal protocol for the ember heap: the
// capability contracts drivers invoke while walking references, objects,
// blocks, spaces, code regions and monitors, the reference-iteration policy
// for special references, the static/dynamic dispatch selector, and the
// composite adaptors that re-target one visitor kind as another.
//
// Visitor operations are synchronous and never block. Nothing in this
// package locks; callers partition work so that no two workers apply a
// non-idempotent visitor to the same slot within one pass. The one piece of
// protocol-owned shared state is the per-pass marker inside
// MarkingCodeRegion, which is an atomic test-and-set.
package visit

import "ember/internal/heap"

// RefVisitor is applied to reference slots. Both encodings must be
// supported and must behave identically modulo encoding. Implementations
// may overwrite the slot in place but must not retain the slot pointer
// beyond the call.
type RefVisitor interface {
	VisitRef(*heap.Slot)
	VisitNarrow(*heap.NarrowSlot)
}

// ObjectVisitor is applied once per live object during a space walk.
type ObjectVisitor interface {
	VisitObject(*heap.Object)
}

// ObjectPredicate answers a per-object question, e.g. liveness.
type ObjectPredicate interface {
	Test(*heap.Object) bool
}

// PredicateFunc adapts a function to ObjectPredicate.
type PredicateFunc func(*heap.Object) bool

// Test applies the function.
func (f PredicateFunc) Test(o *heap.Object) bool { return f(o) }

// Stock predicates for default policies.
var (
	// AlwaysTrue treats every object as passing (e.g. "everything is live").
	AlwaysTrue ObjectPredicate = PredicateFunc(func(*heap.Object) bool { return true })
	// AlwaysFalse treats every object as failing.
	AlwaysFalse ObjectPredicate = PredicateFunc(func(*heap.Object) bool { return false })
)

// BlockVisitor is applied to raw block addresses in address order; the
// returned size tells the walk how far to advance.
type BlockVisitor interface {
	VisitBlock(heap.BlockAddr) uintptr
}

// CarefulBlockVisitor walks ranges that may contain not-yet-initialized
// content. Implementations must never dereference speculatively: a block
// header's size is the only thing that may be trusted before the block is
// known to be initialized.
type CarefulBlockVisitor interface {
	VisitBlockCareful(heap.BlockAddr) uintptr
}

// SpaceVisitor is applied once per heap sub-space.
type SpaceVisitor interface {
	VisitSpace(*heap.Space)
}

// CodeRegionVisitor is applied to units of generated code, from the code
// cache or from thread stacks.
type CodeRegionVisitor interface {
	VisitCodeRegion(*heap.CodeRegion)
}

// MonitorVisitor is applied to monitors in the monitor cache.
type MonitorVisitor interface {
	VisitMonitor(*heap.Monitor)
}

// ClassVisitor is applied to class metadata records.
type ClassVisitor interface {
	VisitClass(*heap.Class)
}

// LoaderVisitor is applied to class-loader metadata records.
type LoaderVisitor interface {
	VisitLoader(*heap.Loader)
}

// VoidVisitor is a zero-argument progress callback.
type VoidVisitor func()

// YieldSignal lets a long incremental walk decide, between units of work,
// whether to suspend and let other work run. ShouldYield is the coarse
// check and may be relatively expensive; ShouldYieldFine must be very
// cheap and defaults to false via NoFineYield.
type YieldSignal interface {
	ShouldYield() bool
	ShouldYieldFine() bool
}

// NoFineYield supplies the default fine-grained check. Embed it in
// YieldSignal implementations that only have a coarse check.
type NoFineYield struct{}

// ShouldYieldFine always reports false.
func (NoFineYield) ShouldYieldFine() bool { return false }
