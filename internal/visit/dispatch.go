package visit

import (
	"reflect"

	"ember/internal/heap"
)

// Dispatch selector.
//
// Every hot visit operation has one generic entry point. Instantiated with
// a concrete visitor type (DoRef[*markVisitor]) the compiler devirtualizes
// the call and can inline the visitor's operation: the specialized path.
// Instantiated with an interface type (DoRef[ExtendedRefVisitor]) the call
// stays an ordinary indirect interface call: the polymorphic path. Scan
// loops pick one per call site via their own type parameter.
//
// Both paths must produce identical observable effects for identical
// inputs. A scan loop runs once per reachable object per pass, so a
// divergence would silently corrupt only the specialized path's outcomes;
// the equivalence is a tested contract, not an optimization detail.

// DoRef applies the visitor to a full-width slot.
func DoRef[V RefVisitor](v V, s *heap.Slot) { v.VisitRef(s) }

// DoNarrow applies the visitor to a narrow slot.
func DoNarrow[V RefVisitor](v V, s *heap.NarrowSlot) { v.VisitNarrow(s) }

// DoClass applies the visitor to a class metadata record.
func DoClass[V ClassVisitor](v V, c *heap.Class) { v.VisitClass(c) }

// DoLoader applies the visitor to a class-loader metadata record.
func DoLoader[V LoaderVisitor](v V, l *heap.Loader) { v.VisitLoader(l) }

// DoMetadata reads the visitor's metadata flag.
func DoMetadata[V ExtendedRefVisitor](v V) bool { return v.Metadata() }

// dynamicOnly marks visitors that forward through an interface internally
// and therefore gain nothing from (and must not be driven through) the
// specialized path.
type dynamicOnly interface {
	dynamicOnly()
}

// specialized reports whether the type parameter was instantiated with a
// concrete type rather than an interface.
func specialized[V any]() bool {
	return reflect.TypeOf((*V)(nil)).Elem().Kind() != reflect.Interface
}

// checkDispatch guards against driving a dynamic-only visitor through the
// specialized path. Called once per object, not per slot.
func checkDispatch[V any](v V) {
	if debugGuards && specialized[V]() {
		if _, ok := any(v).(dynamicOnly); ok {
			misuse("dynamic-only visitor driven through the specialized path")
		}
	}
}
