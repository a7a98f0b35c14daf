package visit

import "ember/internal/heap"

// IterateFields applies an extended reference visitor to every
// reference-carrying field of one object, honoring the visitor's
// reference-iteration mode and metadata flag. This is the scan-loop body:
// the type parameter selects the dispatch path (see dispatch.go).
func IterateFields[V ExtendedRefVisitor](v V, obj *heap.Object) {
	checkDispatch[V](v)

	if DoMetadata(v) {
		iterateMetadata(v, obj)
	}
	if obj.Kind == heap.KindSpecialRef {
		iterateSpecial(v, obj)
	}
	for i := range obj.Wide {
		DoRef(v, &obj.Wide[i])
	}
	for i := range obj.Narrow {
		DoNarrow(v, &obj.Narrow[i])
	}
}

// iterateMetadata surfaces the object's class record, and for loader
// carriers the loader record, through the visitor's metadata capability.
func iterateMetadata[V ExtendedRefVisitor](v V, obj *heap.Object) {
	cv, ok := any(v).(ClassVisitor)
	if !ok {
		misuse("metadata flag set on a visitor without class capability")
	}
	if obj.Class != nil {
		DoClass(cv, obj.Class)
	}
	if obj.Kind == heap.KindLoaderCarrier && obj.Class != nil && obj.Class.Loader != nil {
		lv, ok := any(v).(LoaderVisitor)
		if !ok {
			misuse("metadata flag set on a visitor without loader capability")
		}
		DoLoader(lv, obj.Class.Loader)
	}
}

// iterateSpecial processes the referent and discovered fields of a
// special-reference object according to the visitor's mode.
func iterateSpecial[V ExtendedRefVisitor](v V, obj *heap.Object) {
	switch v.Mode() {
	case DoFields:
		DoRef(v, &obj.Referent)
		DoRef(v, &obj.Discovered)
	case DoDiscoveredAndDiscovery:
		DoRef(v, &obj.Discovered)
		discoverOrVisit(v, obj)
	default: // DoDiscovery
		discoverOrVisit(v, obj)
	}
}

// discoverOrVisit hands a non-null referent to the discoverer; when the
// discoverer declines (or none is bound) the referent is visited like an
// ordinary field.
func discoverOrVisit[V ExtendedRefVisitor](v V, obj *heap.Object) {
	if !obj.Referent.IsNull() {
		if d := v.Discoverer(); d != nil && d.Discover(obj) {
			return
		}
	}
	DoRef(v, &obj.Referent)
}

// ObjectToRef re-targets an extended reference visitor as an object
// visitor: each visited object has its reference fields iterated with the
// inner visitor. The type parameter fixes the inner dispatch path at the
// adaptor's construction site.
type ObjectToRef[V ExtendedRefVisitor] struct {
	inner V
}

// NewObjectToRef wraps the inner visitor.
func NewObjectToRef[V ExtendedRefVisitor](inner V) *ObjectToRef[V] {
	return &ObjectToRef[V]{inner: inner}
}

// VisitObject iterates the object's reference fields with the inner visitor.
func (a *ObjectToRef[V]) VisitObject(obj *heap.Object) {
	IterateFields(a.inner, obj)
}

// Inner returns the wrapped visitor.
func (a *ObjectToRef[V]) Inner() V { return a.inner }
