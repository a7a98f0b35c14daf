package visit

import "ember/internal/heap"

// LoaderToRef re-targets a reference visitor as a class-loader visitor:
// the inner visitor is applied to the roots owned by one loader record.
// With mustClaim set the adaptor claims the loader for the pass first, so
// parallel workers that reach the same loader do the work exactly once.
type LoaderToRef struct {
	inner     RefVisitor
	mustClaim bool
	pass      *heap.Pass
}

// NewLoaderToRef wraps the inner visitor for one traversal pass.
func NewLoaderToRef(inner RefVisitor, mustClaim bool, pass *heap.Pass) *LoaderToRef {
	return &LoaderToRef{inner: inner, mustClaim: mustClaim, pass: pass}
}

// VisitLoader applies the inner visitor to the loader's roots, subject to
// the claim.
func (a *LoaderToRef) VisitLoader(l *heap.Loader) {
	if a.mustClaim && !l.TryClaim(a.pass) {
		return
	}
	for i := 0; i < l.NumRoots(); i++ {
		a.inner.VisitRef(l.Root(i))
	}
}
