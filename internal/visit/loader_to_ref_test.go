package visit

import (
	"testing"

	"ember/internal/heap"
)

func TestLoaderToRefClaims(t *testing.T) {
	l := heap.NewLoader("boot", testRef(1), testRef(2))
	cv := &countRef{}
	pass := heap.NewPass()

	NewLoaderToRef(cv, true, pass).VisitLoader(l)
	NewLoaderToRef(cv, true, pass).VisitLoader(l)

	if cv.wide != 2 {
		t.Fatalf("claimed loader should be walked once: got %d invocations, want 2", cv.wide)
	}
}

func TestLoaderToRefWithoutClaim(t *testing.T) {
	l := heap.NewLoader("boot", testRef(1))
	cv := &countRef{}
	pass := heap.NewPass()

	a := NewLoaderToRef(cv, false, pass)
	a.VisitLoader(l)
	a.VisitLoader(l)

	if cv.wide != 2 {
		t.Fatalf("unclaimed walks should repeat: got %d invocations, want 2", cv.wide)
	}
}
