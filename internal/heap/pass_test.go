package heap

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestPassEpochsIncrease(t *testing.T) {
	p1 := NewPass()
	p2 := NewPass()
	if p2.Epoch() <= p1.Epoch() {
		t.Fatalf("epochs not increasing: %d then %d", p1.Epoch(), p2.Epoch())
	}
}

func TestRegionMarkOncePerPass(t *testing.T) {
	r := NewCodeRegion("stub")
	p := NewPass()
	if !r.TryMark(p) {
		t.Fatalf("first mark should win")
	}
	if r.TryMark(p) {
		t.Fatalf("second mark in the same pass should lose")
	}
	if !r.Marked(p) {
		t.Fatalf("region should be marked for the pass")
	}

	next := NewPass()
	if r.Marked(next) {
		t.Fatalf("mark should lapse with a new pass")
	}
	if !r.TryMark(next) {
		t.Fatalf("region should be markable again in a new pass")
	}
}

func TestRegionMarkRace(t *testing.T) {
	r := NewCodeRegion("stub")
	p := NewPass()

	const workers = 16
	var wins atomic.Int32
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if r.TryMark(p) {
				wins.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	if wins.Load() != 1 {
		t.Fatalf("expected exactly one winner, got %d", wins.Load())
	}
}

func TestLoaderClaimOncePerPass(t *testing.T) {
	l := NewLoader("boot", narrowBase+RefAlign)
	p := NewPass()
	if !l.TryClaim(p) {
		t.Fatalf("first claim should win")
	}
	if l.TryClaim(p) {
		t.Fatalf("second claim in the same pass should lose")
	}
	if !l.Claimed(p) {
		t.Fatalf("loader should be claimed for the pass")
	}
	if !l.TryClaim(NewPass()) {
		t.Fatalf("claim should lapse with a new pass")
	}
}
