package main

import (
	"bufio"
	"fmt"
	"io"

	"fortio.org/safecast"

	"ember/internal/checkpoint"
	"ember/internal/heap"
)

// demoHeap is a small deterministic heap used by the walk and checkpoint
// commands: two spaces, a couple of loaders and code regions.
type demoHeap struct {
	spaces  []*heap.Space
	regions []*heap.CodeRegion
	loaders []*heap.Loader
}

const demoBase = heap.Ref(0x0008_0000_0000)

func demoRef(i int) heap.Ref {
	return demoBase + heap.Ref((i+1)*heap.RefAlign)
}

func newDemoHeap() *demoHeap {
	eden := heap.NewSpace("eden")
	tenured := heap.NewSpace("tenured")

	loader := heap.NewLoader("boot", demoRef(1), demoRef(2))
	class := &heap.Class{Name: "demo.Node", Mirror: heap.SlotOf(demoRef(3)), Loader: loader}

	for i := 0; i < 8; i++ {
		eden.AddObject(&heap.Object{
			Kind:   heap.KindOrdinary,
			Class:  class,
			Wide:   []heap.Slot{heap.SlotOf(demoRef(10 + i)), heap.SlotOf(demoRef(20 + i))},
			Narrow: []heap.NarrowSlot{heap.NarrowSlotOf(demoRef(30 + i))},
			Words:  4,
		})
	}
	eden.AddRawBlock(16)
	for i := 0; i < 4; i++ {
		tenured.AddObject(&heap.Object{
			Kind:  heap.KindOrdinary,
			Class: class,
			Wide:  []heap.Slot{heap.SlotOf(demoRef(40 + i))},
			Words: 2,
		})
	}

	return &demoHeap{
		spaces: []*heap.Space{eden, tenured},
		regions: []*heap.CodeRegion{
			heap.NewCodeRegion("stub-1", demoRef(10), demoRef(11), demoRef(12)),
			heap.NewCodeRegion("stub-2", demoRef(40)),
		},
		loaders: []*heap.Loader{loader},
	}
}

func (h *demoHeap) space(name string) *heap.Space {
	for _, s := range h.spaces {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// serializeState reads or writes the checkpoint stream per the manifest
// layout. The same walk serves both directions: a writer emits each value,
// a reader restores into the same slots.
func serializeState(s checkpoint.Serializer, h *demoHeap, m *Manifest) error {
	for _, sec := range m.Sections {
		sp := h.space(sec.Name)
		if sp == nil {
			return fmt.Errorf("manifest section %q has no matching space", sec.Name)
		}
		s.Tag(sec.Tag)
		count, err := safecast.Conv[uint32](len(sp.Objects()))
		if err != nil {
			return fmt.Errorf("space %q: %w", sp.Name, err)
		}
		s.U32(&count)
		if s.Err() == nil && s.Reading() && int(count) != len(sp.Objects()) {
			return fmt.Errorf("space %q: stream has %d objects, heap has %d", sp.Name, count, len(sp.Objects()))
		}
		for _, obj := range sp.Objects() {
			for i := range obj.Wide {
				s.Ref(&obj.Wide[i])
			}
		}
		if err := s.Err(); err != nil {
			return fmt.Errorf("section %q: %w", sec.Name, err)
		}
	}
	s.Tag(m.EndTag)
	return s.Err()
}

// writeDemoCheckpoint persists the heap state per the manifest layout.
func writeDemoCheckpoint(w io.Writer, h *demoHeap, m *Manifest) error {
	bw := bufio.NewWriter(w)
	cw := checkpoint.NewWriter(bw)
	if err := serializeState(cw, h, m); err != nil {
		return err
	}
	return bw.Flush()
}

// readDemoCheckpoint restores the heap state, failing on any tag drift.
func readDemoCheckpoint(r io.Reader, h *demoHeap, m *Manifest) error {
	return serializeState(checkpoint.NewReader(bufio.NewReader(r)), h, m)
}
