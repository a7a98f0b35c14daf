package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ember/internal/heap"
	"ember/internal/observ"
	"ember/internal/trace"
	"ember/internal/visit"
	"ember/internal/walk"
)

// countVisitor counts slot visits. Not idempotent: redundant application
// would inflate the counts, so each worker gets its own instance.
type countVisitor struct {
	visit.ExtendedBase

	refs    int
	narrows int
}

func (v *countVisitor) VisitRef(*heap.Slot)          { v.refs++ }
func (v *countVisitor) VisitNarrow(*heap.NarrowSlot) { v.narrows++ }

var walkTimings bool

var walkCmd = &cobra.Command{
	Use:   "walk",
	Short: "Walk the demo heap and report visit counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		levelName, _ := cmd.Flags().GetString("trace-level")
		level, err := trace.ParseLevel(levelName)
		if err != nil {
			return err
		}
		tr := trace.NewStream(os.Stderr, level)
		defer tr.Flush()

		h := newDemoHeap()
		w := &walk.Walker{Tracer: tr}
		tm := observ.NewTimer()
		pass := heap.NewPass()

		stop := tm.Start("roots")
		var sets []walk.RootSet
		for _, l := range h.loaders {
			set := walk.RootSet{Name: l.Name, Regions: h.regions}
			for i := 0; i < l.NumRoots(); i++ {
				set.Slots = append(set.Slots, l.Root(i))
			}
			sets = append(sets, set)
		}
		workers := make([]*countVisitor, 0, len(sets))
		err = w.Roots(cmd.Context(), pass, sets, 0, func(int) visit.RefVisitor {
			cv := &countVisitor{}
			workers = append(workers, cv)
			return cv
		})
		stop()
		if err != nil {
			return err
		}

		stop = tm.Start("spaces")
		scanner := &countVisitor{}
		objToRef := visit.NewObjectToRef(scanner)
		for _, sp := range h.spaces {
			w.Objects(pass, sp, objToRef)
		}
		stop()

		rootRefs := 0
		for _, cv := range workers {
			rootRefs += cv.refs
		}
		fmt.Fprintf(cmd.OutOrStdout(), "pass %d: %d root refs, %d object refs, %d narrow refs\n",
			pass.Epoch(), rootRefs, scanner.refs, scanner.narrows)
		if walkTimings {
			fmt.Fprint(cmd.OutOrStdout(), tm.Summary())
		}
		return nil
	},
}

func init() {
	walkCmd.Flags().BoolVar(&walkTimings, "timings", false, "show phase timings")
}
