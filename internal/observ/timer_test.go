package observ

import (
	"strings"
	"testing"
)

func TestTimerPhases(t *testing.T) {
	tm := NewTimer()
	stop := tm.Start("roots")
	stop()
	stop = tm.Start("spaces")
	stop()

	phases := tm.Phases()
	if len(phases) != 2 || phases[0].Name != "roots" || phases[1].Name != "spaces" {
		t.Fatalf("unexpected phases: %+v", phases)
	}
	for _, p := range phases {
		if p.Dur < 0 {
			t.Fatalf("phase %q has negative duration", p.Name)
		}
	}

	sum := tm.Summary()
	if !strings.Contains(sum, "roots") || !strings.Contains(sum, "total") {
		t.Fatalf("summary missing entries: %q", sum)
	}
}
