package trace

import "time"

// Kind represents the type of trace event.
type Kind uint8

const (
	// KindPassBegin marks the start of a traversal pass.
	KindPassBegin Kind = iota + 1
	// KindPassEnd marks the end of a traversal pass.
	KindPassEnd
	// KindRegionSkipped records a code region skipped by the dedup marker.
	KindRegionSkipped
	// KindLoaderSkipped records a loader skipped by a lost claim.
	KindLoaderSkipped
	// KindYield records a walk suspending on the yield signal.
	KindYield
	// KindProgress records a driver progress point.
	KindProgress
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	switch k {
	case KindPassBegin:
		return "pass-begin"
	case KindPassEnd:
		return "pass-end"
	case KindRegionSkipped:
		return "region-skipped"
	case KindLoaderSkipped:
		return "loader-skipped"
	case KindYield:
		return "yield"
	case KindProgress:
		return "progress"
	default:
		return "unknown"
	}
}

// Event represents a single traversal trace event.
type Event struct {
	Time time.Time // wall-clock timestamp
	Seq  uint64    // per-tracer sequence number (monotonic)
	Kind Kind      // event kind
	Pass uint64    // pass epoch the event belongs to
	Name string    // subject: space, region or loader name
	N    int       // kind-specific count (objects walked, slots visited)
}
