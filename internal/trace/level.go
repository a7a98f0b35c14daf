package trace

import "fmt"

// Level controls tracing verbosity.
type Level uint8

const (
	// LevelOff disables tracing.
	LevelOff Level = iota
	// LevelPass emits pass boundaries only.
	LevelPass
	// LevelRegion additionally emits per-region and per-loader events.
	LevelRegion
	// LevelDebug emits everything including progress points.
	LevelDebug
)

// String returns the string representation of Level.
func (l Level) String() string {
	switch l {
	case LevelOff:
		return "off"
	case LevelPass:
		return "pass"
	case LevelRegion:
		return "region"
	case LevelDebug:
		return "debug"
	default:
		return "unknown"
	}
}

// ParseLevel converts a string to a Level.
func ParseLevel(s string) (Level, error) {
	switch s {
	case "off", "OFF":
		return LevelOff, nil
	case "pass", "PASS":
		return LevelPass, nil
	case "region", "REGION":
		return LevelRegion, nil
	case "debug", "DEBUG":
		return LevelDebug, nil
	default:
		return LevelOff, fmt.Errorf("invalid trace level: %q (expected: off|pass|region|debug)", s)
	}
}

// ShouldEmit reports whether an event kind passes this level.
func (l Level) ShouldEmit(k Kind) bool {
	switch l {
	case LevelOff:
		return false
	case LevelPass:
		return k == KindPassBegin || k == KindPassEnd
	case LevelRegion:
		return k != KindProgress
	default:
		return true
	}
}
