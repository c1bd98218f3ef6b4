package zmin

import "fmt"

// Mode selects the minification strategy. Every defined Mode maps to
// exactly one registered strategy; any other value is rejected with
// ErrInvalidMode, never silently defaulted.
type Mode int

const (
	// Eco emits output incrementally with bounded auxiliary memory.
	Eco Mode = 0
	// Sport is the balanced default: one pass, one output allocation.
	Sport Mode = 1
	// Turbo partitions large inputs into chunks processed concurrently.
	Turbo Mode = 2

	numModes = 3
)

// DefaultMode is used when a caller supplies no mode.
const DefaultMode = Sport

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Eco:
		return "eco"
	case Sport:
		return "sport"
	case Turbo:
		return "turbo"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode parses a mode name as accepted by the CLI.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "eco":
		return Eco, nil
	case "sport":
		return Sport, nil
	case "turbo":
		return Turbo, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}
