package schedulers

import (
	"errors"
	"fmt"

	"mlfq-sim/internal/core"
)

// ErrInvalidInput is returned when process descriptors violate the
// engine's preconditions.
var ErrInvalidInput = errors.New("invalid process descriptors")

// ValidateProcesses checks the preconditions NewEngine does not re-check:
// unique labels, positive bursts, non-negative arrivals and initial queues
// inside a ladder of the given depth. Call it before building an engine.
func ValidateProcesses(processes []core.Process, depth int) error {
	if len(processes) == 0 {
		return fmt.Errorf("no processes: %w", ErrInvalidInput)
	}
	seen := make(map[string]bool, len(processes))
	for i, p := range processes {
		if p.Label == "" {
			return fmt.Errorf("process #%d: empty label: %w", i+1, ErrInvalidInput)
		}
		if seen[p.Label] {
			return fmt.Errorf("process %s: duplicate label: %w", p.Label, ErrInvalidInput)
		}
		seen[p.Label] = true
		if p.Burst <= 0 {
			return fmt.Errorf("process %s: burst must be positive, got %d: %w", p.Label, p.Burst, ErrInvalidInput)
		}
		if p.Arrival < 0 {
			return fmt.Errorf("process %s: arrival must be non-negative, got %d: %w", p.Label, p.Arrival, ErrInvalidInput)
		}
		if p.Queue < 1 || p.Queue > depth {
			return fmt.Errorf("process %s: queue must be in [1, %d], got %d: %w", p.Label, depth, p.Queue, ErrInvalidInput)
		}
	}
	return nil
}
