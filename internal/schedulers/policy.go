package schedulers

import (
	"fmt"
	"strings"

	"mlfq-sim/internal/core"
)

// Policy picks the next process to run from one queue's ready list.
// Implementations MUST NOT modify the processes they are handed.
type Policy interface {
	Name() string
	// Select returns the chosen process and the time slice granted to it,
	// or nil when no process in ready is eligible at tick now.
	Select(ready []*core.Process, now int) (*core.Process, int)
}

// PolicyKind names a queue policy in scheme definitions and config files.
type PolicyKind string

const (
	PolicyRoundRobin                    PolicyKind = "rr"
	PolicyShortestJobFirst              PolicyKind = "sjf"
	PolicyShortestTimeToCompletionFirst PolicyKind = "stcf"
	PolicyFirstComeFirstServe           PolicyKind = "fcfs"
)

var validPolicyKinds = map[PolicyKind]bool{
	PolicyRoundRobin:                    true,
	PolicyShortestJobFirst:              true,
	PolicyShortestTimeToCompletionFirst: true,
	PolicyFirstComeFirstServe:           true,
}

// ParsePolicyKind accepts the short names and a few long-form aliases.
func ParsePolicyKind(name string) (PolicyKind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "rr", "round-robin", "roundrobin":
		return PolicyRoundRobin, nil
	case "sjf", "shortest-job-first":
		return PolicyShortestJobFirst, nil
	case "stcf", "srtf", "shortest-time-to-completion-first":
		return PolicyShortestTimeToCompletionFirst, nil
	case "fcfs", "fifo", "first-come-first-serve":
		return PolicyFirstComeFirstServe, nil
	}
	return "", fmt.Errorf("unknown policy %q: %w", name, ErrInvalidConfiguration)
}

// DemotesByDefault reports whether a queue running this policy demotes a
// preempted process unless the scheme says otherwise.
func (k PolicyKind) DemotesByDefault() bool {
	return k == PolicyRoundRobin
}

// NewPolicy builds the policy for one queue of a ladder.
func NewPolicy(kind PolicyKind, quantum int) (Policy, error) {
	switch kind {
	case PolicyRoundRobin:
		if quantum <= 0 {
			return nil, fmt.Errorf("round-robin quantum must be positive, got %d: %w", quantum, ErrInvalidConfiguration)
		}
		return &RoundRobin{Quantum: quantum}, nil
	case PolicyShortestJobFirst:
		return &ShortestJobFirst{}, nil
	case PolicyShortestTimeToCompletionFirst:
		return &ShortestTimeToCompletionFirst{}, nil
	case PolicyFirstComeFirstServe:
		return &FirstComeFirstServe{}, nil
	}
	return nil, fmt.Errorf("unknown policy %q: %w", kind, ErrInvalidConfiguration)
}
