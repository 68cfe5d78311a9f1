package schedulers

import "mlfq-sim/internal/core"

// ShortestJobFirst runs the eligible process with the least remaining time
// to completion once selected.
type ShortestJobFirst struct{}

func (s *ShortestJobFirst) Name() string {
	return "SJF"
}

func (s *ShortestJobFirst) Select(ready []*core.Process, now int) (*core.Process, int) {
	shortest := shortestRemaining(ready, now)
	if shortest == nil {
		return nil, 0
	}
	return shortest, shortest.Remaining
}

// ShortestTimeToCompletionFirst selects like ShortestJobFirst but grants a
// single tick, so the choice is re-evaluated on every tick.
type ShortestTimeToCompletionFirst struct{}

func (s *ShortestTimeToCompletionFirst) Name() string {
	return "STCF"
}

func (s *ShortestTimeToCompletionFirst) Select(ready []*core.Process, now int) (*core.Process, int) {
	shortest := shortestRemaining(ready, now)
	if shortest == nil {
		return nil, 0
	}
	return shortest, 1
}

// shortestRemaining returns the eligible process with the minimum remaining
// time. Ties go to the earliest process in ready-list order.
func shortestRemaining(ready []*core.Process, now int) *core.Process {
	var shortest *core.Process
	for _, p := range ready {
		if !p.Eligible(now) {
			continue
		}
		if shortest == nil || p.Remaining < shortest.Remaining {
			shortest = p
		}
	}
	return shortest
}
