package schedulers

import (
	"fmt"

	"mlfq-sim/internal/core"
)

// RoundRobin grants the first eligible process in ready-list order a fixed
// quantum. It never reorders the list; fairness comes from the engine moving
// preempted processes to the back of a queue.
type RoundRobin struct {
	Quantum int
}

func (r *RoundRobin) Name() string {
	return fmt.Sprintf("RR(%d)", r.Quantum)
}

func (r *RoundRobin) Select(ready []*core.Process, now int) (*core.Process, int) {
	for _, p := range ready {
		if p.Eligible(now) {
			return p, r.Quantum
		}
	}
	return nil, 0
}
