package schedulers

import "mlfq-sim/internal/core"

// FirstComeFirstServe runs the first eligible process in ready-list order to
// completion. Only custom ladders use it, typically as the bottom level.
type FirstComeFirstServe struct{}

func (f *FirstComeFirstServe) Name() string {
	return "FCFS"
}

func (f *FirstComeFirstServe) Select(ready []*core.Process, now int) (*core.Process, int) {
	for _, p := range ready {
		if p.Eligible(now) {
			return p, p.Remaining
		}
	}
	return nil, 0
}
