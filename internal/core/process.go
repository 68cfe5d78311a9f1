package core

import "fmt"

// ExecutionInterval is one time slice a process held the CPU, as [Start, End).
type ExecutionInterval struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the number of ticks covered by the interval.
func (e ExecutionInterval) Len() int {
	return e.End - e.Start
}

// Process holds the static parameters of a simulated process together with
// the state the scheduling engine mutates while it runs.
type Process struct {
	Label   string `json:"label" yaml:"label"`
	Burst   int    `json:"burst" yaml:"burst"`
	Arrival int    `json:"arrival" yaml:"arrival"`
	Queue   int    `json:"queue" yaml:"queue"` // 1-based initial queue level

	Remaining      int                 `json:"remaining" yaml:"-"`
	StartTime      int                 `json:"start_time" yaml:"-"`      // -1 until first dispatch
	CompletionTime int                 `json:"completion_time" yaml:"-"` // -1 until finished
	ResponseTime   int                 `json:"response_time" yaml:"-"`
	WaitingTime    int                 `json:"waiting_time" yaml:"-"`
	TurnaroundTime int                 `json:"turnaround_time" yaml:"-"`
	ExecutionLog   []ExecutionInterval `json:"execution_log" yaml:"-"`
}

// NewProcess returns a process that has not run yet.
func NewProcess(label string, burst, arrival, queue int) Process {
	return Process{
		Label:          label,
		Burst:          burst,
		Arrival:        arrival,
		Queue:          queue,
		Remaining:      burst,
		StartTime:      -1,
		CompletionTime: -1,
		ResponseTime:   -1,
		ExecutionLog:   make([]ExecutionInterval, 0),
	}
}

// Reset restores the mutable simulation state from the static parameters.
func (p *Process) Reset() {
	p.Remaining = p.Burst
	p.StartTime = -1
	p.CompletionTime = -1
	p.ResponseTime = -1
	p.WaitingTime = 0
	p.TurnaroundTime = 0
	p.ExecutionLog = make([]ExecutionInterval, 0)
}

// Eligible reports whether the process may be dispatched at tick now.
func (p *Process) Eligible(now int) bool {
	return p.Arrival <= now && p.Remaining > 0
}

// Finished reports whether the process has consumed its whole burst.
func (p *Process) Finished() bool {
	return p.CompletionTime != -1
}

func (p *Process) String() string {
	return fmt.Sprintf("%s(burst=%d, arrival=%d, queue=%d, remaining=%d)", p.Label, p.Burst, p.Arrival, p.Queue, p.Remaining)
}
