package schedulers

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"mlfq-sim/internal/core"
)

// Dispatch records one scheduling decision of the simulation loop.
type Dispatch struct {
	Tick     int    `json:"tick"`
	Label    string `json:"label"`
	Queue    int    `json:"queue"` // 1-based level that offered the process
	RunFor   int    `json:"run_for"`
	Demoted  bool   `json:"demoted,omitempty"`
	Finished bool   `json:"finished,omitempty"`
}

// Result is what one engine run produces.
type Result struct {
	Scheme    Scheme
	Processes []core.Process // descriptor order
	Metrics   map[string]float64
	Trace     []Dispatch
	TotalTime int // latest completion time
	Cpu       core.CpuMetric
}

type queueLevel struct {
	spec   QueueSpec
	policy Policy
	ready  *ReadyQueue
}

// Engine simulates one static process set under one queue ladder.
type Engine struct {
	scheme    Scheme
	processes []core.Process
	levels    []*queueLevel
}

// Option customizes engine construction.
type Option func(*engineOptions)

type engineOptions struct {
	registry *Registry
}

// WithRegistry resolves scheme ids against r instead of the built-in schemes.
func WithRegistry(r *Registry) Option {
	if r == nil {
		panic("WithRegistry: registry must not be nil")
	}
	return func(o *engineOptions) {
		o.registry = r
	}
}

// NewEngine builds an engine for the given scheme id. Unknown ids fail here,
// before anything is simulated. The descriptors are copied, so one slice can
// feed several engines.
//
// Descriptors must satisfy ValidateProcesses for the scheme's depth; the
// engine does not check them again.
func NewEngine(processes []core.Process, schemeID int, opts ...Option) (*Engine, error) {
	o := engineOptions{registry: defaultRegistry}
	for _, opt := range opts {
		opt(&o)
	}
	scheme, err := o.registry.Lookup(schemeID)
	if err != nil {
		return nil, err
	}
	return NewEngineFromScheme(processes, scheme)
}

// NewEngineFromScheme builds an engine for an explicit ladder.
func NewEngineFromScheme(processes []core.Process, scheme Scheme) (*Engine, error) {
	if err := scheme.Validate(); err != nil {
		return nil, err
	}
	levels := make([]*queueLevel, len(scheme.Queues))
	for i, spec := range scheme.Queues {
		policy, err := NewPolicy(spec.Policy, spec.Quantum)
		if err != nil {
			return nil, fmt.Errorf("scheme %d queue %d: %w", scheme.ID, i+1, err)
		}
		levels[i] = &queueLevel{spec: spec, policy: policy, ready: newReadyQueue()}
	}

	owned := make([]core.Process, len(processes))
	for i, p := range processes {
		owned[i] = core.NewProcess(p.Label, p.Burst, p.Arrival, p.Queue)
	}
	return &Engine{scheme: clone(scheme), processes: owned, levels: levels}, nil
}

// Scheme returns the ladder the engine runs.
func (e *Engine) Scheme() Scheme {
	return clone(e.scheme)
}

// Run simulates until every process has finished. Each call starts from the
// initial descriptors, so repeated runs produce identical results.
func (e *Engine) Run() Result {
	e.reset()
	logrus.Infof("running mlfq %s with %d processes", e.scheme, len(e.processes))

	var (
		now      int
		finished int
		total    = len(e.processes)
		admitted = make([]bool, total)
		trace    = make([]Dispatch, 0)
	)

	for finished < total {
		e.admit(now, admitted)

		selected, level, slice := e.dispatch(now)
		if selected == nil {
			now++ // idle tick
			continue
		}

		runFor := min(selected.Remaining, slice)
		if selected.StartTime == -1 {
			selected.StartTime = now
			selected.ResponseTime = now - selected.Arrival
		}
		selected.ExecutionLog = append(selected.ExecutionLog, core.ExecutionInterval{Start: now, End: now + runFor})
		logrus.Debugf("pid: %s runs on queue %d %s at tick %d for %d ticks", selected.Label, level+1, e.levels[level].policy.Name(), now, runFor)

		record := Dispatch{Tick: now, Label: selected.Label, Queue: level + 1, RunFor: runFor}
		now += runFor
		selected.Remaining -= runFor

		if selected.Remaining == 0 {
			selected.CompletionTime = now
			selected.TurnaroundTime = selected.CompletionTime - selected.Arrival
			selected.WaitingTime = selected.TurnaroundTime - selected.Burst
			e.levels[level].ready.Remove(selected)
			finished++
			record.Finished = true
			logrus.Infof("pid: %s completed at tick %d", selected.Label, now)
		} else {
			record.Demoted = e.preempt(selected, level)
		}
		trace = append(trace, record)
	}

	processes := e.snapshot()
	cpu := core.CpuUsage(processes)
	return Result{
		Scheme:    clone(e.scheme),
		Processes: processes,
		Metrics:   CalculateMetrics(processes),
		Trace:     trace,
		TotalTime: cpu.TotalTime,
		Cpu:       cpu,
	}
}

// admit places every arrived, not yet admitted process at the back of its
// initial queue, in descriptor order.
func (e *Engine) admit(now int, admitted []bool) {
	for i := range e.processes {
		p := &e.processes[i]
		if admitted[i] || p.Arrival > now {
			continue
		}
		e.levels[p.Queue-1].ready.Enqueue(p)
		admitted[i] = true
		logrus.Debugf("pid: %s arrived at tick %d, send process to queue %d", p.Label, now, p.Queue)
	}
}

// dispatch asks each level in priority order; the first offer wins and the
// lower levels are not consulted.
func (e *Engine) dispatch(now int) (*core.Process, int, int) {
	for i, level := range e.levels {
		if p, slice := level.policy.Select(level.ready.Items(), now); p != nil {
			return p, i, slice
		}
	}
	return nil, -1, 0
}

// preempt applies feedback to a process whose slice ended before it finished.
// It reports whether the process was demoted.
func (e *Engine) preempt(p *core.Process, level int) bool {
	current := e.levels[level]
	if current.spec.Demote && level+1 < len(e.levels) {
		current.ready.Remove(p)
		e.levels[level+1].ready.Enqueue(p)
		logrus.Debugf("pid: %s context switch detected, demoted to queue %d", p.Label, level+2)
		return true
	}
	if current.spec.Rotate {
		current.ready.MoveToBack(p)
	}
	return false
}

func (e *Engine) reset() {
	for i := range e.processes {
		e.processes[i].Reset()
	}
	for _, level := range e.levels {
		level.ready = newReadyQueue()
	}
}

// snapshot copies the processes so results never alias engine state.
func (e *Engine) snapshot() []core.Process {
	out := make([]core.Process, len(e.processes))
	for i, p := range e.processes {
		out[i] = p
		out[i].ExecutionLog = append([]core.ExecutionInterval(nil), p.ExecutionLog...)
	}
	return out
}
