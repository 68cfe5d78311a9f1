package schedulers

import (
	"strings"

	"mlfq-sim/internal/core"
)

// ReadyQueue is the ready list of one ladder level. Order is insertion
// order: admission order for the queue a process starts in, demotion order
// for lower levels. Policies rely on it for fairness and tie-breaking.
type ReadyQueue struct {
	queue []*core.Process
}

func newReadyQueue() *ReadyQueue {
	return &ReadyQueue{queue: make([]*core.Process, 0)}
}

// Enqueue adds a process to the back of the queue.
func (rq *ReadyQueue) Enqueue(p *core.Process) {
	rq.queue = append(rq.queue, p)
}

// Remove drops p from the queue, keeping the order of the others.
// Returns false if p was not queued.
func (rq *ReadyQueue) Remove(p *core.Process) bool {
	for i, queued := range rq.queue {
		if queued == p {
			rq.queue = append(rq.queue[:i], rq.queue[i+1:]...)
			return true
		}
	}
	return false
}

// MoveToBack re-queues p behind every other process.
func (rq *ReadyQueue) MoveToBack(p *core.Process) {
	if rq.Remove(p) {
		rq.Enqueue(p)
	}
}

// Len returns the number of queued processes.
func (rq *ReadyQueue) Len() int {
	return len(rq.queue)
}

// Items returns the queue's internal storage. Callers may iterate over it
// but MUST NOT append to or reslice it.
func (rq *ReadyQueue) Items() []*core.Process {
	return rq.queue
}

func (rq *ReadyQueue) String() string {
	labels := make([]string, len(rq.queue))
	for i, p := range rq.queue {
		labels[i] = p.Label
	}
	return "[" + strings.Join(labels, " ") + "]"
}
