package requests

import "mlfq-sim/internal/core"

type Job struct {
	Label   string `json:"label"`
	Burst   int    `json:"burst"`
	Arrival int    `json:"arrival"`
	Queue   int    `json:"queue"`
}

type ScheduleRequests struct {
	Processes []Job `json:"processes"`
	Trace     bool  `json:"trace"`
}

// ToProcesses converts the request body into fresh process records.
func (r *ScheduleRequests) ToProcesses() []core.Process {
	processes := make([]core.Process, len(r.Processes))
	for i, job := range r.Processes {
		processes[i] = core.NewProcess(job.Label, job.Burst, job.Arrival, job.Queue)
	}
	return processes
}
