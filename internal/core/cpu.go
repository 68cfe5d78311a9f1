package core

// CpuMetric accounts how the simulated CPU spent its ticks during one run.
type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// Utilization is the busy fraction of the run, 0 for an empty run.
func (m CpuMetric) Utilization() float64 {
	if m.TotalTime == 0 {
		return 0
	}
	return float64(m.UtilizationTime) / float64(m.TotalTime)
}

// Throughput is completed processes per tick, 0 for an empty run.
func (m CpuMetric) Throughput(processCount int) float64 {
	if m.TotalTime == 0 {
		return 0
	}
	return float64(processCount) / float64(m.TotalTime)
}

// CpuUsage derives the CPU accounting of a finished run from the execution
// logs. Total time is the latest completion; every tick not covered by a
// slice counts as idle.
func CpuUsage(processes []Process) CpuMetric {
	var metric CpuMetric
	for _, p := range processes {
		for _, slice := range p.ExecutionLog {
			metric.UtilizationTime += slice.Len()
		}
		if p.CompletionTime > metric.TotalTime {
			metric.TotalTime = p.CompletionTime
		}
	}
	metric.IdleTime = metric.TotalTime - metric.UtilizationTime
	return metric
}
