package schedulers

import (
	"mlfq-sim/internal/core"
	"mlfq-sim/internal/responses"
	"mlfq-sim/internal/util"
)

// Metric names used as keys of Result.Metrics.
const (
	MetricWaitingTime    = "WT"
	MetricCompletionTime = "CT"
	MetricResponseTime   = "RT"
	MetricTurnaroundTime = "TAT"
)

// MetricNames lists the metric keys in report order.
var MetricNames = []string{MetricWaitingTime, MetricCompletionTime, MetricResponseTime, MetricTurnaroundTime}

// CalculateMetrics averages the timing metrics over all processes.
func CalculateMetrics(processes []core.Process) map[string]float64 {
	averageWaitingTime, averageCompletionTime, averageResponseTime, averageTurnAroundTime := util.CalculateAverage(processes)
	return map[string]float64{
		MetricWaitingTime:    averageWaitingTime,
		MetricCompletionTime: averageCompletionTime,
		MetricResponseTime:   averageResponseTime,
		MetricTurnaroundTime: averageTurnAroundTime,
	}
}

// GenerateResponse converts a run result to its JSON shape. The dispatch
// trace is only included when withTrace is set.
func GenerateResponse(result Result, withTrace bool) responses.ScheduleResponse {
	details := make([]responses.ProcessResponse, 0, len(result.Processes))
	for _, p := range result.Processes {
		details = append(details, generateProcessDetails(p))
	}

	response := responses.ScheduleResponse{
		Scheme:                result.Scheme.ID,
		TotalTime:             result.Cpu.TotalTime,
		IdleTime:              result.Cpu.IdleTime,
		AverageWaitingTime:    result.Metrics[MetricWaitingTime],
		AverageCompletionTime: result.Metrics[MetricCompletionTime],
		AverageResponseTime:   result.Metrics[MetricResponseTime],
		AverageTurnAroundTime: result.Metrics[MetricTurnaroundTime],
		CpuUtilization:        result.Cpu.Utilization(),
		CpuThroughput:         result.Cpu.Throughput(len(result.Processes)),
		Details:               details,
	}
	if withTrace {
		response.Trace = make([]responses.DispatchResponse, 0, len(result.Trace))
		for _, d := range result.Trace {
			response.Trace = append(response.Trace, responses.DispatchResponse(d))
		}
	}
	return response
}

// GenerateSchemeResponse describes a ladder for listing endpoints.
func GenerateSchemeResponse(scheme Scheme) responses.SchemeResponse {
	queues := make([]responses.QueueResponse, len(scheme.Queues))
	for i, q := range scheme.Queues {
		queues[i] = responses.QueueResponse{
			Level:   i + 1,
			Policy:  string(q.Policy),
			Quantum: q.Quantum,
			Demote:  q.Demote,
			Rotate:  q.Rotate,
		}
	}
	return responses.SchemeResponse{Scheme: scheme.ID, Queues: queues}
}

func generateProcessDetails(process core.Process) responses.ProcessResponse {
	intervals := make([]responses.ExecutionInterval, len(process.ExecutionLog))
	for i, slice := range process.ExecutionLog {
		intervals[i] = responses.ExecutionInterval(slice)
	}
	return responses.ProcessResponse{
		Label:          process.Label,
		Burst:          process.Burst,
		Arrival:        process.Arrival,
		Queue:          process.Queue,
		StartTime:      process.StartTime,
		WaitingTime:    process.WaitingTime,
		CompletionTime: process.CompletionTime,
		ResponseTime:   process.ResponseTime,
		TurnAroundTime: process.TurnaroundTime,
		ExecutionLog:   intervals,
	}
}
