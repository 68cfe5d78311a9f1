package util

import "mlfq-sim/internal/core"

// CalculateAverage returns the mean waiting, completion, response and
// turnaround times of the given processes. An empty slice yields zeros.
func CalculateAverage(processes []core.Process) (averageWaitingTime, averageCompletionTime, averageResponseTime, averageTurnAroundTime float64) {
	if len(processes) == 0 {
		return
	}

	var waitingTimeSum float64
	var completionTimeSum float64
	var responseTimeSum float64
	var turnAroundTimeSum float64

	for _, process := range processes {
		waitingTimeSum += float64(process.WaitingTime)
		completionTimeSum += float64(process.CompletionTime)
		responseTimeSum += float64(process.ResponseTime)
		turnAroundTimeSum += float64(process.TurnaroundTime)
	}

	processCount := float64(len(processes))

	averageWaitingTime = waitingTimeSum / processCount
	averageCompletionTime = completionTimeSum / processCount
	averageResponseTime = responseTimeSum / processCount
	averageTurnAroundTime = turnAroundTimeSum / processCount
	return
}
