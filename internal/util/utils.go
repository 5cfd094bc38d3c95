package util

import "cpu-scheduler/internal/responses"

// CalculateAverage averages the per-process times. ok is false when there
// are no processes, in which case every average is zero.
func CalculateAverage(processDetails []responses.ProcessResponse) (averageWaitingTime, averageResponseTime, averageTurnAroundTime float64, ok bool) {
	if len(processDetails) == 0 {
		return 0, 0, 0, false
	}

	var waitingTimeSum, responseTimeSum, turnAroundTimeSum int
	for _, process := range processDetails {
		waitingTimeSum += process.WaitingTime
		responseTimeSum += process.ResponseTime
		turnAroundTimeSum += process.TurnAroundTime
	}

	processCount := float64(len(processDetails))

	averageWaitingTime = float64(waitingTimeSum) / processCount
	averageResponseTime = float64(responseTimeSum) / processCount
	averageTurnAroundTime = float64(turnAroundTimeSum) / processCount
	return averageWaitingTime, averageResponseTime, averageTurnAroundTime, true
}
