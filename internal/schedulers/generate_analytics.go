package schedulers

import (
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/util"
)

// DeriveMetrics fills in turnaround and waiting time from the completion time
// written by a scheduling run.
func DeriveMetrics(processes []*core.Process) {
	for _, p := range processes {
		p.TurnaroundTime = p.CompletionTime - p.ArrivalTime
		p.WaitingTime = p.TurnaroundTime - p.BurstTime
	}
}

// GenerateResponse summarizes a finished run whose metrics are already
// derived. Details follow the order of processes.
func GenerateResponse(algorithm string, processes []*core.Process, timeline core.Timeline) responses.ScheduleResponse {
	firstRun := make(map[int]int, len(processes))
	segments := make([]responses.TimelineSegment, 0, len(timeline))
	for _, s := range timeline {
		if _, seen := firstRun[s.ProcessID]; !seen {
			firstRun[s.ProcessID] = s.Start
		}
		segments = append(segments, responses.TimelineSegment{
			ProcessId: s.ProcessID,
			StartTime: s.Start,
			EndTime:   s.End,
		})
	}

	details := make([]responses.ProcessResponse, 0, len(processes))
	for _, p := range processes {
		details = append(details, generateProcessDetails(p, firstRun[p.ID]))
	}

	averageWaitingTime, averageResponseTime, averageTurnAroundTime, _ := util.CalculateAverage(details)
	metric := timeline.Metric()

	response := responses.ScheduleResponse{
		Algorithm:             algorithm,
		TotalTime:             metric.TotalTime,
		IdleTime:              metric.IdleTime,
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTurnAroundTime,
		ContextSwitches:       timeline.ContextSwitches(),
		Timeline:              segments,
		Details:               details,
	}
	if metric.TotalTime > 0 {
		response.CpuUtilization = float64(metric.UtilizationTime) / float64(metric.TotalTime)
		response.CpuThroughput = float64(len(processes)) / float64(metric.TotalTime)
	}
	return response
}

func generateProcessDetails(p *core.Process, firstRun int) responses.ProcessResponse {
	return responses.ProcessResponse{
		ProcessId:      p.ID,
		ArrivalTime:    p.ArrivalTime,
		BurstTime:      p.BurstTime,
		Priority:       p.Priority,
		CompletionTime: p.CompletionTime,
		ResponseTime:   firstRun - p.ArrivalTime,
		TurnAroundTime: p.TurnaroundTime,
		WaitingTime:    p.WaitingTime,
	}
}
