package schedulers

import (
	"github.com/sirupsen/logrus"

	"cpu-scheduler/internal/core"
)

// ScheduleShortestJobFirst is non-preemptive: at each decision point the
// arrived process with the smallest (burst, arrival) runs to completion.
func ScheduleShortestJobFirst(processes []*core.Process) core.Timeline {
	logrus.Debugf("running sjf algorithm over %d processes", len(processes))
	return scheduleNonPreemptive(processes, byBurstTime)
}

// ScheduleShortestRemainingTimeFirst is the preemptive form of shortest job
// first. Every time unit the arrived process with the smallest
// (remaining, arrival) runs.
func ScheduleShortestRemainingTimeFirst(processes []*core.Process) core.Timeline {
	logrus.Debugf("running srtf algorithm over %d processes", len(processes))
	return schedulePreemptive(processes, byRemainingTime)
}
