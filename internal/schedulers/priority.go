package schedulers

import (
	"github.com/sirupsen/logrus"

	"cpu-scheduler/internal/core"
)

// SchedulePriority runs the arrived process with the smallest
// (priority, arrival) to completion.
func SchedulePriority(processes []*core.Process) core.Timeline {
	logrus.Debugf("running priority algorithm over %d processes", len(processes))
	return scheduleNonPreemptive(processes, byPriority)
}

// SchedulePriorityPreemptive re-evaluates (priority, arrival) every time unit,
// so a running process only loses the processor to a strictly better one.
func SchedulePriorityPreemptive(processes []*core.Process) core.Timeline {
	logrus.Debugf("running preemptive priority algorithm over %d processes", len(processes))
	return schedulePreemptive(processes, byPriority)
}
