package schedulers

import (
	"github.com/sirupsen/logrus"

	"cpu-scheduler/internal/core"
)

// ScheduleFirstComeFirstServe runs processes to completion in (arrival, id)
// order.
func ScheduleFirstComeFirstServe(processes []*core.Process) core.Timeline {
	logrus.Debugf("running fcfs algorithm over %d processes", len(processes))
	cpu := core.NewCPU()
	for _, p := range sortByArrival(processes) {
		cpu.IdleUntil(p.ArrivalTime)
		cpu.Execute(p, p.RemainingTime)
	}
	return cpu.Timeline()
}
