package schedulers

import (
	"github.com/sirupsen/logrus"

	"cpu-scheduler/internal/core"
)

// ScheduleRoundRobin dispatches the ready queue in FIFO order for at most
// timeQuantum units per dispatch. Processes that arrive during a slice are
// queued ahead of the preempted process. Every dispatch is its own segment.
//
// timeQuantum must be positive; Lookup validates it.
func ScheduleRoundRobin(processes []*core.Process, timeQuantum int) core.Timeline {
	logrus.Debugf("running roundRobin algorithm with timeQuantum = %d", timeQuantum)
	cpu := core.NewCPU()
	incoming := newArrivals(processes)
	readyQueue := NewProcessQueue()

	for incoming.pending() || readyQueue.Len() > 0 {
		incoming.admit(cpu.Clock(), readyQueue)
		p, ok := readyQueue.RemoveFromTop()
		if !ok {
			cpu.IdleUntil(incoming.next())
			continue
		}

		cpu.Execute(p, min(timeQuantum, p.RemainingTime))
		incoming.admit(cpu.Clock(), readyQueue)
		if !p.Finished() {
			logrus.Tracef("pid: %d quantum expired at %d, back to ready queue", p.ID, cpu.Clock())
			readyQueue.AddToEnd(p)
		}
	}
	return cpu.Timeline()
}
