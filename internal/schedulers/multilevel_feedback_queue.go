package schedulers

import (
	"github.com/sirupsen/logrus"

	"cpu-scheduler/internal/core"
)

// ScheduleMultilevelFeedbackQueue runs one round robin level per entry of
// levelsTimeQuantum plus a final first-come-first-served level. Arrivals enter
// the top level; a process that uses its whole quantum without finishing
// drops one level. The highest non-empty level is always served first and a
// dispatch is never cut short by a higher level arrival.
//
// Every quantum must be positive; Lookup validates them.
func ScheduleMultilevelFeedbackQueue(processes []*core.Process, levelsTimeQuantum []int) core.Timeline {
	logrus.Debugf("running mlfq algorithm with levels timeQuantum = %v", levelsTimeQuantum)
	cpu := core.NewCPU()
	incoming := newArrivals(processes)

	levels := make([]*ProcessQueue, len(levelsTimeQuantum)+1)
	for i := range levels {
		levels[i] = NewProcessQueue()
	}
	lastLevel := len(levels) - 1

	for incoming.pending() || queued(levels) {
		incoming.admit(cpu.Clock(), levels[0])
		level, p := nextFromLevels(levels)
		if p == nil {
			cpu.IdleUntil(incoming.next())
			continue
		}

		units := p.RemainingTime
		if level < lastLevel {
			units = min(levelsTimeQuantum[level], units)
		}
		cpu.Execute(p, units)
		incoming.admit(cpu.Clock(), levels[0])
		if !p.Finished() {
			next := min(level+1, lastLevel)
			logrus.Tracef("pid: %d demoted to level %d at %d", p.ID, next, cpu.Clock())
			levels[next].AddToEnd(p)
		}
	}
	return cpu.Timeline()
}

func nextFromLevels(levels []*ProcessQueue) (int, *core.Process) {
	for i, q := range levels {
		if p, ok := q.RemoveFromTop(); ok {
			return i, p
		}
	}
	return -1, nil
}

func queued(levels []*ProcessQueue) bool {
	for _, q := range levels {
		if q.Len() > 0 {
			return true
		}
	}
	return false
}
