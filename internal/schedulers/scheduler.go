package schedulers

import (
	"errors"
	"fmt"
	"slices"
	"sort"

	"cpu-scheduler/internal/core"
)

var (
	ErrUnknownAlgorithm   = errors.New("unknown scheduling algorithm")
	ErrInvalidTimeQuantum = errors.New("time quantum must be positive")
)

// Algorithm names accepted by Lookup.
const (
	FirstComeFirstServe        = "fcfs"
	ShortestJobFirst           = "sjf"
	ShortestRemainingTimeFirst = "srtf"
	RoundRobin                 = "rr"
	Priority                   = "priority"
	PriorityPreemptive         = "priority-preemptive"
	MultilevelFeedbackQueue    = "mlfq"
)

// Names lists every algorithm in presentation order.
var Names = []string{
	FirstComeFirstServe,
	ShortestJobFirst,
	ShortestRemainingTimeFirst,
	RoundRobin,
	Priority,
	PriorityPreemptive,
	MultilevelFeedbackQueue,
}

// Algorithm schedules already reset processes on a single processor. It writes
// CompletionTime onto every process and returns the execution timeline.
type Algorithm func(processes []*core.Process) core.Timeline

// Options carries the parameters of the quantum based algorithms.
type Options struct {
	TimeQuantum       int
	LevelsTimeQuantum []int
}

// Lookup resolves an algorithm by name and validates its parameters.
func Lookup(name string, opts Options) (Algorithm, error) {
	switch name {
	case FirstComeFirstServe:
		return ScheduleFirstComeFirstServe, nil
	case ShortestJobFirst:
		return ScheduleShortestJobFirst, nil
	case ShortestRemainingTimeFirst:
		return ScheduleShortestRemainingTimeFirst, nil
	case Priority:
		return SchedulePriority, nil
	case PriorityPreemptive:
		return SchedulePriorityPreemptive, nil
	case RoundRobin:
		if opts.TimeQuantum <= 0 {
			return nil, fmt.Errorf("%w: round robin got %d", ErrInvalidTimeQuantum, opts.TimeQuantum)
		}
		quantum := opts.TimeQuantum
		return func(processes []*core.Process) core.Timeline {
			return ScheduleRoundRobin(processes, quantum)
		}, nil
	case MultilevelFeedbackQueue:
		for i, q := range opts.LevelsTimeQuantum {
			if q <= 0 {
				return nil, fmt.Errorf("%w: level %d got %d", ErrInvalidTimeQuantum, i, q)
			}
		}
		levels := slices.Clone(opts.LevelsTimeQuantum)
		return func(processes []*core.Process) core.Timeline {
			return ScheduleMultilevelFeedbackQueue(processes, levels)
		}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Run looks up name, schedules processes and derives their metrics.
// processes must already be reset.
func Run(name string, processes []*core.Process, opts Options) (core.Timeline, error) {
	algorithm, err := Lookup(name, opts)
	if err != nil {
		return nil, err
	}
	timeline := algorithm(processes)
	DeriveMetrics(processes)
	return timeline, nil
}

// lessFunc orders two eligible processes; the smaller one is dispatched.
type lessFunc func(a, b *core.Process) bool

func byBurstTime(a, b *core.Process) bool {
	if a.BurstTime != b.BurstTime {
		return a.BurstTime < b.BurstTime
	}
	return a.ArrivalTime < b.ArrivalTime
}

func byRemainingTime(a, b *core.Process) bool {
	if a.RemainingTime != b.RemainingTime {
		return a.RemainingTime < b.RemainingTime
	}
	return a.ArrivalTime < b.ArrivalTime
}

func byPriority(a, b *core.Process) bool {
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	return a.ArrivalTime < b.ArrivalTime
}

// sortByArrival returns a copy of processes ordered by (arrival, id).
func sortByArrival(processes []*core.Process) []*core.Process {
	sorted := slices.Clone(processes)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].ArrivalTime != sorted[j].ArrivalTime {
			return sorted[i].ArrivalTime < sorted[j].ArrivalTime
		}
		return sorted[i].ID < sorted[j].ID
	})
	return sorted
}

// selectEligible returns the minimum of the processes that have arrived by
// clock. Equal keys keep the earliest candidate in pending order, so pending
// must be ordered by (arrival, id). Returns nil when nothing has arrived.
func selectEligible(pending []*core.Process, clock int, less lessFunc) *core.Process {
	var best *core.Process
	for _, p := range pending {
		if p.ArrivalTime > clock {
			continue
		}
		if best == nil || less(p, best) {
			best = p
		}
	}
	return best
}

func earliestArrival(pending []*core.Process) int {
	earliest := pending[0].ArrivalTime
	for _, p := range pending[1:] {
		earliest = min(earliest, p.ArrivalTime)
	}
	return earliest
}

func remove(pending []*core.Process, p *core.Process) []*core.Process {
	i := slices.Index(pending, p)
	if i < 0 {
		return pending
	}
	return slices.Delete(pending, i, i+1)
}

// scheduleNonPreemptive repeatedly runs the minimum eligible process to
// completion.
func scheduleNonPreemptive(processes []*core.Process, less lessFunc) core.Timeline {
	cpu := core.NewCPU()
	pending := sortByArrival(processes)
	for len(pending) > 0 {
		next := selectEligible(pending, cpu.Clock(), less)
		if next == nil {
			cpu.IdleUntil(earliestArrival(pending))
			continue
		}
		cpu.Execute(next, next.RemainingTime)
		pending = remove(pending, next)
	}
	return cpu.Timeline()
}

// schedulePreemptive re-selects the minimum eligible process every time unit.
// Consecutive units of the same process form one segment.
func schedulePreemptive(processes []*core.Process, less lessFunc) core.Timeline {
	cpu := core.NewCPU()
	pending := sortByArrival(processes)
	for len(pending) > 0 {
		next := selectEligible(pending, cpu.Clock(), less)
		if next == nil {
			cpu.IdleUntil(earliestArrival(pending))
			continue
		}
		cpu.Step(next)
		if next.Finished() {
			pending = remove(pending, next)
		}
	}
	return cpu.Timeline()
}
