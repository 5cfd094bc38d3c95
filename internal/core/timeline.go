package core

import (
	"errors"
	"fmt"
)

var ErrInvalidTimeline = errors.New("invalid timeline")

// Segment is one contiguous interval [Start, End) during which a single
// process occupies the processor.
type Segment struct {
	ProcessID int `json:"process_id"`
	Start     int `json:"start_time"`
	End       int `json:"end_time"`
}

func (s Segment) Duration() int {
	return s.End - s.Start
}

// Timeline is the ordered execution history of one scheduling run.
type Timeline []Segment

// Span returns the latest end time, or 0 for an empty timeline.
func (t Timeline) Span() int {
	end := 0
	for _, s := range t {
		if s.End > end {
			end = s.End
		}
	}
	return end
}

// BusyTime is the sum of all segment durations.
func (t Timeline) BusyTime() int {
	busy := 0
	for _, s := range t {
		busy += s.Duration()
	}
	return busy
}

// CpuMetric summarizes how the processor spent a run.
type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// Metric reports total, busy and idle time of the run. Total time is
// measured from time 0 to the end of the last segment.
func (t Timeline) Metric() CpuMetric {
	total, busy := t.Span(), t.BusyTime()
	return CpuMetric{
		TotalTime:       total,
		UtilizationTime: busy,
		IdleTime:        total - busy,
	}
}

// ContextSwitches counts the transitions between segments of different
// processes.
func (t Timeline) ContextSwitches() int {
	switches := 0
	for i := 1; i < len(t); i++ {
		if t[i].ProcessID != t[i-1].ProcessID {
			switches++
		}
	}
	return switches
}

// Validate checks the timeline against the processes it was produced from:
// every segment is non-empty, starts never decrease, segments never overlap,
// per-process durations add up to the burst time and each process's last
// segment ends at its completion time.
func (t Timeline) Validate(processes []*Process) error {
	served := make(map[int]int, len(processes))
	lastEnd := make(map[int]int, len(processes))
	for i, s := range t {
		if s.End <= s.Start {
			return fmt.Errorf("%w: segment %d of process %d is empty [%d, %d)", ErrInvalidTimeline, i, s.ProcessID, s.Start, s.End)
		}
		if i > 0 {
			prev := t[i-1]
			if s.Start < prev.Start {
				return fmt.Errorf("%w: segment %d starts at %d before previous start %d", ErrInvalidTimeline, i, s.Start, prev.Start)
			}
			if s.Start < prev.End {
				return fmt.Errorf("%w: segment %d of process %d overlaps process %d", ErrInvalidTimeline, i, s.ProcessID, prev.ProcessID)
			}
		}
		served[s.ProcessID] += s.Duration()
		lastEnd[s.ProcessID] = s.End
	}

	for _, p := range processes {
		if served[p.ID] != p.BurstTime {
			return fmt.Errorf("%w: process %d served %d units, burst is %d", ErrInvalidTimeline, p.ID, served[p.ID], p.BurstTime)
		}
		if lastEnd[p.ID] != p.CompletionTime {
			return fmt.Errorf("%w: process %d last runs until %d, completion is %d", ErrInvalidTimeline, p.ID, lastEnd[p.ID], p.CompletionTime)
		}
		delete(served, p.ID)
	}
	for id := range served {
		return fmt.Errorf("%w: segment for unknown process %d", ErrInvalidTimeline, id)
	}
	return nil
}
