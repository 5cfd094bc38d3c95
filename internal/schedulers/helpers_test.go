package schedulers

import (
	"cpu-scheduler/internal/core"
)

// job is (arrival, burst, priority).
type job [3]int

func newRegistry(jobs ...job) *core.Registry {
	r := core.NewRegistry()
	for _, j := range jobs {
		r.Add(j[0], j[1], j[2])
	}
	return r
}

// timelineOf builds a timeline from (pid, start, end) triples.
func timelineOf(segments ...[3]int) core.Timeline {
	timeline := make(core.Timeline, 0, len(segments))
	for _, s := range segments {
		timeline = append(timeline, core.Segment{ProcessID: s[0], Start: s[1], End: s[2]})
	}
	return timeline
}

func completions(processes []*core.Process) map[int]int {
	got := make(map[int]int, len(processes))
	for _, p := range processes {
		got[p.ID] = p.CompletionTime
	}
	return got
}
