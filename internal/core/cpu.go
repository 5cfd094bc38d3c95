package core

import "fmt"

// CPU is the single simulated processor. It owns the clock and the timeline
// of one scheduling run.
type CPU struct {
	clock    int
	timeline Timeline
}

func NewCPU() *CPU {
	return &CPU{timeline: make(Timeline, 0)}
}

func (c *CPU) Clock() int {
	return c.clock
}

// IdleUntil jumps the clock forward to t. No segment is recorded for the gap.
func (c *CPU) IdleUntil(t int) {
	if t > c.clock {
		c.clock = t
	}
}

// Execute dispatches p for units time units as a new segment and records the
// completion time if p finishes.
func (c *CPU) Execute(p *Process, units int) {
	if units <= 0 || units > p.RemainingTime {
		panic(fmt.Sprintf("Execute: pid %d cannot run %d units with %d remaining", p.ID, units, p.RemainingTime))
	}
	c.timeline = append(c.timeline, Segment{ProcessID: p.ID, Start: c.clock, End: c.clock + units})
	c.advance(p, units)
}

// Step runs p for a single time unit. A step that directly continues the
// previous segment of the same process extends that segment instead of
// opening a new one.
func (c *CPU) Step(p *Process) {
	if p.RemainingTime <= 0 {
		panic(fmt.Sprintf("Step: pid %d has no remaining time", p.ID))
	}
	if n := len(c.timeline); n > 0 && c.timeline[n-1].ProcessID == p.ID && c.timeline[n-1].End == c.clock {
		c.timeline[n-1].End++
	} else {
		c.timeline = append(c.timeline, Segment{ProcessID: p.ID, Start: c.clock, End: c.clock + 1})
	}
	c.advance(p, 1)
}

func (c *CPU) advance(p *Process, units int) {
	c.clock += units
	p.RemainingTime -= units
	if p.RemainingTime == 0 {
		p.CompletionTime = c.clock
	}
}

func (c *CPU) Timeline() Timeline {
	return c.timeline
}
