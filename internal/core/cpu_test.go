package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCPU_Execute_RecordsSegmentAndCompletion(t *testing.T) {
	cpu := NewCPU()
	p := &Process{ID: 1, BurstTime: 5, RemainingTime: 5}

	cpu.IdleUntil(2)
	cpu.Execute(p, 3)
	assert.Equal(t, 2, p.RemainingTime)
	assert.Zero(t, p.CompletionTime)

	cpu.Execute(p, 2)
	assert.Equal(t, 7, cpu.Clock())
	assert.Equal(t, 7, p.CompletionTime)
	assert.Equal(t, Timeline{{1, 2, 5}, {1, 5, 7}}, cpu.Timeline())
}

func TestCPU_Step_ExtendsContiguousSegment(t *testing.T) {
	// GIVEN two processes stepped as 1, 1, 2, 1
	cpu := NewCPU()
	p1 := &Process{ID: 1, BurstTime: 3, RemainingTime: 3}
	p2 := &Process{ID: 2, BurstTime: 1, RemainingTime: 1}

	cpu.Step(p1)
	cpu.Step(p1)
	cpu.Step(p2)
	cpu.Step(p1)

	// THEN the first two units coalesce and the return of p1 opens a new segment
	assert.Equal(t, Timeline{{1, 0, 2}, {2, 2, 3}, {1, 3, 4}}, cpu.Timeline())
	assert.Equal(t, 3, p2.CompletionTime)
	assert.Equal(t, 4, p1.CompletionTime)
}

func TestCPU_Step_DoesNotBridgeIdleGap(t *testing.T) {
	cpu := NewCPU()
	p := &Process{ID: 1, BurstTime: 2, RemainingTime: 2}

	cpu.Step(p)
	cpu.IdleUntil(5)
	cpu.Step(p)

	assert.Equal(t, Timeline{{1, 0, 1}, {1, 5, 6}}, cpu.Timeline())
}

func TestCPU_IdleUntil_NeverMovesBackwards(t *testing.T) {
	cpu := NewCPU()
	cpu.IdleUntil(4)
	cpu.IdleUntil(1)
	assert.Equal(t, 4, cpu.Clock())
}

func TestCPU_PanicsOnOverrun(t *testing.T) {
	cpu := NewCPU()
	done := &Process{ID: 1, BurstTime: 2}

	assert.Panics(t, func() { cpu.Step(done) })
	assert.Panics(t, func() { cpu.Execute(&Process{ID: 2, BurstTime: 2, RemainingTime: 2}, 3) })
	assert.Panics(t, func() { cpu.Execute(&Process{ID: 3, BurstTime: 2, RemainingTime: 2}, 0) })
}
