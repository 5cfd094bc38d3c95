package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler/internal/schedulers"
	"cpu-scheduler/internal/workload"
)

func testWorkload() *workload.Spec {
	return &workload.Spec{Processes: []workload.ProcessSpec{
		{ArrivalTime: 0, BurstTime: 8, Priority: 2},
		{ArrivalTime: 1, BurstTime: 4, Priority: 1},
		{ArrivalTime: 2, BurstTime: 9, Priority: 3},
	}}
}

func TestRunAlgorithm(t *testing.T) {
	var buf bytes.Buffer
	registry := testWorkload().Registry()

	err := runAlgorithm(&buf, registry, schedulers.ShortestRemainingTimeFirst, schedulers.Options{}, false)

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "Shortest-remaining-time-first")
	assert.Contains(t, out, "Gantt schedule")
	assert.Contains(t, out, "Schedule table")
	assert.Equal(t, 12, registry.List()[0].CompletionTime)
}

func TestRunAlgorithm_InvalidQuantum(t *testing.T) {
	var buf bytes.Buffer

	err := runAlgorithm(&buf, testWorkload().Registry(), schedulers.RoundRobin, schedulers.Options{TimeQuantum: -1}, false)

	assert.ErrorIs(t, err, schedulers.ErrInvalidTimeQuantum)
	assert.Empty(t, buf.String())
}

func TestCompareAlgorithms(t *testing.T) {
	var buf bytes.Buffer

	err := compareAlgorithms(&buf, testWorkload().Registry(), schedulers.Options{TimeQuantum: 2, LevelsTimeQuantum: []int{2}})

	require.NoError(t, err)
	for _, name := range schedulers.Names {
		assert.Contains(t, buf.String(), name)
	}
}
