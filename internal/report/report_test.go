package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"cpu-scheduler/internal/responses"
)

var fcfsResponse = responses.ScheduleResponse{
	Algorithm:             "fcfs",
	TotalTime:             16,
	AverageWaitingTime:    10.0 / 3,
	AverageTurnAroundTime: 26.0 / 3,
	Timeline: []responses.TimelineSegment{
		{ProcessId: 1, StartTime: 0, EndTime: 5},
		{ProcessId: 2, StartTime: 5, EndTime: 8},
		{ProcessId: 3, StartTime: 8, EndTime: 16},
	},
	Details: []responses.ProcessResponse{
		{ProcessId: 1, ArrivalTime: 0, BurstTime: 5, CompletionTime: 5, TurnAroundTime: 5, WaitingTime: 0},
		{ProcessId: 2, ArrivalTime: 1, BurstTime: 3, CompletionTime: 8, TurnAroundTime: 7, WaitingTime: 4, ResponseTime: 4},
		{ProcessId: 3, ArrivalTime: 2, BurstTime: 8, CompletionTime: 16, TurnAroundTime: 14, WaitingTime: 6, ResponseTime: 6},
	},
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer

	WriteTable(&buf, fcfsResponse.Details)

	out := buf.String()
	assert.Contains(t, out, "Schedule table")
	assert.Contains(t, out, "TURNAROUND")
	assert.Contains(t, out, "16")
	assert.Contains(t, out, "8.67")
	assert.Contains(t, out, "3.33")
}

func TestWriteTable_NoData(t *testing.T) {
	var buf bytes.Buffer

	WriteTable(&buf, nil)

	assert.Contains(t, strings.ToLower(buf.String()), noData)
}

func TestWriteTimeline_Plain(t *testing.T) {
	var buf bytes.Buffer

	WriteTimeline(&buf, fcfsResponse.Timeline, false)

	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, "Gantt schedule", lines[0])
	assert.Equal(t, "|      P1      |   P2   |          P3           ", lines[1])
	assert.Equal(t, "0              5        8                       16", lines[2])
}

func TestWriteTimeline_IdleGapIsBlank(t *testing.T) {
	var buf bytes.Buffer

	WriteTimeline(&buf, []responses.TimelineSegment{{ProcessId: 1, StartTime: 2, EndTime: 4}}, false)

	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, "      | P1  ", lines[1])
	assert.Equal(t, "0     2     4", lines[2])
}

func TestWriteTimeline_Empty(t *testing.T) {
	var buf bytes.Buffer

	WriteTimeline(&buf, nil, true)

	assert.Contains(t, buf.String(), noData)
}

func TestWriteSchedule_Colored(t *testing.T) {
	var buf bytes.Buffer

	WriteSchedule(&buf, "First-come, first-serve", fcfsResponse, true)

	out := buf.String()
	assert.Contains(t, out, "First-come, first-serve")
	for _, label := range []string{"P1", "P2", "P3"} {
		assert.Contains(t, out, label)
	}
}

func TestWriteComparison(t *testing.T) {
	var buf bytes.Buffer

	WriteComparison(&buf, []responses.ScheduleResponse{
		fcfsResponse,
		{Algorithm: "rr"},
	})

	out := buf.String()
	assert.Contains(t, out, "fcfs")
	assert.Contains(t, out, "rr")
	assert.Contains(t, out, "8.67")
	assert.Contains(t, out, noData)
}
