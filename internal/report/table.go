// Package report renders scheduling results for terminals.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/util"
)

const noData = "no data"

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

// WriteSchedule writes the title, the timeline chart and the metrics table of
// one run.
func WriteSchedule(w io.Writer, title string, response responses.ScheduleResponse, color bool) {
	outputTitle(w, title)
	WriteTimeline(w, response.Timeline, color)
	WriteTable(w, response.Details)
}

// WriteTable writes one row per process and the column averages. Averages
// read "no data" for an empty workload.
func WriteTable(w io.Writer, details []responses.ProcessResponse) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Arrival", "Burst", "Priority", "Completion", "Turnaround", "Waiting"})
	for _, d := range details {
		table.Append([]string{
			fmt.Sprint(d.ProcessId),
			fmt.Sprint(d.ArrivalTime),
			fmt.Sprint(d.BurstTime),
			fmt.Sprint(d.Priority),
			fmt.Sprint(d.CompletionTime),
			fmt.Sprint(d.TurnAroundTime),
			fmt.Sprint(d.WaitingTime),
		})
	}

	turnaround, waiting := noData, noData
	if averageWaitingTime, _, averageTurnAroundTime, ok := util.CalculateAverage(details); ok {
		turnaround = fmt.Sprintf("Average\n%.2f", averageTurnAroundTime)
		waiting = fmt.Sprintf("Average\n%.2f", averageWaitingTime)
	}
	table.SetFooter([]string{"", "", "", "", "", turnaround, waiting})
	table.Render()
}

// WriteComparison writes one summary row per algorithm.
func WriteComparison(w io.Writer, results []responses.ScheduleResponse) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Avg Waiting", "Avg Turnaround", "Avg Response", "Total", "Utilization", "Throughput", "Switches"})
	for _, r := range results {
		if len(r.Details) == 0 {
			table.Append([]string{r.Algorithm, noData, noData, noData, "0", noData, noData, "0"})
			continue
		}
		table.Append([]string{
			r.Algorithm,
			fmt.Sprintf("%.2f", r.AverageWaitingTime),
			fmt.Sprintf("%.2f", r.AverageTurnAroundTime),
			fmt.Sprintf("%.2f", r.AverageResponseTime),
			fmt.Sprint(r.TotalTime),
			fmt.Sprintf("%.0f%%", r.CpuUtilization*100),
			fmt.Sprintf("%.2f/t", r.CpuThroughput),
			fmt.Sprint(r.ContextSwitches),
		})
	}
	table.Render()
}
