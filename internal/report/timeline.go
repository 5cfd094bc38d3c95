package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"cpu-scheduler/internal/responses"
)

// unitWidth is the number of columns drawn per time unit.
const unitWidth = 3

var palette = []lipgloss.Color{"33", "208", "34", "160", "135", "94", "205", "244", "142", "37"}

func processStyle(pid int) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(palette[pid%len(palette)]).
		Foreground(lipgloss.Color("231")).
		Bold(true)
}

// WriteTimeline draws one horizontal bar per segment, labeled by process id,
// with a time axis underneath. Idle gaps are drawn as blank space.
func WriteTimeline(w io.Writer, timeline []responses.TimelineSegment, color bool) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	if len(timeline) == 0 {
		_, _ = fmt.Fprintf(w, "%s\n\n", noData)
		return
	}

	var bar, axis strings.Builder
	column, clock := 0, 0
	writeTick := func(t int) {
		if axis.Len() > column {
			return // previous label still occupies this column
		}
		axis.WriteString(strings.Repeat(" ", column-axis.Len()))
		axis.WriteString(fmt.Sprint(t))
	}

	for _, s := range timeline {
		if s.StartTime > clock {
			writeTick(clock)
			width := (s.StartTime - clock) * unitWidth
			bar.WriteString(strings.Repeat(" ", width))
			column += width
		}
		writeTick(s.StartTime)

		label := fmt.Sprintf("P%d", s.ProcessId)
		width := max((s.EndTime-s.StartTime)*unitWidth, len(label)+2)
		if color {
			bar.WriteString(processStyle(s.ProcessId).Width(width).Align(lipgloss.Center).Render(label))
		} else {
			pad := width - 1 - len(label)
			bar.WriteString("|" + strings.Repeat(" ", pad/2) + label + strings.Repeat(" ", pad-pad/2))
		}
		column += width
		clock = s.EndTime
	}
	writeTick(clock)

	_, _ = fmt.Fprintln(w, bar.String())
	_, _ = fmt.Fprintf(w, "%s\n\n", axis.String())
}
