package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/report"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
	"cpu-scheduler/internal/workload"
)

var (
	workloadPath string
	algorithm    string
	timeQuantum  int
	noColor      bool
)

var titles = map[string]string{
	schedulers.FirstComeFirstServe:        "First-come, first-serve",
	schedulers.ShortestJobFirst:           "Shortest-job-first",
	schedulers.ShortestRemainingTimeFirst: "Shortest-remaining-time-first",
	schedulers.RoundRobin:                 "Round-robin",
	schedulers.Priority:                   "Priority",
	schedulers.PriorityPreemptive:         "Priority (preemptive)",
	schedulers.MultilevelFeedbackQueue:    "Multilevel feedback queue",
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Schedule a workload file with one algorithm",
	Run: func(cmd *cobra.Command, args []string) {
		registry := loadWorkload(workloadPath)
		if err := runAlgorithm(os.Stdout, registry, algorithm, options(), !noColor); err != nil {
			logrus.Fatalf("Scheduling failed: %v", err)
		}
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Schedule a workload file with every algorithm and compare averages",
	Run: func(cmd *cobra.Command, args []string) {
		registry := loadWorkload(workloadPath)
		if err := compareAlgorithms(os.Stdout, registry, options()); err != nil {
			logrus.Fatalf("Comparison failed: %v", err)
		}
	},
}

func loadWorkload(path string) *core.Registry {
	spec, err := workload.LoadFile(path)
	if err != nil {
		logrus.Fatalf("Failed to load workload: %v", err)
	}
	if len(spec.Processes) == 0 {
		logrus.Warnf("workload %s has no processes", path)
	}
	return spec.Registry()
}

func options() schedulers.Options {
	cfg := loadConfig()
	opts := schedulers.Options{
		TimeQuantum:       cfg.RoundRobinTimeQuantum,
		LevelsTimeQuantum: cfg.MultilevelFeedbackQueueLevelsTimeQuantum,
	}
	if timeQuantum != 0 {
		opts.TimeQuantum = timeQuantum
	}
	return opts
}

func runAlgorithm(w io.Writer, registry *core.Registry, name string, opts schedulers.Options, color bool) error {
	registry.Reset()
	processes := registry.Processes()
	timeline, err := schedulers.Run(name, processes, opts)
	if err != nil {
		return err
	}
	title, ok := titles[name]
	if !ok {
		title = name
	}
	report.WriteSchedule(w, title, schedulers.GenerateResponse(name, processes, timeline), color)
	return nil
}

func compareAlgorithms(w io.Writer, registry *core.Registry, opts schedulers.Options) error {
	results, err := schedulers.Compare(registry, schedulers.Names, opts)
	if err != nil {
		return err
	}
	summaries := make([]responses.ScheduleResponse, 0, len(results))
	for _, r := range results {
		summaries = append(summaries, schedulers.GenerateResponse(r.Algorithm, r.Processes, r.Timeline))
	}
	report.WriteComparison(w, summaries)
	return nil
}

func init() {
	for _, c := range []*cobra.Command{runCmd, compareCmd} {
		c.Flags().StringVarP(&workloadPath, "workload", "w", "", "Path to workload file (.yaml, .yml or .csv)")
		c.Flags().IntVarP(&timeQuantum, "quantum", "q", 0, "Round robin time quantum (default from config)")
		_ = c.MarkFlagRequired("workload")
		rootCmd.AddCommand(c)
	}
	runCmd.Flags().StringVarP(&algorithm, "algorithm", "a", schedulers.FirstComeFirstServe,
		fmt.Sprintf("Scheduling algorithm (%s)", strings.Join(schedulers.Names, ", ")))
	runCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colorized timeline")
}
