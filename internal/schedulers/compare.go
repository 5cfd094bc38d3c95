package schedulers

import (
	"sync"

	"github.com/sirupsen/logrus"

	"cpu-scheduler/internal/core"
)

// Snapshotter hands out independent, reset copies of a workload.
type Snapshotter interface {
	Snapshot() []*core.Process
}

// Result is the outcome of one algorithm over its own workload copy.
type Result struct {
	Algorithm string
	Processes []*core.Process
	Timeline  core.Timeline
}

// Compare runs every algorithm in names over its own snapshot of workload.
// Runs execute concurrently; results follow the order of names.
func Compare(workload Snapshotter, names []string, opts Options) ([]Result, error) {
	algorithms := make([]Algorithm, len(names))
	for i, name := range names {
		algorithm, err := Lookup(name, opts)
		if err != nil {
			return nil, err
		}
		algorithms[i] = algorithm
	}

	results := make([]Result, len(names))
	var wg sync.WaitGroup
	wg.Add(len(names))
	for i := range names {
		go func(i int) {
			defer wg.Done()
			processes := workload.Snapshot()
			timeline := algorithms[i](processes)
			DeriveMetrics(processes)
			results[i] = Result{Algorithm: names[i], Processes: processes, Timeline: timeline}
		}(i)
	}
	wg.Wait()

	logrus.Debugf("compared %d algorithms", len(names))
	return results, nil
}
