package core

// Process is one schedulable unit of work. ID, ArrivalTime, BurstTime and
// Priority are fixed at creation; the remaining fields are per-run state.
type Process struct {
	ID          int `json:"process_id"`
	ArrivalTime int `json:"arrival_time"`
	BurstTime   int `json:"burst_time"`
	Priority    int `json:"priority"` // lower value = higher priority

	RemainingTime  int `json:"remaining_time"`
	CompletionTime int `json:"completion_time"`
	TurnaroundTime int `json:"turnaround_time"`
	WaitingTime    int `json:"waiting_time"`
}

// Reset restores the per-run fields so the process can be scheduled again.
func (p *Process) Reset() {
	p.RemainingTime = p.BurstTime
	p.CompletionTime = 0
	p.TurnaroundTime = 0
	p.WaitingTime = 0
}

// Finished reports whether the process has no work left.
func (p *Process) Finished() bool {
	return p.RemainingTime == 0
}

// Registry holds the process definitions of one session in insertion order.
// It is not safe for concurrent use.
type Registry struct {
	processes []*Process
}

func NewRegistry() *Registry {
	return &Registry{processes: make([]*Process, 0)}
}

// Add appends a process and returns its id.
//
// Ids are assigned as current count + 1, so numbering restarts at 1 after
// Clear. Callers holding ids from a previous session may see collisions.
func (r *Registry) Add(arrivalTime, burstTime, priority int) int {
	p := &Process{
		ID:          len(r.processes) + 1,
		ArrivalTime: arrivalTime,
		BurstTime:   burstTime,
		Priority:    priority,
	}
	p.Reset()
	r.processes = append(r.processes, p)
	return p.ID
}

// Reset restores every process's per-run fields. It must be called before
// each scheduling run over Processes.
func (r *Registry) Reset() {
	for _, p := range r.processes {
		p.Reset()
	}
}

// Clear removes all processes.
func (r *Registry) Clear() {
	r.processes = r.processes[:0:0]
}

func (r *Registry) Len() int {
	return len(r.processes)
}

// List returns value copies of the processes in insertion order.
func (r *Registry) List() []Process {
	list := make([]Process, 0, len(r.processes))
	for _, p := range r.processes {
		list = append(list, *p)
	}
	return list
}

// Processes returns the live process records. Scheduling functions write
// their results onto these records.
func (r *Registry) Processes() []*Process {
	return r.processes
}

// Snapshot returns freshly reset copies of every process. Runs over
// different snapshots never observe each other's state.
func (r *Registry) Snapshot() []*Process {
	snapshot := make([]*Process, 0, len(r.processes))
	for _, p := range r.processes {
		c := *p
		c.Reset()
		snapshot = append(snapshot, &c)
	}
	return snapshot
}
