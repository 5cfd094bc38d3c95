package schedulers

import "cpu-scheduler/internal/core"

// ProcessQueue is the FIFO ready queue of the quantum based algorithms.
type ProcessQueue struct {
	queue []*core.Process
}

func NewProcessQueue() *ProcessQueue {
	return &ProcessQueue{queue: make([]*core.Process, 0)}
}

func (q *ProcessQueue) AddToEnd(p *core.Process) {
	q.queue = append(q.queue, p)
}

// RemoveFromTop pops the head of the queue. ok is false when it is empty.
func (q *ProcessQueue) RemoveFromTop() (p *core.Process, ok bool) {
	if len(q.queue) == 0 {
		return nil, false
	}
	p = q.queue[0]
	q.queue = q.queue[1:]
	return p, true
}

func (q *ProcessQueue) Len() int {
	return len(q.queue)
}

// arrivals feeds processes into ready queues in (arrival, id) order as the
// clock passes their arrival time.
type arrivals struct {
	incoming []*core.Process
}

func newArrivals(processes []*core.Process) *arrivals {
	return &arrivals{incoming: sortByArrival(processes)}
}

// admit moves every process that has arrived by clock into q.
func (a *arrivals) admit(clock int, q *ProcessQueue) {
	for len(a.incoming) > 0 && a.incoming[0].ArrivalTime <= clock {
		q.AddToEnd(a.incoming[0])
		a.incoming = a.incoming[1:]
	}
}

func (a *arrivals) pending() bool {
	return len(a.incoming) > 0
}

func (a *arrivals) next() int {
	return a.incoming[0].ArrivalTime
}
