package requests

type Job struct {
	ArrivalTime int `json:"arrival_time"`
	BurstTime   int `json:"burst_time"`
	Priority    int `json:"priority"`
}

type ScheduleRequests struct {
	Jobs              []Job `json:"jobs"`
	TimeQuantum       int   `json:"time_quantum"`
	LevelsTimeQuantum []int `json:"levels_time_quantum"`
}
