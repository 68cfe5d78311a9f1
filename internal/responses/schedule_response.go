package responses

type ExecutionInterval struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

type ProcessResponse struct {
	Label          string              `json:"label"`
	Burst          int                 `json:"burst"`
	Arrival        int                 `json:"arrival"`
	Queue          int                 `json:"queue"`
	StartTime      int                 `json:"start_time"`
	WaitingTime    int                 `json:"waiting_time"`
	CompletionTime int                 `json:"completion_time"`
	ResponseTime   int                 `json:"response_time"`
	TurnAroundTime int                 `json:"turn_around_time"`
	ExecutionLog   []ExecutionInterval `json:"execution_log"`
}

type DispatchResponse struct {
	Tick     int    `json:"tick"`
	Label    string `json:"label"`
	Queue    int    `json:"queue"`
	RunFor   int    `json:"run_for"`
	Demoted  bool   `json:"demoted,omitempty"`
	Finished bool   `json:"finished,omitempty"`
}

type QueueResponse struct {
	Level   int    `json:"level"`
	Policy  string `json:"policy"`
	Quantum int    `json:"quantum,omitempty"`
	Demote  bool   `json:"demote"`
	Rotate  bool   `json:"rotate,omitempty"`
}

type SchemeResponse struct {
	Scheme int             `json:"scheme"`
	Queues []QueueResponse `json:"queues"`
}

type ScheduleResponse struct {
	Scheme                int                `json:"scheme"`
	TotalTime             int                `json:"total_time"`
	IdleTime              int                `json:"idle_time"`
	AverageWaitingTime    float64            `json:"average_waiting_time"`
	AverageCompletionTime float64            `json:"average_completion_time"`
	AverageResponseTime   float64            `json:"average_response_time"`
	AverageTurnAroundTime float64            `json:"average_turn_around_time"`
	CpuUtilization        float64            `json:"cpu_utilization"`
	CpuThroughput         float64            `json:"cpu_throughput"`
	Details               []ProcessResponse  `json:"details"`
	Trace                 []DispatchResponse `json:"trace,omitempty"`
}

// SchemeResult is one entry of a multi-scheme run; exactly one of Result
// and Error is set.
type SchemeResult struct {
	Scheme int               `json:"scheme"`
	Result *ScheduleResponse `json:"result,omitempty"`
	Error  string            `json:"error,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
