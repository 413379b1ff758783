package types

// Assignment binds one task to one machine with a committed execution
// window. Finish - Start equals the task's computation cost on that
// machine; a downstream executor must not start the task before Start.
type Assignment struct {
	TaskID    string  `json:"task_id"`
	MachineID string  `json:"machine_id"`
	Start     float64 `json:"start"`
	Finish    float64 `json:"finish"`
}

// Plan is the complete output of one planning run: an assignment for every
// task of the workflow, in input task order. A plan is never partial; a
// failed run produces no plan at all.
type Plan struct {
	ID          string       `json:"id"`
	Assignments []Assignment `json:"assignments"`
	Makespan    float64      `json:"makespan"`
}
