// Package estimator provides computation-cost estimation strategies for
// the planner. The planner receives an Estimator at construction time;
// predictive and static planning are the same planner configured with
// different estimators.
package estimator

import (
	"wfsim/heft-planner/pkg/types"
)

// Estimator predicts how long a task would run on a machine, in abstract
// time units. Implementations must behave as pure functions: repeated
// calls with the same inputs return the same value and mutate nothing.
type Estimator interface {
	Estimate(task *types.Task, machine *types.Machine) float64
}

// Static estimates cost as task length divided by machine speed,
// independent of any execution history.
type Static struct{}

// Estimate implements Estimator.
func (Static) Estimate(task *types.Task, machine *types.Machine) float64 {
	return task.Length / machine.Speed
}
