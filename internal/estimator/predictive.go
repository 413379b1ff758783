package estimator

import (
	"math"
	"time"

	"wfsim/heft-planner/pkg/logger"
	"wfsim/heft-planner/pkg/types"
)

// DefaultPredictorTimeout bounds a single predictor call. A slow or hung
// backend must never stall a planning pass; on expiry the static estimate
// is used instead.
const DefaultPredictorTimeout = 2 * time.Second

// PredictFunc is the sole boundary to an external cost-prediction backend.
// It receives the fixed feature tuple (task length, parent count, machine
// speed, machine core count) and returns a predicted duration.
type PredictFunc func(taskLength float64, numParents int, machineSpeed float64, machineCores int) (float64, error)

// Predictive delegates cost estimation to an external predictor and falls
// back to the static formula whenever the predictor is absent, errors,
// times out, or returns an unusable value. Fallbacks are logged as
// non-fatal events and never surface to the planner.
type Predictive struct {
	predict  PredictFunc
	fallback Static
	timeout  time.Duration
}

// NewPredictive wraps a predictor. A nil predict is allowed and means every
// estimate uses the static fallback. A non-positive timeout selects
// DefaultPredictorTimeout.
func NewPredictive(predict PredictFunc, timeout time.Duration) *Predictive {
	if timeout <= 0 {
		timeout = DefaultPredictorTimeout
	}
	return &Predictive{predict: predict, timeout: timeout}
}

// Estimate implements Estimator.
func (p *Predictive) Estimate(task *types.Task, machine *types.Machine) float64 {
	static := p.fallback.Estimate(task, machine)
	if p.predict == nil {
		return static
	}

	type outcome struct {
		value float64
		err   error
	}
	ch := make(chan outcome, 1)
	go func() {
		v, err := p.predict(task.Length, len(task.Parents), machine.Speed, machine.Cores)
		ch <- outcome{value: v, err: err}
	}()

	select {
	case out := <-ch:
		if out.err != nil {
			logger.Warn("cost predictor failed for task %s on machine %s: %v, using static estimate", task.ID, machine.ID, out.err)
			return static
		}
		if math.IsNaN(out.value) || math.IsInf(out.value, 0) || out.value < 0 {
			logger.Warn("cost predictor returned unusable value %v for task %s on machine %s, using static estimate", out.value, task.ID, machine.ID)
			return static
		}
		return out.value
	case <-time.After(p.timeout):
		logger.Warn("cost predictor timed out after %s for task %s on machine %s, using static estimate", p.timeout, task.ID, machine.ID)
		return static
	}
}
