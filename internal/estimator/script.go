package estimator

import (
	"fmt"
	"sync"
	"time"

	"github.com/dop251/goja"
)

// predictFuncName is the function a predictor script must define.
const predictFuncName = "predict"

// NewScriptPredictor compiles a JavaScript source that defines
//
//	function predict(taskLength, numParents, machineSpeed, machineCores)
//
// and exposes it as a PredictFunc. This lets a trained model exported as a
// scoring function be plugged into the planner without recompiling.
//
// Each call is bounded by timeout: a script still running when it expires
// is interrupted and the call returns an error, so a runaway loop cannot
// pin a CPU or hold the VM for later calls. A non-positive timeout selects
// DefaultPredictorTimeout.
//
// The underlying VM is shared across calls and serialized with a mutex;
// goja runtimes are not safe for concurrent use.
func NewScriptPredictor(src string, timeout time.Duration) (PredictFunc, error) {
	vm := goja.New()
	if _, err := vm.RunString(src); err != nil {
		return nil, fmt.Errorf("compile predictor script: %w", err)
	}

	fn, ok := goja.AssertFunction(vm.Get(predictFuncName))
	if !ok {
		return nil, fmt.Errorf("predictor script does not define a callable %s()", predictFuncName)
	}
	if timeout <= 0 {
		timeout = DefaultPredictorTimeout
	}

	var mu sync.Mutex
	return func(taskLength float64, numParents int, machineSpeed float64, machineCores int) (float64, error) {
		mu.Lock()
		defer mu.Unlock()

		timer := time.AfterFunc(timeout, func() {
			vm.Interrupt("predictor call timed out")
		})
		res, err := fn(goja.Undefined(),
			vm.ToValue(taskLength),
			vm.ToValue(numParents),
			vm.ToValue(machineSpeed),
			vm.ToValue(machineCores))
		timer.Stop()
		vm.ClearInterrupt()
		if err != nil {
			return 0, fmt.Errorf("predictor script: %w", err)
		}
		return res.ToFloat(), nil
	}, nil
}
