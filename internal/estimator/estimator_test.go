package estimator

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"wfsim/heft-planner/pkg/types"
)

var (
	testTask    = &types.Task{ID: "t1", Length: 1000, Cores: 2, Parents: []int{0, 1}}
	testMachine = &types.Machine{ID: "m1", Speed: 250, Cores: 4, Bandwidth: 100}
)

func TestStaticEstimate(t *testing.T) {
	assert.Equal(t, 4.0, Static{}.Estimate(testTask, testMachine))
}

func TestPredictiveUsesPredictor(t *testing.T) {
	var gotLength, gotSpeed float64
	var gotParents, gotCores int
	est := NewPredictive(func(taskLength float64, numParents int, machineSpeed float64, machineCores int) (float64, error) {
		gotLength, gotParents, gotSpeed, gotCores = taskLength, numParents, machineSpeed, machineCores
		return 7.5, nil
	}, 0)

	assert.Equal(t, 7.5, est.Estimate(testTask, testMachine))
	assert.Equal(t, 1000.0, gotLength)
	assert.Equal(t, 2, gotParents)
	assert.Equal(t, 250.0, gotSpeed)
	assert.Equal(t, 4, gotCores)
}

func TestPredictiveNilPredictorFallsBack(t *testing.T) {
	est := NewPredictive(nil, 0)
	assert.Equal(t, 4.0, est.Estimate(testTask, testMachine))
}

func TestPredictiveErrorFallsBack(t *testing.T) {
	est := NewPredictive(func(float64, int, float64, int) (float64, error) {
		return 0, errors.New("model not loaded")
	}, 0)
	assert.Equal(t, 4.0, est.Estimate(testTask, testMachine))
}

func TestPredictiveUnusableValueFallsBack(t *testing.T) {
	for _, bad := range []float64{math.NaN(), math.Inf(1), -1} {
		est := NewPredictive(func(float64, int, float64, int) (float64, error) {
			return bad, nil
		}, 0)
		assert.Equal(t, 4.0, est.Estimate(testTask, testMachine))
	}
}

func TestPredictiveTimeoutFallsBack(t *testing.T) {
	est := NewPredictive(func(float64, int, float64, int) (float64, error) {
		time.Sleep(200 * time.Millisecond)
		return 1, nil
	}, 10*time.Millisecond)

	start := time.Now()
	assert.Equal(t, 4.0, est.Estimate(testTask, testMachine))
	assert.Less(t, time.Since(start), 150*time.Millisecond, "fallback must not wait out the predictor")
}

func TestPredictiveIsRepeatable(t *testing.T) {
	est := NewPredictive(func(taskLength float64, _ int, machineSpeed float64, _ int) (float64, error) {
		return taskLength / machineSpeed * 1.5, nil
	}, 0)

	first := est.Estimate(testTask, testMachine)
	second := est.Estimate(testTask, testMachine)
	assert.Equal(t, first, second)
}
