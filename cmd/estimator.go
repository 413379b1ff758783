package cmd

import (
	"fmt"
	"os"

	"wfsim/heft-planner/internal/config"
	"wfsim/heft-planner/internal/estimator"
)

// buildEstimator constructs the cost estimator the configuration asks for.
func buildEstimator(cfg *config.PlannerConfig) (estimator.Estimator, error) {
	switch cfg.Estimator {
	case config.EstimatorStatic:
		return estimator.Static{}, nil
	case config.EstimatorPredictive:
		src, err := os.ReadFile(cfg.PredictorScript)
		if err != nil {
			return nil, fmt.Errorf("read predictor script: %w", err)
		}
		predict, err := estimator.NewScriptPredictor(string(src), cfg.PredictorTimeout)
		if err != nil {
			return nil, err
		}
		return estimator.NewPredictive(predict, cfg.PredictorTimeout), nil
	default:
		return nil, fmt.Errorf("unknown estimator %q", cfg.Estimator)
	}
}
