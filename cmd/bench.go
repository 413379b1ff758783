package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"wfsim/heft-planner/internal/config"
	"wfsim/heft-planner/internal/experiment"
	"wfsim/heft-planner/internal/planner"
)

var benchCfg = experiment.DefaultConfig()

// benchCmd benchmarks the planner over generated workloads.
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark the planner over generated workloads",
	Long: `Generates seeded random layered workflows, plans each against a generated
machine pool, and prints makespan statistics. With a predictive estimator
configured, both the static and the predictive planner are benchmarked so
their makespans can be compared on identical workloads.`,
	Example: `  heft-planner bench --runs 500 --tasks 100 --machines 16

  # compare static vs predictive on the same workloads
  heft-planner --config planner.yaml bench --runs 200`,
	RunE: runBench,
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	weights := planner.Weights{Alpha: cfg.Planner.Alpha, Beta: cfg.Planner.Beta}

	static, err := planner.New(nil, weights)
	if err != nil {
		return err
	}
	if err := benchOne(cmd, "static", static); err != nil {
		return err
	}

	if cfg.Planner.Estimator != config.EstimatorPredictive {
		return nil
	}
	est, err := buildEstimator(&cfg.Planner)
	if err != nil {
		return err
	}
	predictive, err := planner.New(est, weights)
	if err != nil {
		return err
	}
	return benchOne(cmd, "predictive", predictive)
}

func benchOne(cmd *cobra.Command, name string, p *planner.Planner) error {
	runner, err := experiment.NewRunner(p, benchCfg)
	if err != nil {
		return err
	}
	result, err := runner.Run()
	if err != nil {
		return fmt.Errorf("%s benchmark: %w", name, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s estimator, %d runs (seed %d, %d tasks x %d layers, %d machines)\n",
		name, result.Runs, benchCfg.Seed, benchCfg.Tasks, benchCfg.Layers, benchCfg.Machines)
	fmt.Fprintf(out, "  makespan mean %.2f  p50 %.2f  p95 %.2f  p99 %.2f\n",
		result.MakespanMean(),
		result.MakespanQuantile(50),
		result.MakespanQuantile(95),
		result.MakespanQuantile(99))
	return nil
}

func init() {
	benchCmd.Flags().IntVar(&benchCfg.Runs, "runs", benchCfg.Runs, "number of planning runs")
	benchCmd.Flags().Int64Var(&benchCfg.Seed, "seed", benchCfg.Seed, "workload generation seed")
	benchCmd.Flags().IntVar(&benchCfg.Tasks, "tasks", benchCfg.Tasks, "tasks per generated workflow")
	benchCmd.Flags().IntVar(&benchCfg.Layers, "layers", benchCfg.Layers, "layers per generated workflow")
	benchCmd.Flags().IntVar(&benchCfg.Machines, "machines", benchCfg.Machines, "machines per generated pool")
	rootCmd.AddCommand(benchCmd)
}
