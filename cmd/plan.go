package cmd

import (
	"fmt"
	"os"

	"github.com/ohler55/ojg/oj"
	"github.com/ohler55/ojg/pretty"
	"github.com/spf13/cobra"

	"wfsim/heft-planner/internal/parser"
	"wfsim/heft-planner/internal/planner"
)

var (
	planAlpha   float64
	planBeta    float64
	planOutput  string
	planCompact bool
)

// planCmd plans a single workflow definition.
var planCmd = &cobra.Command{
	Use:   "plan <definition.yaml>",
	Short: "Plan a workflow onto its machine pool",
	Long: `Reads a YAML definition containing a workflow DAG and a machine pool,
computes a complete assignment with start/finish times, and prints it as JSON.`,
	Example: `  # plan with the default weights (alpha=0.7, beta=0.3)
  heft-planner plan workflow.yaml

  # finish time only, no load balancing
  heft-planner plan --alpha 1 --beta 0 workflow.yaml

  # use a scripted cost predictor
  heft-planner --config planner.yaml plan workflow.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlan,
}

func runPlan(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("alpha") {
		cfg.Planner.Alpha = planAlpha
	}
	if cmd.Flags().Changed("beta") {
		cfg.Planner.Beta = planBeta
	}

	def, err := parser.ParseFile(args[0])
	if err != nil {
		return err
	}

	est, err := buildEstimator(&cfg.Planner)
	if err != nil {
		return err
	}
	p, err := planner.New(est, planner.Weights{Alpha: cfg.Planner.Alpha, Beta: cfg.Planner.Beta})
	if err != nil {
		return err
	}

	plan, err := p.Plan(def.Workflow, def.Machines)
	if err != nil {
		return err
	}

	var out string
	if planCompact {
		out = oj.JSON(plan)
	} else {
		out = pretty.JSON(plan, 80.3)
	}

	if planOutput != "" {
		return os.WriteFile(planOutput, []byte(out+"\n"), 0o644)
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func init() {
	planCmd.Flags().Float64Var(&planAlpha, "alpha", 0.7, "finish-time weight")
	planCmd.Flags().Float64Var(&planBeta, "beta", 0.3, "workload weight")
	planCmd.Flags().StringVarP(&planOutput, "output", "o", "", "write the plan to a file instead of stdout")
	planCmd.Flags().BoolVar(&planCompact, "compact", false, "print compact JSON")
	rootCmd.AddCommand(planCmd)
}
