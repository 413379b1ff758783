// Package experiment provides a batch benchmarking harness for the
// planner: it generates synthetic layered workflows, plans each one
// against a generated machine pool, and aggregates the resulting makespans
// into an HDR histogram.
package experiment

import (
	"fmt"
	"math/rand"

	"github.com/HdrHistogram/hdrhistogram-go"

	"wfsim/heft-planner/internal/planner"
)

// makespanScale converts abstract makespan time units into the integer
// milli-ticks recorded in the histogram.
const makespanScale = 1000

// Config controls workload generation and the number of planning runs.
type Config struct {
	Runs     int   `yaml:"runs"`
	Seed     int64 `yaml:"seed"`
	Tasks    int   `yaml:"tasks"`    // tasks per generated workflow
	Layers   int   `yaml:"layers"`   // DAG depth
	Machines int   `yaml:"machines"` // pool size per run
}

// DefaultConfig returns a small but non-trivial benchmark setup.
func DefaultConfig() Config {
	return Config{
		Runs:     100,
		Seed:     1,
		Tasks:    50,
		Layers:   5,
		Machines: 8,
	}
}

// Validate checks the benchmark configuration.
func (c Config) Validate() error {
	if c.Runs <= 0 {
		return fmt.Errorf("runs must be positive, got %d", c.Runs)
	}
	if c.Tasks <= 0 {
		return fmt.Errorf("tasks must be positive, got %d", c.Tasks)
	}
	if c.Layers <= 0 || c.Layers > c.Tasks {
		return fmt.Errorf("layers must be in [1, tasks], got %d", c.Layers)
	}
	if c.Machines <= 0 {
		return fmt.Errorf("machines must be positive, got %d", c.Machines)
	}
	return nil
}

// Result summarizes a completed benchmark.
type Result struct {
	Runs      int
	Makespans *hdrhistogram.Histogram // in milli time units
}

// MakespanMean returns the mean makespan in time units.
func (r *Result) MakespanMean() float64 {
	return r.Makespans.Mean() / makespanScale
}

// MakespanQuantile returns the makespan at the given quantile (0-100) in
// time units.
func (r *Result) MakespanQuantile(q float64) float64 {
	return float64(r.Makespans.ValueAtQuantile(q)) / makespanScale
}

// Runner plans generated workloads with a fixed planner.
type Runner struct {
	planner *planner.Planner
	cfg     Config
}

// NewRunner creates a benchmark runner.
func NewRunner(p *planner.Planner, cfg Config) (*Runner, error) {
	if p == nil {
		return nil, fmt.Errorf("planner cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Runner{planner: p, cfg: cfg}, nil
}

// Run executes the configured number of planning runs. Generation is
// seeded, so the same configuration always benchmarks the same workloads.
func (r *Runner) Run() (*Result, error) {
	rng := rand.New(rand.NewSource(r.cfg.Seed))
	hist := hdrhistogram.New(1, int64(1e9)*makespanScale, 3)

	for i := 0; i < r.cfg.Runs; i++ {
		wf := generateWorkflow(rng, r.cfg.Tasks, r.cfg.Layers)
		machines := generateMachines(rng, r.cfg.Machines)

		plan, err := r.planner.Plan(wf, machines)
		if err != nil {
			return nil, fmt.Errorf("benchmark run %d: %w", i, err)
		}

		ticks := int64(plan.Makespan * makespanScale)
		if ticks < 1 {
			ticks = 1
		}
		if err := hist.RecordValue(ticks); err != nil {
			return nil, fmt.Errorf("benchmark run %d: record makespan: %w", i, err)
		}
	}

	return &Result{Runs: r.cfg.Runs, Makespans: hist}, nil
}
