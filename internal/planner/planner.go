package planner

import (
	"fmt"
	"math"
	"slices"

	"github.com/google/uuid"

	"wfsim/heft-planner/internal/estimator"
	"wfsim/heft-planner/pkg/logger"
	"wfsim/heft-planner/pkg/types"
)

// Weights balance predicted finish time against accumulated machine
// workload when scoring candidate machines:
//
//	score = Alpha*finish + Beta*workload
//
// The weights need not sum to one, only to a positive total.
type Weights struct {
	Alpha float64 `yaml:"alpha" json:"alpha"` // finish-time weight
	Beta  float64 `yaml:"beta" json:"beta"`   // workload weight
}

// DefaultWeights favor finish time over load spreading.
func DefaultWeights() Weights {
	return Weights{Alpha: 0.7, Beta: 0.3}
}

// Validate checks the weights are usable.
func (w Weights) Validate() error {
	if w.Alpha < 0 || w.Beta < 0 {
		return fmt.Errorf("weights must be non-negative, got alpha=%v beta=%v", w.Alpha, w.Beta)
	}
	if w.Alpha+w.Beta <= 0 {
		return fmt.Errorf("weights must have a positive sum, got alpha=%v beta=%v", w.Alpha, w.Beta)
	}
	return nil
}

// Planner maps workflow tasks onto machines: tasks are ordered by
// descending upward rank, then greedily committed to the machine with the
// lowest composite score. The cost estimator is injected at construction.
type Planner struct {
	estimator estimator.Estimator
	weights   Weights
}

// New creates a Planner. A nil estimator selects the static formula.
func New(est estimator.Estimator, weights Weights) (*Planner, error) {
	if est == nil {
		est = estimator.Static{}
	}
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	return &Planner{estimator: est, weights: weights}, nil
}

// Plan produces an assignment for every task of the workflow, or fails
// outright before producing any partial result. Committed assignments are
// never revised: once a task is placed, its finish time feeds its
// children's ready times and the pass moves on.
func (p *Planner) Plan(wf *types.Workflow, machines []types.Machine) (*types.Plan, error) {
	if wf == nil {
		return nil, fmt.Errorf("workflow cannot be nil")
	}
	if len(machines) == 0 {
		return nil, ErrNoMachines
	}
	if err := validateLinks(wf); err != nil {
		return nil, err
	}

	plan := &types.Plan{ID: uuid.NewString(), Assignments: []types.Assignment{}}
	if len(wf.Tasks) == 0 {
		return plan, nil
	}

	// Phase 1: prioritization.
	costs := buildCostTable(wf, machines, p.estimator)
	ranks, err := upwardRanks(wf, costs)
	if err != nil {
		return nil, err
	}
	order := priorityOrder(ranks)

	// Phase 2: selection.
	timelines := make([]timeline, len(machines))
	workload := make([]float64, len(machines))
	assigned := make([]int, len(wf.Tasks))
	start := make([]float64, len(wf.Tasks))
	finish := make([]float64, len(wf.Tasks))

	for _, task := range order {
		best := -1
		bestReady := 0.0
		bestScore := math.Inf(1)

		for m := range machines {
			ready := readyTime(wf, costs, task, m, assigned, finish)
			slot := timelines[m].findSlot(ready, costs.computation[task][m])
			score := p.weights.Alpha*slot.finish + p.weights.Beta*workload[m]
			if score < bestScore {
				bestScore = score
				best = m
				bestReady = ready
			}
		}

		if best < 0 {
			return nil, fmt.Errorf("task %q: no machine produced a finite score; check machine speeds", wf.Tasks[task].ID)
		}

		duration := costs.computation[task][best]
		committed := timelines[best].commit(bestReady, duration)
		workload[best] += duration
		assigned[task] = best
		start[task] = committed.start
		finish[task] = committed.finish
		logger.Debug("task %s -> machine %s window [%.3f, %.3f) score %.3f",
			wf.Tasks[task].ID, machines[best].ID, committed.start, committed.finish, bestScore)
	}

	plan.Assignments = make([]types.Assignment, len(wf.Tasks))
	var makespan float64
	for i := range wf.Tasks {
		plan.Assignments[i] = types.Assignment{
			TaskID:    wf.Tasks[i].ID,
			MachineID: machines[assigned[i]].ID,
			Start:     start[i],
			Finish:    finish[i],
		}
		if finish[i] > makespan {
			makespan = finish[i]
		}
	}
	plan.Makespan = makespan
	return plan, nil
}

// readyTime is the earliest moment every input of the task is available on
// the candidate machine: each parent must have finished, plus the edge
// transfer time when the parent ran on a different machine. Parents are
// always committed before their children by the descending-rank order, and
// validateLinks has ensured every parent edge appears in a child list, so
// every cross-machine edge has a transfer entry.
func readyTime(wf *types.Workflow, costs *costTable, task, machine int, assigned []int, finish []float64) float64 {
	var ready float64
	for _, parent := range wf.Tasks[task].Parents {
		at := finish[parent]
		if assigned[parent] != machine {
			at += costs.transfer[edge{parent: parent, child: task}]
		}
		if at > ready {
			ready = at
		}
	}
	return ready
}

// validateLinks rejects out-of-range, self-referencing, or asymmetric task
// links before any scheduling work starts. Parent and child lists must
// mirror each other: the transfer table is keyed by child edges, so a
// parent edge with no matching child entry would silently cost nothing.
func validateLinks(wf *types.Workflow) error {
	n := len(wf.Tasks)
	for i := range wf.Tasks {
		for _, c := range wf.Tasks[i].Children {
			if c < 0 || c >= n {
				return fmt.Errorf("task %q: child index %d out of range", wf.Tasks[i].ID, c)
			}
			if c == i {
				return fmt.Errorf("task %q: %w", wf.Tasks[i].ID, ErrMalformedGraph)
			}
			if !slices.Contains(wf.Tasks[c].Parents, i) {
				return fmt.Errorf("task %q: child %q does not link back as parent: %w",
					wf.Tasks[i].ID, wf.Tasks[c].ID, ErrMalformedGraph)
			}
		}
		for _, pa := range wf.Tasks[i].Parents {
			if pa < 0 || pa >= n {
				return fmt.Errorf("task %q: parent index %d out of range", wf.Tasks[i].ID, pa)
			}
			if pa == i {
				return fmt.Errorf("task %q: %w", wf.Tasks[i].ID, ErrMalformedGraph)
			}
			if !slices.Contains(wf.Tasks[pa].Children, i) {
				return fmt.Errorf("task %q: parent %q does not link back as child: %w",
					wf.Tasks[i].ID, wf.Tasks[pa].ID, ErrMalformedGraph)
			}
		}
	}
	return nil
}
