package planner

import (
	"wfsim/heft-planner/internal/estimator"
	"wfsim/heft-planner/pkg/types"
)

// infeasibleCost marks task/machine pairs where the machine has fewer
// cores than the task requires. It is finite on purpose: it must exceed
// the finish time of any feasible placement yet still compare below the
// +Inf best-score seed, so a task that fits nowhere is still assigned
// somewhere (degenerate but defined).
const infeasibleCost = 1e12

// edge identifies a parent→child dependency by task index.
type edge struct {
	parent, child int
}

// costTable holds the per-run computation and transfer costs. It is built
// once per planning run and read-only afterwards.
type costTable struct {
	computation [][]float64      // [task][machine] duration, or infeasibleCost
	transfer    map[edge]float64 // duration, charged only across machines
}

// buildCostTable computes the computation cost of every task on every
// machine and the transfer cost of every dependency edge.
func buildCostTable(wf *types.Workflow, machines []types.Machine, est estimator.Estimator) *costTable {
	t := &costTable{
		computation: make([][]float64, len(wf.Tasks)),
		transfer:    make(map[edge]float64),
	}

	for i := range wf.Tasks {
		task := &wf.Tasks[i]
		row := make([]float64, len(machines))
		for j := range machines {
			if machines[j].Cores < task.Cores {
				row[j] = infeasibleCost
				continue
			}
			row[j] = est.Estimate(task, &machines[j])
		}
		t.computation[i] = row
	}

	bandwidth := meanBandwidth(machines)
	for i := range wf.Tasks {
		for _, c := range wf.Tasks[i].Children {
			t.transfer[edge{parent: i, child: c}] = transferTime(&wf.Tasks[i], &wf.Tasks[c], bandwidth)
		}
	}
	return t
}

// avgComputation returns the mean of a task's cost row, sentinel entries
// included: a task infeasible on most machines ranks higher and is
// scheduled earlier.
func (t *costTable) avgComputation(task int) float64 {
	row := t.computation[task]
	var sum float64
	for _, c := range row {
		sum += c
	}
	return sum / float64(len(row))
}

// meanBandwidth is the arithmetic mean of machine bandwidths, computed
// once per run and shared by every transfer-cost entry.
func meanBandwidth(machines []types.Machine) float64 {
	var sum float64
	for i := range machines {
		sum += machines[i].Bandwidth
	}
	return sum / float64(len(machines))
}

// transferTime sums the sizes of parent output files consumed by the child
// under the same name, divided by the pool's mean bandwidth. Edges with no
// matching files cost nothing.
func transferTime(parent, child *types.Task, bandwidth float64) float64 {
	var bytes float64
	for _, out := range parent.Files {
		if out.Direction != types.FileOutput {
			continue
		}
		for _, in := range child.Files {
			if in.Direction == types.FileInput && in.Name == out.Name {
				bytes += out.Size
			}
		}
	}
	if bytes == 0 || bandwidth <= 0 {
		return 0
	}
	return bytes / bandwidth
}
