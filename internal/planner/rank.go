package planner

import (
	"sort"

	"wfsim/heft-planner/pkg/types"
)

// upwardRanks computes the HEFT upward rank of every task: its own average
// computation cost plus the most expensive (transfer + rank) path through
// any child; sink tasks rank at their average cost alone. Ranks are
// memoized so shared subgraphs are computed exactly once regardless of
// in-degree. The recursion depth is bounded by the task count, turning a
// cyclic input into ErrMalformedGraph instead of unbounded recursion.
func upwardRanks(wf *types.Workflow, costs *costTable) ([]float64, error) {
	ranks := make([]float64, len(wf.Tasks))
	done := make([]bool, len(wf.Tasks))

	var visit func(task, depth int) (float64, error)
	visit = func(task, depth int) (float64, error) {
		if done[task] {
			return ranks[task], nil
		}
		if depth > len(wf.Tasks) {
			return 0, ErrMalformedGraph
		}

		var longest float64
		for _, c := range wf.Tasks[task].Children {
			childRank, err := visit(c, depth+1)
			if err != nil {
				return 0, err
			}
			if v := costs.transfer[edge{parent: task, child: c}] + childRank; v > longest {
				longest = v
			}
		}

		ranks[task] = costs.avgComputation(task) + longest
		done[task] = true
		return ranks[task], nil
	}

	for i := range wf.Tasks {
		if _, err := visit(i, 0); err != nil {
			return nil, err
		}
	}
	return ranks, nil
}

// priorityOrder returns task indices sorted by strictly descending rank.
// The sort is stable, so equal ranks keep input order and identical inputs
// always produce identical plans.
func priorityOrder(ranks []float64) []int {
	order := make([]int, len(ranks))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return ranks[order[a]] > ranks[order[b]]
	})
	return order
}
