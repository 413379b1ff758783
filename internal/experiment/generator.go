package experiment

import (
	"fmt"
	"math/rand"

	"wfsim/heft-planner/pkg/types"
)

// generateWorkflow builds a random layered DAG: tasks are spread across
// layers and every non-root task depends on one or more tasks of the
// previous layer. Edges carry file transfers so the planner's transfer
// costs are exercised, not just computation costs.
func generateWorkflow(rng *rand.Rand, tasks, layers int) *types.Workflow {
	wf := &types.Workflow{
		ID:    fmt.Sprintf("generated-%d", rng.Int63()),
		Tasks: make([]types.Task, tasks),
	}

	// Assign each task to a layer; the first `layers` tasks seed one layer
	// each so no layer is empty.
	layerOf := make([]int, tasks)
	layerMembers := make([][]int, layers)
	for i := 0; i < tasks; i++ {
		l := i % layers
		if i >= layers {
			l = rng.Intn(layers)
		}
		layerOf[i] = l
		layerMembers[l] = append(layerMembers[l], i)
	}

	for i := 0; i < tasks; i++ {
		wf.Tasks[i] = types.Task{
			ID:     fmt.Sprintf("t%d", i),
			Length: 100 + rng.Float64()*9900, // 100..10000 work units
			Cores:  1 + rng.Intn(4),
			Files: []types.TaskFile{
				{
					Name:      fmt.Sprintf("t%d.out", i),
					Size:      1e5 + rng.Float64()*9e5, // 0.1..1 MB
					Direction: types.FileOutput,
				},
			},
		}
	}

	for i := 0; i < tasks; i++ {
		l := layerOf[i]
		if l == 0 {
			continue
		}
		prev := layerMembers[l-1]
		parents := 1 + rng.Intn(min(3, len(prev)))
		picked := rng.Perm(len(prev))[:parents]
		for _, pi := range picked {
			p := prev[pi]
			wf.Tasks[p].Children = append(wf.Tasks[p].Children, i)
			wf.Tasks[i].Parents = append(wf.Tasks[i].Parents, p)
			wf.Tasks[i].Files = append(wf.Tasks[i].Files, types.TaskFile{
				Name:      fmt.Sprintf("t%d.out", p),
				Size:      wf.Tasks[p].Files[0].Size,
				Direction: types.FileInput,
			})
		}
	}
	return wf
}

// generateMachines builds a heterogeneous pool: speeds, cores, and
// bandwidths vary so the composite score has real trade-offs to make. The
// first machine always has four cores so every generated task fits
// somewhere.
func generateMachines(rng *rand.Rand, count int) []types.Machine {
	machines := make([]types.Machine, count)
	for i := range machines {
		cores := 1 << rng.Intn(3) // 1, 2 or 4
		if i == 0 {
			cores = 4
		}
		machines[i] = types.Machine{
			ID:        fmt.Sprintf("vm-%d", i),
			Speed:     500 + rng.Float64()*1500, // 500..2000 work units/time
			Cores:     cores,
			Bandwidth: 1e6 + rng.Float64()*9e6, // 1..10 MB/time
		}
	}
	return machines
}
