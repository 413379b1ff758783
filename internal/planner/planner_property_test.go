// Property-based tests for the allocator: for arbitrary layered DAGs and
// machine pools, every plan must respect the timeline, cost, and
// dependency-readiness invariants.
package planner

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"wfsim/heft-planner/pkg/types"
)

// randomLayeredWorkflow builds an acyclic workflow with the given number of
// tasks spread over up to four layers, every non-root task depending on at
// least one task of the previous layer.
func randomLayeredWorkflow(seed int64, tasks int) *types.Workflow {
	rng := rand.New(rand.NewSource(seed))
	layers := 1 + rng.Intn(4)
	if layers > tasks {
		layers = tasks
	}

	wf := &types.Workflow{ID: "prop", Tasks: make([]types.Task, tasks)}
	layerOf := make([]int, tasks)
	members := make([][]int, layers)
	for i := 0; i < tasks; i++ {
		l := i % layers
		if i >= layers {
			l = rng.Intn(layers)
		}
		layerOf[i] = l
		members[l] = append(members[l], i)
	}

	for i := 0; i < tasks; i++ {
		wf.Tasks[i] = types.Task{
			ID:     string(rune('A' + i%26)) + string(rune('0'+i/26)),
			Length: 10 + rng.Float64()*990,
			Cores:  1 + rng.Intn(2),
		}
	}
	for i := 0; i < tasks; i++ {
		if layerOf[i] == 0 {
			continue
		}
		prev := members[layerOf[i]-1]
		p := prev[rng.Intn(len(prev))]
		wf.Tasks[p].Children = append(wf.Tasks[p].Children, i)
		wf.Tasks[i].Parents = append(wf.Tasks[i].Parents, p)
	}
	return wf
}

func randomMachines(seed int64, count int) []types.Machine {
	rng := rand.New(rand.NewSource(seed))
	machines := make([]types.Machine, count)
	for i := range machines {
		machines[i] = types.Machine{
			ID:        string(rune('a' + i)),
			Speed:     50 + rng.Float64()*150,
			Cores:     2,
			Bandwidth: 100,
		}
	}
	return machines
}

func TestPlanInvariantsProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("plans satisfy timeline and readiness invariants", prop.ForAll(
		func(seed int64, tasks, machineCount int) bool {
			wf := randomLayeredWorkflow(seed, tasks)
			machines := randomMachines(seed+1, machineCount)

			p, err := New(nil, DefaultWeights())
			if err != nil {
				return false
			}
			plan, err := p.Plan(wf, machines)
			if err != nil {
				return false
			}
			if len(plan.Assignments) != len(wf.Tasks) {
				return false
			}

			// Windows are positive and children start no earlier than every
			// parent's finish.
			for i, a := range plan.Assignments {
				if a.Finish <= a.Start {
					return false
				}
				for _, parent := range wf.Tasks[i].Parents {
					if a.Start < plan.Assignments[parent].Finish-1e-9 {
						return false
					}
				}
			}

			// Per-machine windows never overlap.
			byMachine := make(map[string][]types.Assignment)
			for _, a := range plan.Assignments {
				byMachine[a.MachineID] = append(byMachine[a.MachineID], a)
			}
			for _, assignments := range byMachine {
				sort.Slice(assignments, func(i, j int) bool {
					return assignments[i].Start < assignments[j].Start
				})
				for i := 1; i < len(assignments); i++ {
					if assignments[i-1].Finish > assignments[i].Start+1e-9 {
						return false
					}
				}
			}
			return true
		},
		gen.Int64Range(0, 1<<30),
		gen.IntRange(1, 30),
		gen.IntRange(1, 8),
	))

	properties.TestingRun(t)
}
