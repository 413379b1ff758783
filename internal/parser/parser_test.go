package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wfsim/heft-planner/pkg/types"
)

const validDefinition = `
workflow:
  id: montage-4
  name: Montage
  tasks:
    - id: A
      length: 100
      children: [B, C]
      files:
        - name: a.dat
          size: 1024
          direction: output
    - id: B
      length: 200
      cores: 2
      children: [D]
      files:
        - name: a.dat
          size: 1024
          direction: input
    - id: C
      length: 300
      children: [D]
    - id: D
      length: 100
machines:
  - id: vm-0
    speed: 1000
    cores: 2
    bandwidth: 100000
  - id: vm-1
    speed: 500
    cores: 4
    bandwidth: 200000
`

func TestParseValidDefinition(t *testing.T) {
	def, err := Parse([]byte(validDefinition))
	require.NoError(t, err)

	require.Len(t, def.Workflow.Tasks, 4)
	require.Len(t, def.Machines, 2)
	assert.Equal(t, "montage-4", def.Workflow.ID)

	a := def.Workflow.Tasks[0]
	assert.Equal(t, []int{1, 2}, a.Children)
	assert.Empty(t, a.Parents)
	assert.Equal(t, 1, a.Cores, "cores defaults to 1")

	b := def.Workflow.Tasks[1]
	assert.Equal(t, []int{0}, b.Parents)
	assert.Equal(t, 2, b.Cores)
	require.Len(t, b.Files, 1)
	assert.Equal(t, types.FileInput, b.Files[0].Direction)

	d := def.Workflow.Tasks[3]
	assert.ElementsMatch(t, []int{1, 2}, d.Parents)
	assert.True(t, d.IsSink())
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte(`
workflow:
  id: x
  tasks:
    - id: A
      length: 1
      priority: 3
machines: []
`))
	assert.Error(t, err)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "def.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validDefinition), 0o644))

	def, err := ParseFile(path)
	require.NoError(t, err)
	assert.Len(t, def.Workflow.Tasks, 4)
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestBuildWorkflowErrors(t *testing.T) {
	tests := []struct {
		name  string
		specs []TaskSpec
	}{
		{"empty id", []TaskSpec{{ID: "", Length: 1}}},
		{"duplicate id", []TaskSpec{{ID: "A", Length: 1}, {ID: "A", Length: 1}}},
		{"negative length", []TaskSpec{{ID: "A", Length: -1}}},
		{"negative cores", []TaskSpec{{ID: "A", Length: 1, Cores: -2}}},
		{"unknown child", []TaskSpec{{ID: "A", Length: 1, Children: []string{"Z"}}}},
		{"self reference", []TaskSpec{{ID: "A", Length: 1, Children: []string{"A"}}}},
		{"bad file direction", []TaskSpec{{ID: "A", Length: 1,
			Files: []types.TaskFile{{Name: "f", Size: 1, Direction: "sideways"}}}}},
		{"negative file size", []TaskSpec{{ID: "A", Length: 1,
			Files: []types.TaskFile{{Name: "f", Size: -1, Direction: types.FileInput}}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildWorkflow("wf", "", tt.specs)
			assert.Error(t, err)
		})
	}
}

func TestParseMachineErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"empty machine id", `
workflow: {id: x, tasks: []}
machines:
  - id: ""
    speed: 1
    cores: 1
    bandwidth: 1
`},
		{"duplicate machine id", `
workflow: {id: x, tasks: []}
machines:
  - {id: m, speed: 1, cores: 1, bandwidth: 1}
  - {id: m, speed: 2, cores: 2, bandwidth: 2}
`},
		{"zero speed", `
workflow: {id: x, tasks: []}
machines:
  - {id: m, speed: 0, cores: 1, bandwidth: 1}
`},
		{"zero cores", `
workflow: {id: x, tasks: []}
machines:
  - {id: m, speed: 1, cores: 0, bandwidth: 1}
`},
		{"negative bandwidth", `
workflow: {id: x, tasks: []}
machines:
  - {id: m, speed: 1, cores: 1, bandwidth: -5}
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}
