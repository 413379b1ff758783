// Package parser loads workflow and machine pool definitions from YAML and
// resolves task references into the index-linked model the planner expects.
package parser

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"wfsim/heft-planner/pkg/types"
)

// Definition is a fully resolved planning input: a workflow DAG plus the
// machine pool it should be planned against.
type Definition struct {
	Workflow *types.Workflow
	Machines []types.Machine
}

// TaskSpec mirrors one task entry before link resolution: children are
// referenced by task ID rather than index. It is shared with the REST API,
// which accepts the same shape as JSON.
type TaskSpec struct {
	ID       string           `yaml:"id" json:"id"`
	Length   float64          `yaml:"length" json:"length"`
	Cores    int              `yaml:"cores,omitempty" json:"cores,omitempty"`
	Children []string         `yaml:"children,omitempty" json:"children,omitempty"`
	Files    []types.TaskFile `yaml:"files,omitempty" json:"files,omitempty"`
}

// document mirrors the YAML file layout.
type document struct {
	Workflow struct {
		ID    string     `yaml:"id"`
		Name  string     `yaml:"name"`
		Tasks []TaskSpec `yaml:"tasks"`
	} `yaml:"workflow"`
	Machines []types.Machine `yaml:"machines"`
}

// Parse parses a planning definition from bytes.
func Parse(data []byte) (*Definition, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Strict mode: error on unknown fields

	var doc document
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse definition: %w", err)
	}

	wf, err := BuildWorkflow(doc.Workflow.ID, doc.Workflow.Name, doc.Workflow.Tasks)
	if err != nil {
		return nil, err
	}
	if err := ValidateMachines(doc.Machines); err != nil {
		return nil, err
	}

	return &Definition{Workflow: wf, Machines: doc.Machines}, nil
}

// ParseFile parses a planning definition from a file.
func ParseFile(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read definition file %s: %w", path, err)
	}
	return Parse(data)
}

// BuildWorkflow resolves task specs into an index-linked workflow: child
// IDs become indices and parent lists are derived from the child lists.
// Cores defaults to 1 when omitted.
func BuildWorkflow(id, name string, specs []TaskSpec) (*types.Workflow, error) {
	wf := &types.Workflow{
		ID:    id,
		Name:  name,
		Tasks: make([]types.Task, len(specs)),
	}

	index := make(map[string]int, len(specs))
	for i, spec := range specs {
		if spec.ID == "" {
			return nil, fmt.Errorf("task %d: id must not be empty", i)
		}
		if _, dup := index[spec.ID]; dup {
			return nil, fmt.Errorf("duplicate task id %q", spec.ID)
		}
		if spec.Length < 0 {
			return nil, fmt.Errorf("task %q: length must not be negative", spec.ID)
		}
		cores := spec.Cores
		if cores == 0 {
			cores = 1
		}
		if cores < 0 {
			return nil, fmt.Errorf("task %q: cores must be positive", spec.ID)
		}
		for _, f := range spec.Files {
			if f.Direction != types.FileInput && f.Direction != types.FileOutput {
				return nil, fmt.Errorf("task %q: file %q: unknown direction %q", spec.ID, f.Name, f.Direction)
			}
			if f.Size < 0 {
				return nil, fmt.Errorf("task %q: file %q: size must not be negative", spec.ID, f.Name)
			}
		}
		index[spec.ID] = i
		wf.Tasks[i] = types.Task{
			ID:     spec.ID,
			Length: spec.Length,
			Cores:  cores,
			Files:  spec.Files,
		}
	}

	for i, spec := range specs {
		for _, childID := range spec.Children {
			c, ok := index[childID]
			if !ok {
				return nil, fmt.Errorf("task %q: unknown child %q", spec.ID, childID)
			}
			if c == i {
				return nil, fmt.Errorf("task %q: references itself as child", spec.ID)
			}
			wf.Tasks[i].Children = append(wf.Tasks[i].Children, c)
			wf.Tasks[c].Parents = append(wf.Tasks[c].Parents, i)
		}
	}
	return wf, nil
}

// ValidateMachines rejects machine pools with duplicate or empty IDs, or
// non-positive speeds or core counts. Every path handing machines to the
// planner must run this first; a zero speed would turn computation costs
// infinite.
func ValidateMachines(machines []types.Machine) error {
	seen := make(map[string]bool, len(machines))
	for i := range machines {
		m := &machines[i]
		if m.ID == "" {
			return fmt.Errorf("machine %d: id must not be empty", i)
		}
		if seen[m.ID] {
			return fmt.Errorf("duplicate machine id %q", m.ID)
		}
		seen[m.ID] = true
		if m.Speed <= 0 {
			return fmt.Errorf("machine %q: speed must be positive", m.ID)
		}
		if m.Cores <= 0 {
			return fmt.Errorf("machine %q: cores must be positive", m.ID)
		}
		if m.Bandwidth < 0 {
			return fmt.Errorf("machine %q: bandwidth must not be negative", m.ID)
		}
	}
	return nil
}
