package types

// FileDirection tags a task file as consumed or produced.
type FileDirection string

const (
	// FileInput marks a file the task reads before it can start.
	FileInput FileDirection = "input"
	// FileOutput marks a file the task produces for its children.
	FileOutput FileDirection = "output"
)

// TaskFile describes one file a task consumes or produces. Matching
// output/input names between a parent and a child determine the data
// volume transferred along that dependency edge.
type TaskFile struct {
	Name      string        `yaml:"name" json:"name"`
	Size      float64       `yaml:"size" json:"size"` // bytes
	Direction FileDirection `yaml:"direction" json:"direction"`
}

// Task is one node of a workflow DAG. Parents and Children hold indices
// into the owning Workflow's task list; the parser resolves ID references
// into indices so planning never compares tasks by object identity.
//
// A task is immutable during a planning run. Its committed machine and
// window live in the Plan, not on the task itself.
type Task struct {
	ID       string     `yaml:"id" json:"id"`
	Length   float64    `yaml:"length" json:"length"` // work units
	Cores    int        `yaml:"cores" json:"cores"`
	Parents  []int      `yaml:"-" json:"-"`
	Children []int      `yaml:"-" json:"-"`
	Files    []TaskFile `yaml:"files,omitempty" json:"files,omitempty"`
}

// IsSource reports whether the task has no parents.
func (t *Task) IsSource() bool { return len(t.Parents) == 0 }

// IsSink reports whether the task has no children.
func (t *Task) IsSink() bool { return len(t.Children) == 0 }

// Workflow is an ordered list of tasks forming a DAG. Task order is
// significant: it breaks rank ties, so identical inputs always plan
// identically.
type Workflow struct {
	ID    string `yaml:"id" json:"id"`
	Name  string `yaml:"name,omitempty" json:"name,omitempty"`
	Tasks []Task `yaml:"tasks" json:"tasks"`
}
