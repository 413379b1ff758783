package types

// Machine describes one virtual machine in the planning pool. All fields
// are fixed for the duration of a planning run; the mutable scheduling
// state (timeline, accumulated workload) is owned by the run itself.
type Machine struct {
	ID        string  `yaml:"id" json:"id"`
	Speed     float64 `yaml:"speed" json:"speed"` // work units per time unit
	Cores     int     `yaml:"cores" json:"cores"`
	Bandwidth float64 `yaml:"bandwidth" json:"bandwidth"` // bytes per time unit
}
