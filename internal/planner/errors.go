package planner

import "errors"

var (
	// ErrNoMachines reports a planning run attempted with an empty machine
	// pool. This is a fatal configuration error, raised before any
	// scheduling work begins.
	ErrNoMachines = errors.New("no machines available for planning")

	// ErrMalformedGraph reports a dependency cycle in the task graph. The
	// rank recursion is depth-bounded by the task count, so any graph
	// deeper than its own size is cyclic.
	ErrMalformedGraph = errors.New("malformed task graph: dependency cycle detected")
)
