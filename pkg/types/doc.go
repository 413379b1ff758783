// Package types defines the core data structures for the workflow planner:
// the task DAG, the machine pool, and the resulting plan.
package types
