// Package planner implements the decision core of the workflow scheduler:
// a HEFT-based allocator that maps every task of a DAG onto a machine and
// commits start/finish windows, scoring candidate machines by a weighted
// combination of predicted finish time and accumulated workload.
package planner
