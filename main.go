// Package main provides the entry point for the heft-planner CLI.
package main

import "wfsim/heft-planner/cmd"

func main() {
	cmd.Execute()
}
