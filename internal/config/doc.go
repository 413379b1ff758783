// Package config handles configuration for the planner CLI and REST
// server: defaults, YAML loading, and validation.
package config
