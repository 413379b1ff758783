// Package cmd implements the planner CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wfsim/heft-planner/internal/config"
	"wfsim/heft-planner/pkg/logger"
)

// Version is the current version number.
const Version = "0.1.0"

var (
	cfgFile string
	debug   bool
)

// rootCmd is the root command.
var rootCmd = &cobra.Command{
	Use:     "heft-planner",
	Short:   "HEFT-based workflow planner",
	Long:    `heft-planner maps workflow DAGs onto heterogeneous machine pools using rank-ordered list scheduling with a composite finish-time/workload score.`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debug {
			logger.SetLevel(logger.LevelDebug)
		}
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig loads the configuration file named by --config, or defaults.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadFromFile(cfgFile)
	if err != nil {
		return nil, err
	}
	if !debug {
		logger.SetLevelFromString(cfg.Logging.Level)
	}
	return cfg, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to configuration file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
