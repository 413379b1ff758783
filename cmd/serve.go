package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"wfsim/heft-planner/api/rest"
	"wfsim/heft-planner/internal/planner"
	"wfsim/heft-planner/pkg/logger"
)

// serveCmd runs the planning REST server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve planning requests over HTTP",
	Long:  `Starts an HTTP server accepting planning requests on POST /api/v1/plan.`,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	est, err := buildEstimator(&cfg.Planner)
	if err != nil {
		return err
	}

	server := rest.NewServer(est, planner.Weights{Alpha: cfg.Planner.Alpha, Beta: cfg.Planner.Beta}, &rest.Config{
		Address:      cfg.Server.Address,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	})

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("shutting down")
		if err := server.Shutdown(); err != nil {
			logger.Error("shutdown failed: %v", err)
		}
	}()

	logger.Info("listening on %s", cfg.Server.Address)
	return server.Start()
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
