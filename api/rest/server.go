// Package rest exposes the workflow planner over HTTP.
package rest

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"

	"wfsim/heft-planner/internal/estimator"
	"wfsim/heft-planner/internal/planner"
)

// Config holds the configuration for the REST server.
type Config struct {
	// Address is the address to listen on (e.g., ":8080").
	Address string `yaml:"address"`

	// ReadTimeout is the maximum duration for reading the entire request.
	ReadTimeout time.Duration `yaml:"read_timeout"`

	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// DefaultConfig returns a default server configuration.
func DefaultConfig() *Config {
	return &Config{
		Address:      ":8080",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

// Server serves planning requests. The estimator and default weights are
// fixed at construction; a request may override the weights.
type Server struct {
	app       *fiber.App
	estimator estimator.Estimator
	weights   planner.Weights
	config    *Config
}

// NewServer creates a REST server around the given estimator and default
// scoring weights.
func NewServer(est estimator.Estimator, weights planner.Weights, config *Config) *Server {
	if config == nil {
		config = DefaultConfig()
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		AppName:      "Workflow Planner API",
	})

	s := &Server{
		app:       app,
		estimator: est,
		weights:   weights,
		config:    config,
	}

	s.setupMiddleware()
	s.setupRoutes()
	return s
}

func (s *Server) setupMiddleware() {
	s.app.Use(fiberrecover.New(fiberrecover.Config{
		EnableStackTrace: true,
	}))
	s.app.Use(logger.New(logger.Config{
		Format:     "${time} | ${status} | ${latency} | ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))
}

func (s *Server) setupRoutes() {
	s.app.Get("/health", s.handleHealth)
	v1 := s.app.Group("/api/v1")
	v1.Post("/plan", s.handlePlan)
}

// Start begins listening. Blocks until the server stops.
func (s *Server) Start() error {
	return s.app.Listen(s.config.Address)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
