package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Estimator kinds selectable in PlannerConfig.
const (
	EstimatorStatic     = "static"
	EstimatorPredictive = "predictive"
)

// Config is the complete configuration for the planner tooling.
type Config struct {
	Planner PlannerConfig `yaml:"planner"`
	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
}

// PlannerConfig selects the cost estimator and the scoring weights.
type PlannerConfig struct {
	// Alpha weights predicted finish time in the composite score.
	Alpha float64 `yaml:"alpha"`
	// Beta weights accumulated machine workload in the composite score.
	Beta float64 `yaml:"beta"`
	// Estimator is "static" or "predictive".
	Estimator string `yaml:"estimator"`
	// PredictorScript is the path to a JavaScript cost model, used only by
	// the predictive estimator.
	PredictorScript string `yaml:"predictor_script,omitempty"`
	// PredictorTimeout bounds a single predictor call.
	PredictorTimeout time.Duration `yaml:"predictor_timeout"`
}

// ServerConfig holds the REST server configuration.
type ServerConfig struct {
	Address      string        `yaml:"address"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Planner: PlannerConfig{
			Alpha:            0.7,
			Beta:             0.3,
			Estimator:        EstimatorStatic,
			PredictorTimeout: 2 * time.Second,
		},
		Server: ServerConfig{
			Address:      ":8080",
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadFromFile loads configuration from a YAML file, applied on top of the
// defaults. A missing file is not an error: the defaults are returned.
func LoadFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for contradictions.
func (c *Config) Validate() error {
	p := &c.Planner
	if p.Alpha < 0 || p.Beta < 0 {
		return fmt.Errorf("planner weights must be non-negative, got alpha=%v beta=%v", p.Alpha, p.Beta)
	}
	if p.Alpha+p.Beta <= 0 {
		return fmt.Errorf("planner weights must have a positive sum")
	}
	switch p.Estimator {
	case EstimatorStatic:
	case EstimatorPredictive:
		if p.PredictorScript == "" {
			return fmt.Errorf("predictive estimator requires planner.predictor_script")
		}
	default:
		return fmt.Errorf("unknown estimator %q (want %q or %q)", p.Estimator, EstimatorStatic, EstimatorPredictive)
	}
	if p.PredictorTimeout < 0 {
		return fmt.Errorf("predictor_timeout must not be negative")
	}
	if c.Server.Address == "" {
		return fmt.Errorf("server.address must not be empty")
	}
	return nil
}
