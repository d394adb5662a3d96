// Package config provides unified application configuration loading.
// It supports loading from YAML files and environment variables. This is
// operator configuration (logging, storage, solver overrides), distinct
// from the model parameter schema in internal/params.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config contains all application settings.
type Config struct {
	// Logging contains settings for operational and solver-trace logging.
	Logging LoggingConfig `json:"logging" yaml:"logging"`

	// Store contains settings for run persistence.
	Store StoreConfig `json:"store" yaml:"store"`

	// Solver overrides the fixed-point iteration constants. Zero values
	// mean "use the engine default".
	Solver SolverConfig `json:"solver" yaml:"solver"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level sets the log verbosity: "info" (default), "debug", or "trace".
	// "debug" enables solver-iteration traces to <stateDir>/solver.jsonl.
	// "trace" additionally includes per-tier wage vectors.
	Level string `json:"level" yaml:"level"`
}

// StoreConfig configures where runs are persisted.
type StoreConfig struct {
	// Dir is the state directory. Empty means ~/.ailabor.
	Dir string `json:"dir,omitempty" yaml:"dir,omitempty"`
}

// SolverConfig carries optional overrides of the equilibrium solver's
// named constants.
type SolverConfig struct {
	MaxIterations int     `json:"max_iterations,omitempty" yaml:"max_iterations,omitempty"`
	Tolerance     float64 `json:"tolerance,omitempty" yaml:"tolerance,omitempty"`
	Damping       float64 `json:"damping,omitempty" yaml:"damping,omitempty"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info"},
		Store:   StoreConfig{},
		Solver:  SolverConfig{},
	}
}

// StateDir resolves the state directory, honoring the Store.Dir override.
func (c *Config) StateDir() string {
	if c.Store.Dir != "" {
		return c.Store.Dir
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".ailabor"
	}
	return filepath.Join(homeDir, ".ailabor")
}

// Load loads configuration from the default locations and environment
// variables. Order: defaults -> ~/.ailabor/config.yaml -> environment.
func Load() (*Config, error) {
	config := Default()

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".ailabor", "config.yaml")
		if _, statErr := os.Stat(configPath); statErr == nil {
			fileConfig, loadErr := LoadFromFile(configPath)
			if loadErr != nil {
				return nil, fmt.Errorf("loading config file: %w", loadErr)
			}
			config = fileConfig
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// LoadFromFile loads configuration from a specific YAML file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return config, nil
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	validLevels := map[string]bool{"": true, "info": true, "debug": true, "trace": true}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s (valid: info, debug, trace, or empty for default)", c.Logging.Level)
	}

	if c.Solver.MaxIterations < 0 {
		return fmt.Errorf("max_iterations must be non-negative, got %d", c.Solver.MaxIterations)
	}
	if c.Solver.Tolerance < 0 {
		return fmt.Errorf("tolerance must be non-negative, got %f", c.Solver.Tolerance)
	}
	if c.Solver.Damping < 0 || c.Solver.Damping >= 1 {
		return fmt.Errorf("damping must be in [0, 1), got %f", c.Solver.Damping)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(config *Config) {
	if v := os.Getenv("AILABOR_LOG_LEVEL"); v != "" {
		config.Logging.Level = v
	}

	if v := os.Getenv("AILABOR_STATE_DIR"); v != "" {
		config.Store.Dir = v
	}

	if v := os.Getenv("AILABOR_SOLVER_MAX_ITERATIONS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.Solver.MaxIterations = n
		}
	}
	if v := os.Getenv("AILABOR_SOLVER_TOLERANCE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			config.Solver.Tolerance = f
		}
	}
	if v := os.Getenv("AILABOR_SOLVER_DAMPING"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			config.Solver.Damping = f
		}
	}
}
