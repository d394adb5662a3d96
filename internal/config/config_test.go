package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Logging.Level != "info" {
		t.Errorf("default log level = %q, want info", cfg.Logging.Level)
	}
	if cfg.Store.Dir != "" {
		t.Errorf("default store dir = %q, want empty", cfg.Store.Dir)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestStateDir(t *testing.T) {
	cfg := Default()
	cfg.Store.Dir = "/var/lib/ailabor"
	if got := cfg.StateDir(); got != "/var/lib/ailabor" {
		t.Errorf("StateDir = %q, want override", got)
	}

	cfg.Store.Dir = ""
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home dir: %v", err)
	}
	if got := cfg.StateDir(); got != filepath.Join(home, ".ailabor") {
		t.Errorf("StateDir = %q, want ~/.ailabor", got)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
logging:
  level: debug
store:
  dir: /tmp/ailabor-test
solver:
  max_iterations: 40
  tolerance: 0.001
  damping: 0.5
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Store.Dir != "/tmp/ailabor-test" {
		t.Errorf("store dir = %q", cfg.Store.Dir)
	}
	if cfg.Solver.MaxIterations != 40 || cfg.Solver.Tolerance != 0.001 || cfg.Solver.Damping != 0.5 {
		t.Errorf("solver overrides = %+v", cfg.Solver)
	}
}

func TestLoadFromFile_PartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("store:\n  dir: /tmp/x\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("level = %q, want default info", cfg.Logging.Level)
	}
}

func TestLoadFromFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("logging: [broken"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	if _, err := LoadFromFile(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("AILABOR_LOG_LEVEL", "trace")
	t.Setenv("AILABOR_STATE_DIR", "/tmp/ailabor-env")
	t.Setenv("AILABOR_SOLVER_MAX_ITERATIONS", "50")
	t.Setenv("AILABOR_SOLVER_DAMPING", "0.9")
	t.Setenv("AILABOR_SOLVER_TOLERANCE", "not-a-number")

	cfg := Default()
	applyEnvOverrides(cfg)

	if cfg.Logging.Level != "trace" {
		t.Errorf("level = %q, want trace", cfg.Logging.Level)
	}
	if cfg.Store.Dir != "/tmp/ailabor-env" {
		t.Errorf("store dir = %q", cfg.Store.Dir)
	}
	if cfg.Solver.MaxIterations != 50 {
		t.Errorf("max iterations = %d, want 50", cfg.Solver.MaxIterations)
	}
	if cfg.Solver.Damping != 0.9 {
		t.Errorf("damping = %v, want 0.9", cfg.Solver.Damping)
	}
	// Unparseable values leave the default in place.
	if cfg.Solver.Tolerance != 0 {
		t.Errorf("tolerance = %v, want untouched 0", cfg.Solver.Tolerance)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults ok", func(c *Config) {}, false},
		{"empty level ok", func(c *Config) { c.Logging.Level = "" }, false},
		{"trace level ok", func(c *Config) { c.Logging.Level = "trace" }, false},
		{"bad level", func(c *Config) { c.Logging.Level = "verbose" }, true},
		{"negative iterations", func(c *Config) { c.Solver.MaxIterations = -1 }, true},
		{"negative tolerance", func(c *Config) { c.Solver.Tolerance = -0.1 }, true},
		{"damping one", func(c *Config) { c.Solver.Damping = 1 }, true},
		{"negative damping", func(c *Config) { c.Solver.Damping = -0.5 }, true},
		{"damping in range", func(c *Config) { c.Solver.Damping = 0.7 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
