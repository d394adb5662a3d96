// Package scenario loads named parameter-override files. A scenario is a
// small YAML document mapping parameter ids (global or tier_<id>_<field>)
// to values, applied over schema defaults with clamping.
package scenario

import (
	"fmt"
	"os"

	"github.com/Nathanpmyoung/ai-labour-calculator-sub000/internal/params"
	"gopkg.in/yaml.v3"
)

// Scenario is a named set of parameter overrides.
type Scenario struct {
	Name        string             `yaml:"name"`
	Description string             `yaml:"description,omitempty"`
	Overrides   map[string]float64 `yaml:"overrides"`
}

// LoadFile reads and parses a scenario YAML file. Unknown parameter ids
// are rejected so typos surface immediately instead of silently falling
// back to defaults.
func LoadFile(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}

	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parsing scenario file: %w", err)
	}

	for id := range sc.Overrides {
		if _, ok := params.Lookup(id); !ok {
			return nil, fmt.Errorf("scenario %q: unknown parameter %q", sc.Name, id)
		}
	}

	return &sc, nil
}

// Values applies the scenario's overrides over schema defaults, clamped to
// each parameter's declared range.
func (s *Scenario) Values() params.Values {
	v := params.Defaults()
	for id, val := range s.Overrides {
		v[id] = val
	}
	return v.Clamp()
}
