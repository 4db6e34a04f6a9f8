package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	sim "github.com/mess-sim/mess-sim/sim"
)

// Scenario is the on-disk YAML form of one simulation setup: the engine
// config plus the target duration the report judges the run against.
type Scenario struct {
	Config        sim.Config `yaml:"config"`
	TargetMinutes float64    `yaml:"target_minutes"`
}

// LoadScenario reads and strictly decodes a scenario file. Fields absent
// from the file keep their defaults; unknown fields are errors so that typos
// cannot silently fall back to defaults.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	sc := &Scenario{Config: sim.DefaultConfig()}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(sc); err != nil {
		return nil, fmt.Errorf("failed to parse scenario file %s: %w", path, err)
	}
	return sc, nil
}
