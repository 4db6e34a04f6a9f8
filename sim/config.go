package sim

import (
	"errors"
	"fmt"
	"time"
)

// StageCount is the fixed length of the serving pipeline: side-dish filling,
// carrying, rice filling.
const StageCount = 3

// ErrInvalidConfig is wrapped by every config validation failure.
var ErrInvalidConfig = errors.New("invalid simulation config")

// StageConfig groups the parameters of one serving stage.
type StageConfig struct {
	Name          string  `yaml:"name"`           // display name, e.g. "side-dish"
	Capacity      int     `yaml:"capacity"`       // number of servers staffing the stage (must be >= 1)
	MeanMinutes   float64 `yaml:"mean_minutes"`   // mean service duration per table
	JitterMinutes float64 `yaml:"jitter_minutes"` // uniform half-width around the mean (must be < mean)
}

// Config holds the run parameters for one serving duty simulation.
type Config struct {
	Tables     int                     `yaml:"tables"`      // number of tables to serve (must be >= 1)
	Stages     [StageCount]StageConfig `yaml:"stages"`      // pipeline stages in service order
	StartClock string                  `yaml:"start_clock"` // wall-clock start of the duty, "HH:MM"
	Seed       int64                   `yaml:"seed"`        // seed for service duration sampling
}

// DefaultConfig returns the staffing plan the simulator was calibrated
// against: 60 tables, 7 servers (2 side-dish, 3 carry, 2 rice), 07:00 start.
func DefaultConfig() Config {
	return Config{
		Tables: 60,
		Stages: [StageCount]StageConfig{
			{Name: "side-dish", Capacity: 2, MeanMinutes: 0.8, JitterMinutes: 0.2},
			{Name: "carry", Capacity: 3, MeanMinutes: 0.5, JitterMinutes: 0.1},
			{Name: "rice", Capacity: 2, MeanMinutes: 0.8, JitterMinutes: 0.2},
		},
		StartClock: "07:00",
		Seed:       42,
	}
}

// Validate checks every numeric bound before a run starts. A jitter equal to
// or above its mean would permit negative or degenerate durations, so it is
// rejected here rather than clamped later.
func (c Config) Validate() error {
	if c.Tables < 1 {
		return fmt.Errorf("%w: tables must be >= 1, got %d", ErrInvalidConfig, c.Tables)
	}
	for i, st := range c.Stages {
		name := st.Name
		if name == "" {
			name = fmt.Sprintf("stage %d", i)
		}
		if st.Capacity < 1 {
			return fmt.Errorf("%w: %s capacity must be >= 1, got %d", ErrInvalidConfig, name, st.Capacity)
		}
		if st.MeanMinutes < 0 {
			return fmt.Errorf("%w: %s mean must be non-negative, got %g", ErrInvalidConfig, name, st.MeanMinutes)
		}
		if st.JitterMinutes < 0 {
			return fmt.Errorf("%w: %s jitter must be non-negative, got %g", ErrInvalidConfig, name, st.JitterMinutes)
		}
		if st.JitterMinutes >= st.MeanMinutes {
			return fmt.Errorf("%w: %s jitter (%g) must be strictly below the mean (%g)",
				ErrInvalidConfig, name, st.JitterMinutes, st.MeanMinutes)
		}
	}
	if _, err := ParseStartClock(c.StartClock); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// startClockLayout is the wall-clock form scenarios use for the duty start.
const startClockLayout = "15:04"

// ParseStartClock resolves an "HH:MM" string to an absolute reference time.
// The date itself is an arbitrary fixed anchor; only the time of day matters
// for deriving absolute completion times.
func ParseStartClock(s string) (time.Time, error) {
	t, err := time.Parse(startClockLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("start clock %q is not in HH:MM form", s)
	}
	return time.Date(2024, time.January, 1, t.Hour(), t.Minute(), 0, 0, time.UTC), nil
}
