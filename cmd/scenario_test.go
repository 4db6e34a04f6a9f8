package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sim "github.com/mess-sim/mess-sim/sim"
)

func writeScenario(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadScenario_FullFile(t *testing.T) {
	path := writeScenario(t, `
config:
  tables: 10
  stages:
    - name: side-dish
      capacity: 1
      mean_minutes: 1.0
      jitter_minutes: 0.5
    - name: carry
      capacity: 2
      mean_minutes: 0.5
      jitter_minutes: 0.1
    - name: rice
      capacity: 1
      mean_minutes: 0.8
      jitter_minutes: 0.2
  start_clock: "08:30"
  seed: 7
target_minutes: 20
`)

	sc, err := LoadScenario(path)
	require.NoError(t, err)

	assert.Equal(t, 10, sc.Config.Tables)
	assert.Equal(t, "08:30", sc.Config.StartClock)
	assert.Equal(t, int64(7), sc.Config.Seed)
	assert.Equal(t, sim.StageConfig{Name: "carry", Capacity: 2, MeanMinutes: 0.5, JitterMinutes: 0.1}, sc.Config.Stages[1])
	assert.InDelta(t, 20, sc.TargetMinutes, 1e-9)
	assert.NoError(t, sc.Config.Validate())
}

func TestLoadScenario_PartialFileKeepsDefaults(t *testing.T) {
	path := writeScenario(t, "target_minutes: 30\n")

	sc, err := LoadScenario(path)
	require.NoError(t, err)

	assert.Equal(t, sim.DefaultConfig(), sc.Config)
	assert.InDelta(t, 30, sc.TargetMinutes, 1e-9)
}

func TestLoadScenario_UnknownFieldIsAnError(t *testing.T) {
	path := writeScenario(t, `
config:
  tabels: 10
`)

	_, err := LoadScenario(path)
	assert.Error(t, err)
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
