package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sim "github.com/mess-sim/mess-sim/sim"
)

func TestBuildConfig_FlagsOverrideScenario(t *testing.T) {
	// GIVEN a scenario file and explicit flags on top of it
	scenarioPath = writeScenario(t, `
config:
  tables: 10
  seed: 7
target_minutes: 20
`)
	t.Cleanup(func() { scenarioPath = "" })

	require.NoError(t, runCmd.Flags().Set("tables", "25"))
	require.NoError(t, runCmd.Flags().Set("capacities", "1,1,1"))

	// WHEN the config is assembled
	cfg, target, err := buildConfig(runCmd)
	require.NoError(t, err)

	// THEN flags win over the file, file wins over defaults
	assert.Equal(t, 25, cfg.Tables)
	assert.Equal(t, int64(7), cfg.Seed)
	for i := 0; i < sim.StageCount; i++ {
		assert.Equal(t, 1, cfg.Stages[i].Capacity)
	}
	assert.InDelta(t, 20, target, 1e-9)
}

func TestBuildConfig_RejectsWrongStageValueCount(t *testing.T) {
	require.NoError(t, replicateCmd.Flags().Set("capacities", "1,2"))

	_, _, err := buildConfig(replicateCmd)
	assert.Error(t, err)
}
