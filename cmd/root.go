package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/mess-sim/mess-sim/sim"
	"github.com/mess-sim/mess-sim/sim/report"
)

var (
	// CLI flags shared by the simulation subcommands
	scenarioPath  string    // Optional YAML scenario file
	logLevel      string    // Log verbosity level
	tables        int       // Number of tables to serve
	capacities    []int     // Per-stage server counts (side-dish, carry, rice)
	means         []float64 // Per-stage mean service minutes
	jitters       []float64 // Per-stage uniform jitter half-widths (minutes)
	startClock    string    // Wall-clock start of the serving duty, HH:MM
	seed          int64     // Seed for service duration sampling
	targetMinutes float64   // Target duty duration the run is judged against
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "mess-sim",
	Short: "Discrete-event simulator for a three-stage mess-hall serving duty",
}

// runCmd executes one simulation using parameters from the scenario file
// and CLI flags, then renders the duty report.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one serving duty simulation and print the report",
	Run: func(cmd *cobra.Command, args []string) {
		setUpLogging()

		cfg, target, err := buildConfig(cmd)
		if err != nil {
			logrus.Fatalf("Invalid scenario: %v", err)
		}

		s, err := sim.NewSimulator(cfg)
		if err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}

		logrus.Infof("Starting simulation: %d tables, capacities=[%d %d %d], seed=%d",
			cfg.Tables, cfg.Stages[0].Capacity, cfg.Stages[1].Capacity, cfg.Stages[2].Capacity, cfg.Seed)

		results := s.Run()
		printReport(results, report.Summarize(results, target))
	},
}

// setUpLogging applies the --log flag to the global logrus level.
func setUpLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// buildConfig assembles the simulation config: defaults, then the scenario
// file when given, then explicit flags on top.
func buildConfig(cmd *cobra.Command) (sim.Config, float64, error) {
	cfg := sim.DefaultConfig()
	target := targetMinutes
	if scenarioPath != "" {
		sc, err := LoadScenario(scenarioPath)
		if err != nil {
			return sim.Config{}, 0, err
		}
		cfg = sc.Config
		if sc.TargetMinutes != 0 {
			target = sc.TargetMinutes
		}
	}

	flags := cmd.Flags()
	if flags.Changed("tables") {
		cfg.Tables = tables
	}
	if flags.Changed("start") {
		cfg.StartClock = startClock
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("target") {
		target = targetMinutes
	}
	if flags.Changed("capacities") {
		if err := applyStageInts(&cfg, "capacities", capacities, func(st *sim.StageConfig, v int) { st.Capacity = v }); err != nil {
			return sim.Config{}, 0, err
		}
	}
	if flags.Changed("means") {
		if err := applyStageFloats(&cfg, "means", means, func(st *sim.StageConfig, v float64) { st.MeanMinutes = v }); err != nil {
			return sim.Config{}, 0, err
		}
	}
	if flags.Changed("jitters") {
		if err := applyStageFloats(&cfg, "jitters", jitters, func(st *sim.StageConfig, v float64) { st.JitterMinutes = v }); err != nil {
			return sim.Config{}, 0, err
		}
	}
	return cfg, target, nil
}

// applyStageInts spreads a 3-value flag across the pipeline stages.
func applyStageInts(cfg *sim.Config, name string, vals []int, set func(*sim.StageConfig, int)) error {
	if len(vals) != sim.StageCount {
		return fmt.Errorf("--%s needs %d values, got %d", name, sim.StageCount, len(vals))
	}
	for i := range cfg.Stages {
		set(&cfg.Stages[i], vals[i])
	}
	return nil
}

// applyStageFloats spreads a 3-value flag across the pipeline stages.
func applyStageFloats(cfg *sim.Config, name string, vals []float64, set func(*sim.StageConfig, float64)) error {
	if len(vals) != sim.StageCount {
		return fmt.Errorf("--%s needs %d values, got %d", name, sim.StageCount, len(vals))
	}
	for i := range cfg.Stages {
		set(&cfg.Stages[i], vals[i])
	}
	return nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	for _, c := range []*cobra.Command{runCmd, replicateCmd} {
		c.Flags().StringVar(&scenarioPath, "scenario", "", "YAML scenario file; flags override its values")
		c.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
		c.Flags().IntVar(&tables, "tables", 60, "Number of tables to serve")
		c.Flags().IntSliceVar(&capacities, "capacities", []int{2, 3, 2}, "Comma-separated per-stage server counts")
		c.Flags().Float64SliceVar(&means, "means", []float64{0.8, 0.5, 0.8}, "Comma-separated per-stage mean service minutes")
		c.Flags().Float64SliceVar(&jitters, "jitters", []float64{0.2, 0.1, 0.2}, "Comma-separated per-stage jitter half-widths (minutes)")
		c.Flags().StringVar(&startClock, "start", "07:00", "Wall-clock start of the duty (HH:MM)")
		c.Flags().Int64Var(&seed, "seed", 42, "Seed for service duration sampling")
		c.Flags().Float64Var(&targetMinutes, "target", 25, "Target duty duration in minutes")
	}
	replicateCmd.Flags().IntVar(&runs, "runs", 30, "Number of replications")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(replicateCmd)
}
