package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/elevator-sim/sim"
	"github.com/inference-sim/elevator-sim/sim/trace"
	"github.com/inference-sim/elevator-sim/sim/workload"
)

var (
	// CLI flags for level selection and run overrides
	levelsPath  string // Path to the level file
	levelName   string // Level to run
	seed        int64  // Seed for arrival generation; overrides the level's seed when set
	steps       int64  // Number of ticks; overrides the level's steps when set
	strategy    string // Dispatch strategy; overrides the level's strategy when set
	logLevel    string // Log verbosity level
	renderTicks bool   // Draw the building after every tick
	historySize int    // Frames kept for the starvation dump

	// CLI flags for outputs and scripted traffic
	traceLevel  string // Dispatch trace verbosity
	resultsPath string // File to save results as JSON
	replayPath  string // Replay arrivals from this file instead of sampling
	recordPath  string // Save the arrivals of this run for later replay
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "elevator-sim",
	Short: "Tick-based simulator for elevator dispatch strategies",
}

// runCmd executes one level using parameters from the level file and CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one level of the elevator simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		lvl, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(lvl)

		if !trace.IsValidTraceLevel(traceLevel) {
			logrus.Fatalf("Invalid trace level %q; valid: none, decisions", traceLevel)
		}

		file, err := workload.LoadLevels(levelsPath)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		level, err := resolveLevel(cmd, file, levelName)
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		opts := runOptions{
			Name:        levelName,
			Level:       level,
			TraceLevel:  trace.TraceLevel(traceLevel),
			Render:      renderTicks,
			History:     historySize,
			ReplayPath:  replayPath,
			RecordPath:  recordPath,
			ResultsPath: resultsPath,
		}
		if _, err := simulate(opts, os.Stdout); err != nil {
			logrus.Fatalf("%v", err)
		}
		logrus.Info("Simulation complete.")
	},
}

// levelsCmd lists the levels of a level file
var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the levels defined in a level file",
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := workload.LoadLevels(levelsPath)
		if err != nil {
			return err
		}
		printLevels(cmd.OutOrStdout(), file)
		return nil
	},
}

// resolveLevel picks the named level and applies the CLI overrides the user set.
func resolveLevel(cmd *cobra.Command, file *workload.LevelFile, name string) (workload.LevelSpec, error) {
	level, err := file.Level(name)
	if err != nil {
		return workload.LevelSpec{}, err
	}
	if cmd.Flags().Changed("seed") {
		logrus.Infof("CLI --seed %d overrides level seed %d", seed, level.Seed)
		level.Seed = seed
	}
	if cmd.Flags().Changed("steps") {
		level.Steps = steps
	}
	if cmd.Flags().Changed("strategy") {
		level.Strategy = strategy
	}
	if err := level.Validate(); err != nil {
		return workload.LevelSpec{}, fmt.Errorf("level %s: %w", name, err)
	}
	return level, nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&levelsPath, "levels", "levels.yaml", "Path to the level file")

	runCmd.Flags().StringVar(&levelName, "level", "01", "Level to run (\"1\" also matches \"01\")")
	runCmd.Flags().Int64Var(&seed, "seed", 0, "Seed for arrival generation (default: the level's seed)")
	runCmd.Flags().Int64Var(&steps, "steps", 0, "Number of ticks to simulate (default: the level's steps)")
	runCmd.Flags().StringVar(&strategy, "strategy", "", fmt.Sprintf("Dispatch strategy %v (default: the level's strategy)", sim.ValidStrategyNames()))
	runCmd.Flags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().BoolVar(&renderTicks, "render", false, "Draw the building after every tick")
	runCmd.Flags().IntVar(&historySize, "history", 0, "Draw the last N frames when a run starves (0 disables)")

	runCmd.Flags().StringVar(&traceLevel, "trace-level", "none", "Dispatch trace verbosity (none, decisions)")
	runCmd.Flags().StringVar(&resultsPath, "results-path", "", "File to save results as JSON")
	runCmd.Flags().StringVar(&replayPath, "replay", "", "Replay arrivals from a YAML file instead of sampling them")
	runCmd.Flags().StringVar(&recordPath, "record", "", "Save this run's arrivals to a YAML file for replay")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(levelsCmd)
}
