package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/SAI141003/VirtualMemoryManager/sim"
	"github.com/SAI141003/VirtualMemoryManager/sim/export"
	"github.com/SAI141003/VirtualMemoryManager/sim/workload"
)

// defaultSeed seeds random sequences when --seed is not given.
const defaultSeed int64 = 42

var (
	logLevel         string // Log verbosity level
	defaultsFilePath string // Path to defaults.yaml (fallback policy/frames and presets)

	// Input flags shared by run, compare, sweep and replay
	policyName    string // Replacement policy (FIFO, LRU, Optimal)
	frames        int    // Number of resident frames (capacity)
	sequenceText  string // Comma-separated reference sequence
	sequenceFile  string // CSV file whose first line is the reference sequence
	presetName    string // Named preset from defaults.yaml
	specPath      string // YAML run spec
	useRandom     bool   // Generate a random reference sequence
	randomLength  int    // Length of a generated sequence
	randomMaxPage int    // Largest page ID in a generated sequence
	seed          int64  // Seed for random sequence generation

	traceOutPath string // Where run writes the trace CSV
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "vmsim",
	Short: "Page-replacement simulator (FIFO, LRU, Optimal)",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// runCmd simulates one policy and prints its step table
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Simulate one replacement policy over a reference sequence",
	Run: func(cmd *cobra.Command, args []string) {
		in, err := optionsFromFlags(cmd).resolve()
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		name, err := in.singlePolicy()
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		logrus.Infof("Starting %s simulation with %d frames over %d references (%s)", name, in.Frames, len(in.Refs), in.Source)

		t, err := sim.Simulate(name, in.Refs, in.Frames)
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		out := cmd.OutOrStdout()
		printTrace(out, t)
		printTraceSummary(out, t)

		if traceOutPath != "" {
			if err := writeFile(traceOutPath, func(f *os.File) error { return export.WriteTraceCSV(f, t) }); err != nil {
				logrus.Fatalf("Writing trace CSV failed: %v", err)
			}
			logrus.Infof("Trace written to %s", traceOutPath)
		}
		logrus.Info("Simulation complete.")
	},
}

// Execute runs the CLI root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// writeFile creates path and hands it to write, closing it afterwards.
func writeFile(path string, write func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// addInputFlags registers the flags that select a reference sequence and capacity.
func addInputFlags(c *cobra.Command) {
	c.Flags().IntVar(&frames, "frames", 3, "Number of resident frames (capacity)")
	c.Flags().StringVar(&sequenceText, "sequence", "", "Comma-separated reference sequence, e.g. 1,2,3,4,1,2")
	c.Flags().StringVar(&sequenceFile, "sequence-file", "", "CSV file whose first line is the reference sequence")
	c.Flags().StringVar(&presetName, "preset", "", "Named preset from the defaults file (e.g. belady, textbook)")
	c.Flags().StringVar(&specPath, "spec", "", "YAML run spec (policy, frames, sequence or random)")
	c.Flags().BoolVar(&useRandom, "random", false, "Generate a random reference sequence")
	c.Flags().IntVar(&randomLength, "length", workload.DefaultRandomLength, "Length of a generated sequence")
	c.Flags().IntVar(&randomMaxPage, "max-page", workload.DefaultRandomMaxPage, "Largest page ID in a generated sequence")
	c.Flags().Int64Var(&seed, "seed", defaultSeed, "Seed for random sequence generation")
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().StringVar(&defaultsFilePath, "defaults-filepath", "defaults.yaml", "Path to defaults.yaml")

	addInputFlags(runCmd)
	runCmd.Flags().StringVar(&policyName, "policy", "FIFO", "Replacement policy (FIFO, LRU, Optimal)")
	runCmd.Flags().StringVar(&traceOutPath, "out", "", "Write the trace as CSV to this path")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
