package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/SAI141003/VirtualMemoryManager/sim"
)

var (
	sweepMinFrames int
	sweepMaxFrames int
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Fault counts of one policy across a range of frame counts",
	Long:  "Simulate one policy at every frame count in [--min-frames, --max-frames] and report where adding frames increased faults (Belady's anomaly).",
	Run: func(cmd *cobra.Command, args []string) {
		in, err := optionsFromFlags(cmd).resolve()
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		name, err := in.singlePolicy()
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		points, err := sim.Sweep(cmd.Context(), name, in.Refs, sweepMinFrames, sweepMaxFrames)
		if err != nil {
			logrus.Fatalf("Sweep failed: %v", err)
		}
		printSweep(cmd.OutOrStdout(), name, points, sim.BeladyAnomalies(points))
	},
}

func init() {
	addInputFlags(sweepCmd)
	sweepCmd.Flags().StringVar(&policyName, "policy", "FIFO", "Replacement policy (FIFO, LRU, Optimal)")
	sweepCmd.Flags().IntVar(&sweepMinFrames, "min-frames", 1, "Smallest frame count")
	sweepCmd.Flags().IntVar(&sweepMaxFrames, "max-frames", 7, "Largest frame count")

	rootCmd.AddCommand(sweepCmd)
}
