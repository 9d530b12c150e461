package cmd

import (
	"context"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/SAI141003/VirtualMemoryManager/sim"
	"github.com/SAI141003/VirtualMemoryManager/sim/trace"
)

var replayDelay time.Duration // Pause between replayed steps

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Step through a simulation one reference at a time",
	Run: func(cmd *cobra.Command, args []string) {
		in, err := optionsFromFlags(cmd).resolve()
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		name, err := in.singlePolicy()
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		t, err := sim.Simulate(name, in.Refs, in.Frames)
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		out := cmd.OutOrStdout()
		if err := replayTrace(cmd.Context(), out, t, replayDelay); err != nil {
			logrus.Warnf("Replay stopped: %v", err)
			return
		}
		printTraceSummary(out, t)
	},
}

// replayTrace prints t one step at a time, waiting delay between steps.
// The trace is already computed; replay only re-iterates it.
func replayTrace(ctx context.Context, w io.Writer, t *trace.Trace, delay time.Duration) error {
	for i, r := range t.Records {
		if i > 0 && delay > 0 {
			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}
		printf(w, "%s\n", formatReplayStep(r))
	}
	return nil
}

func init() {
	addInputFlags(replayCmd)
	replayCmd.Flags().StringVar(&policyName, "policy", "FIFO", "Replacement policy (FIFO, LRU, Optimal)")
	replayCmd.Flags().DurationVar(&replayDelay, "delay", 800*time.Millisecond, "Pause between steps")

	rootCmd.AddCommand(replayCmd)
}
