package cmd

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/sirupsen/logrus"

	"github.com/SAI141003/VirtualMemoryManager/sim"
	"github.com/SAI141003/VirtualMemoryManager/sim/export"
	"github.com/SAI141003/VirtualMemoryManager/sim/trace"
)

// printf writes to w, logging (not failing) on a broken output stream.
func printf(w io.Writer, format string, args ...interface{}) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		logrus.Errorf("writing output: %v", err)
	}
}

// printTrace prints the step table of one simulation.
func printTrace(w io.Writer, t *trace.Trace) {
	printf(w, "=== %s (%d frames) ===\n", t.Policy, t.Capacity)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	printf(tw, "Step\tPage\tFrames\tPage Fault\tEvicted\n")
	for _, r := range t.Records {
		evicted := "-"
		if r.Evicted != nil {
			evicted = fmt.Sprint(*r.Evicted)
		}
		printf(tw, "%d\t%d\t%s\t%s\t%s\n", r.Step, r.Page, export.FormatFrames(r.Resident, ", "), r.FaultLabel(), evicted)
	}
	if err := tw.Flush(); err != nil {
		logrus.Errorf("writing output: %v", err)
	}
}

// printTraceSummary prints the fault total line of a single run.
func printTraceSummary(w io.Writer, t *trace.Trace) {
	stats := trace.Summarize(t)
	printf(w, "Total Page Faults: %d (%.1f%%)\n", stats.FaultCount, stats.FaultPercent())
	printf(w, "Final Frames     : [%s]\n", export.FormatFrames(t.Final(), ", "))
	printf(w, "Fingerprint      : %016x\n", t.Fingerprint())
}

// printFaultTable prints the per-policy fault comparison.
func printFaultTable(w io.Writer, result *sim.ComparisonResult) {
	printf(w, "=== Page Fault Comparison (%d frames, %d references) ===\n", result.Capacity, len(result.Sequence))
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	printf(tw, "Algorithm\tFaults\tHits\tFault Rate\tFingerprint\n")
	for _, s := range result.FaultTable() {
		printf(tw, "%s\t%d\t%d\t%.1f%%\t%016x\n", s.Policy, s.FaultCount, s.HitCount, s.FaultPercent(), result.Trace(s.Policy).Fingerprint())
	}
	if err := tw.Flush(); err != nil {
		logrus.Errorf("writing output: %v", err)
	}
	if best := result.Best(); best != "" {
		printf(w, "Fewest faults: %s\n", best)
	}
}

// printSweep prints the fault curve of a capacity sweep and any anomalies.
func printSweep(w io.Writer, name string, points []sim.SweepPoint, anomalies []sim.Anomaly) {
	printf(w, "=== %s capacity sweep ===\n", name)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	printf(tw, "Frames\tFaults\tFault Rate\n")
	for _, p := range points {
		printf(tw, "%d\t%d\t%.1f%%\n", p.Capacity, p.FaultCount, p.FaultRate*100)
	}
	if err := tw.Flush(); err != nil {
		logrus.Errorf("writing output: %v", err)
	}
	if len(anomalies) == 0 {
		printf(w, "No Belady anomaly in this range.\n")
		return
	}
	for _, a := range anomalies {
		printf(w, "Belady anomaly: %d frames -> %d faults, %d frames -> %d faults\n",
			a.PrevCapacity, a.PrevFaultCount, a.Capacity, a.FaultCount)
	}
}

// printPresets lists the presets of a defaults file, sorted by name.
func printPresets(w io.Writer, cfg *Config) {
	names := make([]string, 0, len(cfg.Presets))
	for name := range cfg.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	printf(tw, "Preset\tFrames\tLength\tDescription\n")
	for _, name := range names {
		p := cfg.Presets[name]
		printf(tw, "%s\t%d\t%d\t%s\n", name, p.Frames, len(p.Sequence), p.Description)
	}
	if err := tw.Flush(); err != nil {
		logrus.Errorf("writing output: %v", err)
	}
}

// formatReplayStep renders one step as a log line for replay.
func formatReplayStep(r trace.StepRecord) string {
	return fmt.Sprintf("Step %d: Page %d -> Frames: [%s] -> Page Fault: %s",
		r.Step, r.Page, export.FormatFrames(r.Resident, ", "), r.FaultLabel())
}
