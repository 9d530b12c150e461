package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/SAI141003/VirtualMemoryManager/sim"
	"github.com/SAI141003/VirtualMemoryManager/sim/export"
)

var (
	comparePolicies []string // Subset of policies to compare
	compareCSVPath  string   // Where to write the comparison CSV
	compareJSONPath string   // Where to write the JSON report ("-" for stdout)
	showTraces      bool     // Print every policy's step table
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run FIFO, LRU and Optimal over the same sequence and compare faults",
	Long:  "Run every policy (or the subset given by --policies) concurrently over identical input, print the fault comparison and optionally export the traces as CSV or a JSON report.",
	Run: func(cmd *cobra.Command, args []string) {
		in, err := optionsFromFlags(cmd).resolve()
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		names := in.comparePolicies(comparePolicies, cmd.Flags().Changed("policies"))
		logrus.Infof("Comparing %v with %d frames over %d references (%s)", names, in.Frames, len(in.Refs), in.Source)

		result, err := sim.Compare(cmd.Context(), in.Refs, in.Frames, names...)
		if err != nil {
			logrus.Fatalf("Comparison failed: %v", err)
		}

		out := cmd.OutOrStdout()
		if showTraces {
			for _, name := range result.Policies() {
				printTrace(out, result.Trace(name))
				printf(out, "\n")
			}
		}
		printFaultTable(out, result)

		if compareCSVPath != "" {
			if err := writeFile(compareCSVPath, func(f *os.File) error { return export.WriteComparisonCSV(f, result) }); err != nil {
				logrus.Fatalf("Writing comparison CSV failed: %v", err)
			}
			logrus.Infof("Comparison written to %s", compareCSVPath)
		}
		if compareJSONPath != "" {
			report := export.NewReport(result)
			if compareJSONPath == "-" {
				err = report.WriteJSON(out)
			} else {
				err = writeFile(compareJSONPath, func(f *os.File) error { return report.WriteJSON(f) })
			}
			if err != nil {
				logrus.Fatalf("Writing report failed: %v", err)
			}
			logrus.Infof("Report %s written", report.RunID)
		}
	},
}

func init() {
	addInputFlags(compareCmd)
	compareCmd.Flags().StringSliceVar(&comparePolicies, "policies", sim.PolicyNames(), "Comma-separated policies to compare; overrides a run spec's policy")
	compareCmd.Flags().StringVar(&compareCSVPath, "csv", "", "Write all traces as CSV (Algorithm, Step, Page, Frames, Page Fault)")
	compareCmd.Flags().StringVar(&compareJSONPath, "json", "", "Write a JSON run report to this path (- for stdout)")
	compareCmd.Flags().BoolVar(&showTraces, "show-traces", false, "Print each policy's step table")

	rootCmd.AddCommand(compareCmd)
}
