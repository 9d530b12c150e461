package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/SAI141003/VirtualMemoryManager/sim/workload"
)

var (
	genLength  int   // Number of references to print
	genMaxPage int   // Largest page ID to print
	genSeed    int64 // Seed for the printed sequence
)

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Print a random reference sequence",
	Long:  "Print a seeded random reference sequence, comma-separated, suitable for --sequence or a sequence CSV file.",
	Run: func(cmd *cobra.Command, args []string) {
		refs, err := workload.RandomSequenceFromSeed(genSeed, genLength, genMaxPage)
		if err != nil {
			logrus.Fatalf("Generating sequence failed: %v", err)
		}
		printf(cmd.OutOrStdout(), "%s\n", workload.FormatSequence(refs, ","))
	},
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the named reference sequences in the defaults file",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadDefaultsConfig(defaultsFilePath)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		printPresets(cmd.OutOrStdout(), cfg)
	},
}

func init() {
	randomCmd.Flags().IntVar(&genLength, "length", workload.DefaultRandomLength, "Number of references")
	randomCmd.Flags().IntVar(&genMaxPage, "max-page", workload.DefaultRandomMaxPage, "Largest page ID")
	randomCmd.Flags().Int64Var(&genSeed, "seed", defaultSeed, "Seed for sequence generation")

	rootCmd.AddCommand(randomCmd)
	rootCmd.AddCommand(presetsCmd)
}
