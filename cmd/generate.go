package cmd

import (
	"fmt"

	"github.com/huangsam/stackrank/core"
	"github.com/huangsam/stackrank/internal/contract"
	"github.com/spf13/cobra"
)

// generateCmd writes a synthetic dataset.
var generateCmd = &cobra.Command{
	Use:   "generate [csv-path]",
	Short: "Generate a synthetic opportunity dataset.",
	Long: `Write a synthetic opportunity CSV that passes schema validation and cleaning,
for demos and round-trip testing. Rows are weighted toward open stages with an
occasional closed-lost deal.

Examples:
  # 100 rows to the default dataset path
  stackrank generate

  # A reproducible 500-row dataset
  stackrank generate demo.csv --rows 500 --seed 42`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: configSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteGenerate(cfg); err != nil {
			contract.LogFatal("Cannot generate dataset", err)
		}
		fmt.Printf("Wrote %d synthetic opportunities to %s\n", cfg.SynthRows, cfg.InputPath)
	},
}
