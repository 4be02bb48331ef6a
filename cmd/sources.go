package cmd

import (
	"github.com/huangsam/stackrank/core"
	"github.com/huangsam/stackrank/internal/contract"
	"github.com/spf13/cobra"
)

// sourcesCmd breaks down pipeline by lead source.
var sourcesCmd = &cobra.Command{
	Use:   "sources [csv-path]",
	Short: "Break down open pipeline by lead source.",
	Long: `Show how open pipeline distributes across lead sources, largest first.

An empty dataset or a filter that excludes every row reports a single
"No Data" bucket rather than failing.

Examples:
  # Source breakdown for the default dataset
  stackrank sources

  # Source mix for deals created this quarter
  stackrank sources --start 2026-07-01

  # Machine-readable output with share-of-total
  stackrank sources --output csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteSources(cfg, store); err != nil {
			contract.LogFatal("Cannot run source breakdown", err)
		}
	},
}
