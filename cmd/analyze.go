package cmd

import (
	"github.com/huangsam/stackrank/core"
	"github.com/huangsam/stackrank/internal/contract"
	"github.com/spf13/cobra"
)

// analyzeCmd runs the full analysis and prints the metrics overview.
var analyzeCmd = &cobra.Command{
	Use:   "analyze [csv-path]",
	Short: "Show the full pipeline metrics snapshot.",
	Long: `Validate, clean and analyze an opportunity CSV, then print the metrics
snapshot: totals, late-stage share, win rates, velocity and per-source and
per-stage breakdowns.

Validation is all-or-nothing; a single bad cell rejects the dataset and the
error lists every offending row per column.

Examples:
  # Analyze the default dataset
  stackrank analyze

  # Analyze a specific file for one region
  stackrank analyze exports/q3.csv --region AMER

  # Pin the quarter window for reproducible QTD figures
  stackrank analyze --as-of 2026-08-15

  # Export the snapshot for downstream tooling
  stackrank analyze --output json --output-file snapshot.json
  stackrank analyze --output parquet --output-file snapshot.parquet`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteAnalyze(cfg, store); err != nil {
			contract.LogFatal("Cannot run analysis", err)
		}
	},
}
