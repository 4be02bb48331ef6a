package cmd

import (
	"github.com/huangsam/stackrank/core"
	"github.com/huangsam/stackrank/internal/contract"
	"github.com/spf13/cobra"
)

// repsCmd ranks reps by total open pipeline.
var repsCmd = &cobra.Command{
	Use:   "reps [csv-path]",
	Short: "Rank reps by pipeline with attainment against plan.",
	Long: `Rank reps by total open pipeline, showing qualification rate, quarter-to-date
attainment and stretch targets per rep, plus a team summary.

Ties in total pipeline keep the order reps first appear in the dataset, so
repeated runs over the same file always agree.

Examples:
  # Show the top 25 reps (default)
  stackrank reps

  # Top 10 reps in EMEA
  stackrank reps --region EMEA --limit 10

  # Export rankings to CSV for tracking
  stackrank reps --output csv --output-file reps.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteReps(cfg, store); err != nil {
			contract.LogFatal("Cannot run rep rankings", err)
		}
	},
}
