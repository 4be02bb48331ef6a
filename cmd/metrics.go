package cmd

import (
	"github.com/spf13/cobra"
)

// metricsCmd displays the formal definitions of all derived metrics.
var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Display definitions for all derived metrics",
	Long: `Show the formal definitions for every derived field and snapshot metric.

No analysis is performed - this is purely informational.

Use this to:
- Understand what each metric measures
- Explain the numbers to your team
- Document reporting methodology

Examples:
  # Show metric definitions
  stackrank metrics`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Print(`Stage predicates
  Qualified            stage >= 2, or Closed Won. Closed Lost never qualifies.
  Late Stage           stage >= 3, or Closed Won, or Closed Lost.
  Won                  stage == 4, or Closed Won.
  Stage 0              stage == 0 (prospecting).

Per-rep derived fields (QTD = created on or after the quarter start)
  Qualified Pipe QTD   sum of qualified opportunity amounts created QTD.
  Late Stage Amount    sum of late-stage opportunity amounts.
  Avg Age              mean of (CloseDate - CreatedDate) in days, lost deals excluded.
  Stage 0 Age          mean age of stage-0 opportunities.
  Pipeline Created QTD total amount of opportunities created QTD.
  Target               pipeline created QTD x 1.20 stretch factor.
  Attainment           sum of won opportunity amounts.
  Percent To Plan      attainment / target x 100.

Snapshot metrics
  Total Pipeline       sum of all opportunity amounts.
  Qualified Pipeline   sum of qualified opportunity amounts.
  Late Stage %         late stage pipeline / total pipeline x 100.
  Win Rate             won count / opportunity count (a fraction, not a percent).
  Late Stage Win Rate  won count / late stage count x 100.
  Avg Deal Size        total pipeline / opportunity count.
  Pipeline Velocity    mean of per-rep average ages, in days.

All currency figures and rates are rounded to 2 decimal places.
`)
	},
}
