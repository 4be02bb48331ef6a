package cmd

import (
	"github.com/huangsam/stackrank/core"
	"github.com/huangsam/stackrank/internal/contract"
	"github.com/spf13/cobra"
)

// templateCmd writes the reference CSV template.
var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Print the reference CSV template.",
	Long: `Print the CSV header and sample rows showing the expected column set and both
stage encodings (numeric 0-4 and the Closed Won / Closed Lost strings).

Examples:
  # Inspect the expected format
  stackrank template

  # Start a new dataset from the template
  stackrank template --output-file data/sales_pipeline.csv`,
	Args:    cobra.NoArgs,
	PreRunE: configSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteTemplate(cfg); err != nil {
			contract.LogFatal("Cannot write template", err)
		}
	},
}
