package cmd

import (
	"github.com/huangsam/stackrank/core"
	"github.com/huangsam/stackrank/internal/contract"
	"github.com/spf13/cobra"
)

// digestCmd renders the HTML email digest.
var digestCmd = &cobra.Command{
	Use:   "digest [csv-path]",
	Short: "Render the metrics snapshot as an HTML email body.",
	Long: `Render the full metrics snapshot as a self-contained HTML document suitable
for an email digest. The document lands on stdout or --output-file; wiring it
to a mailer is up to the caller.

Examples:
  # Render the digest to stdout
  stackrank digest

  # Write the digest for a cron mailer to pick up
  stackrank digest --output-file /var/spool/digest.html`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteDigest(cfg, store); err != nil {
			contract.LogFatal("Cannot render digest", err)
		}
	},
}
