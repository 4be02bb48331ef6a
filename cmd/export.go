package cmd

import (
	"github.com/huangsam/stackrank/core"
	"github.com/huangsam/stackrank/internal/contract"
	"github.com/spf13/cobra"
)

// exportCmd writes the snapshot and rankings as Parquet datasets.
var exportCmd = &cobra.Command{
	Use:   "export [csv-path]",
	Short: "Export the snapshot and rankings to Parquet for analytics",
	Long: `Run the full analysis and write two Parquet datasets into one directory:

- snapshot.parquet - the metrics snapshot, one row per source/stage bucket
- reps.parquet     - the ranked reps with attainment figures

Parquet format enables:
- Fast querying with DuckDB, Apache Spark, pandas
- Efficient storage with columnar compression
- Direct import into BI tools

Examples:
  # Export the default dataset
  stackrank export --output-file pipeline-data

  # Query the result with DuckDB
  duckdb -c "SELECT * FROM read_parquet('pipeline-data/reps.parquet') LIMIT 10"`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteExport(cfg, store); err != nil {
			contract.LogFatal("Cannot export analysis data", err)
		}
	},
}
