// Package parquet exports metrics snapshots and rep rankings to Parquet files
// using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/huangsam/stackrank/schema"
	"github.com/parquet-go/parquet-go"
)

// Default output paths used when no output file is configured. Parquet is a
// binary format, so stdout is never a sensible destination.
const (
	defaultSnapshotPath = "snapshot.parquet"
	defaultRepsPath     = "reps.parquet"
)

// SnapshotRow is the flattened snapshot record written per distribution
// bucket. The scalar figures repeat on every row so each row is
// self-describing when loaded into an analytical engine.
type SnapshotRow struct {
	// AsOf is the reference date of the snapshot
	AsOf time.Time `parquet:"as_of,snappy"`

	// Dimension is the breakdown axis, "source" or "stage"
	Dimension string `parquet:"dimension,snappy"`

	// Bucket is the breakdown key within the dimension
	Bucket string `parquet:"bucket,snappy"`

	// BucketPipeline is the pipeline amount in this bucket
	BucketPipeline float64 `parquet:"bucket_pipeline,snappy"`

	// TotalPipeline is the snapshot-wide pipeline total
	TotalPipeline float64 `parquet:"total_pipeline,snappy"`

	// QualifiedPipeline is the snapshot-wide qualified pipeline
	QualifiedPipeline float64 `parquet:"qualified_pipeline,snappy"`

	// LateStagePipeline is the snapshot-wide late stage pipeline
	LateStagePipeline float64 `parquet:"late_stage_pipeline,snappy"`

	// WinRate is the snapshot-wide win rate fraction
	WinRate float64 `parquet:"win_rate,snappy"`

	// AvgDealSize is the snapshot-wide average deal size
	AvgDealSize float64 `parquet:"avg_deal_size,snappy"`

	// PipelineVelocity is the snapshot-wide average deal age in days
	PipelineVelocity float64 `parquet:"pipeline_velocity,snappy"`
}

// RepRow is the per-rep ranking record for Parquet export.
type RepRow struct {
	// AsOf is the reference date of the snapshot
	AsOf time.Time `parquet:"as_of,snappy"`

	// Rank is the 1-based position in the ranking
	Rank int32 `parquet:"rank,snappy"`

	// Owner is the rep name
	Owner string `parquet:"owner,snappy"`

	// TotalPipeline is the rep's open pipeline amount
	TotalPipeline float64 `parquet:"total_pipeline,snappy"`

	// OpportunityCount is the number of opportunities owned by the rep
	OpportunityCount int32 `parquet:"opportunity_count,snappy"`

	// QualificationRate is the share of qualified opportunities, in percent
	QualificationRate float64 `parquet:"qualification_rate,snappy"`

	// QualifiedPipeQTD is the qualified pipeline created this quarter
	QualifiedPipeQTD float64 `parquet:"qualified_pipe_qtd,snappy"`

	// LateStageAmount is the rep's late stage pipeline
	LateStageAmount float64 `parquet:"late_stage_amount,snappy"`

	// Stage0Count is the number of prospecting opportunities
	Stage0Count int32 `parquet:"stage_0_count,snappy"`

	// Stage0Age is the average age of prospecting opportunities in days
	Stage0Age float64 `parquet:"stage_0_age,snappy"`

	// Attainment is the pipeline created this quarter
	Attainment float64 `parquet:"attainment,snappy"`

	// Target is the stretch target for the quarter
	Target float64 `parquet:"target,snappy"`

	// PercentToPlan is attainment over target, in percent
	PercentToPlan float64 `parquet:"percent_to_plan,snappy"`
}

// ExportSnapshot writes the metrics snapshot to a Parquet file, one row per
// source and stage bucket.
func ExportSnapshot(outputPath string, m *schema.Metrics, asOf time.Time) error {
	if outputPath == "" {
		outputPath = defaultSnapshotPath
	}

	rows := flattenSnapshot(m, asOf)

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is derived from the SnapshotRow struct tags.
	writer := parquet.NewGenericWriter[SnapshotRow](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(rows); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Wrote snapshot to %s\n", outputPath)
	return nil
}

// ExportReps writes the ranked rep results to a Parquet file.
func ExportReps(outputPath string, reps []schema.RepResult, asOf time.Time) error {
	if outputPath == "" {
		outputPath = defaultRepsPath
	}

	rows := make([]RepRow, len(reps))
	for i, rep := range reps {
		rows[i] = RepRow{
			AsOf:              asOf,
			Rank:              int32(i + 1),
			Owner:             rep.Owner,
			TotalPipeline:     rep.TotalPipeline,
			OpportunityCount:  int32(rep.OpportunityCount),
			QualificationRate: rep.QualificationRate,
			QualifiedPipeQTD:  rep.QualifiedPipeQTD,
			LateStageAmount:   rep.LateStageAmount,
			Stage0Count:       int32(rep.Stage0Count),
			Stage0Age:         rep.Stage0Age,
			Attainment:        rep.Attainment,
			Target:            rep.Target,
			PercentToPlan:     rep.PercentToPlan,
		}
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[RepRow](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(rows); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Wrote rankings to %s\n", outputPath)
	return nil
}

// flattenSnapshot turns the snapshot maps into per-bucket rows. A snapshot
// with no stage buckets still yields its source rows, and vice versa.
func flattenSnapshot(m *schema.Metrics, asOf time.Time) []SnapshotRow {
	base := SnapshotRow{
		AsOf:              asOf,
		TotalPipeline:     m.TotalPipeline,
		QualifiedPipeline: m.QualifiedPipeline,
		LateStagePipeline: m.LateStagePipeline,
		WinRate:           m.WinRate,
		AvgDealSize:       m.AvgDealSize,
		PipelineVelocity:  m.PipelineVelocity,
	}

	var rows []SnapshotRow
	for bucket, amount := range m.PipelineBySource {
		row := base
		row.Dimension = "source"
		row.Bucket = bucket
		row.BucketPipeline = amount
		rows = append(rows, row)
	}
	for bucket, amount := range m.PipelineByStage {
		row := base
		row.Dimension = "stage"
		row.Bucket = bucket
		row.BucketPipeline = amount
		rows = append(rows, row)
	}
	return rows
}
