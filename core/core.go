package core

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/huangsam/stackrank/internal/contract"
	"github.com/huangsam/stackrank/internal/csvio"
	"github.com/huangsam/stackrank/internal/digest"
	"github.com/huangsam/stackrank/internal/outwriter"
	"github.com/huangsam/stackrank/internal/parquet"
	"github.com/huangsam/stackrank/internal/snapstore"
	"github.com/huangsam/stackrank/schema"
)

// AnalyzePipeline runs the full batch pipeline on one raw dataset: schema
// validation, cleaning, filtering, derivation and aggregation. There is no
// hidden state; the caller owns both the input and the returned snapshot.
// Validation and cleaning are all-or-nothing, so a returned error means the
// dataset was rejected wholesale.
func AnalyzePipeline(ds *schema.Dataset, cfg *contract.Config) (*schema.Metrics, error) {
	records, err := CleanDataset(ds)
	if err != nil {
		return nil, err
	}

	filtered := FilterRecords(records, cfg.WantsRegion, cfg.WantsCreatedDate)
	if len(filtered) == 0 {
		// A filter that excludes every row is a no-data view, not an error.
		return schema.EmptyMetrics(), nil
	}

	derived := DeriveOwnerAggregates(filtered, cfg.AsOf)
	return BuildMetrics(derived), nil
}

// GetMetricsResult loads the configured dataset and produces its metrics
// snapshot, memoizing the result in the snapshot store keyed by a content
// hash of the filtered input. The bool result reports a cache hit.
func GetMetricsResult(cfg *contract.Config, store contract.SnapshotStore) (*schema.Metrics, bool, error) {
	ds, err := loadDataset(cfg)
	if err != nil {
		return nil, false, err
	}

	records, err := CleanDataset(ds)
	if err != nil {
		return nil, false, err
	}
	filtered := FilterRecords(records, cfg.WantsRegion, cfg.WantsCreatedDate)

	key := snapstore.Key(filtered, contract.QuarterStart(cfg.AsOf))
	if store != nil && !cfg.NoCache {
		if value, ok, err := store.Get(key); err != nil {
			contract.LogWarn("Snapshot lookup failed", err)
		} else if ok {
			var cached schema.Metrics
			if err := json.Unmarshal(value, &cached); err == nil {
				return &cached, true, nil
			}
			contract.LogWarn("Discarding undecodable snapshot", nil)
		}
	}

	var metrics *schema.Metrics
	if len(filtered) == 0 {
		metrics = schema.EmptyMetrics()
	} else {
		metrics = BuildMetrics(DeriveOwnerAggregates(filtered, cfg.AsOf))
	}

	if store != nil && !cfg.NoCache {
		value, err := json.Marshal(metrics)
		if err == nil {
			if err := store.Set(key, value, time.Now().Unix()); err != nil {
				contract.LogWarn("Snapshot save failed", err)
			}
		}
	}
	return metrics, false, nil
}

// loadDataset reads the configured CSV, falling back to an in-memory
// synthetic dataset when the file does not exist so a first run still shows a
// working dashboard.
func loadDataset(cfg *contract.Config) (*schema.Dataset, error) {
	if _, err := os.Stat(cfg.InputPath); os.IsNotExist(err) {
		contract.LogWarn(fmt.Sprintf("No dataset at %s, using synthetic data", cfg.InputPath), nil)
		return csvio.Synthesize(cfg.SynthRows, cfg.AsOf, cfg.SynthSeed), nil
	}
	return csvio.LoadDataset(cfg.InputPath)
}

// ExecuteAnalyze runs the full analysis and writes the metrics overview.
// It serves as the main entry point for the 'analyze' command.
func ExecuteAnalyze(cfg *contract.Config, store contract.SnapshotStore) error {
	start := time.Now()
	metrics, cached, err := GetMetricsResult(cfg, store)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	if cached {
		outwriter.LogCacheHit()
	}
	if cfg.Output == schema.ParquetOut {
		return parquet.ExportSnapshot(cfg.OutputFile, metrics, cfg.AsOf)
	}
	return outwriter.WriteMetrics(metrics, cfg, duration)
}

// ExecuteReps runs the full analysis and writes the rep rankings table.
// It serves as the main entry point for the 'reps' command.
func ExecuteReps(cfg *contract.Config, store contract.SnapshotStore) error {
	start := time.Now()
	metrics, cached, err := GetMetricsResult(cfg, store)
	if err != nil {
		return err
	}
	ranked := RankReps(metrics.RepRankings, cfg.ResultLimit)
	summary := SummarizeAttainment(metrics.RepRankings)
	duration := time.Since(start)
	if cached {
		outwriter.LogCacheHit()
	}
	if cfg.Output == schema.ParquetOut {
		return parquet.ExportReps(cfg.OutputFile, ranked, cfg.AsOf)
	}
	return outwriter.WriteRepResults(ranked, summary, cfg, duration)
}

// ExecuteSources runs the full analysis and writes the source breakdown.
// It serves as the main entry point for the 'sources' command.
func ExecuteSources(cfg *contract.Config, store contract.SnapshotStore) error {
	start := time.Now()
	metrics, _, err := GetMetricsResult(cfg, store)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	return outwriter.WriteSourceResults(metrics, cfg, duration)
}

// ExecuteDigest runs the full analysis and renders the HTML email digest for
// the delivery collaborator. Transport is out of scope here; the digest body
// lands on stdout or the configured output file.
func ExecuteDigest(cfg *contract.Config, store contract.SnapshotStore) error {
	metrics, _, err := GetMetricsResult(cfg, store)
	if err != nil {
		return err
	}

	file, err := contract.SelectOutputFile(cfg.OutputFile)
	if err != nil {
		return err
	}
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}
	return digest.Render(file, metrics, cfg.AsOf)
}

// ExecuteExport writes the snapshot and the ranked reps as two Parquet
// datasets under one export directory, for DuckDB/pandas style analytics.
func ExecuteExport(cfg *contract.Config, store contract.SnapshotStore) error {
	metrics, _, err := GetMetricsResult(cfg, store)
	if err != nil {
		return err
	}

	dir := cfg.OutputFile
	if dir == "" {
		dir = "stackrank-export"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	if err := parquet.ExportSnapshot(filepath.Join(dir, "snapshot.parquet"), metrics, cfg.AsOf); err != nil {
		return err
	}
	ranked := RankReps(metrics.RepRankings, cfg.ResultLimit)
	return parquet.ExportReps(filepath.Join(dir, "reps.parquet"), ranked, cfg.AsOf)
}

// ExecuteGenerate writes a synthetic dataset CSV to the configured input
// path, for demos and round-trip testing.
func ExecuteGenerate(cfg *contract.Config) error {
	ds := csvio.Synthesize(cfg.SynthRows, cfg.AsOf, cfg.SynthSeed)
	return csvio.SaveDataset(cfg.InputPath, ds)
}

// ExecuteTemplate writes the reference CSV template.
func ExecuteTemplate(cfg *contract.Config) error {
	file, err := contract.SelectOutputFile(cfg.OutputFile)
	if err != nil {
		return err
	}
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}
	return csvio.WriteTemplate(file)
}
