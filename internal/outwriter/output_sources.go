package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/huangsam/stackrank/internal/contract"
	"github.com/huangsam/stackrank/schema"
)

// sourcesPayload is the JSON shape for the sources view.
type sourcesPayload struct {
	PipelineBySource map[string]float64 `json:"pipeline_by_source"`
	TotalPipeline    float64            `json:"total_pipeline"`
}

// WriteSourceResults outputs the per-source pipeline breakdown, dispatching
// on the configured output format.
func WriteSourceResults(m *schema.Metrics, cfg *contract.Config, duration time.Duration) error {
	fmtFloat := createFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, sourcesPayload{PipelineBySource: m.PipelineBySource, TotalPipeline: m.TotalPipeline})
		}, "JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSourcesCSV(w, m, fmtFloat)
		}, "CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			if err := writeBreakdownTable(w, "Source", m.PipelineBySource); err != nil {
				return err
			}
			_, err := fmt.Fprintf(w, "Analysis completed in %v. Cache backend: %s\n", duration, cfg.CacheBackend)
			return err
		}, "table")
	}
}

// writeSourcesCSV writes the source breakdown with share-of-total, largest
// bucket first.
func writeSourcesCSV(w io.Writer, m *schema.Metrics, fmtFloat func(float64) string) error {
	return writeCSVWithHeader(w, []string{"source", "pipeline", "share_pct"}, func(cw *csv.Writer) error {
		for _, key := range sortedKeysByValue(m.PipelineBySource) {
			share := 0.0
			if m.TotalPipeline > 0 {
				share = m.PipelineBySource[key] / m.TotalPipeline * 100
			}
			if err := cw.Write([]string{key, fmtFloat(m.PipelineBySource[key]), fmtFloat(share)}); err != nil {
				return err
			}
		}
		return nil
	})
}
