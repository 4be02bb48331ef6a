package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/huangsam/stackrank/internal/contract"
	"github.com/huangsam/stackrank/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteMetrics outputs the pipeline overview, dispatching on the configured
// output format.
func WriteMetrics(m *schema.Metrics, cfg *contract.Config, duration time.Duration) error {
	fmtFloat := createFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, m)
		}, "JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeMetricsCSV(w, m, fmtFloat)
		}, "CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeMetricsTable(w, m, cfg, duration)
		}, "table")
	}
}

// scalarRows flattens the snapshot scalars into display rows.
func scalarRows(m *schema.Metrics) [][2]string {
	return [][2]string{
		{"Total Pipeline", schema.FormatCurrency(m.TotalPipeline)},
		{"Qualified Pipeline", schema.FormatCurrency(m.QualifiedPipeline)},
		{"Late Stage Pipeline", schema.FormatCurrency(m.LateStagePipeline)},
		{"Late Stage %", schema.FormatPercent(m.LateStagePercentage)},
		{"Stage 0 Pipeline", schema.FormatCurrency(m.Stage0Pipeline)},
		{"Stage 0 Count", fmt.Sprintf("%d", m.Stage0Count)},
		{"Avg Stage 0 Age", fmt.Sprintf("%.1f days", m.AvgStage0Age)},
		{"Win Rate", schema.FormatPercent(m.WinRate * 100)},
		{"Late Stage Win Rate", schema.FormatPercent(m.LateStageWinRate)},
		{"Avg Deal Size", schema.FormatCurrency(m.AvgDealSize)},
		{"Pipeline Velocity", fmt.Sprintf("%.1f days", m.PipelineVelocity)},
	}
}

// writeMetricsTable generates the human-readable overview tables.
func writeMetricsTable(w io.Writer, m *schema.Metrics, cfg *contract.Config, duration time.Duration) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Metric", "Value"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, row := range scalarRows(m) {
		data = append(data, []string{row[0], row[1]})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if err := writeBreakdownTable(w, "Source", m.PipelineBySource); err != nil {
		return err
	}
	if err := writeBreakdownTable(w, "Stage", m.PipelineByStage); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "Analysis completed in %v over %d reps. Cache backend: %s\n",
		duration, len(m.RepRankings), cfg.CacheBackend)
	return err
}

// writeBreakdownTable renders one distribution mapping as a two-column table,
// largest bucket first.
func writeBreakdownTable(w io.Writer, dimension string, amounts map[string]float64) error {
	if len(amounts) == 0 {
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{dimension, "Pipeline"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	maxLabel := terminalWidth() / 3
	var data [][]string
	for _, key := range sortedKeysByValue(amounts) {
		data = append(data, []string{
			truncateLabel(key, maxLabel),
			schema.FormatCurrency(amounts[key]),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeMetricsCSV writes the snapshot scalars and distributions as CSV.
func writeMetricsCSV(w io.Writer, m *schema.Metrics, fmtFloat func(float64) string) error {
	rows := [][]string{
		{"total_pipeline", fmtFloat(m.TotalPipeline)},
		{"qualified_pipeline", fmtFloat(m.QualifiedPipeline)},
		{"late_stage_pipeline", fmtFloat(m.LateStagePipeline)},
		{"late_stage_percentage", fmtFloat(m.LateStagePercentage)},
		{"stage_0_pipeline", fmtFloat(m.Stage0Pipeline)},
		{"stage_0_count", fmt.Sprintf("%d", m.Stage0Count)},
		{"avg_stage_0_age", fmtFloat(m.AvgStage0Age)},
		{"win_rate", fmtFloat(m.WinRate)},
		{"late_stage_win_rate", fmtFloat(m.LateStageWinRate)},
		{"avg_deal_size", fmtFloat(m.AvgDealSize)},
		{"pipeline_velocity", fmtFloat(m.PipelineVelocity)},
	}
	for _, key := range sortedKeysByValue(m.PipelineBySource) {
		rows = append(rows, []string{"source:" + key, fmtFloat(m.PipelineBySource[key])})
	}
	for _, key := range sortedKeysByValue(m.PipelineByStage) {
		rows = append(rows, []string{"stage:" + key, fmtFloat(m.PipelineByStage[key])})
	}

	return writeCSVWithHeader(w, []string{"metric", "value"}, func(cw *csv.Writer) error {
		for _, row := range rows {
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}
