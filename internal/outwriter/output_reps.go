package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/huangsam/stackrank/internal/contract"
	"github.com/huangsam/stackrank/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// repsPayload is the JSON shape for the reps view: the ranked table plus the
// team attainment summary.
type repsPayload struct {
	Rankings []schema.RepResult    `json:"rankings"`
	Team     schema.TeamAttainment `json:"team"`
}

// WriteRepResults outputs the rep rankings, dispatching on the configured
// output format.
func WriteRepResults(reps []schema.RepResult, team schema.TeamAttainment, cfg *contract.Config, duration time.Duration) error {
	fmtFloat := createFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, repsPayload{Rankings: reps, Team: team})
		}, "JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRepsCSV(w, reps, fmtFloat)
		}, "CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRepsTable(w, reps, team, cfg, duration)
		}, "table")
	}
}

// writeRepsTable generates the human-readable rankings table.
func writeRepsTable(w io.Writer, reps []schema.RepResult, team schema.TeamAttainment, cfg *contract.Config, duration time.Duration) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rank", "Rep", "Pipeline", "Opps", "Qual Rate", "Qual QTD", "Late Stage", "Stage 0", "Attainment", "Target", "To Plan", "Label"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for i, rep := range reps {
		label := contract.GetPlainLabel(rep.PercentToPlan)
		if cfg.UseColors {
			label = contract.GetColorLabel(rep.PercentToPlan)
		}
		data = append(data, []string{
			strconv.Itoa(i + 1),
			schema.AbbreviateName(rep.Owner),
			schema.FormatCurrency(rep.TotalPipeline),
			strconv.Itoa(rep.OpportunityCount),
			schema.FormatPercent(rep.QualificationRate),
			schema.FormatCurrency(rep.QualifiedPipeQTD),
			schema.FormatCurrency(rep.LateStageAmount),
			strconv.Itoa(rep.Stage0Count),
			schema.FormatCurrency(rep.Attainment),
			schema.FormatCurrency(rep.Target),
			schema.FormatPercent(rep.PercentToPlan),
			label,
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Showing top %d reps (%d above plan, avg %.1f%%, median %.1f%%)\n",
		len(reps), team.RepsAbovePlan, team.AveragePercentToPlan, team.MedianPercentToPlan); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Analysis completed in %v. Cache backend: %s\n", duration, cfg.CacheBackend)
	return err
}

// writeRepsCSV writes the rankings in CSV format.
func writeRepsCSV(w io.Writer, reps []schema.RepResult, fmtFloat func(float64) string) error {
	header := []string{
		"rank",
		"owner",
		"total_pipeline",
		"opportunity_count",
		"qualification_rate",
		"qualified_pipe_qtd",
		"late_stage_amount",
		"stage_0_count",
		"stage_0_age",
		"attainment",
		"target",
		"percent_to_plan",
		"label",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for i, rep := range reps {
			rec := []string{
				strconv.Itoa(i + 1),
				rep.Owner,
				fmtFloat(rep.TotalPipeline),
				strconv.Itoa(rep.OpportunityCount),
				fmtFloat(rep.QualificationRate),
				fmtFloat(rep.QualifiedPipeQTD),
				fmtFloat(rep.LateStageAmount),
				strconv.Itoa(rep.Stage0Count),
				fmtFloat(rep.Stage0Age),
				fmtFloat(rep.Attainment),
				fmtFloat(rep.Target),
				fmtFloat(rep.PercentToPlan),
				contract.GetPlainLabel(rep.PercentToPlan),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
