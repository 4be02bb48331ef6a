// Package schema has models, constants and display helpers for all parts of stackrank.
package schema

import "time"

// Dataset is the raw tabular input consumed from the CSV/ingestion collaborator.
// Cells are kept as permissive strings; the core owns all coercion and
// validation. Rows preserve upload order, which the ranking tiebreak relies on.
type Dataset struct {
	Columns []string
	Rows    [][]string
}

// Index returns the position of the named column, or -1 when absent.
func (d *Dataset) Index(col Column) int {
	for i, c := range d.Columns {
		if c == string(col) {
			return i
		}
	}
	return -1
}

// Cell returns the trimmed-safe raw cell for a row and column position.
// Short rows read as empty cells, matching permissive CSV ingestion.
func (d *Dataset) Cell(row, idx int) string {
	if idx < 0 || idx >= len(d.Rows[row]) {
		return ""
	}
	return d.Rows[row][idx]
}

// Opportunity is one cleaned sales pipeline record.
type Opportunity struct {
	ID                 string    // Unique opportunity identifier
	Owner              string    // Sales rep name; the implicit grouping key
	Role               string    // Rep role
	Region             string    // Sales region
	CreatedDate        time.Time // Date the opportunity was created
	CloseDate          time.Time // Expected or actual close date
	Stage              Stage     // Normalized stage variant
	Amount             float64   // Deal amount, non-negative
	Source             string    // Opportunity source
	LeadSourceCategory string    // Lead source grouping

	// Derived carries the owner-level aggregates merged back onto every row
	// of that owner. Downstream filtering needs row-level access to these.
	Derived OwnerDerived
}

// AgeDays is the close-create distance in whole days. Negative when the data
// carries CreatedDate after CloseDate; that is surfaced as a quality signal,
// not rejected.
func (o *Opportunity) AgeDays() float64 {
	return o.CloseDate.Sub(o.CreatedDate).Hours() / 24
}

// OwnerDerived holds the six owner-level derived aggregates.
type OwnerDerived struct {
	QualifiedPipeQTD   float64 `json:"qualified_pipe_qtd"`
	LateStageAmount    float64 `json:"late_stage_amount"`
	AvgAge             float64 `json:"avg_age"`
	Stage0Age          float64 `json:"stage_0_age"`
	Stage0Count        int     `json:"stage_0_count"`
	PipelineCreatedQTD float64 `json:"pipeline_created_qtd"`
	PipelineTargetQTD  float64 `json:"pipeline_target_qtd"`
}

// Metrics is the immutable dashboard snapshot. A new snapshot replaces the old
// one wholesale; no field is updated in place.
type Metrics struct {
	TotalPipeline       float64 `json:"total_pipeline"`
	QualifiedPipeline   float64 `json:"qualified_pipeline"`
	LateStagePipeline   float64 `json:"late_stage_pipeline"`
	LateStagePercentage float64 `json:"late_stage_percentage"`
	Stage0Pipeline      float64 `json:"stage_0_pipeline"`
	Stage0Count         int     `json:"stage_0_count"`
	AvgStage0Age        float64 `json:"avg_stage_0_age"`
	WinRate             float64 `json:"win_rate"`
	LateStageWinRate    float64 `json:"late_stage_win_rate"`
	AvgDealSize         float64 `json:"avg_deal_size"`
	PipelineVelocity    float64 `json:"pipeline_velocity"`

	PipelineBySource map[string]float64 `json:"pipeline_by_source"`
	PipelineByStage  map[string]float64 `json:"pipeline_by_stage"`

	RepRankings []RepResult `json:"rep_rankings"`
}

// RepResult is one row of the per-owner rankings table.
type RepResult struct {
	Owner             string  `json:"owner"`
	TotalPipeline     float64 `json:"total_pipeline"`
	OpportunityCount  int     `json:"opportunity_count"`
	QualificationRate float64 `json:"qualification_rate"` // % of opportunities qualified
	QualifiedPipeQTD  float64 `json:"qualified_pipe_qtd"`
	LateStageAmount   float64 `json:"late_stage_amount"`
	Stage0Count       int     `json:"stage_0_count"`
	Stage0Age         float64 `json:"stage_0_age"`
	Target            float64 `json:"target"`
	Attainment        float64 `json:"attainment"`
	PercentToPlan     float64 `json:"percent_to_plan"`
}

// TeamAttainment summarizes percent-to-plan across the ranked reps.
type TeamAttainment struct {
	RepsAbovePlan        int     `json:"reps_above_plan"`
	AveragePercentToPlan float64 `json:"average_percent_to_plan"`
	MedianPercentToPlan  float64 `json:"median_percent_to_plan"`
}

// EmptyMetrics returns the canonical snapshot for a dataset with no rows:
// zero scalars, the no-data source sentinel, and an empty-but-typed rankings
// table. Presentation layers render a "no data" state from this without
// special-casing each metric.
func EmptyMetrics() *Metrics {
	return &Metrics{
		PipelineBySource: map[string]float64{NoDataSource: 0},
		PipelineByStage:  map[string]float64{},
		RepRankings:      []RepResult{},
	}
}
