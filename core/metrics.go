package core

import (
	"github.com/huangsam/stackrank/schema"
)

// BuildMetrics rolls the cleaned and derived records up into the immutable
// metrics snapshot. Aggregation never fails on a cleaned dataset: every
// divide-by-zero and empty-group case yields 0 or an explicit sentinel, and
// an empty input returns the canonical empty snapshot.
func BuildMetrics(records []schema.Opportunity) *schema.Metrics {
	if len(records) == 0 {
		return schema.EmptyMetrics()
	}

	m := &schema.Metrics{
		PipelineBySource: make(map[string]float64),
		PipelineByStage:  make(map[string]float64),
	}

	var wonCount, lateStageCount int
	var stage0AgeSum, velocitySum float64

	for i := range records {
		r := &records[i]

		m.TotalPipeline += r.Amount
		if r.Stage.IsQualified() {
			m.QualifiedPipeline += r.Amount
		}
		if r.Stage.IsLateStage() {
			m.LateStagePipeline += r.Amount
			lateStageCount++
		}
		if r.Stage.IsWon() {
			wonCount++
		}
		if r.Stage.IsProspecting() {
			m.Stage0Pipeline += r.Amount
			m.Stage0Count++
			stage0AgeSum += r.AgeDays()
		}

		velocitySum += r.Derived.AvgAge
		m.PipelineBySource[r.Source] += r.Amount
		m.PipelineByStage[r.Stage.Label()] += r.Amount
	}

	if m.TotalPipeline > 0 {
		m.LateStagePercentage = m.LateStagePipeline / m.TotalPipeline * 100
	}
	if m.Stage0Count > 0 {
		m.AvgStage0Age = stage0AgeSum / float64(m.Stage0Count)
	}
	m.WinRate = float64(wonCount) / float64(len(records))
	if lateStageCount > 0 {
		m.LateStageWinRate = float64(wonCount) / float64(lateStageCount) * 100
	}
	m.AvgDealSize = m.TotalPipeline / float64(len(records))
	m.PipelineVelocity = velocitySum / float64(len(records))

	m.RepRankings = buildRepRankings(records)

	roundMetrics(m)
	return m
}

// buildRepRankings produces the per-owner rankings table, sorted descending by
// total pipeline. Owners first appear in dataset order, and the sort is
// stable, so ties keep that order deterministically across runs.
func buildRepRankings(records []schema.Opportunity) []schema.RepResult {
	byOwner := make(map[string]*schema.RepResult)
	var order []string

	for i := range records {
		r := &records[i]
		rep := byOwner[r.Owner]
		if rep == nil {
			rep = &schema.RepResult{
				Owner: r.Owner,
				// Owner-level aggregates are identical on every row of the
				// owner; first value wins.
				QualifiedPipeQTD: r.Derived.QualifiedPipeQTD,
				LateStageAmount:  r.Derived.LateStageAmount,
				Stage0Count:      r.Derived.Stage0Count,
				Stage0Age:        r.Derived.Stage0Age,
				Target:           r.Derived.PipelineTargetQTD,
			}
			byOwner[r.Owner] = rep
			order = append(order, r.Owner)
		}

		rep.TotalPipeline += r.Amount
		rep.OpportunityCount++
		if r.Stage.IsQualified() {
			rep.QualificationRate++ // qualified count for now; scaled below
		}
		if r.Stage.IsWon() {
			rep.Attainment += r.Amount
		}
	}

	reps := make([]schema.RepResult, 0, len(order))
	for _, owner := range order {
		rep := byOwner[owner]
		rep.QualificationRate = rep.QualificationRate / float64(rep.OpportunityCount) * 100
		if rep.Target > 0 {
			rep.PercentToPlan = rep.Attainment / rep.Target * 100
		}
		reps = append(reps, *rep)
	}
	return RankReps(reps, len(reps))
}

// roundMetrics rounds every figure handed to presentation to 2 decimals.
func roundMetrics(m *schema.Metrics) {
	m.TotalPipeline = schema.Round2(m.TotalPipeline)
	m.QualifiedPipeline = schema.Round2(m.QualifiedPipeline)
	m.LateStagePipeline = schema.Round2(m.LateStagePipeline)
	m.LateStagePercentage = schema.Round2(m.LateStagePercentage)
	m.Stage0Pipeline = schema.Round2(m.Stage0Pipeline)
	m.AvgStage0Age = schema.Round2(m.AvgStage0Age)
	m.WinRate = schema.Round2(m.WinRate)
	m.LateStageWinRate = schema.Round2(m.LateStageWinRate)
	m.AvgDealSize = schema.Round2(m.AvgDealSize)
	m.PipelineVelocity = schema.Round2(m.PipelineVelocity)

	for k, v := range m.PipelineBySource {
		m.PipelineBySource[k] = schema.Round2(v)
	}
	for k, v := range m.PipelineByStage {
		m.PipelineByStage[k] = schema.Round2(v)
	}
	for i := range m.RepRankings {
		rep := &m.RepRankings[i]
		rep.TotalPipeline = schema.Round2(rep.TotalPipeline)
		rep.QualificationRate = schema.Round2(rep.QualificationRate)
		rep.QualifiedPipeQTD = schema.Round2(rep.QualifiedPipeQTD)
		rep.LateStageAmount = schema.Round2(rep.LateStageAmount)
		rep.Stage0Age = schema.Round2(rep.Stage0Age)
		rep.Target = schema.Round2(rep.Target)
		rep.Attainment = schema.Round2(rep.Attainment)
		rep.PercentToPlan = schema.Round2(rep.PercentToPlan)
	}
}

// SummarizeAttainment computes the team-level percent-to-plan summary used by
// the reps view: reps at or above plan, and the mean and median attainment.
func SummarizeAttainment(reps []schema.RepResult) schema.TeamAttainment {
	if len(reps) == 0 {
		return schema.TeamAttainment{}
	}

	var summary schema.TeamAttainment
	percents := make([]float64, 0, len(reps))
	var sum float64
	for _, rep := range reps {
		if rep.PercentToPlan >= 100 {
			summary.RepsAbovePlan++
		}
		percents = append(percents, rep.PercentToPlan)
		sum += rep.PercentToPlan
	}

	summary.AveragePercentToPlan = schema.Round2(sum / float64(len(percents)))
	summary.MedianPercentToPlan = schema.Round2(median(percents))
	return summary
}
