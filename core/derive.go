package core

import (
	"time"

	"github.com/huangsam/stackrank/internal/contract"
	"github.com/huangsam/stackrank/schema"
)

// DeriveOwnerAggregates computes the six owner-level derived aggregates from
// the cleaned records and merges each owner's aggregates back onto every row
// belonging to that owner. The result is a new slice; derivation is a pure
// function of the raw fields, so running it twice yields identical output.
// Negative ages flow through as a data-quality signal, never an error.
func DeriveOwnerAggregates(records []schema.Opportunity, asOf time.Time) []schema.Opportunity {
	aggregates := ownerAggregates(records, asOf)

	derived := make([]schema.Opportunity, len(records))
	for i, r := range records {
		r.Derived = aggregates[r.Owner]
		derived[i] = r
	}
	return derived
}

// ownerAccumulator collects the intermediate sums for one owner.
type ownerAccumulator struct {
	qualifiedQTD float64
	lateStage    float64
	createdQTD   float64

	ageSum   float64 // age over non-lost rows
	ageCount int

	stage0AgeSum float64
	stage0Count  int
}

// ownerAggregates rolls the records up into per-owner derived fields.
func ownerAggregates(records []schema.Opportunity, asOf time.Time) map[string]schema.OwnerDerived {
	accs := make(map[string]*ownerAccumulator)

	for i := range records {
		r := &records[i]
		acc := accs[r.Owner]
		if acc == nil {
			acc = &ownerAccumulator{}
			accs[r.Owner] = acc
		}

		if r.Stage.IsQualified() && contract.InQuarter(r.CreatedDate, asOf) {
			acc.qualifiedQTD += r.Amount
		}
		if r.Stage.IsLateStage() {
			acc.lateStage += r.Amount
		}
		if contract.InQuarter(r.CreatedDate, asOf) {
			acc.createdQTD += r.Amount
		}
		if !r.Stage.IsLost() {
			acc.ageSum += r.AgeDays()
			acc.ageCount++
		}
		if r.Stage.IsProspecting() {
			acc.stage0AgeSum += r.AgeDays()
			acc.stage0Count++
		}
	}

	out := make(map[string]schema.OwnerDerived, len(accs))
	for owner, acc := range accs {
		d := schema.OwnerDerived{
			QualifiedPipeQTD:   acc.qualifiedQTD,
			LateStageAmount:    acc.lateStage,
			Stage0Count:        acc.stage0Count,
			PipelineCreatedQTD: acc.createdQTD,
			PipelineTargetQTD:  acc.createdQTD * schema.TargetStretchFactor,
		}
		if acc.ageCount > 0 {
			d.AvgAge = acc.ageSum / float64(acc.ageCount)
		}
		if acc.stage0Count > 0 {
			d.Stage0Age = acc.stage0AgeSum / float64(acc.stage0Count)
		}
		out[owner] = d
	}
	return out
}
