package csvio

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/huangsam/stackrank/internal/contract"
	"github.com/huangsam/stackrank/schema"
)

// Pools for synthetic record generation.
var (
	synthOwners = []string{
		"Sarah Johnson", "Michael Chen", "Emily Rodriguez", "David Kim",
		"Rachel Thompson", "James Wilson", "Lisa Garcia", "John Smith",
	}
	synthRegions     = []string{"North", "South", "East", "West"}
	synthSources     = []string{"Inbound", "Outbound", "Partner", "Referral"}
	synthLeadSources = []string{"Marketing", "Sales", "Partner"}
)

// synthStage draws a stage with a weighted distribution that guarantees a
// spread across the funnel: 20% prospecting, 20% qualification, 30% proposal,
// 20% negotiation, 10% closed won. A twentieth of the rows come back as the
// string "Closed Lost" to exercise the dual stage encoding end to end.
func synthStage(rng *rand.Rand) string {
	if rng.Intn(20) == 0 {
		return "Closed Lost"
	}
	roll := rng.Float64()
	switch {
	case roll < 0.20:
		return "0"
	case roll < 0.40:
		return "1"
	case roll < 0.70:
		return "2"
	case roll < 0.90:
		return "3"
	default:
		return "4"
	}
}

// Synthesize generates a plausible raw dataset of n opportunity records with
// created dates inside the quarter containing asOf. A zero seed produces a
// different dataset per call; any other seed is reproducible.
func Synthesize(n int, asOf time.Time, seed int64) *schema.Dataset {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	quarterStart := contract.QuarterStart(asOf)

	header := make([]string, 0, len(schema.RequiredColumns()))
	for _, col := range schema.RequiredColumns() {
		header = append(header, string(col))
	}
	ds := &schema.Dataset{Columns: header, Rows: make([][]string, 0, n)}

	for i := range n {
		created := quarterStart.AddDate(0, 0, rng.Intn(90))
		closed := created.AddDate(0, 0, 30+rng.Intn(90))

		// Amounts land between 10k and 500k, rounded to the nearest thousand.
		amount := (10 + rng.Intn(491)) * 1000

		ds.Rows = append(ds.Rows, []string{
			fmt.Sprintf("OPP-%04d", i),
			synthOwners[rng.Intn(len(synthOwners))],
			"Sales Representative",
			synthRegions[rng.Intn(len(synthRegions))],
			created.Format(schema.DateFormat),
			closed.Format(schema.DateFormat),
			synthStage(rng),
			fmt.Sprintf("%d", amount),
			synthSources[rng.Intn(len(synthSources))],
			synthLeadSources[rng.Intn(len(synthLeadSources))],
		})
	}
	return ds
}
