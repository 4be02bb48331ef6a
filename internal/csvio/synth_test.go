package csvio

import (
	"strconv"
	"testing"
	"time"

	"github.com/huangsam/stackrank/internal/contract"
	"github.com/huangsam/stackrank/schema"
	"github.com/stretchr/testify/assert"
)

func TestSynthesizeShape(t *testing.T) {
	asOf := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	ds := Synthesize(50, asOf, 42)

	assert.Len(t, ds.Rows, 50)
	for _, col := range schema.RequiredColumns() {
		assert.GreaterOrEqual(t, ds.Index(col), 0, "header carries %s", col)
	}
}

func TestSynthesizeRowsAreClean(t *testing.T) {
	asOf := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	quarterStart := contract.QuarterStart(asOf)
	ds := Synthesize(200, asOf, 42)

	createdIdx := ds.Index(schema.ColCreatedDate)
	closeIdx := ds.Index(schema.ColCloseDate)
	stageIdx := ds.Index(schema.ColStage)
	amountIdx := ds.Index(schema.ColAmount)

	for i := range ds.Rows {
		created, err := time.Parse(schema.DateFormat, ds.Cell(i, createdIdx))
		assert.NoError(t, err, "row %d created date", i)
		assert.False(t, created.Before(quarterStart), "row %d created inside the quarter", i)

		closed, err := time.Parse(schema.DateFormat, ds.Cell(i, closeIdx))
		assert.NoError(t, err, "row %d close date", i)
		assert.True(t, closed.After(created), "row %d closes after creation", i)

		stage := schema.NormalizeStage(ds.Cell(i, stageIdx))
		assert.True(t, stage.Known(), "row %d stage %q", i, ds.Cell(i, stageIdx))

		amount, err := strconv.ParseFloat(ds.Cell(i, amountIdx), 64)
		assert.NoError(t, err, "row %d amount", i)
		assert.Positive(t, amount, "row %d amount", i)
	}
}

func TestSynthesizeReproducibleSeed(t *testing.T) {
	asOf := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)

	a := Synthesize(30, asOf, 7)
	b := Synthesize(30, asOf, 7)
	assert.Equal(t, a, b, "same seed yields an identical dataset")

	c := Synthesize(30, asOf, 8)
	assert.NotEqual(t, a.Rows, c.Rows, "different seed yields a different dataset")
}

func TestSynthesizeZeroRows(t *testing.T) {
	ds := Synthesize(0, time.Now(), 1)
	assert.Empty(t, ds.Rows)
	assert.NotEmpty(t, ds.Columns)
}
