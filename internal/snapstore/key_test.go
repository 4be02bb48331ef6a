package snapstore

import (
	"testing"
	"time"

	"github.com/huangsam/stackrank/schema"
	"github.com/stretchr/testify/assert"
)

func testRecords() []schema.Opportunity {
	created := time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC)
	return []schema.Opportunity{
		{
			ID:                 "OPP-1",
			Owner:              "Alice",
			Role:               "AE",
			Region:             "West",
			CreatedDate:        created,
			CloseDate:          created.AddDate(0, 0, 30),
			Stage:              schema.Stage{Kind: schema.StageNumeric, Level: 2},
			Amount:             1000,
			Source:             "Inbound",
			LeadSourceCategory: "Marketing",
		},
		{
			ID:          "OPP-2",
			Owner:       "Bob",
			Region:      "East",
			CreatedDate: created,
			CloseDate:   created.AddDate(0, 0, 45),
			Stage:       schema.Stage{Kind: schema.StageClosedWon},
			Amount:      500,
		},
	}
}

func TestKeyDeterministic(t *testing.T) {
	quarter := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)

	a := Key(testRecords(), quarter)
	b := Key(testRecords(), quarter)
	assert.Equal(t, a, b, "identical input hashes identically")
	assert.Len(t, a, 64, "hex-encoded SHA-256")
}

func TestKeySensitivity(t *testing.T) {
	quarter := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	base := Key(testRecords(), quarter)

	t.Run("field edit changes key", func(t *testing.T) {
		records := testRecords()
		records[0].Amount = 1001
		assert.NotEqual(t, base, Key(records, quarter))
	})

	t.Run("stage change changes key", func(t *testing.T) {
		records := testRecords()
		records[0].Stage = schema.Stage{Kind: schema.StageNumeric, Level: 3}
		assert.NotEqual(t, base, Key(records, quarter))
	})

	t.Run("reordering changes key", func(t *testing.T) {
		records := testRecords()
		records[0], records[1] = records[1], records[0]
		assert.NotEqual(t, base, Key(records, quarter))
	})

	t.Run("quarter boundary changes key", func(t *testing.T) {
		assert.NotEqual(t, base, Key(testRecords(), time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)))
	})

	t.Run("derived fields do not affect key", func(t *testing.T) {
		records := testRecords()
		records[0].Derived = schema.OwnerDerived{QualifiedPipeQTD: 999}
		assert.Equal(t, base, Key(records, quarter), "the key hashes raw fields only")
	})
}

func TestKeyEmpty(t *testing.T) {
	quarter := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	assert.Len(t, Key(nil, quarter), 64)
	assert.NotEqual(t, Key(nil, quarter), Key(testRecords(), quarter))
}
