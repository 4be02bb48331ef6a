package contract

import (
	"testing"
	"time"

	"github.com/huangsam/stackrank/schema"
	"github.com/stretchr/testify/assert"
)

// validInput returns a raw input that passes every validation section.
func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		Limit:        DefaultResultLimit,
		Precision:    DefaultPrecision,
		Output:       string(schema.TextOut),
		CacheBackend: string(schema.SQLiteBackend),
		Color:        "yes",
	}
}

func TestProcessAndValidateDefaults(t *testing.T) {
	cfg := &Config{}
	err := ProcessAndValidate(cfg, validInput())

	assert.NoError(t, err)
	assert.Equal(t, DefaultResultLimit, cfg.ResultLimit)
	assert.Equal(t, schema.TextOut, cfg.Output)
	assert.Equal(t, schema.SQLiteBackend, cfg.CacheBackend)
	assert.Equal(t, DefaultInputPath, cfg.InputPath)
	assert.Equal(t, DefaultSynthRows, cfg.SynthRows)
	assert.True(t, cfg.UseColors)
	assert.Empty(t, cfg.Regions)
	assert.False(t, cfg.AsOf.IsZero(), "as-of defaults to now")
}

func TestProcessAndValidateLimits(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		ok    bool
	}{
		{"zero rejected", 0, false},
		{"negative rejected", -5, false},
		{"max accepted", MaxResultLimit, true},
		{"over max rejected", MaxResultLimit + 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			input.Limit = tt.limit
			err := ProcessAndValidate(&Config{}, input)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestProcessAndValidateOutput(t *testing.T) {
	for _, mode := range []string{"text", "csv", "json", "parquet", "JSON"} {
		input := validInput()
		input.Output = mode
		assert.NoError(t, ProcessAndValidate(&Config{}, input), "output %q", mode)
	}

	input := validInput()
	input.Output = "xml"
	assert.Error(t, ProcessAndValidate(&Config{}, input))
}

func TestProcessAndValidateDates(t *testing.T) {
	t.Run("valid range", func(t *testing.T) {
		cfg := &Config{}
		input := validInput()
		input.Start = "2026-01-01"
		input.End = "2026-03-31"
		input.AsOf = "2026-02-15"

		assert.NoError(t, ProcessAndValidate(cfg, input))
		assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), cfg.StartDate)
		assert.Equal(t, time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC), cfg.AsOf)
	})

	t.Run("start after end rejected", func(t *testing.T) {
		input := validInput()
		input.Start = "2026-03-31"
		input.End = "2026-01-01"
		assert.Error(t, ProcessAndValidate(&Config{}, input))
	})

	t.Run("bad format rejected", func(t *testing.T) {
		input := validInput()
		input.AsOf = "02/15/2026"
		assert.Error(t, ProcessAndValidate(&Config{}, input))
	})
}

func TestProcessAndValidateRegions(t *testing.T) {
	cfg := &Config{}
	input := validInput()
	input.Region = " AMER , EMEA ,, "

	assert.NoError(t, ProcessAndValidate(cfg, input))
	assert.Equal(t, []string{"AMER", "EMEA"}, cfg.Regions)
}

func TestProcessAndValidateCacheBackend(t *testing.T) {
	for _, backend := range []string{"sqlite", "mysql", "postgres", "none", "SQLite"} {
		input := validInput()
		input.CacheBackend = backend
		assert.NoError(t, ProcessAndValidate(&Config{}, input), "backend %q", backend)
	}

	input := validInput()
	input.CacheBackend = "oracle"
	assert.Error(t, ProcessAndValidate(&Config{}, input))
}

func TestWantsRegion(t *testing.T) {
	cfg := &Config{Regions: []string{"West"}}
	assert.True(t, cfg.WantsRegion("West"))
	assert.True(t, cfg.WantsRegion("west"), "matching is case-insensitive")
	assert.False(t, cfg.WantsRegion("East"))

	open := &Config{}
	assert.True(t, open.WantsRegion("anything"), "empty allowlist passes all regions")
}

func TestWantsCreatedDate(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
	cfg := &Config{StartDate: start, EndDate: end}

	assert.True(t, cfg.WantsCreatedDate(start), "bounds are inclusive")
	assert.True(t, cfg.WantsCreatedDate(end))
	assert.False(t, cfg.WantsCreatedDate(start.AddDate(0, 0, -1)))
	assert.False(t, cfg.WantsCreatedDate(end.AddDate(0, 0, 1)))

	open := &Config{}
	assert.True(t, open.WantsCreatedDate(time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestConfigClone(t *testing.T) {
	cfg := &Config{Regions: []string{"West"}, ResultLimit: 10}
	clone := cfg.Clone()

	clone.Regions[0] = "East"
	clone.ResultLimit = 99
	assert.Equal(t, "West", cfg.Regions[0], "clone owns its region slice")
	assert.Equal(t, 10, cfg.ResultLimit)
}
