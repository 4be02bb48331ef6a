//go:build basic

// Package integration contains integration tests for stackrank.
// These tests are excluded from normal test runs due to build tags.
// To run these tests: go test -tags basic ./integration
// Or use: make test-integration
package integration

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGenerateAnalyzeRoundTrip generates a synthetic dataset and verifies the
// analyze snapshot written over it is internally consistent.
func TestGenerateAnalyzeRoundTrip(t *testing.T) {
	workDir := t.TempDir()
	dataPath := filepath.Join(workDir, "pipeline.csv")
	outPath := filepath.Join(workDir, "snapshot.json")

	_, err := runStackrank(t, "generate", dataPath, "--rows", "200", "--seed", "42")
	require.NoError(t, err)

	_, err = runStackrank(t, "analyze", dataPath,
		"--output", "json", "--output-file", outPath, "--no-cache")
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var snapshot struct {
		TotalPipeline     float64            `json:"total_pipeline"`
		QualifiedPipeline float64            `json:"qualified_pipeline"`
		PipelineBySource  map[string]float64 `json:"pipeline_by_source"`
		RepRankings       []struct {
			Owner         string  `json:"owner"`
			TotalPipeline float64 `json:"total_pipeline"`
		} `json:"rep_rankings"`
	}
	require.NoError(t, json.Unmarshal(data, &snapshot))

	assert.Positive(t, snapshot.TotalPipeline)
	assert.LessOrEqual(t, snapshot.QualifiedPipeline, snapshot.TotalPipeline,
		"qualified pipeline is a subset of total pipeline")
	assert.NotEmpty(t, snapshot.PipelineBySource)
	assert.NotEmpty(t, snapshot.RepRankings)

	var bySource float64
	for _, amount := range snapshot.PipelineBySource {
		bySource += amount
	}
	assert.InDelta(t, snapshot.TotalPipeline, bySource, 0.1,
		"source buckets sum back to the total")

	for i := 1; i < len(snapshot.RepRankings); i++ {
		assert.GreaterOrEqual(t,
			snapshot.RepRankings[i-1].TotalPipeline, snapshot.RepRankings[i].TotalPipeline,
			"rankings are sorted by total pipeline descending")
	}
}

// TestGenerateIsReproducible verifies that the same seed yields the same snapshot.
func TestGenerateIsReproducible(t *testing.T) {
	workDir := t.TempDir()

	snapshots := make([]string, 2)
	for i := range snapshots {
		dataPath := filepath.Join(workDir, "data.csv")
		outPath := filepath.Join(workDir, "snapshot.json")

		_, err := runStackrank(t, "generate", dataPath, "--rows", "100", "--seed", "7")
		require.NoError(t, err)
		_, err = runStackrank(t, "analyze", dataPath,
			"--output", "json", "--output-file", outPath, "--no-cache")
		require.NoError(t, err)

		data, err := os.ReadFile(outPath)
		require.NoError(t, err)
		snapshots[i] = string(data)
	}

	assert.JSONEq(t, snapshots[0], snapshots[1], "identical seeds produce identical snapshots")
}

// TestRepsCSVOutput verifies the reps command emits a parseable ranking CSV.
func TestRepsCSVOutput(t *testing.T) {
	workDir := t.TempDir()
	dataPath := filepath.Join(workDir, "pipeline.csv")
	outPath := filepath.Join(workDir, "reps.csv")

	_, err := runStackrank(t, "generate", dataPath, "--rows", "150", "--seed", "3")
	require.NoError(t, err)

	_, err = runStackrank(t, "reps", dataPath,
		"--output", "csv", "--output-file", outPath, "--no-cache", "--limit", "5")
	require.NoError(t, err)

	f, err := os.Open(outPath)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	assert.Equal(t, "rank", rows[0][0])
	assert.LessOrEqual(t, len(rows)-1, 5, "limit caps the ranking rows")
}

// TestTemplateIsAnalyzable verifies the starter template survives validation.
func TestTemplateIsAnalyzable(t *testing.T) {
	workDir := t.TempDir()
	templatePath := filepath.Join(workDir, "template.csv")
	outPath := filepath.Join(workDir, "snapshot.json")

	_, err := runStackrank(t, "template", "--output-file", templatePath)
	require.NoError(t, err)

	_, err = runStackrank(t, "analyze", templatePath,
		"--output", "json", "--output-file", outPath, "--no-cache")
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var snapshot struct {
		TotalPipeline float64 `json:"total_pipeline"`
	}
	require.NoError(t, json.Unmarshal(data, &snapshot))
	assert.Positive(t, snapshot.TotalPipeline)
}

// TestAnalyzeRejectsBadData verifies that a malformed dataset fails loudly.
func TestAnalyzeRejectsBadData(t *testing.T) {
	workDir := t.TempDir()
	dataPath := filepath.Join(workDir, "bad.csv")

	content := "Opportunity ID,Owner\nOPP-1,Alice\n"
	require.NoError(t, os.WriteFile(dataPath, []byte(content), 0o644))

	output, err := runStackrank(t, "analyze", dataPath, "--no-cache")
	assert.Error(t, err, "missing required columns must fail the run")
	assert.Contains(t, output, "column")
}
