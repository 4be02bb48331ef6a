package csvio

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/huangsam/stackrank/schema"
	"github.com/stretchr/testify/assert"
)

func TestReadDataset(t *testing.T) {
	t.Run("header and rows", func(t *testing.T) {
		input := "A,B,C\n1,2,3\n4,5,6\n"
		ds, err := ReadDataset(strings.NewReader(input))

		assert.NoError(t, err)
		assert.Equal(t, []string{"A", "B", "C"}, ds.Columns)
		assert.Equal(t, [][]string{{"1", "2", "3"}, {"4", "5", "6"}}, ds.Rows)
	})

	t.Run("ragged rows pass through", func(t *testing.T) {
		input := "A,B,C\n1,2\n1,2,3,4\n"
		ds, err := ReadDataset(strings.NewReader(input))

		assert.NoError(t, err)
		assert.Len(t, ds.Rows, 2)
		assert.Len(t, ds.Rows[0], 2, "short row kept as-is; the core treats missing cells as empty")
	})

	t.Run("header only", func(t *testing.T) {
		ds, err := ReadDataset(strings.NewReader("A,B,C\n"))
		assert.NoError(t, err)
		assert.Empty(t, ds.Rows)
	})

	t.Run("empty input fails", func(t *testing.T) {
		_, err := ReadDataset(strings.NewReader(""))
		assert.Error(t, err)
	})
}

func TestWriteDatasetRoundTrip(t *testing.T) {
	ds := &schema.Dataset{
		Columns: []string{"A", "B"},
		Rows:    [][]string{{"1", "hello, world"}, {"2", `with "quotes"`}},
	}

	var buf bytes.Buffer
	assert.NoError(t, WriteDataset(&buf, ds))

	got, err := ReadDataset(&buf)
	assert.NoError(t, err)
	assert.Equal(t, ds, got)
}

func TestSaveLoadDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "data.csv")
	ds := &schema.Dataset{
		Columns: []string{"A"},
		Rows:    [][]string{{"1"}},
	}

	assert.NoError(t, SaveDataset(path, ds), "parent directories are created")

	got, err := LoadDataset(path)
	assert.NoError(t, err)
	assert.Equal(t, ds, got)
}

func TestLoadDatasetMissingFile(t *testing.T) {
	_, err := LoadDataset(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestWriteTemplate(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, WriteTemplate(&buf))

	ds, err := ReadDataset(&buf)
	assert.NoError(t, err)

	for _, col := range schema.RequiredColumns() {
		assert.GreaterOrEqual(t, ds.Index(col), 0, "template header carries %s", col)
	}

	// One sample row per stage encoding.
	stageIdx := ds.Index(schema.ColStage)
	assert.Len(t, ds.Rows, 2)
	assert.True(t, schema.NormalizeStage(ds.Cell(0, stageIdx)).Kind == schema.StageNumeric)
	assert.True(t, schema.NormalizeStage(ds.Cell(1, stageIdx)).Kind == schema.StageClosedWon)
}
