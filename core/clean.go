package core

import (
	"strconv"
	"strings"
	"time"

	"github.com/huangsam/stackrank/schema"
)

// CleanDataset validates and coerces a raw dataset into cleaned opportunity
// records. Validation is all-or-nothing: either every surviving row cleans, or
// the whole batch is rejected with the first failing column's complete list of
// bad rows. Row indices in errors are 0-based positions in the input dataset.
// The caller's dataset is never mutated.
func CleanDataset(ds *schema.Dataset) ([]schema.Opportunity, error) {
	if err := ValidateSchema(ds); err != nil {
		return nil, err
	}

	rows := nonEmptyRows(ds)

	// Date columns parse to calendar dates.
	created, err := cleanDateColumn(ds, schema.ColCreatedDate, rows)
	if err != nil {
		return nil, err
	}
	closed, err := cleanDateColumn(ds, schema.ColCloseDate, rows)
	if err != nil {
		return nil, err
	}

	// Stage cells must resolve to one of the five known categories. The
	// normalizer itself is lenient; the strictness lives here.
	stages, err := cleanStageColumn(ds, rows)
	if err != nil {
		return nil, err
	}

	// Numeric columns parse to decimals and must be non-negative. Supplied
	// derived columns get the same treatment before being ignored.
	amounts, err := cleanNumericColumn(ds, schema.ColAmount, rows)
	if err != nil {
		return nil, err
	}
	for _, col := range schema.DerivedColumns() {
		if ds.Index(col) < 0 {
			continue
		}
		if _, err := cleanNumericColumn(ds, col, rows); err != nil {
			return nil, err
		}
	}

	if len(rows) == 0 {
		return nil, &schema.EmptyDatasetError{}
	}

	idxID := ds.Index(schema.ColOpportunityID)
	idxOwner := ds.Index(schema.ColOwner)
	idxRole := ds.Index(schema.ColRole)
	idxRegion := ds.Index(schema.ColRegion)
	idxSource := ds.Index(schema.ColSource)
	idxLeadSource := ds.Index(schema.ColLeadSourceCategory)

	records := make([]schema.Opportunity, 0, len(rows))
	for i, row := range rows {
		records = append(records, schema.Opportunity{
			ID:                 strings.TrimSpace(ds.Cell(row, idxID)),
			Owner:              strings.TrimSpace(ds.Cell(row, idxOwner)),
			Role:               strings.TrimSpace(ds.Cell(row, idxRole)),
			Region:             strings.TrimSpace(ds.Cell(row, idxRegion)),
			CreatedDate:        created[i],
			CloseDate:          closed[i],
			Stage:              stages[i],
			Amount:             amounts[i],
			Source:             strings.TrimSpace(ds.Cell(row, idxSource)),
			LeadSourceCategory: strings.TrimSpace(ds.Cell(row, idxLeadSource)),
		})
	}
	return records, nil
}

// nonEmptyRows returns the indices of rows that carry at least one non-blank
// cell. Fully empty rows are dropped silently before any column check.
func nonEmptyRows(ds *schema.Dataset) []int {
	var keep []int
	for i, row := range ds.Rows {
		empty := true
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				empty = false
				break
			}
		}
		if !empty {
			keep = append(keep, i)
		}
	}
	return keep
}

// cleanDateColumn parses one date column for the surviving rows, collecting
// every unparseable row into a single batched error.
func cleanDateColumn(ds *schema.Dataset, col schema.Column, rows []int) ([]time.Time, error) {
	idx := ds.Index(col)
	parsed := make([]time.Time, 0, len(rows))

	var badRows []int
	var badValues []string
	for _, row := range rows {
		cell := strings.TrimSpace(ds.Cell(row, idx))
		t, err := time.Parse(schema.DateFormat, cell)
		if err != nil {
			badRows = append(badRows, row)
			badValues = append(badValues, cell)
			continue
		}
		parsed = append(parsed, t)
	}
	if len(badRows) > 0 {
		return nil, &schema.DataValidationError{
			Column:     col,
			RowIndices: badRows,
			Values:     badValues,
			Reason:     "unparseable date, expected YYYY-MM-DD",
		}
	}
	return parsed, nil
}

// cleanStageColumn normalizes the stage column and rejects any value that
// does not resolve to the five known categories.
func cleanStageColumn(ds *schema.Dataset, rows []int) ([]schema.Stage, error) {
	idx := ds.Index(schema.ColStage)
	stages := make([]schema.Stage, 0, len(rows))

	var badRows []int
	var badValues []string
	for _, row := range rows {
		cell := ds.Cell(row, idx)
		s := schema.NormalizeStage(cell)
		if !s.Known() {
			badRows = append(badRows, row)
			badValues = append(badValues, strings.TrimSpace(cell))
			continue
		}
		stages = append(stages, s)
	}
	if len(badRows) > 0 {
		return nil, &schema.DataValidationError{
			Column:     schema.ColStage,
			RowIndices: badRows,
			Values:     badValues,
			Reason:     `must be an integer 0-4 or "Closed Won"/"Closed Lost"`,
		}
	}
	return stages, nil
}

// cleanNumericColumn parses one numeric column to decimals. Unparseable cells
// and negative values are reported as two separate batched errors; there is
// no legitimate reason for a negative amount or count.
func cleanNumericColumn(ds *schema.Dataset, col schema.Column, rows []int) ([]float64, error) {
	idx := ds.Index(col)
	parsed := make([]float64, 0, len(rows))

	var badRows []int
	var badValues []string
	for _, row := range rows {
		cell := strings.TrimSpace(ds.Cell(row, idx))
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			badRows = append(badRows, row)
			badValues = append(badValues, cell)
			continue
		}
		parsed = append(parsed, v)
	}
	if len(badRows) > 0 {
		return nil, &schema.DataValidationError{
			Column:     col,
			RowIndices: badRows,
			Values:     badValues,
			Reason:     "unparseable number",
		}
	}

	var negRows []int
	var negValues []string
	for i, row := range rows {
		if parsed[i] < 0 {
			negRows = append(negRows, row)
			negValues = append(negValues, strconv.FormatFloat(parsed[i], 'f', -1, 64))
		}
	}
	if len(negRows) > 0 {
		return nil, &schema.DataValidationError{
			Column:     col,
			RowIndices: negRows,
			Values:     negValues,
			Reason:     "must be non-negative",
		}
	}
	return parsed, nil
}

// FilterRecords applies the configured region and created-date filters,
// returning a new slice in input order. An empty filter passes everything.
func FilterRecords(records []schema.Opportunity, wantRegion func(string) bool, wantCreated func(time.Time) bool) []schema.Opportunity {
	filtered := make([]schema.Opportunity, 0, len(records))
	for _, r := range records {
		if wantRegion != nil && !wantRegion(r.Region) {
			continue
		}
		if wantCreated != nil && !wantCreated(r.CreatedDate) {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}
