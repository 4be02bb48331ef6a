// Package csvio is the ingestion seam between CSV files and the analysis
// core. It reads permissive tabular data, writes the reference template, and
// generates synthetic datasets for demos and tests. All coercion and
// validation stays in the core; this package never interprets cell values.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/huangsam/stackrank/schema"
)

// ReadDataset parses CSV content into a raw dataset. The first record is the
// header; remaining records become rows in input order. Rows may be ragged;
// missing cells read as empty during cleaning.
func ReadDataset(r io.Reader) (*schema.Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // permissive; the core validates

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("dataset has no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	ds := &schema.Dataset{Columns: header}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}
		ds.Rows = append(ds.Rows, record)
	}
	return ds, nil
}

// LoadDataset reads a dataset from the given file path.
func LoadDataset(path string) (*schema.Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()
	return ReadDataset(file)
}

// WriteDataset writes a dataset as CSV.
func WriteDataset(w io.Writer, ds *schema.Dataset) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write(ds.Columns); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, row := range ds.Rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// SaveDataset writes a dataset to the given file path, creating parent
// directories as needed.
func SaveDataset(path string, ds *schema.Dataset) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create dataset directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create dataset %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()
	return WriteDataset(file, ds)
}

// WriteTemplate writes the reference CSV contract: the required header plus
// two sample rows showing both stage encodings.
func WriteTemplate(w io.Writer) error {
	header := make([]string, 0, len(schema.RequiredColumns()))
	for _, col := range schema.RequiredColumns() {
		header = append(header, string(col))
	}

	ds := &schema.Dataset{
		Columns: header,
		Rows: [][]string{
			{"OPP-0001", "Sarah Johnson", "Account Executive", "West", "2025-01-15", "2025-03-01", "2", "125000", "Inbound", "Marketing"},
			{"OPP-0002", "Michael Chen", "Account Executive", "East", "2025-01-20", "2025-02-10", "Closed Won", "87000", "Partner", "Sales"},
		},
	}
	return WriteDataset(w, ds)
}
