package schema

import (
	"fmt"
	"strings"
)

// SchemaError reports required columns missing from the dataset header.
// The whole dataset is rejected; Missing lists every absent column.
type SchemaError struct {
	Missing []Column
}

func (e *SchemaError) Error() string {
	names := make([]string, len(e.Missing))
	for i, c := range e.Missing {
		names[i] = string(c)
	}
	return fmt.Sprintf("missing required columns: %s", strings.Join(names, ", "))
}

// DataValidationError reports every row of one column that failed a type or
// range check. Validation is batched per column so the caller can report
// precisely which rows to fix, rather than failing on the first bad cell.
type DataValidationError struct {
	Column     Column
	RowIndices []int
	Values     []string
	Reason     string
}

func (e *DataValidationError) Error() string {
	return fmt.Sprintf("column %s: %s (rows %v, values %q)", e.Column, e.Reason, e.RowIndices, e.Values)
}

// EmptyDatasetError means every row was dropped during cleaning.
type EmptyDatasetError struct{}

func (e *EmptyDatasetError) Error() string {
	return "dataset has no rows after cleaning"
}
