// Package core has the validation, cleaning, derivation and aggregation
// logic for sales pipeline analysis.
package core

import "github.com/huangsam/stackrank/schema"

// ValidateSchema checks that every required column is present in the dataset
// header. It is a pure check: the dataset is never mutated, and all missing
// columns are reported at once. Derived columns are optional and not checked
// here; when present they are range-checked by the cleaner and then ignored
// in favor of recomputation.
func ValidateSchema(ds *schema.Dataset) error {
	var missing []schema.Column
	for _, col := range schema.RequiredColumns() {
		if ds.Index(col) < 0 {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return &schema.SchemaError{Missing: missing}
	}
	return nil
}
