package core

import (
	"sort"

	"github.com/huangsam/stackrank/schema"
)

// RankReps sorts reps by total pipeline in descending order and returns the
// top 'limit' reps. The sort is stable: ties keep first-seen owner order, so
// identical input always ranks identically. If limit exceeds the number of
// reps, all reps are returned in sorted order.
func RankReps(reps []schema.RepResult, limit int) []schema.RepResult {
	sort.SliceStable(reps, func(i, j int) bool {
		return reps[i].TotalPipeline > reps[j].TotalPipeline
	})
	if len(reps) > limit {
		return reps[:limit]
	}
	return reps
}

// median returns the median of values. The input slice is sorted in place.
func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sort.Float64s(values)
	mid := len(values) / 2
	if len(values)%2 == 0 {
		return (values[mid-1] + values[mid]) / 2
	}
	return values[mid]
}
