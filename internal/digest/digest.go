// Package digest renders the metrics snapshot as a self-contained HTML email
// body. Delivery is left to the caller; this package only produces the
// document.
package digest

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"sort"
	"time"

	"github.com/huangsam/stackrank/schema"
)

//go:embed digest.html.tmpl
var digestTemplate string

var tmpl = template.Must(template.New("digest").Funcs(template.FuncMap{
	"currency": schema.FormatCurrency,
	"percent":  schema.FormatPercent,
	"abbrev":   schema.AbbreviateName,
}).Parse(digestTemplate))

// digestData is the template context.
type digestData struct {
	AsOf     string
	Metrics  *schema.Metrics
	Sources  []bucket
	Stages   []bucket
	Rankings []rankedRep
}

type bucket struct {
	Name   string
	Amount float64
}

type rankedRep struct {
	Rank int
	schema.RepResult
}

// Render writes the HTML digest for one snapshot.
func Render(w io.Writer, m *schema.Metrics, asOf time.Time) error {
	data := digestData{
		AsOf:    asOf.Format(schema.DateFormat),
		Metrics: m,
	}
	for _, key := range sortedBuckets(m.PipelineBySource) {
		data.Sources = append(data.Sources, bucket{Name: key, Amount: m.PipelineBySource[key]})
	}
	for _, key := range sortedBuckets(m.PipelineByStage) {
		data.Stages = append(data.Stages, bucket{Name: key, Amount: m.PipelineByStage[key]})
	}
	for i, rep := range m.RepRankings {
		data.Rankings = append(data.Rankings, rankedRep{Rank: i + 1, RepResult: rep})
	}

	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render digest: %w", err)
	}
	return nil
}

// sortedBuckets orders keys by descending amount, alphabetical on ties.
func sortedBuckets(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if m[keys[i]] != m[keys[j]] {
			return m[keys[i]] > m[keys[j]]
		}
		return keys[i] < keys[j]
	})
	return keys
}
