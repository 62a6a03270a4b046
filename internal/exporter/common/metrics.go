// Package common holds the report rows shared by every exporter.
package common

import (
	"stowsort/internal/codec"
	"stowsort/internal/model"
)

// Metric is one labelled count of the summary section
type Metric struct {
	Label string
	Value int
}

// PreviewRow is a preview entry with its key split into Bay, Row and Tier
type PreviewRow struct {
	No       int
	ID       string
	Key      string
	Bay      string
	Row      string
	Tier     string
	Stowage  string
	Strategy string
	Matched  bool
}

// Metrics returns the summary counts in display order
func Metrics(res *model.Result) []Metric {
	return []Metric{
		{"Container Blocks", res.Total},
		{"Matched", res.Matched},
		{"Unmatched", res.Unmatched},
		{"Stowage Written", res.Injected},
		{"Full List Entries", res.MapSize},
	}
}

// PreviewRows expands the result preview for tabular output
func PreviewRows(res *model.Result) []PreviewRow {
	rows := make([]PreviewRow, 0, len(res.Preview))
	for i, p := range res.Preview {
		bay, row, tier := codec.Split(p.Key)
		rows = append(rows, PreviewRow{
			No:       i + 1,
			ID:       p.ID,
			Key:      p.Key,
			Bay:      bay,
			Row:      row,
			Tier:     tier,
			Stowage:  p.Stowage,
			Strategy: p.Strategy,
			Matched:  p.Key != codec.Sentinel,
		})
	}
	return rows
}

// StrategyLabel names the injection outcome for a preview row
func StrategyLabel(r PreviewRow) string {
	switch {
	case !r.Matched:
		return "unmatched"
	case r.Strategy == "":
		return "not written"
	default:
		return r.Strategy
	}
}
