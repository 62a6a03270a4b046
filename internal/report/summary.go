// Package report derives the human-readable reconciliation summary from a result.
package report

import (
	"fmt"
	"strings"

	"stowsort/internal/codec"
	"stowsort/internal/model"
)

// Summarize builds the summary text shown after a run
func Summarize(res *model.Result) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Total container blocks detected: %d\n", res.Total))
	sb.WriteString(fmt.Sprintf("Matched with full list:          %d\n", res.Matched))
	sb.WriteString(fmt.Sprintf("Unmatched (placed last):         %d\n", res.Unmatched))
	sb.WriteString(fmt.Sprintf("Stowage was written into %d of %d matched blocks and blocks were sorted by Bay-Row-Tier.",
		res.Injected, res.Matched))

	return sb.String()
}

// PreviewTable renders the preview rows as a fixed-width text table
func PreviewTable(preview []model.BlockPreview) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%-4s %-13s %-8s %-4s %-4s %-4s %s\n", "No", "Container", "Key", "Bay", "Row", "Tier", "Stowage"))
	sb.WriteString(strings.Repeat("-", 60) + "\n")

	for i, p := range preview {
		bay, row, tier := codec.Split(p.Key)
		stowage := p.Stowage
		if stowage == "" {
			stowage = "(unmatched)"
		}
		sb.WriteString(fmt.Sprintf("%-4d %-13s %-8s %-4s %-4s %-4s %s\n", i+1, p.ID, p.Key, bay, row, tier, stowage))
	}

	return sb.String()
}
