// Package blocks partitions a monitoring report grid into header rows,
// per-container blocks and tail rows.
//
// A block starts at any row holding a container id and runs until the next
// such row. Nothing else about the layout is assumed.
package blocks

import (
	"stowsort/internal/model"
	"stowsort/internal/rules"
)

// RowID returns the first container id found in row, scanning left to right
func RowID(row model.Row) (string, bool) {
	for _, value := range row {
		if id, ok := rules.ContainerID(value); ok {
			return id, true
		}
	}
	return "", false
}

// Parse derives the report structure of g. A grid without any container id
// row is all header: no blocks, no tail.
func Parse(g *model.Grid) *model.ReportStructure {
	n := g.Len()
	structure := &model.ReportStructure{
		Blocks:   make([]model.ContainerBlock, 0),
		TailRows: make([]model.Row, 0),
	}

	cursor := 0
	for cursor < n {
		if _, ok := RowID(g.Rows[cursor]); ok {
			break
		}
		cursor++
	}
	structure.HeaderRows = g.Rows[:cursor]

	for cursor < n {
		id, _ := RowID(g.Rows[cursor])
		start := cursor

		cursor++
		for cursor < n {
			if _, ok := RowID(g.Rows[cursor]); ok {
				break
			}
			cursor++
		}

		structure.Blocks = append(structure.Blocks, model.ContainerBlock{
			ID:    id,
			Start: start,
			End:   cursor,
		})
	}

	// Rows past the last block's end. Empty while the last block runs to the end of the grid.
	structure.TailRows = g.Rows[structure.TailStart():]

	return structure
}
