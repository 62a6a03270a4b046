// Package stowmap builds the container id -> stowage lookup from full-list sheets.
package stowmap

import (
	"strings"

	"stowsort/internal/logger"
	"stowsort/internal/model"
	"stowsort/internal/rules"
)

// DefaultHeaderScanRows is how many leading rows are searched for the header
const DefaultHeaderScanRows = 15

// Header locates the two columns the builder needs
type Header struct {
	Row           int // index of the row where both columns became known
	StowageCol    int
	IdentifierCol int
}

// SheetStats describes what one sheet contributed
type SheetStats struct {
	Sheet      string
	HeaderRow  int // -1 when the sheet had no qualifying header
	Recorded   int
	Duplicates int
	Rejected   int
}

// Builder accumulates entries across sheets, first occurrence wins.
type Builder struct {
	scanRows int
	entries  *model.StowageMap
	stats    []SheetStats
}

// NewBuilder creates a builder. scanRows <= 0 uses DefaultHeaderScanRows.
func NewBuilder(scanRows int) *Builder {
	if scanRows <= 0 {
		scanRows = DefaultHeaderScanRows
	}
	return &Builder{
		scanRows: scanRows,
		entries:  model.NewStowageMap(),
		stats:    make([]SheetStats, 0),
	}
}

// Build is a shortcut that feeds every sheet of set, in order, to a fresh builder
func Build(set *model.SheetSet, scanRows int) *model.StowageMap {
	b := NewBuilder(scanRows)
	b.AddSheetSet(set)
	return b.Map()
}

// AddSheetSet feeds all sheets in SheetSet order
func (b *Builder) AddSheetSet(set *model.SheetSet) {
	if set == nil {
		return
	}
	for _, g := range set.Sheets {
		b.AddSheet(g)
	}
}

// AddSheet scans one grid. Sheets without a header are skipped silently.
func (b *Builder) AddSheet(g *model.Grid) SheetStats {
	stats := SheetStats{Sheet: g.Name, HeaderRow: -1}

	header, ok := FindHeader(g, b.scanRows)
	if !ok {
		logger.Debug("Sheet %q: no stowage/container header in first %d rows, skipped", g.Name, b.scanRows)
		b.stats = append(b.stats, stats)
		return stats
	}
	stats.HeaderRow = header.Row

	for r := header.Row + 1; r < g.Len(); r++ {
		id, valid := rules.ContainerID(g.Cell(r, header.IdentifierCol))
		if !valid {
			stats.Rejected++
			continue
		}

		stowage := strings.TrimSpace(g.Cell(r, header.StowageCol))
		if stowage == "" {
			stats.Rejected++
			logger.LogSkip(g.Name, r, "empty stowage for "+id)
			continue
		}

		if !b.entries.Put(id, stowage) {
			stats.Duplicates++
			logger.LogSkip(g.Name, r, "duplicate container "+id+" ignored, first occurrence kept")
			continue
		}
		stats.Recorded++
	}

	logger.Debug("Sheet %q: header row %d, %d recorded, %d duplicates, %d rejected",
		g.Name, header.Row, stats.Recorded, stats.Duplicates, stats.Rejected)
	b.stats = append(b.stats, stats)
	return stats
}

// Map returns the accumulated lookup
func (b *Builder) Map() *model.StowageMap {
	return b.entries
}

// Stats returns per-sheet statistics in the order sheets were added
func (b *Builder) Stats() []SheetStats {
	return b.stats
}

// FindHeader scans at most scanRows leading rows. The two column indices may
// come from different rows; a later row that marks a column replaces the index
// an earlier row set. The header row is the first row at which both indices
// are known and point at different columns.
func FindHeader(g *model.Grid, scanRows int) (Header, bool) {
	stowageCol, identifierCol := -1, -1

	limit := scanRows
	if limit > g.Len() {
		limit = g.Len()
	}

	for r := 0; r < limit; r++ {
		rowStowage, rowIdentifier := headerCells(g.Rows[r])
		if rowStowage >= 0 {
			stowageCol = rowStowage
		}
		if rowIdentifier >= 0 {
			identifierCol = rowIdentifier
		}
		if stowageCol >= 0 && identifierCol >= 0 && stowageCol != identifierCol {
			return Header{Row: r, StowageCol: stowageCol, IdentifierCol: identifierCol}, true
		}
	}
	return Header{}, false
}

// headerCells returns the first stowage and identifier header cells of one row.
// The stowage rule is checked first, so a single cell never marks both.
func headerCells(row model.Row) (stowageCol, identifierCol int) {
	stowageCol, identifierCol = -1, -1
	for c, value := range row {
		switch {
		case stowageCol < 0 && rules.IsStowageHeader(value):
			stowageCol = c
		case identifierCol < 0 && rules.IsIdentifierHeader(value):
			identifierCol = c
		}
	}
	return stowageCol, identifierCol
}
