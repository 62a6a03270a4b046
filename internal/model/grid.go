package model

import "strings"

// Row is an ordered sequence of cell values addressed by column index.
// Columns beyond the row's length read as empty.
type Row []string

// Grid is a single normalized sheet: rows of text cells.
type Grid struct {
	Name string
	Rows []Row
}

// NewGrid creates a grid with the given name and rows
func NewGrid(name string, rows []Row) *Grid {
	if rows == nil {
		rows = make([]Row, 0)
	}
	return &Grid{Name: name, Rows: rows}
}

// Len returns the number of rows
func (g *Grid) Len() int {
	return len(g.Rows)
}

// Width returns the length of the longest row
func (g *Grid) Width() int {
	width := 0
	for _, row := range g.Rows {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}

// Cell returns the value at (row, col), or "" when the address is outside the grid
func (g *Grid) Cell(row, col int) string {
	if row < 0 || row >= len(g.Rows) || col < 0 {
		return ""
	}
	r := g.Rows[row]
	if col >= len(r) {
		return ""
	}
	return r[col]
}

// Set writes a value at (row, col), growing the row with empty cells if needed.
// Writes outside the existing row range are ignored.
func (g *Grid) Set(row, col int, value string) bool {
	if row < 0 || row >= len(g.Rows) || col < 0 {
		return false
	}
	for len(g.Rows[row]) <= col {
		g.Rows[row] = append(g.Rows[row], "")
	}
	g.Rows[row][col] = value
	return true
}

// Clone returns a deep copy so callers can mutate cells without touching the source
func (g *Grid) Clone() *Grid {
	rows := make([]Row, len(g.Rows))
	for i, row := range g.Rows {
		rows[i] = append(Row(nil), row...)
	}
	return &Grid{Name: g.Name, Rows: rows}
}

// IsBlank reports whether a cell value counts as empty
func IsBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}

// SheetSet is an ordered collection of grids, in discovery order of the source document.
type SheetSet struct {
	Source string
	Sheets []*Grid
}

// NewSheetSet creates an empty sheet set for the given source document
func NewSheetSet(source string) *SheetSet {
	return &SheetSet{
		Source: source,
		Sheets: make([]*Grid, 0),
	}
}

// Add appends a grid
func (s *SheetSet) Add(g *Grid) {
	if g == nil {
		return
	}
	s.Sheets = append(s.Sheets, g)
}

// Len returns the number of sheets
func (s *SheetSet) Len() int {
	return len(s.Sheets)
}

// First returns the first sheet, or nil for an empty set
func (s *SheetSet) First() *Grid {
	if len(s.Sheets) == 0 {
		return nil
	}
	return s.Sheets[0]
}
