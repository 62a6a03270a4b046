package normalize

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nguyenthenguyen/docx"

	"stowsort/internal/model"
)

// loadWordTables reads every top-level table of a .docx document as its own grid
func loadWordTables(path string, _ Options) (*model.SheetSet, error) {
	r, err := docx.ReadDocxFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read docx: %w", err)
	}
	defer r.Close()

	grids, err := parseWordTables(r.Editable().GetContent())
	if err != nil {
		return nil, fmt.Errorf("failed to parse document.xml: %w", err)
	}

	set := model.NewSheetSet(path)
	for _, g := range grids {
		set.Add(g)
	}
	return set, nil
}

// tableBuilder accumulates one top-level table while walking the XML tokens
type tableBuilder struct {
	rows []model.Row
	row  model.Row
	cell strings.Builder
	span int
}

// parseWordTables walks WordprocessingML and returns one grid per top-level
// <w:tbl>. Nested tables contribute their text to the enclosing cell.
// A cell with <w:gridSpan w:val="n"/> is followed by n-1 empty cells so
// column indices stay aligned across rows.
func parseWordTables(content string) ([]*model.Grid, error) {
	decoder := xml.NewDecoder(strings.NewReader(content))

	var (
		grids  []*model.Grid
		tb     *tableBuilder
		depth  int // table nesting depth
		inText bool
	)

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tbl":
				depth++
				if depth == 1 {
					tb = &tableBuilder{}
				}
			case "tr":
				if depth == 1 {
					tb.row = model.Row{}
				}
			case "tc":
				if depth == 1 {
					tb.cell.Reset()
					tb.span = 1
				}
			case "gridSpan":
				if depth == 1 && tb != nil {
					tb.span = spanOf(t)
				}
			case "t":
				inText = true
			case "tab":
				if tb != nil {
					tb.cell.WriteString(" ")
				}
			case "br", "p":
				if tb != nil && tb.cell.Len() > 0 {
					tb.cell.WriteString(" ")
				}
			}

		case xml.CharData:
			if inText && tb != nil && depth > 0 {
				tb.cell.Write(t)
			}

		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "tc":
				if depth == 1 {
					tb.row = append(tb.row, strings.TrimSpace(tb.cell.String()))
					for i := 1; i < tb.span; i++ {
						tb.row = append(tb.row, "")
					}
				}
			case "tr":
				if depth == 1 {
					tb.rows = append(tb.rows, tb.row)
				}
			case "tbl":
				if depth == 1 {
					name := fmt.Sprintf("Table %d", len(grids)+1)
					grids = append(grids, model.NewGrid(name, tb.rows))
					tb = nil
				}
				depth--
			}
		}
	}

	return grids, nil
}

func spanOf(el xml.StartElement) int {
	for _, attr := range el.Attr {
		if attr.Name.Local != "val" {
			continue
		}
		if n, err := strconv.Atoi(attr.Value); err == nil && n > 1 {
			return n
		}
	}
	return 1
}
