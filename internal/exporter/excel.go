package exporter

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"stowsort/internal/config"
	"stowsort/internal/exporter/common"
	"stowsort/internal/model"

	"github.com/xuri/excelize/v2"
)

const (
	summarySheet  = "Summary"
	fallbackSheet = "Sorted"
	maxSheetName  = 31
)

// ExcelExporter writes the reordered grid and a summary sheet
type ExcelExporter struct {
	// Stateless
}

// NewExcelExporter creates a new ExcelExporter
func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{}
}

// Name returns the format name
func (e *ExcelExporter) Name() string { return "excel" }

// Export generates the Excel workbook
func (e *ExcelExporter) Export(res *model.Result, cfg *config.Config) error {
	outputFile := cfg.GetOutputPath()
	f := excelize.NewFile()
	defer f.Close()

	styler, err := NewStyler(f)
	if err != nil {
		return err
	}

	// 1. Reordered grid takes over the default sheet
	sheet := SheetName(res.SheetName)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}
	if err := e.writeGrid(f, sheet, res.Grid); err != nil {
		return err
	}

	// 2. Summary sheet
	if _, err := f.NewSheet(summarySheet); err != nil {
		return err
	}
	if err := e.writeSummary(f, styler, res); err != nil {
		return err
	}

	f.SetActiveSheet(0)

	if err := f.SaveAs(outputFile); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// plainNumber matches values that read back unchanged once stored as a number.
// Leading zeros, trailing fractional zeros and exponents stay text.
var plainNumber = regexp.MustCompile(`^-?(0|[1-9][0-9]{0,14})(\.[0-9]{0,5}[1-9])?$`)

// cellValue stores plain numbers as numbers and everything else as text
func cellValue(v string) interface{} {
	if !plainNumber.MatchString(v) {
		return v
	}
	if !strings.Contains(v, ".") {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
		return v
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return f
	}
	return v
}

// writeGrid copies every cell value. Blank cells are left unset.
func (e *ExcelExporter) writeGrid(f *excelize.File, sheet string, g *model.Grid) error {
	if g == nil {
		return nil
	}
	for r, row := range g.Rows {
		values := make([]interface{}, len(row))
		for c, v := range row {
			if v != "" {
				values[c] = cellValue(v)
			}
		}
		cell, _ := excelize.CoordinatesToCellName(1, r+1)
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}
	return nil
}

func (e *ExcelExporter) writeSummary(f *excelize.File, s *Styler, res *model.Result) error {
	sheet := summarySheet

	// Section A: counts
	row := 1
	e.writeRow(f, sheet, row, []string{"Metric", "Count"}, s.HeaderStyle)
	row++

	for _, m := range common.Metrics(res) {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), m.Label)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), m.Value)
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), s.LabelStyle)
		f.SetCellStyle(sheet, fmt.Sprintf("B%d", row), fmt.Sprintf("B%d", row), s.MatchedStyle)
		row++
	}

	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Run ID")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", row), res.RunID)
	row++
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Generated")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", row), res.GeneratedAt.Format("2006-01-02 15:04:05"))
	row += 2 // Spacer

	// Section B: first blocks in sorted order
	headers := []string{"No", "Container", "Key", "Bay", "Row", "Tier", "Stowage", "Written By"}
	e.writeRow(f, sheet, row, headers, s.HeaderStyle)
	f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      row,
		TopLeftCell: fmt.Sprintf("A%d", row+1),
		ActivePane:  "bottomLeft",
	})
	row++

	for _, p := range common.PreviewRows(res) {
		style := s.MatchedStyle
		if !p.Matched {
			style = s.UnmatchedStyle
		}
		values := []interface{}{p.No, p.ID, p.Key, p.Bay, p.Row, p.Tier, p.Stowage, common.StrategyLabel(p)}
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("H%d", row), style)
		row++
	}

	// Section C: summary text
	row++
	for _, line := range strings.Split(res.Summary, "\n") {
		if line == "" {
			continue
		}
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), line)
		row++
	}

	f.SetColWidth(sheet, "A", "A", 20)
	f.SetColWidth(sheet, "B", "B", 38)
	f.SetColWidth(sheet, "C", "F", 10)
	f.SetColWidth(sheet, "G", "H", 16)

	return nil
}

func (e *ExcelExporter) writeRow(f *excelize.File, sheet string, row int, values []string, style int) {
	for i, val := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		f.SetCellValue(sheet, cell, val)
		f.SetCellStyle(sheet, cell, cell, style)
	}
}

// SheetName makes a worksheet name Excel accepts: reserved characters are
// replaced, the length is capped and the summary sheet name is avoided.
func SheetName(name string) string {
	name = strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return '_'
		}
		return r
	}, strings.TrimSpace(name))
	name = strings.Trim(name, "'")

	if runes := []rune(name); len(runes) > maxSheetName {
		name = string(runes[:maxSheetName])
	}
	if name == "" || strings.EqualFold(name, summarySheet) {
		return fallbackSheet
	}
	return name
}
