package normalize

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"stowsort/internal/model"
)

// loadWorkbook reads every sheet of an xlsx/xlsm workbook in workbook order
func loadWorkbook(path string, _ Options) (*model.SheetSet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	set := model.NewSheetSet(path)
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %q: %w", name, err)
		}

		grid := make([]model.Row, len(rows))
		for i, row := range rows {
			grid[i] = trimRow(row)
		}
		set.Add(model.NewGrid(name, grid))
	}

	return set, nil
}
