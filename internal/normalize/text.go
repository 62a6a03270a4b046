package normalize

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"

	"stowsort/internal/logger"
	"stowsort/internal/model"
)

// Text dumps have no real columns: a tab or a run of two or more spaces separates cells
var columnGapRegex = regexp.MustCompile(`\t+| {2,}`)

// loadText reads an OCR or text-extracted dump as a single grid
func loadText(path string, opts Options) (*model.SheetSet, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	content, charset := decodeText(raw, opts.Encodings)
	logger.Debug("Decoded %s as %s", path, charset)

	set := model.NewSheetSet(path)
	set.Add(model.NewGrid(baseName(path), splitLines(content)))
	return set, nil
}

// loadPDF extracts the text layer of every page, in page order, into a single grid
func loadPDF(path string, _ Options) (*model.SheetSet, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pdf: %w", err)
	}
	defer f.Close()

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			logger.LogSkip(baseName(path), i-1, fmt.Sprintf("pdf page %d has no readable text: %v", i, err))
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	set := model.NewSheetSet(path)
	set.Add(model.NewGrid(baseName(path), splitLines(sb.String())))
	return set, nil
}

// splitLines turns text into rows, one per non-blank line
func splitLines(content string) []model.Row {
	content = strings.ReplaceAll(content, "\r\n", "\n")

	var rows []model.Row
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, trimRow(columnGapRegex.Split(strings.TrimSpace(line), -1)))
	}
	return rows
}
