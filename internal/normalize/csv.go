package normalize

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"stowsort/internal/logger"
	"stowsort/internal/model"
)

// loadCSV reads a delimited text export as a single grid
func loadCSV(path string, opts Options) (*model.SheetSet, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	content, charset := decodeText(raw, opts.Encodings)
	logger.Debug("Decoded %s as %s", path, charset)

	reader := csv.NewReader(strings.NewReader(content))
	reader.Comma = sniffDelimiter(content)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var rows []model.Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse csv: %w", err)
		}
		rows = append(rows, trimRow(record))
	}

	set := model.NewSheetSet(path)
	set.Add(model.NewGrid(baseName(path), rows))
	return set, nil
}

// sniffDelimiter picks the most frequent of tab, semicolon and comma on the first line
func sniffDelimiter(content string) rune {
	first := content
	if i := strings.IndexByte(content, '\n'); i >= 0 {
		first = content[:i]
	}

	best, bestCount := ',', strings.Count(first, ",")
	for _, candidate := range []rune{';', '\t'} {
		if n := strings.Count(first, string(candidate)); n > bestCount {
			best, bestCount = candidate, n
		}
	}
	return best
}
