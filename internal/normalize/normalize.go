// Package normalize converts source documents into sheet sets of text grids.
//
// Supported inputs are spreadsheet workbooks, CSV exports, Word documents
// (tables only), text dumps of OCR'd or extracted PDFs, and PDFs directly.
// Empty cells are always the empty string.
package normalize

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"stowsort/internal/model"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrUnsupportedFormat indicates the extension is not one we can read.
var ErrUnsupportedFormat = errors.New("unsupported document format")

// ErrEmptyDocument indicates the document was read but produced no sheets.
var ErrEmptyDocument = errors.New("document contains no sheets")

// Options controls decoding of text-based inputs
type Options struct {
	// Encodings are charset names tried in order when a text export is not valid UTF-8
	Encodings []string
}

// Loader reads one document format
type Loader func(path string, opts Options) (*model.SheetSet, error)

var loaders = map[string]Loader{
	".xlsx": loadWorkbook,
	".xlsm": loadWorkbook,
	".csv":  loadCSV,
	".txt":  loadText,
	".pdf":  loadPDF,
	".docx": loadWordTables,
}

// SupportedExtensions lists the extensions Load accepts
func SupportedExtensions() []string {
	return []string{".xlsx", ".xlsm", ".csv", ".txt", ".pdf", ".docx"}
}

// IsSupported reports whether path has a readable extension
func IsSupported(path string) bool {
	_, ok := loaders[strings.ToLower(filepath.Ext(path))]
	return ok
}

// Load reads path into a sheet set, dispatching on the file extension
func Load(path string, opts Options) (*model.SheetSet, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	loader, ok := loaders[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q (supported: %s)", ErrUnsupportedFormat, ext, strings.Join(SupportedExtensions(), ", "))
	}

	set, err := loader(path, opts)
	if err != nil {
		return nil, err
	}
	if set.Len() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyDocument, path)
	}
	return set, nil
}

// baseName is the file name without directory and extension, used for single-sheet formats
func baseName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

// trimRow removes surrounding whitespace from every cell
func trimRow(cells []string) model.Row {
	row := make(model.Row, len(cells))
	for i, c := range cells {
		row[i] = strings.TrimSpace(c)
	}
	return row
}
