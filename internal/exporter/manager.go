package exporter

import (
	"strings"

	"stowsort/internal/exporter/html"
	"stowsort/internal/exporter/jsonreport"
	"stowsort/internal/exporter/word"
)

// GetExporters returns the Exporters for the requested formats.
// Aliases of one format yield a single exporter; unknown names are ignored.
func GetExporters(formats []string) []Exporter {
	exporters := []Exporter{}
	seen := make(map[string]bool)

	for _, fmtStr := range formats {
		var exp Exporter
		switch strings.ToLower(strings.TrimSpace(fmtStr)) {
		case "excel", "xlsx":
			exp = NewExcelExporter()
		case "html":
			exp = html.NewHTMLExporter()
		case "word", "docx":
			exp = word.NewWordExporter()
		case "json":
			exp = jsonreport.NewJSONExporter()
		default:
			continue
		}

		if seen[exp.Name()] {
			continue
		}
		seen[exp.Name()] = true
		exporters = append(exporters, exp)
	}

	return exporters
}
