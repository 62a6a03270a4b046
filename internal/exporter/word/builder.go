package word

import (
	"embed"
	"fmt"
	"os"
	"strings"

	"stowsort/internal/config"
	"stowsort/internal/exporter/common"
	"stowsort/internal/model"

	"github.com/nguyenthenguyen/docx"
)

//go:embed template.docx
var templateFS embed.FS

type WordExporter struct{}

func NewWordExporter() *WordExporter {
	return &WordExporter{}
}

func (e *WordExporter) Name() string { return "word" }

func (e *WordExporter) Export(res *model.Result, cfg *config.Config) error {
	// 1. Extract embedded template to temp file
	templateBytes, err := templateFS.ReadFile("template.docx")
	if err != nil {
		return fmt.Errorf("failed to read embedded template: %w", err)
	}

	tmpFile, err := os.CreateTemp("", "stowsort-template-*.docx")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.Write(templateBytes); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to write template to temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	r, err := docx.ReadDocxFile(tmpFile.Name())
	if err != nil {
		return fmt.Errorf("failed to read docx from temp file: %w", err)
	}
	defer r.Close()

	doc := r.Editable()

	// 2. Summary placeholders
	doc.Replace("{{Date}}", res.GeneratedAt.Format("2006-01-02 15:04:05"), -1)
	doc.Replace("{{TotalBlocks}}", fmt.Sprintf("%d", res.Total), -1)
	doc.Replace("{{Matched}}", fmt.Sprintf("%d", res.Matched), -1)
	doc.Replace("{{Unmatched}}", fmt.Sprintf("%d", res.Unmatched), -1)

	// 3. Body as plain text (the library handles XML encoding)
	doc.Replace("{{Content}}", BuildContent(res), -1)

	if err := doc.WriteToFile(cfg.OutputPathFor(".docx")); err != nil {
		return fmt.Errorf("failed to write Word document: %w", err)
	}
	return nil
}

// BuildContent renders the summary text and the sorted preview
func BuildContent(res *model.Result) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Sheet: %s\n", res.SheetName))
	sb.WriteString(fmt.Sprintf("Run: %s\n\n", res.RunID))
	if res.Summary != "" {
		sb.WriteString(res.Summary + "\n\n")
	}

	rows := common.PreviewRows(res)
	if len(rows) == 0 {
		sb.WriteString("No container blocks were detected.\n")
		return sb.String()
	}

	sb.WriteString("SORTED PREVIEW:\n")
	sb.WriteString(fmt.Sprintf("%-4s %-13s %-8s %-12s %s\n", "No", "Container", "Key", "Stowage", "Written By"))
	sb.WriteString(strings.Repeat("-", 60) + "\n")
	for _, p := range rows {
		stowage := p.Stowage
		if stowage == "" {
			stowage = "(unmatched)"
		}
		sb.WriteString(fmt.Sprintf("%-4d %-13s %-8s %-12s %s\n",
			p.No, p.ID, p.Key, truncate(stowage, 12), common.StrategyLabel(p)))
	}

	return sb.String()
}

// truncate truncates a string to a maximum length
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
