package html

import (
	"fmt"
	"html/template"
	"os"

	"stowsort/internal/config"
	"stowsort/internal/exporter/common"
	"stowsort/internal/model"
)

type HTMLExporter struct{}

func NewHTMLExporter() *HTMLExporter {
	return &HTMLExporter{}
}

// ReportData feeds ReportTemplate
type ReportData struct {
	GeneratedAt string
	RunID       string
	SheetName   string
	Metrics     []common.Metric
	Preview     []common.PreviewRow
	Summary     string
	Rows        []model.Row
	Width       int
}

func (e *HTMLExporter) Name() string { return "html" }

func (e *HTMLExporter) Export(res *model.Result, cfg *config.Config) error {
	data := ReportData{
		GeneratedAt: res.GeneratedAt.Format("2006-01-02 15:04:05"),
		RunID:       res.RunID,
		SheetName:   res.SheetName,
		Metrics:     common.Metrics(res),
		Preview:     common.PreviewRows(res),
		Summary:     res.Summary,
	}
	if res.Grid != nil {
		data.Rows = res.Grid.Rows
		data.Width = res.Grid.Width()
	}

	tmpl, err := template.New("stowage-report").Funcs(template.FuncMap{
		"strategy": common.StrategyLabel,
		"cell": func(row model.Row, c int) string {
			if c < len(row) {
				return row[c]
			}
			return ""
		},
		"cols": func(n int) []int {
			out := make([]int, n)
			for i := range out {
				out[i] = i
			}
			return out
		},
	}).Parse(ReportTemplate)
	if err != nil {
		return err
	}

	f, err := os.Create(cfg.OutputPathFor(".html"))
	if err != nil {
		return fmt.Errorf("failed to create HTML report: %w", err)
	}
	defer f.Close()

	return tmpl.Execute(f, data)
}
