// Package jsonreport writes the run statistics as a machine-readable document.
package jsonreport

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"stowsort/internal/config"
	"stowsort/internal/model"
)

// Document is the JSON layout of one run
type Document struct {
	RunID       string               `json:"run_id"`
	GeneratedAt time.Time            `json:"generated_at"`
	Sheet       string               `json:"sheet"`
	Stats       Stats                `json:"stats"`
	Structure   Structure            `json:"structure"`
	Preview     []model.BlockPreview `json:"preview"`
	Summary     string               `json:"summary"`
}

// Stats mirrors the counters of a result
type Stats struct {
	Total     int `json:"total"`
	Matched   int `json:"matched"`
	Unmatched int `json:"unmatched"`
	Injected  int `json:"injected"`
	MapSize   int `json:"map_size"`
}

// Structure records where the report was split
type Structure struct {
	HeaderRows int `json:"header_rows"`
	BlockRows  int `json:"block_rows"`
	TailRows   int `json:"tail_rows"`
}

type JSONExporter struct{}

func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

func (e *JSONExporter) Name() string { return "json" }

func (e *JSONExporter) Export(res *model.Result, cfg *config.Config) error {
	data, err := json.MarshalIndent(Build(res), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON report: %w", err)
	}

	if err := os.WriteFile(cfg.OutputPathFor(".json"), data, 0644); err != nil {
		return fmt.Errorf("failed to write JSON report: %w", err)
	}
	return nil
}

// Build converts a result into its JSON document
func Build(res *model.Result) *Document {
	doc := &Document{
		RunID:       res.RunID,
		GeneratedAt: res.GeneratedAt,
		Sheet:       res.SheetName,
		Stats: Stats{
			Total:     res.Total,
			Matched:   res.Matched,
			Unmatched: res.Unmatched,
			Injected:  res.Injected,
			MapSize:   res.MapSize,
		},
		Preview: res.Preview,
		Summary: res.Summary,
	}
	if doc.Preview == nil {
		doc.Preview = []model.BlockPreview{}
	}

	if s := res.Structure; s != nil {
		doc.Structure = Structure{
			HeaderRows: len(s.HeaderRows),
			TailRows:   len(s.TailRows),
		}
		for _, b := range s.Blocks {
			doc.Structure.BlockRows += b.Len()
		}
	}
	return doc
}
