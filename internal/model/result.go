package model

import "time"

// BlockPreview is a reporting-only view of one sorted block
type BlockPreview struct {
	ID       string `json:"id"`
	Key      string `json:"key"`
	Stowage  string `json:"stowage,omitempty"`
	Strategy string `json:"strategy,omitempty"`
}

// Result is the outcome of one successful reconciliation run
type Result struct {
	RunID       string
	GeneratedAt time.Time
	SheetName   string

	// Final grid: header + sorted blocks + tail
	Grid      *Grid
	Structure *ReportStructure
	Blocks    []ContainerBlock // sorted order

	// Statistics
	Total     int
	Matched   int
	Unmatched int
	Injected  int
	MapSize   int
	Preview   []BlockPreview

	Summary string
}

// NewResult creates an empty result stamped with the run id
func NewResult(runID string) *Result {
	return &Result{
		RunID:       runID,
		GeneratedAt: time.Now(),
		Blocks:      make([]ContainerBlock, 0),
		Preview:     make([]BlockPreview, 0),
	}
}
