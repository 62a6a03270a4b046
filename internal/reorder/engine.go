// Package reorder resolves each container block's stowage, writes it into the
// block and rebuilds the report with blocks in Bay-Row-Tier order.
package reorder

import (
	"sort"

	"stowsort/internal/blocks"
	"stowsort/internal/codec"
	"stowsort/internal/inject"
	"stowsort/internal/logger"
	"stowsort/internal/model"
)

// DefaultPreviewSize is the number of sorted blocks listed in the result preview
const DefaultPreviewSize = 10

// Options tunes the engine
type Options struct {
	AnchorText   string
	FallbackRows int
	PreviewSize  int
}

// Engine is stateless between calls; every Reorder call gets its own run context.
type Engine struct {
	injector    *inject.Injector
	previewSize int
}

// NewEngine creates an engine with the standard injection strategies
func NewEngine(opts Options) *Engine {
	if opts.PreviewSize <= 0 {
		opts.PreviewSize = DefaultPreviewSize
	}
	return &Engine{
		injector: inject.New(inject.Options{
			AnchorText:   opts.AnchorText,
			FallbackRows: opts.FallbackRows,
		}),
		previewSize: opts.PreviewSize,
	}
}

// runContext is the state of one invocation. It is created by Reorder and discarded with it.
type runContext struct {
	grid      *model.Grid // working copy of the report, mutated by injection
	structure *model.ReportStructure
	stowage   *model.StowageMap
	result    *model.Result
}

// Reorder runs the engine over report using the stowage lookup.
// report itself is never modified; the result carries the rebuilt grid.
func (e *Engine) Reorder(report *model.Grid, stowage *model.StowageMap) *model.Result {
	rc := &runContext{
		grid:    report.Clone(),
		stowage: stowage,
		result:  model.NewResult(""),
	}
	rc.structure = blocks.Parse(rc.grid)

	e.resolve(rc)
	sorted := sortBlocks(rc.structure.Blocks)
	rc.result.Grid = rebuild(rc.grid, rc.structure, sorted)

	rc.result.SheetName = report.Name
	rc.result.Structure = rc.structure
	rc.result.Blocks = sorted
	rc.result.Total = len(sorted)
	rc.result.Unmatched = rc.result.Total - rc.result.Matched
	rc.result.MapSize = stowage.Len()
	rc.result.Preview = preview(sorted, e.previewSize)

	logger.Debug("Reordered %d blocks (%d matched, %d injected)",
		rc.result.Total, rc.result.Matched, rc.result.Injected)

	return rc.result
}

// resolve completes every block in original order: lookup, injection, key
func (e *Engine) resolve(rc *runContext) {
	for i := range rc.structure.Blocks {
		b := &rc.structure.Blocks[i]

		raw, ok := rc.stowage.Lookup(b.ID)
		b.Resolved = ok
		b.ResolvedStowage = raw
		b.Key = codec.KeyOf(raw, ok)

		if !ok {
			logger.Debug("Block %s (row %d): no stowage in full list", b.ID, b.Start+1)
			continue
		}
		rc.result.Matched++

		b.Strategy = e.injector.Inject(rc.grid, *b, codec.DisplayOf(raw))
		if b.Strategy != "" {
			rc.result.Injected++
		}
	}
}

// sortBlocks returns a stably sorted copy; equal keys keep their original order
func sortBlocks(in []model.ContainerBlock) []model.ContainerBlock {
	out := make([]model.ContainerBlock, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Key < out[j].Key
	})
	return out
}

// rebuild concatenates header rows, each sorted block's current rows, then tail rows
func rebuild(g *model.Grid, s *model.ReportStructure, sorted []model.ContainerBlock) *model.Grid {
	rows := make([]model.Row, 0, g.Len())
	rows = append(rows, s.HeaderRows...)
	for _, b := range sorted {
		rows = append(rows, g.Rows[b.Start:b.End]...)
	}
	rows = append(rows, s.TailRows...)
	return model.NewGrid(g.Name, rows)
}

func preview(sorted []model.ContainerBlock, n int) []model.BlockPreview {
	if n > len(sorted) {
		n = len(sorted)
	}
	out := make([]model.BlockPreview, 0, n)
	for _, b := range sorted[:n] {
		out = append(out, model.BlockPreview{
			ID:       b.ID,
			Key:      b.Key,
			Stowage:  b.ResolvedStowage,
			Strategy: b.Strategy,
		})
	}
	return out
}
