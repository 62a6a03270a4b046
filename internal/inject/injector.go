// Package inject decides where inside a container block the resolved stowage
// value is written, without knowing the report's schema.
package inject

import (
	"stowsort/internal/logger"
	"stowsort/internal/model"
	"stowsort/internal/rules"
)

// DefaultFallbackRows bounds the first-empty-cell search so footer rows of a block stay untouched
const DefaultFallbackRows = 8

// Strategy names, in priority order
const (
	StrategyStowageCell = "stowage-cell"
	StrategyAnchor      = "anchor"
	StrategyFirstEmpty  = "first-empty"
)

// Strategy writes value somewhere in the block and reports whether it applied.
// A strategy that returns false must leave the grid unchanged.
type Strategy struct {
	Name  string
	Apply func(g *model.Grid, b model.ContainerBlock, value string) bool
}

// Options tunes the built-in strategies
type Options struct {
	AnchorText   string // defaults to rules.DefaultAnchorText
	FallbackRows int    // defaults to DefaultFallbackRows
}

// Injector tries its strategies in order and stops at the first that applies
type Injector struct {
	strategies []Strategy
}

// New returns an injector with the standard strategy order:
// overwrite an existing stowage-shaped cell, then anchor-relative placement,
// then the first empty cell of the block's leading rows.
func New(opts Options) *Injector {
	if opts.AnchorText == "" {
		opts.AnchorText = rules.DefaultAnchorText
	}
	if opts.FallbackRows <= 0 {
		opts.FallbackRows = DefaultFallbackRows
	}

	return &Injector{
		strategies: []Strategy{
			{Name: StrategyStowageCell, Apply: OverwriteStowageCell},
			{Name: StrategyAnchor, Apply: BesideAnchor(opts.AnchorText)},
			{Name: StrategyFirstEmpty, Apply: FirstEmptyCell(opts.FallbackRows)},
		},
	}
}

// NewWithStrategies builds an injector from a custom ordered list
func NewWithStrategies(strategies ...Strategy) *Injector {
	return &Injector{strategies: strategies}
}

// Strategies returns the ordered strategy list
func (in *Injector) Strategies() []Strategy {
	return in.strategies
}

// Inject writes value into the block. It returns the name of the strategy that
// applied, or "" when value is empty or no strategy found a target.
func (in *Injector) Inject(g *model.Grid, b model.ContainerBlock, value string) string {
	if model.IsBlank(value) {
		return ""
	}

	for _, s := range in.strategies {
		if s.Apply(g, b, value) {
			logger.Debug("Block %s: stowage %s written via %s", b.ID, value, s.Name)
			return s.Name
		}
	}

	logger.LogSkip(g.Name, b.Start, "no injection target in block "+b.ID)
	return ""
}

// OverwriteStowageCell replaces the first cell (row-major) already shaped like "12.34.56"
func OverwriteStowageCell(g *model.Grid, b model.ContainerBlock, value string) bool {
	for r := b.Start; r < b.End && r < g.Len(); r++ {
		for c, cell := range g.Rows[r] {
			if rules.IsStowageCell(cell) {
				return g.Set(r, c, value)
			}
		}
	}
	return false
}

// BesideAnchor writes into the cell left of the anchor label, or right of it
// when the label sits in the first column. Existing content is overwritten.
func BesideAnchor(anchor string) func(g *model.Grid, b model.ContainerBlock, value string) bool {
	return func(g *model.Grid, b model.ContainerBlock, value string) bool {
		for r := b.Start; r < b.End && r < g.Len(); r++ {
			for c, cell := range g.Rows[r] {
				if !rules.IsAnchor(cell, anchor) {
					continue
				}
				target := c - 1
				if c == 0 {
					target = c + 1
				}
				return g.Set(r, target, value)
			}
		}
		return false
	}
}

// FirstEmptyCell writes into the first blank cell within the first maxRows rows of the block.
// Columns up to the grid's width are considered; cells past a short row's end count as blank.
func FirstEmptyCell(maxRows int) func(g *model.Grid, b model.ContainerBlock, value string) bool {
	return func(g *model.Grid, b model.ContainerBlock, value string) bool {
		width := g.Width()
		limit := b.Start + maxRows
		if limit > b.End {
			limit = b.End
		}

		for r := b.Start; r < limit && r < g.Len(); r++ {
			for c := 0; c < width; c++ {
				if model.IsBlank(g.Cell(r, c)) {
					return g.Set(r, c, value)
				}
			}
		}
		return false
	}
}
