// Package recon is the entry point of a reconciliation run: it loads the full
// list and the monitoring report, builds the stowage map and reorders the
// report's container blocks.
package recon

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"stowsort/internal/blocks"
	"stowsort/internal/config"
	"stowsort/internal/logger"
	"stowsort/internal/model"
	"stowsort/internal/normalize"
	"stowsort/internal/reorder"
	"stowsort/internal/report"
	"stowsort/internal/stowmap"
	"stowsort/internal/ui"
)

// Document roles used in error messages
const (
	RoleFullList   = "full list"
	RoleMonitoring = "monitoring report"
)

// Options tunes a run
type Options struct {
	Encodings      []string
	HeaderScanRows int
	FallbackRows   int
	PreviewSize    int
	AnchorText     string
}

// OptionsFromConfig maps the configuration onto run options
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Encodings:      cfg.Input.Encoding,
		HeaderScanRows: cfg.Rules.HeaderScanRows,
		FallbackRows:   cfg.Rules.FallbackScanRows,
		PreviewSize:    cfg.Rules.PreviewSize,
		AnchorText:     cfg.Rules.AnchorText,
	}
}

// Request names the two input documents
type Request struct {
	FullListPath string
	ReportPath   string
	Options      Options

	// Progress is optional; nil runs silently
	Progress *ui.Pipeline
}

// Run executes one reconciliation. Input-document failures come back as
// *normalize.DocumentError; everything past loading is infallible.
func Run(ctx context.Context, req Request) (*model.Result, error) {
	runID := uuid.NewString()
	logger.SetRunID(runID)
	logger.Debug("Run %s: full list=%s report=%s", runID, req.FullListPath, req.ReportPath)

	progress := req.Progress
	if progress == nil {
		progress = ui.NewPipeline(ui.RunPhases)
		progress.Disable()
	}

	// --- Loading ---
	loadBar := progress.NextPhase(2)
	fullList, monitoring, err := loadDocuments(ctx, req, loadBar)
	if err != nil {
		return nil, err
	}

	reportGrid := monitoring.First()
	logger.Info("Loaded %d full-list sheet(s); monitoring sheet %q has %d rows",
		fullList.Len(), reportGrid.Name, reportGrid.Len())

	// --- Mapping ---
	mapBar := progress.NextPhase(fullList.Len())
	builder := stowmap.NewBuilder(req.Options.HeaderScanRows)
	for _, sheet := range fullList.Sheets {
		mapBar.Describe(sheet.Name)
		builder.AddSheet(sheet)
		mapBar.Increment()
	}
	stowage := builder.Map()
	logger.Info("Stowage map: %d containers from %d sheet(s)", stowage.Len(), fullList.Len())
	if stowage.Len() == 0 {
		logger.Warn("No sheet in the full list exposes both a stowage and a container id column")
	}

	// --- Reordering ---
	reorderBar := progress.NextPhase(1)
	engine := reorder.NewEngine(reorder.Options{
		AnchorText:   req.Options.AnchorText,
		FallbackRows: req.Options.FallbackRows,
		PreviewSize:  req.Options.PreviewSize,
	})
	res := engine.Reorder(reportGrid, stowage)
	reorderBar.Increment()

	res.RunID = runID
	res.Summary = report.Summarize(res)

	return res, nil
}

// Inspect parses the monitoring report only and returns its structure and the grid it came from
func Inspect(path string, opts Options) (*model.ReportStructure, *model.Grid, error) {
	set, err := normalize.Load(path, normalize.Options{Encodings: opts.Encodings})
	if err != nil {
		return nil, nil, normalize.NewDocumentError(RoleMonitoring, path, err)
	}
	g := set.First()
	return blocks.Parse(g), g, nil
}

// loadDocuments normalizes both inputs concurrently
func loadDocuments(ctx context.Context, req Request, bar *ui.ProgressBar) (*model.SheetSet, *model.SheetSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, fmt.Errorf("run cancelled before loading: %w", err)
	}

	opts := normalize.Options{Encodings: req.Options.Encodings}
	var fullList, monitoring *model.SheetSet

	var g errgroup.Group
	g.Go(func() error {
		set, err := normalize.Load(req.FullListPath, opts)
		if err != nil {
			return normalize.NewDocumentError(RoleFullList, req.FullListPath, err)
		}
		fullList = set
		bar.Increment()
		return nil
	})
	g.Go(func() error {
		set, err := normalize.Load(req.ReportPath, opts)
		if err != nil {
			return normalize.NewDocumentError(RoleMonitoring, req.ReportPath, err)
		}
		monitoring = set
		bar.Increment()
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return fullList, monitoring, nil
}
