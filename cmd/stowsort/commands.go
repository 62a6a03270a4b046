package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"stowsort/internal/config"
	"stowsort/internal/exporter"
	"stowsort/internal/logger"
	"stowsort/internal/recon"
	"stowsort/internal/report"
	"stowsort/internal/ui"
)

const logFileName = "stowsort.log"

type globalOptions struct {
	configPath string
	verbose    bool
	noPause    bool
}

type reorderOptions struct {
	fullList string
	report   string
	output   string
	formats  string
}

func newRootCmd() *cobra.Command {
	var global globalOptions
	var opts reorderOptions

	root := &cobra.Command{
		Use:           "stowsort",
		Short:         appDesc,
		Long:          appDesc + ".\nRunning without a subcommand behaves like 'stowsort reorder'.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReorder(cmd.Context(), global, opts)
		},
	}

	root.PersistentFlags().StringVarP(&global.configPath, "config", "c", "config.yaml", "Path to configuration file")
	root.PersistentFlags().BoolVarP(&global.verbose, "verbose", "v", false, "Enable verbose logging (DEBUG level)")
	root.PersistentFlags().BoolVar(&global.noPause, "no-pause", false, "Do not wait for Enter before exiting")
	bindReorderFlags(root, &opts)

	reorder := &cobra.Command{
		Use:   "reorder",
		Short: "Sort the monitoring report by stowage from the full list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReorder(cmd.Context(), global, opts)
		},
	}
	bindReorderFlags(reorder, &opts)

	root.AddCommand(reorder, newInspectCmd(&global), newVersionCmd())
	return root
}

func bindReorderFlags(cmd *cobra.Command, opts *reorderOptions) {
	cmd.Flags().StringVar(&opts.fullList, "full-list", "", "Override input.full_list")
	cmd.Flags().StringVar(&opts.report, "report", "", "Override input.monitoring")
	cmd.Flags().StringVar(&opts.output, "output", "", "Override output directory from config")
	cmd.Flags().StringVar(&opts.formats, "format", "", "Comma-separated output formats (excel,html,word,json)")
}

// apply writes command-line overrides into the loaded configuration
func (o reorderOptions) apply(cfg *config.Config) error {
	for _, ov := range []struct {
		flag string
		dst  *string
	}{
		{o.fullList, &cfg.Input.FullList},
		{o.report, &cfg.Input.Monitoring},
		{o.output, &cfg.Output.Dir},
	} {
		if ov.flag == "" {
			continue
		}
		abs, err := filepath.Abs(ov.flag)
		if err != nil {
			return fmt.Errorf("failed to resolve path %q: %w", ov.flag, err)
		}
		*ov.dst = abs
	}
	if o.formats != "" {
		cfg.Output.Formats = strings.Split(o.formats, ",")
	}
	return nil
}

func runReorder(ctx context.Context, global globalOptions, opts reorderOptions) error {
	printBanner()

	cfg, err := config.Load(global.configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	pauseOnExit = cfg.UI.PauseOnExit && !global.noPause

	if err := opts.apply(cfg); err != nil {
		return err
	}
	if err := cfg.EnsureOutputDir(); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logPath := filepath.Join(cfg.Output.Dir, logFileName)
	if err := logger.Init(os.Stdout, logPath, global.verbose); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Close()

	if global.verbose {
		cfg.Print()
	}

	pipeline := ui.NewPipeline(ui.RunPhases)
	if !cfg.UI.Progress {
		pipeline.Disable()
	}

	res, err := recon.Run(ctx, recon.Request{
		FullListPath: cfg.Input.FullList,
		ReportPath:   cfg.Input.Monitoring,
		Options:      recon.OptionsFromConfig(cfg),
		Progress:     pipeline,
	})
	if err != nil {
		logger.Error("Reorder failed: %v", err)
		return err
	}

	// --- Exporting ---
	exporters := exporter.GetExporters(cfg.Output.Formats)
	genBar := pipeline.NextPhase(len(exporters))

	var exportErrors []error
	for _, exp := range exporters {
		genBar.Describe(exp.Name())
		if err := exp.Export(res, cfg); err != nil {
			logger.Error("%s export failed: %v", exp.Name(), err)
			exportErrors = append(exportErrors, err)
		}
		genBar.Increment()
	}
	pipeline.Finish()

	logger.InfoClean("\n%s\n", res.Summary)
	logger.InfoClean("%s", report.PreviewTable(res.Preview))

	if skips := logger.SkipCount(); skips > 0 {
		logger.Info("%d row(s) skipped, see %s", skips, logger.GetLogFilePath())
	}

	if len(exportErrors) > 0 {
		return fmt.Errorf("one or more exports failed: %d errors", len(exportErrors))
	}

	logger.Info("✅ Reorder complete. Check [%s] directory.", cfg.Output.Dir)
	return nil
}

func newInspectCmd(global *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <report>",
		Short: "Show how a monitoring report splits into header, blocks and tail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(global.configPath)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			structure, grid, err := recon.Inspect(args[0], recon.OptionsFromConfig(cfg))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Sheet:       %s (%d rows)\n", grid.Name, grid.Len())
			fmt.Fprintf(out, "Header rows: %d\n", len(structure.HeaderRows))
			fmt.Fprintf(out, "Blocks:      %d\n", len(structure.Blocks))
			fmt.Fprintf(out, "Tail rows:   %d\n\n", len(structure.TailRows))
			for i, b := range structure.Blocks {
				fmt.Fprintf(out, "%-4d %-13s rows %d-%d\n", i+1, b.ID, b.Start+1, b.End)
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s v%s\n%s\n", appName, appVersion, appDesc)
		},
	}
}
