package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"textify/pkg/combine"
	"textify/pkg/config"
	"textify/pkg/logging"
	"textify/pkg/perf"
	"textify/pkg/progress"
	"textify/pkg/repo"
	"textify/pkg/version"
)

// runSnapshot loads configuration, sets up logging and runs the pipeline for
// the root given as the single optional argument.
func runSnapshot(cmd *cobra.Command, args []string) error {
	cfgFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Debug, "textify", version.Get().Version)
	if err != nil {
		return err
	}
	if cfg.ConfigFile != "" {
		logger.Debug("Using configuration file", zap.String("path", cfg.ConfigFile))
	}

	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	if name, nameErr := repo.Name(root); nameErr == nil {
		progress.PrintHeader(out, name)
	}

	summary, err := combine.Run(ctx, combine.Options{
		Root:             root,
		Output:           cfg.Output,
		Tree:             cfg.Tree,
		ThresholdMB:      cfg.ThresholdMB,
		IncludeAll:       cfg.IncludeAll,
		Debug:            cfg.Debug,
		Workers:          cfg.Workers,
		IgnorePatterns:   cfg.Ignore,
		GlobalIgnoreFile: cfg.GlobalIgnore,
		Reporter:         progress.New(os.Stderr, !cfg.NoProgress && !cfg.Debug),
		Recorder:         perf.NewRecorder(cfg.PerfLog, cfg.Profile, logger),
	}, logger)
	if err != nil {
		logger.Error("Snapshot failed", zap.Error(err))
		return err
	}

	progress.PrintSummary(out, summary.Processed, summary.Skipped)
	progress.PrintDone(out, summary.OutputPath)
	return nil
}
