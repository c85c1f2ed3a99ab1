// Package combine snapshots a directory tree into a single text artifact.
package combine

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"textify/pkg/classify"
	"textify/pkg/extract"
	"textify/pkg/ignore"
	"textify/pkg/progress"
	"textify/pkg/repo"
)

// OutputSuffix is appended to the repository name to form the default
// artifact name.
const OutputSuffix = ".textify.txt"

// DefaultOutput returns the artifact path used when none is configured.
func DefaultOutput(repoName string) string {
	return repoName + OutputSuffix
}

// Run discovers, classifies and aggregates every file under opts.Root. The
// root is validated before the artifact is created. After a fatal error
// the partial artifact is left on disk.
func Run(ctx context.Context, opts Options, logger *zap.Logger) (Summary, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	startTime := time.Now()
	totalTimer := opts.Recorder.Start("Total conversion")
	defer totalTimer.Stop()

	if opts.ThresholdMB < 0 {
		return Summary{}, fmt.Errorf("%w: threshold must not be negative, got %v", ErrConfigValidation, opts.ThresholdMB)
	}
	root, err := resolveRoot(opts.Root)
	if err != nil {
		return Summary{}, err
	}

	repoName, nameErr := repo.Name(root)
	output := opts.Output
	if output == "" {
		if nameErr != nil {
			return Summary{}, fmt.Errorf("%w: cannot derive output name: %w", ErrConfigValidation, nameErr)
		}
		output = DefaultOutput(repoName)
	}
	if output, err = filepath.Abs(output); err != nil {
		return Summary{}, fmt.Errorf("%w: resolve output path: %w", ErrConfigValidation, err)
	}
	treePath := opts.Tree
	if treePath != "" {
		if treePath, err = filepath.Abs(treePath); err != nil {
			return Summary{}, fmt.Errorf("%w: resolve tree path: %w", ErrConfigValidation, err)
		}
	}
	logger.Info("Starting snapshot",
		zap.String("root", root),
		zap.String("output", output),
		zap.Float64("thresholdMB", opts.ThresholdMB),
		zap.Bool("includeAll", opts.IncludeAll))

	matcher, err := ignore.Load(filepath.Join(root, ignore.FileName), opts.GlobalIgnoreFile, logger)
	if err != nil {
		return Summary{}, fmt.Errorf("%w: load ignore patterns: %w", ErrConfigValidation, err)
	}
	matcher.AddPatterns("flag", opts.IgnorePatterns...)

	classifier := classify.New(classify.Options{
		ThresholdMB: opts.ThresholdMB,
		IncludeAll:  opts.IncludeAll,
		Matcher:     matcher,
	})
	logger.Debug("Classifier ready",
		zap.Int64("thresholdBytes", classifier.Threshold()),
		zap.Int("ignorePatterns", matcher.Len()))

	discoveryTimer := opts.Recorder.Start("File discovery")
	candidates, err := Discover(ctx, root, classifier, []string{output, treePath}, logger)
	discoveryTimer.Stop()
	if err != nil {
		return Summary{}, fmt.Errorf("discover files: %w", err)
	}
	if len(candidates) == 0 {
		logger.Warn("No files to process after filtering", zap.String("root", root))
	}

	out, err := createOutput(output, logger)
	if err != nil {
		return Summary{}, err
	}

	reporter := opts.Reporter
	if reporter == nil {
		reporter = progress.NopReporter{}
	}
	aggregator := NewAggregator(out, logger)
	scheduler := NewScheduler(SchedulerConfig{
		Classifier: classifier,
		Extractor:  extract.New(logger),
		Aggregator: aggregator,
		Reporter:   reporter,
		Workers:    opts.Workers,
		Debug:      opts.Debug,
	}, logger)

	processTimer := opts.Recorder.Start("File processing")
	reporter.Start(len(candidates))
	runErr := scheduler.Run(ctx, candidates)
	reporter.Finish()
	processTimer.Stop()

	flushTimer := opts.Recorder.Start("File flush")
	flushErr := aggregator.Flush()
	closeErr := out.Close()
	flushTimer.Stop()

	summary := scheduler.Stats().Snapshot(len(candidates))
	summary.OutputPath = output
	summary.RepoName = repoName

	if runErr != nil {
		if flushErr != nil && !errors.Is(flushErr, ErrWriteFailed) {
			logger.Warn("Failed to flush partial output", zap.Error(flushErr))
		}
		return summary, runErr
	}
	if err := multierr.Combine(flushErr, closeErr); err != nil {
		return summary, fmt.Errorf("%w: finalize %s: %w", ErrWriteFailed, output, err)
	}

	if treePath != "" {
		rels := make([]string, 0, len(candidates))
		for _, c := range candidates {
			rels = append(rels, c.RelPath)
		}
		if err := writeToFile(treePath, []byte(RenderTree(filepath.Base(root), rels)), 0o644, logger); err != nil {
			return summary, fmt.Errorf("write tree %s: %w", treePath, err)
		}
	}

	summary.Elapsed = time.Since(startTime)
	logger.Info("Snapshot completed",
		zap.String("output", output),
		zap.Int("candidates", summary.Total),
		zap.Int64("processed", summary.Processed),
		zap.Int64("skipped", summary.Skipped),
		zap.Int64("unreadable", summary.Unreadable),
		zap.Duration("elapsed", summary.Elapsed))
	return summary, nil
}
