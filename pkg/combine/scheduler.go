package combine

import (
	"context"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"textify/pkg/classify"
	"textify/pkg/extract"
	"textify/pkg/progress"
)

// ContentExtractor reads an included file. *extract.Extractor satisfies it.
type ContentExtractor interface {
	Extract(path string, size int64) extract.Content
}

// Scheduler runs the per-file pipeline over a bounded pool of goroutines.
type Scheduler struct {
	classifier *classify.Classifier
	extractor  ContentExtractor
	aggregator *Aggregator
	stats      *Stats
	reporter   progress.Reporter
	workers    int
	debug      bool
	logger     *zap.Logger
}

// SchedulerConfig wires a Scheduler to its collaborators.
type SchedulerConfig struct {
	Classifier *classify.Classifier
	Extractor  ContentExtractor
	Aggregator *Aggregator
	Stats      *Stats
	Reporter   progress.Reporter
	Workers    int
	Debug      bool
}

// NewScheduler returns a Scheduler. Workers defaults to runtime.NumCPU().
func NewScheduler(cfg SchedulerConfig, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
		logger.Debug("Adjusted worker count", zap.Int("workers", workers))
	}
	reporter := cfg.Reporter
	if reporter == nil {
		reporter = progress.NopReporter{}
	}
	stats := cfg.Stats
	if stats == nil {
		stats = &Stats{}
	}
	var extractor ContentExtractor = extract.New(logger)
	if cfg.Extractor != nil {
		extractor = cfg.Extractor
	}
	return &Scheduler{
		classifier: cfg.Classifier,
		extractor:  extractor,
		aggregator: cfg.Aggregator,
		stats:      stats,
		reporter:   reporter,
		workers:    workers,
		debug:      cfg.Debug,
		logger:     logger.With(zap.String("component", "scheduler")),
	}
}

// Stats returns the counters updated by Run.
func (s *Scheduler) Stats() *Stats { return s.stats }

// Run processes every candidate. The first fatal error stops new work from
// starting and is returned once in-flight workers have finished.
func (s *Scheduler) Run(ctx context.Context, candidates []FileCandidate) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	s.logger.Debug("Dispatching candidates",
		zap.Int("candidates", len(candidates)),
		zap.Int("workers", s.workers))

	for _, cand := range candidates {
		if gctx.Err() != nil {
			break
		}
		cand := cand
		g.Go(func() error {
			return s.processCandidate(gctx, cand)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
