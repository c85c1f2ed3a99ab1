package combine

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/zap"

	"textify/pkg/classify"
)

// statFile is replaced in tests to simulate metadata failures.
var statFile = os.Stat

// processCandidate classifies one candidate and, when it is included,
// appends its record. Only stat failures and output failures are returned.
func (s *Scheduler) processCandidate(ctx context.Context, cand FileCandidate) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.reporter.Describe(cand.RelPath)
	defer s.reporter.Advance()

	info, err := statFile(cand.AbsPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.skip(cand, classify.ExcludeByPath, "file vanished")
			return nil
		}
		return fmt.Errorf("%w: %s: %w", ErrStatFailed, cand.RelPath, err)
	}
	cand.Size = info.Size()

	var sample []byte
	if s.classifier.NeedsSample(cand) {
		sample, err = classify.ReadSample(cand.AbsPath, classify.SampleSize)
		if err != nil {
			s.logger.Debug("Sample read failed, treating as text",
				zap.String("filePath", cand.RelPath),
				zap.Error(err))
			sample = nil
		}
	}

	verdict := s.classifier.Classify(cand, sample)
	if verdict != classify.Include {
		s.skip(cand, verdict, "")
		return nil
	}

	content := s.extractor.Extract(cand.AbsPath, cand.Size)
	if content.Unreadable && s.debug {
		s.logger.Debug("Emitting unreadable marker", zap.String("filePath", cand.RelPath))
	}
	if err := s.aggregator.Append(ctx, FormatRecord(cand.RelPath, cand.Size, content)); err != nil {
		return err
	}
	s.stats.recordProcessed(content.Unreadable)
	return nil
}

func (s *Scheduler) skip(cand FileCandidate, verdict classify.Verdict, detail string) {
	s.stats.recordSkipped(verdict)
	if !s.debug {
		return
	}
	fields := []zap.Field{
		zap.String("filePath", cand.RelPath),
		zap.Stringer("reason", verdict),
		zap.Int64("sizeBytes", cand.Size),
	}
	if detail != "" {
		fields = append(fields, zap.String("detail", detail))
	}
	s.logger.Debug("Skipping file", fields...)
}
