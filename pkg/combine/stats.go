package combine

import (
	"sync/atomic"

	"textify/pkg/classify"
)

// Stats counts per-candidate outcomes. It is safe for concurrent use.
type Stats struct {
	processed  atomic.Int64
	skipped    atomic.Int64
	unreadable atomic.Int64
	byPath     atomic.Int64
	binary     atomic.Int64
	oversize   atomic.Int64
}

func (s *Stats) recordProcessed(unreadable bool) {
	s.processed.Add(1)
	if unreadable {
		s.unreadable.Add(1)
	}
}

func (s *Stats) recordSkipped(v classify.Verdict) {
	s.skipped.Add(1)
	switch v {
	case classify.ExcludeByPath:
		s.byPath.Add(1)
	case classify.ExcludeBinary:
		s.binary.Add(1)
	case classify.ExcludeOversize:
		s.oversize.Add(1)
	}
}

// Processed returns the number of records written so far.
func (s *Stats) Processed() int64 { return s.processed.Load() }

// Skipped returns the number of candidates skipped so far.
func (s *Stats) Skipped() int64 { return s.skipped.Load() }

// Snapshot copies the counters into a Summary for a run of total candidates.
func (s *Stats) Snapshot(total int) Summary {
	return Summary{
		Total:           total,
		Processed:       s.processed.Load(),
		Skipped:         s.skipped.Load(),
		Unreadable:      s.unreadable.Load(),
		SkippedByPath:   s.byPath.Load(),
		SkippedBinary:   s.binary.Load(),
		SkippedOversize: s.oversize.Load(),
	}
}
