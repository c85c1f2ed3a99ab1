// Package perf times pipeline phases and appends the results to a side log.
package perf

import (
	"fmt"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultLogFile is the side log used when none is configured.
const DefaultLogFile = "perf.log"

// Entry is one completed measurement.
type Entry struct {
	Label   string
	Elapsed time.Duration
}

// Recorder collects phase timings. A nil or disabled Recorder ignores all
// measurements.
type Recorder struct {
	path    string
	enabled bool
	logger  *zap.Logger

	mu      sync.Mutex
	entries []Entry
}

// NewRecorder returns a Recorder appending to path when enabled.
func NewRecorder(path string, enabled bool, logger *zap.Logger) *Recorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	if path == "" {
		path = DefaultLogFile
	}
	return &Recorder{
		path:    path,
		enabled: enabled,
		logger:  logger.With(zap.String("component", "perf")),
	}
}

// Timer measures one phase.
type Timer struct {
	r     *Recorder
	label string
	start time.Time
}

// Start begins timing label.
func (r *Recorder) Start(label string) *Timer {
	return &Timer{r: r, label: label, start: time.Now()}
}

// Stop records the elapsed time and returns it. Failures to write the side
// log are logged and otherwise ignored.
func (t *Timer) Stop() time.Duration {
	elapsed := time.Since(t.start)
	if t.r == nil || !t.r.enabled {
		return elapsed
	}
	t.r.record(t.label, elapsed)
	return elapsed
}

// Entries returns the measurements recorded so far.
func (r *Recorder) Entries() []Entry {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Entry(nil), r.entries...)
}

func (r *Recorder) record(label string, elapsed time.Duration) {
	line := fmt.Sprintf("%s: %dms\n", label, elapsed.Milliseconds())

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{Label: label, Elapsed: elapsed})
	r.logger.Info("Phase completed", zap.String("phase", label), zap.Int64("ms", elapsed.Milliseconds()))

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		r.logger.Warn("Failed to open perf log", zap.String("path", r.path), zap.Error(err))
		return
	}
	defer f.Close()
	if _, err := f.WriteString(line); err != nil {
		r.logger.Warn("Failed to write perf log", zap.String("path", r.path), zap.Error(err))
	}
}
