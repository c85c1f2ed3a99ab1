// File: pkg/combine/config.go
package combine

import (
	"textify/pkg/perf"
	"textify/pkg/progress"
)

// Options holds the settings for a single snapshot run.
type Options struct {
	Root             string            // Directory to snapshot.
	Output           string            // Artifact path; derived from the repository name when empty.
	Tree             string            // Optional path for a directory tree of the candidates.
	ThresholdMB      float64           // Files larger than this many MB are skipped.
	IncludeAll       bool              // Disables binary and size filtering.
	Debug            bool              // Logs every skip decision.
	Workers          int               // Worker bound; runtime.NumCPU() when <= 0.
	IgnorePatterns   []string          // Extra gitignore-style patterns.
	GlobalIgnoreFile string            // Optional global ignore file.
	Reporter         progress.Reporter // Progress sink; no-op when nil.
	Recorder         *perf.Recorder    // Phase timer; disabled when nil.
}
