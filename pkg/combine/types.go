package combine

import (
	"time"

	"textify/pkg/classify"
)

// FileCandidate is a regular file selected by discovery.
type FileCandidate = classify.Candidate

// Summary reports the outcome of a run.
type Summary struct {
	Total           int           // Candidates discovered.
	Processed       int64         // Records written.
	Skipped         int64         // Candidates excluded by the classifier.
	Unreadable      int64         // Records whose payload is the unreadable marker.
	SkippedByPath   int64         // Skips by path rule, empty file or vanished file.
	SkippedBinary   int64         // Skips by extension or content sample.
	SkippedOversize int64         // Skips by size threshold.
	OutputPath      string        // Absolute path of the artifact.
	RepoName        string        // Name used to derive the default output path.
	Elapsed         time.Duration // Wall time of the whole run.
}
