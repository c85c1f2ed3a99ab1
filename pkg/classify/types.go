// Package classify decides, for every discovered file, whether its contents
// belong in the aggregated output.
package classify

// Candidate is a regular file found under the root during discovery.
type Candidate struct {
	AbsPath string // Absolute path used for I/O.
	RelPath string // Path relative to the root, forward-slash separated.
	Size    int64  // Size in bytes as observed at discovery time.
}

// Verdict is the outcome of classifying a candidate.
type Verdict int

const (
	Include Verdict = iota
	ExcludeByPath
	ExcludeBinary
	ExcludeOversize
)

func (v Verdict) String() string {
	switch v {
	case Include:
		return "include"
	case ExcludeByPath:
		return "path"
	case ExcludeBinary:
		return "binary"
	case ExcludeOversize:
		return "oversize"
	default:
		return "unknown"
	}
}

// PathMatcher reports whether a relative path is ignored by user-supplied
// patterns. isDir distinguishes directory-only patterns.
type PathMatcher interface {
	Match(relPath string, isDir bool) bool
}
