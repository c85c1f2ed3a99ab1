package classify

import (
	"path"
	"strings"
)

const bytesPerMB = 1024 * 1024

// ThresholdBytes converts a threshold in megabytes to whole bytes.
func ThresholdBytes(mb float64) int64 {
	return int64(mb * bytesPerMB)
}

// Options configures a Classifier.
type Options struct {
	ThresholdMB float64     // Files strictly larger than this are oversize.
	IncludeAll  bool        // Disables the binary and size checks.
	Matcher     PathMatcher // Optional user ignore patterns.
	Rules       *Rules      // Defaults to DefaultRules() when nil.
}

// Classifier applies the exclusion rules. It holds no mutable state and is
// safe for concurrent use.
type Classifier struct {
	rules      Rules
	matcher    PathMatcher
	threshold  int64
	includeAll bool
}

// New returns a Classifier for opts.
func New(opts Options) *Classifier {
	rules := DefaultRules()
	if opts.Rules != nil {
		rules = *opts.Rules
	}
	return &Classifier{
		rules:      rules,
		matcher:    opts.Matcher,
		threshold:  ThresholdBytes(opts.ThresholdMB),
		includeAll: opts.IncludeAll,
	}
}

// Threshold returns the size limit in bytes.
func (c *Classifier) Threshold() int64 { return c.threshold }

// ExcludedDir reports whether the directory at relPath should not be
// descended into.
func (c *Classifier) ExcludedDir(relPath string) bool {
	if relPath == "" || relPath == "." {
		return false
	}
	for _, seg := range strings.Split(relPath, "/") {
		if c.rules.IsExcludedDir(seg) {
			return true
		}
	}
	return c.matcher != nil && c.matcher.Match(relPath, true)
}

// ExcludedByPath reports whether the file at relPath is excluded by name
// alone. Discovery uses it as a pre-filter and Classify applies it again.
func (c *Classifier) ExcludedByPath(relPath string) bool {
	dir, name := path.Split(relPath)
	if dir != "" {
		for _, seg := range strings.Split(strings.TrimSuffix(dir, "/"), "/") {
			if c.rules.IsExcludedDir(seg) {
				return true
			}
		}
	}
	if c.rules.IsExcludedFile(name) {
		return true
	}
	return c.matcher != nil && c.matcher.Match(relPath, false)
}

// NeedsSample reports whether Classify will look at a content sample for
// cand. Callers can skip the read when it returns false.
func (c *Classifier) NeedsSample(cand Candidate) bool {
	if c.includeAll || cand.Size == 0 {
		return false
	}
	if c.ExcludedByPath(cand.RelPath) {
		return false
	}
	return !c.rules.IsBinaryExtension(path.Base(cand.RelPath))
}

// Classify returns the verdict for cand. sample holds the leading bytes of the
// file, or nil when it was not read or could not be read.
func (c *Classifier) Classify(cand Candidate, sample []byte) Verdict {
	if cand.Size == 0 || c.ExcludedByPath(cand.RelPath) {
		return ExcludeByPath
	}
	if c.includeAll {
		return Include
	}
	if c.rules.IsBinaryExtension(path.Base(cand.RelPath)) || IsBinarySample(sample) {
		return ExcludeBinary
	}
	if cand.Size > c.threshold {
		return ExcludeOversize
	}
	return Include
}
