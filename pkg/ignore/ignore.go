// Package ignore implements gitignore-style path matching.
package ignore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// FileName is the per-root ignore file.
const FileName = ".textifyignore"

// Pattern is a single compiled ignore rule.
type Pattern struct {
	re      *regexp.Regexp
	Negate  bool   // Pattern started with '!'.
	DirOnly bool   // Pattern ended with '/'.
	Line    string // Original text.
	Source  string // File the pattern came from, or "flag".
	LineNo  int    // 1-based line in Source.
}

// Matcher holds an ordered list of patterns. The last matching pattern wins.
// A Matcher must not be modified once matching has begun.
type Matcher struct {
	patterns []*Pattern
	logger   *zap.Logger
}

// NewMatcher returns an empty Matcher.
func NewMatcher(logger *zap.Logger) *Matcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Matcher{logger: logger.With(zap.String("component", "ignore"))}
}

// Load builds a Matcher from an optional global ignore file followed by the
// local one. Missing files are not an error.
func Load(localPath, globalPath string, logger *zap.Logger) (*Matcher, error) {
	m := NewMatcher(logger)
	for _, p := range []string{globalPath, localPath} {
		if p == "" {
			continue
		}
		if err := m.LoadFile(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return m, nil
}

// Len returns the number of compiled patterns.
func (m *Matcher) Len() int { return len(m.patterns) }

// LoadFile reads patterns from fpath, one per line.
func (m *Matcher) LoadFile(fpath string) error {
	content, err := os.ReadFile(fpath)
	if err != nil {
		return fmt.Errorf("read ignore file %s: %w", fpath, err)
	}
	lines := strings.Split(strings.ReplaceAll(string(content), "\r\n", "\n"), "\n")
	added := m.AddPatterns(fpath, lines...)
	m.logger.Debug("Loaded ignore file", zap.String("filePath", fpath), zap.Int("patterns", added))
	return nil
}

// AddPatterns compiles lines and appends them. Blank lines, comments and
// patterns that fail to compile are skipped. It returns the number added.
func (m *Matcher) AddPatterns(source string, lines ...string) int {
	added := 0
	for i, line := range lines {
		p, err := parsePattern(line)
		if err != nil {
			m.logger.Warn("Skipping invalid ignore pattern",
				zap.String("source", source),
				zap.Int("line", i+1),
				zap.String("pattern", line),
				zap.Error(err))
			continue
		}
		if p == nil {
			continue
		}
		p.Source = source
		p.LineNo = i + 1
		m.patterns = append(m.patterns, p)
		added++
	}
	return added
}

// Match reports whether relPath is ignored. A path is also ignored when any
// of its parent directories is.
func (m *Matcher) Match(relPath string, isDir bool) bool {
	if len(m.patterns) == 0 {
		return false
	}
	relPath = strings.Trim(filepath.ToSlash(relPath), "/")
	if relPath == "" || relPath == "." {
		return false
	}

	for i := 0; i < len(relPath); i++ {
		if relPath[i] == '/' {
			if p := m.matchOne(relPath[:i], true); p != nil {
				m.logMatch(relPath, p)
				return true
			}
		}
	}
	if p := m.matchOne(relPath, isDir); p != nil {
		m.logMatch(relPath, p)
		return true
	}
	return false
}

// matchOne returns the last pattern matching relPath when that pattern
// ignores it, and nil otherwise.
func (m *Matcher) matchOne(relPath string, isDir bool) *Pattern {
	var last *Pattern
	for _, p := range m.patterns {
		if p.DirOnly && !isDir {
			continue
		}
		if p.re.MatchString(relPath) {
			last = p
		}
	}
	if last == nil || last.Negate {
		return nil
	}
	return last
}

func (m *Matcher) logMatch(relPath string, p *Pattern) {
	m.logger.Debug("Path matches ignore pattern",
		zap.String("path", relPath),
		zap.String("pattern", p.Line),
		zap.String("source", p.Source),
		zap.Int("line", p.LineNo))
}

// parsePattern returns nil, nil for lines that carry no pattern.
func parsePattern(line string) (*Pattern, error) {
	trimmed := strings.TrimRight(line, " \t\r")
	trimmed = strings.TrimLeft(trimmed, " \t")
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil, nil
	}

	p := &Pattern{Line: line}
	if strings.HasPrefix(trimmed, "!") {
		p.Negate = true
		trimmed = trimmed[1:]
	} else if strings.HasPrefix(trimmed, `\#`) || strings.HasPrefix(trimmed, `\!`) {
		trimmed = trimmed[1:]
	}
	if strings.HasSuffix(trimmed, "/") {
		p.DirOnly = true
		trimmed = strings.TrimRight(trimmed, "/")
	}
	if trimmed == "" {
		return nil, nil
	}

	rooted := strings.Contains(trimmed, "/")
	trimmed = strings.TrimPrefix(trimmed, "/")

	expr := globToRegexp(trimmed)
	if rooted {
		expr = "^" + expr + "$"
	} else {
		expr = "^(?:.*/)?" + expr + "$"
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}
	p.re = re
	return p, nil
}

// globToRegexp translates gitignore wildcards: '*' and '?' stop at '/',
// '**' crosses directories, and bracket classes are passed through.
func globToRegexp(glob string) string {
	var b strings.Builder
	for i := 0; i < len(glob); i++ {
		c := glob[i]
		switch c {
		case '*':
			if i+1 < len(glob) && glob[i+1] == '*' {
				atSegmentStart := i == 0 || glob[i-1] == '/'
				i++
				if atSegmentStart && i+1 < len(glob) && glob[i+1] == '/' {
					i++
					b.WriteString("(?:.*/)?")
				} else {
					b.WriteString(".*")
				}
				continue
			}
			b.WriteString("[^/]*")
		case '?':
			b.WriteString("[^/]")
		case '[':
			end := strings.IndexByte(glob[i+1:], ']')
			if end < 0 {
				b.WriteString(`\[`)
				continue
			}
			class := glob[i+1 : i+1+end]
			if strings.HasPrefix(class, "!") {
				class = "^" + class[1:]
			}
			b.WriteString("[" + strings.ReplaceAll(class, `\`, `\\`) + "]")
			i += end + 1
		case '\\':
			if i+1 < len(glob) {
				i++
				b.WriteString(regexp.QuoteMeta(glob[i : i+1]))
			}
		default:
			b.WriteString(regexp.QuoteMeta(glob[i : i+1]))
		}
	}
	return b.String()
}
