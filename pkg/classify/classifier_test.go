package classify

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubMatcher map[string]bool

func (m stubMatcher) Match(relPath string, isDir bool) bool { return m[relPath] }

func TestThresholdBytes(t *testing.T) {
	assert.Equal(t, int64(104857), ThresholdBytes(0.1))
	assert.Equal(t, int64(1048576), ThresholdBytes(1))
	assert.Equal(t, int64(0), ThresholdBytes(0))
}

func TestClassify(t *testing.T) {
	c := New(Options{ThresholdMB: 0.1})
	limit := ThresholdBytes(0.1)
	require.Equal(t, limit, c.Threshold())

	tests := []struct {
		name   string
		cand   Candidate
		sample []byte
		want   Verdict
	}{
		{"plain text", Candidate{RelPath: "README.md", Size: 12}, []byte("# Hello\n"), Include},
		{"empty file", Candidate{RelPath: "empty.txt", Size: 0}, nil, ExcludeByPath},
		{"excluded dir segment", Candidate{RelPath: "node_modules/x/index.js", Size: 10}, []byte("x"), ExcludeByPath},
		{"excluded dir case-insensitive", Candidate{RelPath: "src/Node_Modules/a.js", Size: 10}, nil, ExcludeByPath},
		{"excluded file name", Candidate{RelPath: "web/package-lock.json", Size: 10}, nil, ExcludeByPath},
		{"binary extension", Candidate{RelPath: "img/photo.PNG", Size: 10}, nil, ExcludeBinary},
		{"nul in sample", Candidate{RelPath: "data.txt", Size: 10}, []byte("ab\x00cd"), ExcludeBinary},
		{"at threshold", Candidate{RelPath: "big.log", Size: limit}, []byte("text"), Include},
		{"over threshold", Candidate{RelPath: "big.log", Size: limit + 1}, []byte("text"), ExcludeOversize},
		{"dir name as file segment only", Candidate{RelPath: "builder.go", Size: 5}, []byte("package"), Include},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.cand, tt.sample))
		})
	}
}

func TestClassifyIncludeAll(t *testing.T) {
	c := New(Options{ThresholdMB: 0.1, IncludeAll: true})

	assert.Equal(t, Include, c.Classify(Candidate{RelPath: "photo.png", Size: 10}, nil))
	assert.Equal(t, Include, c.Classify(Candidate{RelPath: "blob", Size: 10}, []byte{0, 1, 2}))
	assert.Equal(t, Include, c.Classify(Candidate{RelPath: "huge.log", Size: 1 << 30}, nil))
	assert.Equal(t, ExcludeByPath, c.Classify(Candidate{RelPath: ".git/config", Size: 10}, nil))
	assert.Equal(t, ExcludeByPath, c.Classify(Candidate{RelPath: "zero", Size: 0}, nil))
}

func TestClassifyDeterministic(t *testing.T) {
	c := New(Options{ThresholdMB: 1})
	cand := Candidate{RelPath: "src/main.go", Size: 100}
	sample := []byte("package main\n")

	first := c.Classify(cand, sample)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, c.Classify(cand, sample))
	}
}

func TestClassifyMatcher(t *testing.T) {
	c := New(Options{ThresholdMB: 1, Matcher: stubMatcher{"secret.env": true, "gen": true}})

	assert.Equal(t, ExcludeByPath, c.Classify(Candidate{RelPath: "secret.env", Size: 3}, nil))
	assert.True(t, c.ExcludedDir("gen"))
	assert.False(t, c.ExcludedDir("src"))
	assert.True(t, c.ExcludedDir("a/.git"))
	assert.False(t, c.ExcludedDir("."))
}

func TestNeedsSample(t *testing.T) {
	c := New(Options{ThresholdMB: 1})
	assert.True(t, c.NeedsSample(Candidate{RelPath: "a.go", Size: 5}))
	assert.False(t, c.NeedsSample(Candidate{RelPath: "a.png", Size: 5}))
	assert.False(t, c.NeedsSample(Candidate{RelPath: "a.go", Size: 0}))
	assert.False(t, New(Options{IncludeAll: true}).NeedsSample(Candidate{RelPath: "a.go", Size: 5}))
}

func TestIsBinarySample(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.False(t, IsBinarySample(nil))
	})
	t.Run("nul at end", func(t *testing.T) {
		sample := append(bytes.Repeat([]byte("a"), SampleSize-1), 0)
		assert.True(t, IsBinarySample(sample))
	})
	t.Run("thirty percent control", func(t *testing.T) {
		sample := append(bytes.Repeat([]byte{0x01}, 30), bytes.Repeat([]byte("a"), 70)...)
		assert.False(t, IsBinarySample(sample))
	})
	t.Run("over thirty percent control", func(t *testing.T) {
		sample := append(bytes.Repeat([]byte{0x01}, 31), bytes.Repeat([]byte("a"), 69)...)
		assert.True(t, IsBinarySample(sample))
	})
	t.Run("whitespace is text", func(t *testing.T) {
		assert.False(t, IsBinarySample([]byte("\t\t\n\r\n\t")))
	})
	t.Run("utf8 is text", func(t *testing.T) {
		assert.False(t, IsBinarySample([]byte(strings.Repeat("héllo wörld ", 20))))
	})
}

func TestReadSample(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte("x"), 2000), 0o644))

	sample, err := ReadSample(path, SampleSize)
	require.NoError(t, err)
	assert.Len(t, sample, SampleSize)

	small := filepath.Join(dir, "small.txt")
	require.NoError(t, os.WriteFile(small, []byte("hi"), 0o644))
	sample, err = ReadSample(small, SampleSize)
	require.NoError(t, err)
	assert.Equal(t, []byte("hi"), sample)

	_, err = ReadSample(filepath.Join(dir, "missing"), SampleSize)
	assert.Error(t, err)
}

func TestRulesExtension(t *testing.T) {
	r := NewRules(nil, nil, []string{".PNG", "zip"})
	assert.True(t, r.IsBinaryExtension("x.png"))
	assert.True(t, r.IsBinaryExtension("archive.ZIP"))
	assert.False(t, r.IsBinaryExtension("noext"))
	assert.False(t, r.IsBinaryExtension("trailing."))
}
