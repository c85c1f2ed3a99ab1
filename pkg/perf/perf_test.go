package perf

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRecorderAppendsLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "perf.log")
	r := NewRecorder(path, true, nil)

	r.Start("File discovery").Stop()
	r.Start("Total conversion").Stop()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^File discovery: \d+ms\nTotal conversion: \d+ms\n$`), string(data))

	entries := r.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "File discovery", entries[0].Label)
}

func TestRecorderDisabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "perf.log")
	r := NewRecorder(path, false, nil)
	r.Start("x").Stop()

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
	assert.Empty(t, r.Entries())
}

func TestNilRecorder(t *testing.T) {
	var r *Recorder
	assert.NotPanics(t, func() { r.Start("x").Stop() })
	assert.Nil(t, r.Entries())
}

func TestRecorderWriteFailureIsWarning(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	path := filepath.Join(t.TempDir(), "missing-dir", "perf.log")
	r := NewRecorder(path, true, zap.New(core))

	r.Start("File flush").Stop()

	assert.Equal(t, 1, logs.FilterMessage("Failed to open perf log").Len())
	assert.Len(t, r.Entries(), 1)
}
