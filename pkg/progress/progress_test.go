package progress

import (
	"bytes"
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestNewDisabled(t *testing.T) {
	assert.IsType(t, NopReporter{}, New(os.Stderr, false))
	assert.IsType(t, NopReporter{}, New(nil, true))
}

func TestNewNonTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	assert.NoError(t, err)
	defer f.Close()
	assert.IsType(t, NopReporter{}, New(f, true))
}

func TestBarWritesProgress(t *testing.T) {
	var buf bytes.Buffer
	b := NewBar(&buf)

	b.Describe("before start")
	b.Advance()

	b.Start(2)
	b.Describe("a.go")
	b.Advance()
	b.Advance()
	b.Finish()

	assert.NotEmpty(t, buf.String())
}

func TestPrintSummary(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	var buf bytes.Buffer
	PrintHeader(&buf, "demo")
	PrintSummary(&buf, 3, 2)
	PrintDone(&buf, "/tmp/demo.textify.txt")

	assert.Equal(t,
		"Processing repository: demo\n"+
			"Processed 3 files, skipped 2 files\n"+
			"Repository converted successfully to: /tmp/demo.textify.txt\n",
		buf.String())
}
