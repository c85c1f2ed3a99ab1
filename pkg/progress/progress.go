// Package progress reports pipeline progress to the terminal.
package progress

import (
	"io"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
)

// Reporter observes a run. Implementations must be safe for concurrent use
// and must not affect the pipeline.
type Reporter interface {
	Start(total int)
	Describe(label string)
	Advance()
	Finish()
}

// NopReporter discards all events.
type NopReporter struct{}

func (NopReporter) Start(int) {}
func (NopReporter) Describe(string) {}
func (NopReporter) Advance() {}
func (NopReporter) Finish() {}

// New returns a progress bar writing to out when enabled and out is a
// terminal, and a NopReporter otherwise.
func New(out *os.File, enabled bool) Reporter {
	if !enabled || out == nil || !term.IsTerminal(int(out.Fd())) {
		return NopReporter{}
	}
	return NewBar(out)
}

// Bar renders a progress bar with the current file as its description.
type Bar struct {
	out io.Writer
	bar *progressbar.ProgressBar
}

// NewBar returns a Bar writing to out. The bar is created on Start.
func NewBar(out io.Writer) *Bar {
	return &Bar{out: out}
}

func (b *Bar) Start(total int) {
	b.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(b.out),
		progressbar.OptionSetWidth(30),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}

func (b *Bar) Describe(label string) {
	if b.bar != nil {
		b.bar.Describe("Processing: " + label)
	}
}

func (b *Bar) Advance() {
	if b.bar != nil {
		_ = b.bar.Add(1)
	}
}

func (b *Bar) Finish() {
	if b.bar != nil {
		_ = b.bar.Finish()
	}
}
