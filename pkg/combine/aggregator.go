package combine

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync/atomic"

	"go.uber.org/zap"
)

const outputBufferSize = 256 * 1024

type appendRequest struct {
	record []byte
	reply  chan error
}

// Aggregator serializes records onto a single output stream. One goroutine
// owns the buffered writer; callers hand it records through Append.
type Aggregator struct {
	w        *bufio.Writer
	requests chan appendRequest
	stop     chan struct{}
	done     chan struct{}
	flushed  atomic.Bool
	records  atomic.Int64
	failed   error // set by the writer goroutine before done is closed
	logger   *zap.Logger
}

// NewAggregator starts the writer goroutine for w.
func NewAggregator(w io.Writer, logger *zap.Logger) *Aggregator {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &Aggregator{
		w:        bufio.NewWriterSize(w, outputBufferSize),
		requests: make(chan appendRequest),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
		logger:   logger.With(zap.String("component", "aggregator")),
	}
	go a.run()
	return a
}

func (a *Aggregator) run() {
	defer close(a.done)

	var failed error
	for {
		select {
		case req := <-a.requests:
			if failed != nil {
				req.reply <- failed
				continue
			}
			if _, err := a.w.Write(req.record); err != nil {
				failed = fmt.Errorf("%w: %w", ErrWriteFailed, err)
				a.logger.Error("Output write failed", zap.Error(err))
				req.reply <- failed
				continue
			}
			a.records.Add(1)
			req.reply <- nil
		case <-a.stop:
			a.failed = failed
			return
		}
	}
}

// Append writes one record in full before any other record is started. It
// returns the write error, if any. Once a write has failed every later call
// returns the same error.
func (a *Aggregator) Append(ctx context.Context, record []byte) error {
	reply := make(chan error, 1)
	select {
	case a.requests <- appendRequest{record: record, reply: reply}:
	case <-a.done:
		return ErrAlreadyFlushed
	case <-ctx.Done():
		return ctx.Err()
	}
	return <-reply
}

// Records returns the number of records written so far.
func (a *Aggregator) Records() int64 { return a.records.Load() }

// Flush stops the writer goroutine and flushes buffered output. It may be
// called once; later calls return ErrAlreadyFlushed. Callers must not Append
// concurrently with Flush.
func (a *Aggregator) Flush() error {
	if !a.flushed.CompareAndSwap(false, true) {
		return ErrAlreadyFlushed
	}
	close(a.stop)
	<-a.done

	if a.failed != nil {
		return a.failed
	}
	if err := a.w.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	a.logger.Debug("Output flushed", zap.Int64("records", a.records.Load()))
	return nil
}
