package combine

import "errors"

var (
	// ErrConfigValidation reports options rejected before any output is created.
	ErrConfigValidation = errors.New("invalid configuration")
	// ErrCreateOutput reports that the output file could not be created.
	ErrCreateOutput = errors.New("cannot create output file")
	// ErrStatFailed reports a metadata read failure other than a vanished file.
	ErrStatFailed = errors.New("cannot stat file")
	// ErrWriteFailed reports a failed append or flush of the output stream.
	ErrWriteFailed = errors.New("write to output failed")
	// ErrAlreadyFlushed is returned by Flush and Append once the aggregator has been flushed.
	ErrAlreadyFlushed = errors.New("aggregator already flushed")
)
