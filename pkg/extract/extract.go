// Package extract reads file contents as text.
package extract

import (
	"os"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/text/encoding/unicode"
)

// Cutover is the size at which reads switch from a buffered read to a
// memory map.
const Cutover = 1 << 20

// UnreadableMarker replaces the payload of a file that could not be read.
const UnreadableMarker = "[Binary file or read error]"

// Content is the text extracted from a file.
type Content struct {
	Text       string
	Unreadable bool
}

// Payload returns the text to emit for c.
func (c Content) Payload() string {
	if c.Unreadable {
		return UnreadableMarker
	}
	return c.Text
}

// Extractor turns files into Content. It never returns an error: failures are
// reported through Content.Unreadable.
type Extractor struct {
	logger *zap.Logger
}

// New returns an Extractor that logs read failures at debug level.
func New(logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{logger: logger.With(zap.String("component", "extractor"))}
}

// Extract reads the file at path. size is the size observed by the caller and
// selects the read strategy.
func (e *Extractor) Extract(path string, size int64) Content {
	var (
		data    []byte
		release func()
		err     error
	)
	if size >= Cutover {
		data, release, err = mapFile(path)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		e.logger.Debug("Failed to read file", zap.String("path", path), zap.Error(err))
		return Content{Unreadable: true}
	}
	if release != nil {
		defer release()
	}

	text, err := decode(data)
	if err != nil {
		e.logger.Debug("Failed to decode file", zap.String("path", path), zap.Error(err))
		return Content{Unreadable: true}
	}
	return Content{Text: text}
}

// decode copies data into a string, replacing invalid UTF-8 sequences with
// U+FFFD.
func decode(data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}
	out, err := unicode.UTF8.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
