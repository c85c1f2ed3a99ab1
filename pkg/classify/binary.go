package classify

import (
	"bytes"
	"errors"
	"io"
	"os"
)

// SampleSize is the number of leading bytes inspected for binary content.
const SampleSize = 1024

// controlRatio is the fraction of control bytes above which a sample is binary.
const controlRatio = 0.3

// ReadSample returns up to n leading bytes of the file at path.
func ReadSample(path string, n int) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	buffer := make([]byte, n)
	read, err := io.ReadFull(file, buffer)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, err
	}
	return buffer[:read], nil
}

// IsBinarySample reports whether sample looks like binary data: it contains a
// NUL byte, or more than 30% of its bytes are control characters.
func IsBinarySample(sample []byte) bool {
	if len(sample) == 0 {
		return false
	}
	if bytes.IndexByte(sample, 0) >= 0 {
		return true
	}

	control := 0
	for _, b := range sample {
		if isControl(b) {
			control++
		}
	}
	return float64(control)/float64(len(sample)) > controlRatio
}

// isControl treats tab, newline and carriage return as text. Bytes >= 0x80
// are left alone so UTF-8 text is never counted.
func isControl(b byte) bool {
	switch b {
	case '\t', '\n', '\r':
		return false
	}
	return b < 0x20 || b == 0x7f
}
