package combine

import (
	"bytes"
	"fmt"
	"strings"

	"textify/pkg/extract"
)

const delimiterWidth = 80

var delimiter = strings.Repeat("=", delimiterWidth)

var sizeUnits = []string{"B", "KB", "MB", "GB"}

// FormatRecord renders one file's header and payload.
func FormatRecord(relPath string, size int64, content extract.Content) []byte {
	payload := content.Payload()

	var buf bytes.Buffer
	buf.Grow(2*delimiterWidth + len(relPath) + len(payload) + 32)
	buf.WriteString(delimiter)
	buf.WriteByte('\n')
	fmt.Fprintf(&buf, "File: %s\n", relPath)
	fmt.Fprintf(&buf, "Size: %s\n", FormatSize(size))
	buf.WriteString(delimiter)
	buf.WriteString("\n\n")
	buf.WriteString(payload)
	buf.WriteString("\n\n")
	return buf.Bytes()
}

// FormatSize renders size in base-1024 units, e.g. "512 B" or "1.5 KB".
func FormatSize(size int64) string {
	value := float64(size)
	unit := 0
	for value >= 1024 && unit < len(sizeUnits)-1 {
		value /= 1024
		unit++
	}
	if unit == 0 {
		return fmt.Sprintf("%d %s", size, sizeUnits[0])
	}
	return fmt.Sprintf("%.1f %s", value, sizeUnits[unit])
}
