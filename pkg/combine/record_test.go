package combine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"textify/pkg/extract"
)

func TestFormatSize(t *testing.T) {
	tests := []struct {
		size int64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1_048_576, "1.0 MB"},
		{5 * 1 << 30, "5.0 GB"},
		{3 << 40, "3072.0 GB"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatSize(tt.size))
		})
	}
}

func TestFormatRecord(t *testing.T) {
	bar := strings.Repeat("=", 80)

	got := string(FormatRecord("src/main.go", 12, extract.Content{Text: "package main"}))
	want := bar + "\nFile: src/main.go\nSize: 12 B\n" + bar + "\n\npackage main\n\n"
	assert.Equal(t, want, got)

	got = string(FormatRecord("blob.txt", 2048, extract.Content{Unreadable: true}))
	assert.Contains(t, got, "Size: 2.0 KB\n")
	assert.True(t, strings.HasSuffix(got, "\n\n"+extract.UnreadableMarker+"\n\n"))
}
