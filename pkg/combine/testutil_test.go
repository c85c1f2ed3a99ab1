package combine

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeFiles creates files under root from a map of relative path to content.
func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

// splitRecords returns the records of an artifact keyed by relative path.
func splitRecords(t *testing.T, artifact string) map[string]string {
	t.Helper()
	bar := strings.Repeat("=", 80)
	records := map[string]string{}
	rest := artifact
	for rest != "" {
		require.True(t, strings.HasPrefix(rest, bar+"\nFile: "), "malformed record start: %q", rest)
		header := strings.TrimPrefix(rest, bar+"\nFile: ")
		nl := strings.IndexByte(header, '\n')
		rel := header[:nl]

		next := strings.Index(rest[len(bar):], "\n\n"+bar+"\nFile: ")
		var record string
		if next < 0 {
			record, rest = rest, ""
		} else {
			cut := len(bar) + next + 2
			record, rest = rest[:cut], rest[cut:]
		}
		records[rel] = record
	}
	return records
}
