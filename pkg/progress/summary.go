package progress

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	headerColor  = color.New(color.FgCyan)
	countColor   = color.New(color.FgGreen, color.Bold)
	skippedColor = color.New(color.FgYellow, color.Bold)
	successColor = color.New(color.FgGreen)
)

// PrintHeader announces the repository being converted.
func PrintHeader(w io.Writer, repoName string) {
	headerColor.Fprintf(w, "Processing repository: %s\n", repoName)
}

// PrintSummary writes the final counters.
func PrintSummary(w io.Writer, processed, skipped int64) {
	fmt.Fprint(w, "Processed ")
	countColor.Fprintf(w, "%d", processed)
	fmt.Fprint(w, " files, skipped ")
	skippedColor.Fprintf(w, "%d", skipped)
	fmt.Fprintln(w, " files")
}

// PrintDone reports where the artifact was written.
func PrintDone(w io.Writer, outputPath string) {
	successColor.Fprintf(w, "Repository converted successfully to: %s\n", outputPath)
}
