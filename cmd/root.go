package cmd

import (
	"github.com/spf13/cobra"

	"textify/pkg/config"
)

// RootCmd is the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "textify [path]",
	Short: "textify snapshots a directory tree into a single text file",
	Long: `textify walks a directory, skips binary, oversized and excluded files, and
writes the contents of every remaining file into one text artifact, each under
a header with its relative path and size.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runSnapshot,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	flags := RootCmd.Flags()
	flags.StringP(config.KeyOutput, "o", "", "output file (default <repo-name>.textify.txt)")
	flags.Float64P(config.KeyThreshold, "t", config.DefaultThresholdMB, "skip files larger than this many megabytes")
	flags.Bool(config.KeyIncludeAll, false, "include binary and oversized files")
	flags.Bool(config.KeyDebug, false, "log every skipped file")
	flags.IntP(config.KeyWorkers, "w", 0, "number of concurrent workers (default number of CPUs)")
	flags.Bool(config.KeyProfile, false, "record phase timings to the perf log")
	flags.String(config.KeyPerfLog, config.DefaultPerfLog, "perf log path used with --profile")
	flags.StringSliceP(config.KeyIgnore, "i", nil, "extra gitignore-style pattern (repeatable)")
	flags.String(config.KeyGlobalIgnore, "", "global ignore file applied before .textifyignore")
	flags.String(config.KeyTree, "", "also write a directory tree of the included candidates to this file")
	flags.Bool(config.KeyNoProgress, false, "disable the progress bar")
	flags.String("config", "", "config file (YAML, TOML or JSON)")
}
