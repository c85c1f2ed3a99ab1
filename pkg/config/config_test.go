package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.StringP(KeyOutput, "o", "", "")
	fs.Float64P(KeyThreshold, "t", DefaultThresholdMB, "")
	fs.Bool(KeyIncludeAll, false, "")
	fs.Bool(KeyDebug, false, "")
	fs.IntP(KeyWorkers, "w", 0, "")
	fs.Bool(KeyProfile, false, "")
	fs.String(KeyPerfLog, DefaultPerfLog, "")
	fs.StringSliceP(KeyIgnore, "i", nil, "")
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", newFlags(t))
	require.NoError(t, err)
	assert.Equal(t, DefaultThresholdMB, cfg.ThresholdMB)
	assert.Equal(t, DefaultPerfLog, cfg.PerfLog)
	assert.Equal(t, "", cfg.Output)
	assert.False(t, cfg.IncludeAll)
	assert.Empty(t, cfg.Ignore)
}

func TestLoadFlags(t *testing.T) {
	cfg, err := Load("", newFlags(t, "-o", "snap.txt", "-t", "2.5", "--include-all", "-w", "3", "-i", "*.log", "-i", "tmp/"))
	require.NoError(t, err)
	assert.Equal(t, "snap.txt", cfg.Output)
	assert.Equal(t, 2.5, cfg.ThresholdMB)
	assert.True(t, cfg.IncludeAll)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, []string{"*.log", "tmp/"}, cfg.Ignore)
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("TEXTIFY_THRESHOLD", "0.5")
	t.Setenv("TEXTIFY_INCLUDE_ALL", "true")

	cfg, err := Load("", newFlags(t))
	require.NoError(t, err)
	assert.Equal(t, 0.5, cfg.ThresholdMB)
	assert.True(t, cfg.IncludeAll)

	cfg, err = Load("", newFlags(t, "-t", "1"))
	require.NoError(t, err)
	assert.Equal(t, 1.0, cfg.ThresholdMB)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "textify.yaml")
	require.NoError(t, os.WriteFile(path, []byte("threshold: 4\nworkers: 2\ntree: tree.txt\n"), 0o644))

	cfg, err := Load(path, newFlags(t, "-w", "6"))
	require.NoError(t, err)
	assert.Equal(t, 4.0, cfg.ThresholdMB)
	assert.Equal(t, 6, cfg.Workers)
	assert.Equal(t, "tree.txt", cfg.Tree)
	assert.Equal(t, path, cfg.ConfigFile)
}

func TestLoadMissingConfigFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{"defaults", Config{ThresholdMB: 0.1}, true},
		{"zero threshold", Config{ThresholdMB: 0}, true},
		{"negative threshold", Config{ThresholdMB: -1}, false},
		{"negative workers", Config{ThresholdMB: 1, Workers: -2}, false},
		{"profile without log", Config{ThresholdMB: 1, Profile: true}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalid)
			}
		})
	}
}
