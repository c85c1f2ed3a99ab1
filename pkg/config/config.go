// Package config merges flags, environment variables and an optional config
// file into the settings for a run.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable, e.g. TEXTIFY_THRESHOLD.
const EnvPrefix = "TEXTIFY"

// Keys shared by flags, environment variables and config files.
const (
	KeyOutput       = "output"
	KeyThreshold    = "threshold"
	KeyIncludeAll   = "include-all"
	KeyDebug        = "debug"
	KeyWorkers      = "workers"
	KeyProfile      = "profile"
	KeyPerfLog      = "perf-log"
	KeyIgnore       = "ignore"
	KeyGlobalIgnore = "global-ignore"
	KeyTree         = "tree"
	KeyNoProgress   = "no-progress"
)

// Defaults.
const (
	DefaultThresholdMB = 0.1
	DefaultPerfLog     = "perf.log"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config is the merged configuration for one run.
type Config struct {
	Output       string
	Tree         string
	ThresholdMB  float64
	IncludeAll   bool
	Debug        bool
	Workers      int
	Profile      bool
	PerfLog      string
	Ignore       []string
	GlobalIgnore string
	NoProgress   bool
	ConfigFile   string // File actually read, empty when none.
}

// Load resolves configuration with the precedence flags > environment >
// config file > defaults. cfgFile may be empty. flags may be nil.
func Load(cfgFile string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("error reading config file '%s': %w", cfgFile, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	cfg := Config{
		Output:       v.GetString(KeyOutput),
		Tree:         v.GetString(KeyTree),
		ThresholdMB:  v.GetFloat64(KeyThreshold),
		IncludeAll:   v.GetBool(KeyIncludeAll),
		Debug:        v.GetBool(KeyDebug),
		Workers:      v.GetInt(KeyWorkers),
		Profile:      v.GetBool(KeyProfile),
		PerfLog:      v.GetString(KeyPerfLog),
		Ignore:       v.GetStringSlice(KeyIgnore),
		GlobalIgnore: v.GetString(KeyGlobalIgnore),
		NoProgress:   v.GetBool(KeyNoProgress),
		ConfigFile:   v.ConfigFileUsed(),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that cannot be enforced by flag types.
func (c Config) Validate() error {
	if math.IsNaN(c.ThresholdMB) || math.IsInf(c.ThresholdMB, 0) || c.ThresholdMB < 0 {
		return fmt.Errorf("%w: threshold must be a non-negative number of megabytes, got %v", ErrInvalid, c.ThresholdMB)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalid, c.Workers)
	}
	if c.Profile && c.PerfLog == "" {
		return fmt.Errorf("%w: perf-log must be set when profiling", ErrInvalid)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyThreshold, DefaultThresholdMB)
	v.SetDefault(KeyPerfLog, DefaultPerfLog)
	v.SetDefault(KeyWorkers, 0)
	v.SetDefault(KeyIgnore, []string{})
}
