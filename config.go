package linkprep

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the file form of the Preparer options.
//
//	cost_cutoff: 2.7
//	max_disjuncts: 0
//	rand_seed: 0
//	generation: false
//	max_depth: 256
//	memory_limit_bytes: 0
//	max_parallel: 4
//	log_level: info
type Config struct {
	CostCutoff       float64 `json:"cost_cutoff" yaml:"cost_cutoff"`
	MaxDisjuncts     int     `json:"max_disjuncts" yaml:"max_disjuncts"`
	RandSeed         uint32  `json:"rand_seed" yaml:"rand_seed"`
	Generation       bool    `json:"generation" yaml:"generation"`
	MaxDepth         int     `json:"max_depth" yaml:"max_depth"`
	MemoryLimitBytes int64   `json:"memory_limit_bytes" yaml:"memory_limit_bytes"`
	MaxParallel      int     `json:"max_parallel" yaml:"max_parallel"`

	// LogLevel is one of debug, info, warn, error. Empty disables logging.
	LogLevel string `json:"log_level" yaml:"log_level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		CostCutoff: DefaultCostCutoff,
		MaxDepth:   DefaultMaxDepth,
	}
}

// LoadConfig reads a YAML configuration file. Fields missing from the file
// keep their defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("load config file: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes a YAML configuration and validates it. Unknown fields
// are rejected.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	var errs []error
	if math.IsNaN(c.CostCutoff) {
		errs = append(errs, fmt.Errorf("%w: cost_cutoff is NaN", ErrInvalidOption))
	}
	if c.MaxDisjuncts < 0 {
		errs = append(errs, fmt.Errorf("%w: max_disjuncts must be >= 0, got %d", ErrInvalidOption, c.MaxDisjuncts))
	}
	if c.MaxDepth < 0 {
		errs = append(errs, fmt.Errorf("%w: max_depth must be >= 0, got %d", ErrInvalidOption, c.MaxDepth))
	}
	if c.MemoryLimitBytes < 0 {
		errs = append(errs, fmt.Errorf("%w: memory_limit_bytes must be >= 0, got %d", ErrInvalidOption, c.MemoryLimitBytes))
	}
	if c.MaxParallel < 0 {
		errs = append(errs, fmt.Errorf("%w: max_parallel must be >= 0, got %d", ErrInvalidOption, c.MaxParallel))
	}
	if _, err := c.level(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Options converts the configuration into Preparer options. A zero
// MaxParallel keeps the default.
func (c Config) Options() []Option {
	opts := []Option{
		WithCostCutoff(c.CostCutoff),
		WithMaxDisjuncts(c.MaxDisjuncts),
		WithRandSeed(c.RandSeed),
		WithGeneration(c.Generation),
		WithMaxDepth(c.MaxDepth),
		WithMemoryLimit(c.MemoryLimitBytes),
	}
	if c.MaxParallel > 0 {
		opts = append(opts, WithMaxParallel(c.MaxParallel))
	}
	if level, err := c.level(); err == nil && c.LogLevel != "" {
		opts = append(opts, WithLogLevel(level))
	}
	return opts
}

func (c Config) level() (slog.Level, error) {
	var level slog.Level
	if c.LogLevel == "" {
		return level, nil
	}
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return level, fmt.Errorf("%w: log_level %q", ErrInvalidOption, c.LogLevel)
	}
	return level, nil
}
