package linkprep

import (
	"fmt"
	"log/slog"
	"math"
	"runtime"
)

const (
	// DefaultCostCutoff is the highest clause cost kept by default.
	DefaultCostCutoff = 2.7

	// DefaultMaxDepth is the default expression nesting limit.
	DefaultMaxDepth = 256
)

type options struct {
	costCutoff       float64
	maxDisjuncts     int
	randSeed         uint32
	generation       bool
	maxDepth         int
	memoryLimit      int64
	maxParallel      int
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures a Preparer.
type Option func(*options)

// WithCostCutoff drops clauses whose cost exceeds cutoff.
func WithCostCutoff(cutoff float64) Option {
	return func(o *options) {
		o.costCutoff = cutoff
	}
}

// WithMaxDisjuncts randomly thins the disjuncts of an expression when there
// are more than n. Zero disables truncation.
func WithMaxDisjuncts(n int) Option {
	return func(o *options) {
		o.maxDisjuncts = n
	}
}

// WithRandSeed sets the initial truncation generator state of every sentence.
//
// With a zero seed, each expression draws from the same zero-seeded sequence
// rather than continuing where the previous one stopped.
func WithRandSeed(seed uint32) Option {
	return func(o *options) {
		o.randSeed = seed
	}
}

// WithGeneration enables generation mode: word strings of the form " <hex>"
// produce category disjuncts.
func WithGeneration(enabled bool) Option {
	return func(o *options) {
		o.generation = enabled
	}
}

// WithMaxDepth rejects expressions nested deeper than depth.
// Zero disables the check.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		o.maxDepth = depth
	}
}

// WithMemoryLimit caps the pool memory held by all live prepared sentences of
// the Preparer. Zero means unlimited.
func WithMemoryLimit(bytes int64) Option {
	return func(o *options) {
		o.memoryLimit = bytes
	}
}

// WithMaxParallel bounds the number of sentences PrepareBatch works on at
// once. Defaults to GOMAXPROCS.
func WithMaxParallel(n int) Option {
	return func(o *options) {
		o.maxParallel = n
	}
}

// WithMetricsCollector configures a metrics collector for monitoring.
// Pass nil to disable metrics collection.
//
// Example with basic metrics:
//
//	metrics := &linkprep.BasicMetricsCollector{}
//	p, _ := linkprep.New(linkprep.WithMetricsCollector(metrics))
//	// ... prepare sentences ...
//	stats := metrics.GetStats()
//	fmt.Printf("Sentences: %d, Avg latency: %dns\n", stats.PrepareCount, stats.PrepareAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) (options, error) {
	o := options{
		costCutoff:       DefaultCostCutoff,
		maxDepth:         DefaultMaxDepth,
		maxParallel:      runtime.GOMAXPROCS(0),
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}

	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}

	switch {
	case o.maxDisjuncts < 0:
		return o, fmt.Errorf("%w: max disjuncts %d", ErrInvalidOption, o.maxDisjuncts)
	case o.maxDepth < 0:
		return o, fmt.Errorf("%w: max depth %d", ErrInvalidOption, o.maxDepth)
	case o.memoryLimit < 0:
		return o, fmt.Errorf("%w: memory limit %d", ErrInvalidOption, o.memoryLimit)
	case o.maxParallel <= 0:
		return o, fmt.Errorf("%w: max parallel %d", ErrInvalidOption, o.maxParallel)
	case math.IsNaN(o.costCutoff):
		return o, fmt.Errorf("%w: cost cutoff is NaN", ErrInvalidOption)
	}
	return o, nil
}
