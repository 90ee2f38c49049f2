package mathtext

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/riverfjs/mathtext-go/internal/warn"
)

// Options holds options for building an Engine.
type Options struct {
	Strategy     string
	Heuristics   bool
	PoolSize     int
	WarnCapacity int
	WarnTTL      time.Duration
	// Macros 叠加在内置宏表之上，优先级高于 MacrosFile
	Macros     map[string]string
	MacrosFile string
	Logger     logrus.FieldLogger
}

// Option is a function that configures Options.
type Option func(*Options)

// WithStrategy sets the normalization strategy ("unicode" or "mathml").
func WithStrategy(name string) Option {
	return func(opts *Options) {
		opts.Strategy = name
	}
}

// WithHeuristics sets whether undelimited math is detected in plain text.
func WithHeuristics(enable bool) Option {
	return func(opts *Options) {
		opts.Heuristics = enable
	}
}

// WithPoolSize sets the number of pooled render engines.
func WithPoolSize(n int) Option {
	return func(opts *Options) {
		opts.PoolSize = n
	}
}

// WithWarnCapacity sets how many distinct fallback warnings are remembered.
func WithWarnCapacity(n int) Option {
	return func(opts *Options) {
		opts.WarnCapacity = n
	}
}

// WithWarnTTL sets how long a fallback warning stays deduplicated.
func WithWarnTTL(ttl time.Duration) Option {
	return func(opts *Options) {
		opts.WarnTTL = ttl
	}
}

// WithMacros adds caller macros; later calls overwrite earlier keys.
func WithMacros(extra map[string]string) Option {
	return func(opts *Options) {
		if opts.Macros == nil {
			opts.Macros = make(map[string]string, len(extra))
		}
		for k, v := range extra {
			opts.Macros[k] = v
		}
	}
}

// WithMacrosFile loads additional macros from a YAML file.
func WithMacrosFile(path string) Option {
	return func(opts *Options) {
		opts.MacrosFile = path
	}
}

// WithLogger sets the logger used for fallback warnings.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

// WithConfig copies strategy, heuristics, pool size and warn capacity from a RenderConfig.
func WithConfig(config *RenderConfig) Option {
	return func(opts *Options) {
		if config == nil {
			return
		}
		opts.Strategy = config.Strategy
		opts.Heuristics = config.Heuristics
		opts.PoolSize = config.PoolSize
		opts.WarnCapacity = config.WarnCapacity
	}
}

// defaultOptions returns the default engine options.
func defaultOptions() *Options {
	cfg := DefaultConfig()
	return &Options{
		Strategy:     cfg.Strategy,
		Heuristics:   cfg.Heuristics,
		PoolSize:     cfg.PoolSize,
		WarnCapacity: cfg.WarnCapacity,
		WarnTTL:      warn.DefaultTTL,
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *Options {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}
