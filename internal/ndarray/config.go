package ndarray

import (
	"io"

	"github.com/born-ml/strided/internal/parallel"
)

// Config controls the behavior of an Array that is not part of its data.
type Config struct {
	// Sort selects the backend used by Sort and SortAxis.
	Sort parallel.SortBackend

	// Parallel configures the workers of the parallel sort backend.
	Parallel parallel.Config

	// Diagnostics receives the Dims/Strides/Size report written on
	// construction and reshape. Nil disables the report.
	Diagnostics io.Writer
}

// DefaultConfig returns the build's default sort backend, CPU-sized workers
// and no diagnostics.
func DefaultConfig() Config {
	return Config{
		Sort:     parallel.DefaultSortBackend,
		Parallel: parallel.DefaultConfig(),
	}
}

// Option configures an Array at construction.
type Option func(*Config)

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(c *Config) {
		*c = cfg
	}
}

// WithSortBackend selects the sort backend.
func WithSortBackend(b parallel.SortBackend) Option {
	return func(c *Config) {
		c.Sort = b
	}
}

// WithParallelConfig sets the worker configuration of the parallel sort backend.
func WithParallelConfig(p parallel.Config) Option {
	return func(c *Config) {
		c.Parallel = p
	}
}

// WithDiagnostics sets the writer receiving layout reports.
func WithDiagnostics(w io.Writer) Option {
	return func(c *Config) {
		c.Diagnostics = w
	}
}

func buildConfig(opts []Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
