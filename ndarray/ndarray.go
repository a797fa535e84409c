// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"io"

	"github.com/born-ml/strided/internal/ndarray"
	"github.com/born-ml/strided/internal/parallel"
)

// Array is a strided N-dimensional array of T.
type Array[T any] = ndarray.Array[T]

// View is a borrowed window onto an Array's buffer, returned by Array.At.
type View[T any] = ndarray.View[T]

// Shape holds the size of each axis, outermost first.
// Example: Shape{2, 3, 4} is a 2×3×4 array.
type Shape = ndarray.Shape

// Run describes Count buffer offsets starting at Start and spaced by Stride.
type Run = ndarray.Run

// Range is an inclusive coordinate range [Low, High] on one axis.
type Range = ndarray.Range

// Config controls sort backend, parallel workers and diagnostics of an Array.
type Config = ndarray.Config

// Option configures an Array at construction.
type Option = ndarray.Option

// SortBackend selects the algorithm used to sort one run.
type SortBackend = parallel.SortBackend

// ParallelConfig controls the workers of the parallel sort backend.
type ParallelConfig = parallel.Config

// Sort backends.
const (
	SequentialSort SortBackend = parallel.SequentialSort
	ParallelSort   SortBackend = parallel.ParallelSort
)

// DefaultSortBackend is SequentialSort, or ParallelSort when built with -tags parsort.
const DefaultSortBackend = parallel.DefaultSortBackend

// Errors returned by checked operations.
var (
	ErrInvalidShape    = ndarray.ErrInvalidShape
	ErrShapeMismatch   = ndarray.ErrShapeMismatch
	ErrIndexOutOfRange = ndarray.ErrIndexOutOfRange
	ErrInvalidAxis     = ndarray.ErrInvalidAxis
	ErrInvalidRange    = ndarray.ErrInvalidRange
	ErrInvalidRun      = ndarray.ErrInvalidRun
)

// New creates a zero-filled array of the given shape with row-major strides.
//
// Example:
//
//	a, err := ndarray.New[int](ndarray.Shape{2, 3}) // dims [2 3], strides [3 1]
func New[T any](shape Shape, opts ...Option) (*Array[T], error) {
	return ndarray.New[T](shape, opts...)
}

// FromSlice creates an array of the given shape holding a copy of data.
func FromSlice[T any](data []T, shape Shape, opts ...Option) (*Array[T], error) {
	return ndarray.FromSlice(data, shape, opts...)
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return ndarray.DefaultConfig()
}

// DefaultParallelConfig returns worker defaults based on CPU count.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return ndarray.WithConfig(cfg)
}

// WithSortBackend selects the sort backend.
func WithSortBackend(b SortBackend) Option {
	return ndarray.WithSortBackend(b)
}

// WithParallelConfig sets the workers of the parallel sort backend.
func WithParallelConfig(p ParallelConfig) Option {
	return ndarray.WithParallelConfig(p)
}

// WithDiagnostics sets the writer receiving layout reports.
func WithDiagnostics(w io.Writer) Option {
	return ndarray.WithDiagnostics(w)
}
