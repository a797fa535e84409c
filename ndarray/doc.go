// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ndarray provides a generic strided N-dimensional array.
//
// # Overview
//
// An Array[T] pairs one flat buffer of T with two integer tables, dims and
// strides, that map logical coordinates to buffer offsets:
//
//	offset = strides[0]*i0 + strides[1]*i1 + ...
//
// Axis 0 is the outermost axis. New and Reshape always produce canonical
// row-major (C-order) strides, with the last stride equal to 1.
//
// # Basic Usage
//
//	a, err := ndarray.New[float64](ndarray.Shape{2, 3})
//	if err != nil {
//	    return err
//	}
//	a.Set(1.5, 1, 2)
//	x := a.Get(1, 2)
//
// Get, Set and Offset are not bounds checked. CheckedOffset validates
// coordinates and returns ErrIndexOutOfRange.
//
// # Views and Copies
//
// Operations either relabel the existing buffer or allocate a new one, and
// the names say which:
//   - SwapAxes: view. Only dims and strides change; no data moves.
//   - At: borrowed window onto the buffer, valid until the next Reshape.
//   - Span, SpanRuns, Contiguous, Clone: copies that own their buffer.
//
// # Sorting
//
// Sort takes a list of runs, each a (Start, Count, Stride) triple of buffer
// offsets, and sorts every run on its own. AxisRuns computes the runs that
// sort along one axis; SortAxis combines the two:
//
//	err := a.SortAxis(1, cmp.Compare[float64]) // sort every row
//
// Two sort backends are available and produce identical results: a
// sequential one and a data-parallel one that sorts chunks concurrently and
// merges them. The default is SequentialSort, or ParallelSort when built with
// -tags parsort. WithSortBackend overrides it per array.
//
// # Diagnostics
//
// WithDiagnostics makes construction and Reshape write the layout to a
// writer:
//
//	Dims= 2 3
//	Strides= 3 1
//	Size=6
//
// # Concurrency
//
// An Array is not safe for concurrent mutation. Callers must synchronize
// Reshape, Sort, SwapAxes and element writes on the same Array.
package ndarray
