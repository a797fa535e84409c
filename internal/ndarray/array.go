package ndarray

import (
	"fmt"
	"io"
)

// Array is an N-dimensional array of T stored in one flat row-major buffer.
//
// dims and strides map logical coordinates to buffer offsets:
// offset = Σ strides[i] * coord[i]. Axis 0 is the outermost axis.
// An Array is not safe for concurrent mutation.
type Array[T any] struct {
	dims    []int
	strides []int
	mat     []T
	cfg     Config
	gen     uint64 // bumped on every buffer resize; see View.Valid
}

// New creates a zero-filled array of the given shape with canonical
// row-major strides.
//
// Example:
//
//	a, _ := ndarray.New[float32](ndarray.Shape{2, 3})
//	a.Dims()    // [2 3]
//	a.Strides() // [3 1]
//	a.Len()     // 6
func New[T any](shape Shape, opts ...Option) (*Array[T], error) {
	return newArray[T](shape, buildConfig(opts))
}

// FromSlice creates an array of the given shape holding a copy of data.
// len(data) must equal shape.NumElements().
func FromSlice[T any](data []T, shape Shape, opts ...Option) (*Array[T], error) {
	a, err := newArray[T](shape, buildConfig(opts))
	if err != nil {
		return nil, err
	}
	if len(data) != len(a.mat) {
		return nil, fmt.Errorf("%w: %d values for shape %v (%d elements)", ErrShapeMismatch, len(data), shape, len(a.mat))
	}
	copy(a.mat, data)
	return a, nil
}

func newArray[T any](shape Shape, cfg Config) (*Array[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}

	strides, size := shape.ComputeStrides()
	a := &Array[T]{
		dims:    shape.Clone(),
		strides: strides,
		mat:     make([]T, size),
		cfg:     cfg,
	}
	a.report(true)
	return a, nil
}

// Reshape replaces the layout with canonical row-major strides for shape and
// resizes the buffer to shape.NumElements().
//
// The buffer is resized in place, not repacked: growing appends zero values,
// shrinking drops the tail. Views taken with At become invalid.
// On error the array is left unchanged.
func (a *Array[T]) Reshape(shape Shape) error {
	if err := shape.Validate(); err != nil {
		return err
	}

	strides, size := shape.ComputeStrides()
	a.dims = shape.Clone()
	a.strides = strides

	if old := len(a.mat); size > old {
		a.mat = append(a.mat, make([]T, size-old)...)
	} else {
		clear(a.mat[size:])
		a.mat = a.mat[:size]
	}
	a.gen++

	a.report(false)
	return nil
}

// report writes the layout to the diagnostics writer, if any.
func (a *Array[T]) report(withSize bool) {
	w := a.cfg.Diagnostics
	if w == nil {
		return
	}
	writeInts(w, "Dims= ", a.dims)
	writeInts(w, "Strides= ", a.strides)
	if withSize {
		fmt.Fprintf(w, "Size=%d\n", len(a.mat))
	}
}

func writeInts(w io.Writer, label string, values []int) {
	fmt.Fprint(w, label)
	for _, v := range values {
		fmt.Fprintf(w, "%d ", v)
	}
	fmt.Fprint(w, "\n")
}

// Dims returns a copy of the axis sizes.
func (a *Array[T]) Dims() Shape {
	return Shape(a.dims).Clone()
}

// Strides returns a copy of the axis strides.
func (a *Array[T]) Strides() []int {
	return append([]int(nil), a.strides...)
}

// NDim returns the number of axes.
func (a *Array[T]) NDim() int {
	return len(a.dims)
}

// Len returns the length of the flat buffer.
func (a *Array[T]) Len() int {
	return len(a.mat)
}

// Config returns the array's configuration.
func (a *Array[T]) Config() Config {
	return a.cfg
}

// Data returns the flat buffer.
// WARNING: Direct access to underlying memory. The slice is invalidated by Reshape.
func (a *Array[T]) Data() []T {
	return a.mat
}

// Clone returns an independent copy of the array, layout included.
// A swapped layout stays swapped in the clone.
func (a *Array[T]) Clone() *Array[T] {
	return &Array[T]{
		dims:    append([]int(nil), a.dims...),
		strides: append([]int(nil), a.strides...),
		mat:     append([]T(nil), a.mat...),
		cfg:     a.cfg,
	}
}

// String returns a short description such as "Array[2 3] strides [3 1]".
func (a *Array[T]) String() string {
	return fmt.Sprintf("Array%v strides %v", a.dims, a.strides)
}
