package ndarray

import "fmt"

// Offset returns the flat buffer offset of the given coordinates,
// Σ strides[i] * coords[i]. Fewer coordinates than axes address the start of
// a sub-block.
//
// No bounds checking is done. For hot loops over a known number of axes,
// compute the offset directly from Strides instead:
//
//	s := a.Strides()
//	data := a.Data()
//	for i := 0; i < n; i++ {
//		for j := 0; j < m; j++ {
//			data[s[0]*i+s[1]*j] = f(i, j)
//		}
//	}
func (a *Array[T]) Offset(coords ...int) int {
	off := 0
	for i, c := range coords {
		off += a.strides[i] * c
	}
	return off
}

// CheckedOffset is Offset with every coordinate validated against its axis.
func (a *Array[T]) CheckedOffset(coords ...int) (int, error) {
	if len(coords) > len(a.dims) {
		return 0, fmt.Errorf("%w: %d coordinates for %d axes", ErrIndexOutOfRange, len(coords), len(a.dims))
	}
	for i, c := range coords {
		if c < 0 || c >= a.dims[i] {
			return 0, fmt.Errorf("%w: coordinate %d on axis %d of size %d", ErrIndexOutOfRange, c, i, a.dims[i])
		}
	}
	return a.Offset(coords...), nil
}

// Get returns the element at coords.
func (a *Array[T]) Get(coords ...int) T {
	return a.mat[a.Offset(coords...)]
}

// Set stores v at coords.
func (a *Array[T]) Set(v T, coords ...int) {
	a.mat[a.Offset(coords...)] = v
}

// Ref returns a pointer to the element at coords.
// The pointer is invalidated by Reshape.
func (a *Array[T]) Ref(coords ...int) *T {
	return &a.mat[a.Offset(coords...)]
}

// Iterate applies op to the elements starting at offset start and advancing
// by the stride of axis. At most min(length, dims[axis]) elements are visited
// and the walk stops at the end of the buffer.
//
// The bound is a step count, not the number of coordinates left on the axis:
// a walk that starts mid-axis can run past the axis end into the next block.
// Pass the remaining count as length to stay inside the axis.
//
// Example (double row 1 of a 3x4 array):
//
//	a.Iterate(a.Offset(1), 4, 1, func(v *float64) { *v *= 2 })
func (a *Array[T]) Iterate(start, length, axis int, op func(*T)) {
	a.walk(start, min(length, a.dims[axis]), a.strides[axis], op)
}

// IterateStride applies op to at most length elements starting at offset
// start and advancing by stride. The walk stops when the offset leaves the buffer.
func (a *Array[T]) IterateStride(start, length, stride int, op func(*T)) {
	a.walk(start, length, stride, op)
}

func (a *Array[T]) walk(start, length, stride int, op func(*T)) {
	n := len(a.mat)
	for i, j := start, 0; j < length && i >= 0 && i < n; i, j = i+stride, j+1 {
		op(&a.mat[i])
	}
}
