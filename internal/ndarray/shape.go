// Package ndarray implements a strided N-dimensional array over a flat buffer.
package ndarray

import (
	"fmt"
	"math"
)

// Shape holds the size of each axis, outermost first.
type Shape []int

// NumElements returns the product of all axis sizes.
// An empty shape has no elements.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 0
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that the shape has at least one axis, every axis is > 0
// and the element count fits in an int.
func (s Shape) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("%w: no axes", ErrInvalidShape)
	}
	n := 1
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("%w: dimension %d is %d (must be > 0)", ErrInvalidShape, i, dim)
		}
		if n > math.MaxInt/dim {
			return fmt.Errorf("%w: element count of %v overflows int", ErrInvalidShape, s)
		}
		n *= dim
	}
	return nil
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides returns canonical row-major strides and the total element count.
//
// The last stride is 1. Walking from the second-to-last axis down to axis 1,
// each stride is the running product of the sizes after it; axis 0 takes the
// product left after the walk. The shape must be valid.
func (s Shape) ComputeStrides() (strides []int, size int) {
	last := len(s) - 1
	strides = make([]int, len(s))
	strides[last] = 1
	if last == 0 {
		return strides, s[0]
	}

	p := s[last]
	for i := last - 1; i >= 1; i-- {
		strides[i] = p
		p *= s[i]
	}
	strides[0] = p
	return strides, p * s[0]
}
