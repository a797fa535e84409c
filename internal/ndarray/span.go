package ndarray

import "fmt"

// Range is an inclusive coordinate range [Low, High] on one axis.
type Range struct {
	Low  int
	High int
}

// Len returns the number of coordinates in the range.
func (r Range) Len() int {
	return r.High - r.Low + 1
}

// Span copies the region selected by one inclusive range per leading axis
// into a new array of shape {ranges[i].Len()...}.
//
// Axes beyond the given ranges are held at coordinate 0. The result owns its
// buffer and shares nothing with a.
//
// Example:
//
//	// a is 3x3 holding 0..8; s is 2x2 holding 0 1 3 4.
//	s, _ := a.Span(ndarray.Range{0, 1}, ndarray.Range{0, 1})
func (a *Array[T]) Span(ranges ...Range) (*Array[T], error) {
	if len(ranges) == 0 || len(ranges) > len(a.dims) {
		return nil, fmt.Errorf("%w: %d ranges for %d axes", ErrInvalidRange, len(ranges), len(a.dims))
	}

	shape := make(Shape, len(ranges))
	base := 0
	for i, r := range ranges {
		if r.Low < 0 || r.Low > r.High {
			return nil, fmt.Errorf("%w: [%d, %d] on axis %d", ErrInvalidRange, r.Low, r.High, i)
		}
		if r.High >= a.dims[i] {
			return nil, fmt.Errorf("%w: [%d, %d] on axis %d of size %d", ErrIndexOutOfRange, r.Low, r.High, i, a.dims[i])
		}
		shape[i] = r.Len()
		base += a.strides[i] * r.Low
	}

	out, err := newArray[T](shape, a.cfg)
	if err != nil {
		return nil, err
	}

	last := len(shape) - 1
	coords := make([]int, len(shape))
	off := base
	for k := range out.mat {
		out.mat[k] = a.mat[off]

		if k == len(out.mat)-1 {
			break
		}
		for i := last; i >= 0; i-- {
			coords[i]++
			off += a.strides[i]
			if coords[i] < shape[i] {
				break
			}
			off -= a.strides[i] * coords[i]
			coords[i] = 0
		}
	}
	return out, nil
}

// SpanRuns copies the elements addressed by runs, concatenated in order, into
// a new array of the given shape. The runs must address exactly
// shape.NumElements() elements.
//
// Example:
//
//	// Gather column 0 and column 2 of a 3x3 array into a 2x3 array.
//	s, _ := a.SpanRuns([]ndarray.Run{{0, 3, 3}, {2, 3, 3}}, ndarray.Shape{2, 3})
func (a *Array[T]) SpanRuns(runs []Run, shape Shape) (*Array[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	total, err := checkRuns(runs, len(a.mat))
	if err != nil {
		return nil, err
	}
	if n := shape.NumElements(); total != n {
		return nil, fmt.Errorf("%w: runs address %d elements, shape %v holds %d", ErrShapeMismatch, total, shape, n)
	}

	out, err := newArray[T](shape, a.cfg)
	if err != nil {
		return nil, err
	}

	k := 0
	for _, r := range runs {
		for j, off := 0, r.Start; j < r.Count; j, off = j+1, off+r.Stride {
			out.mat[k] = a.mat[off]
			k++
		}
	}
	return out, nil
}
