package ndarray

import "fmt"

// Run describes Count buffer offsets starting at Start and spaced by Stride.
type Run struct {
	Start  int
	Count  int
	Stride int
}

// Last returns the offset of the final element of the run.
func (r Run) Last() int {
	return r.Start + (r.Count-1)*r.Stride
}

// check reports whether every offset of r lies in [0, n).
func (r Run) check(n int) error {
	if r.Count < 0 {
		return fmt.Errorf("%w: negative count %d", ErrInvalidRun, r.Count)
	}
	if r.Count == 0 {
		return nil
	}
	if r.Start < 0 || r.Start >= n {
		return fmt.Errorf("%w: start %d outside buffer of %d", ErrInvalidRun, r.Start, n)
	}
	// A stride longer than the buffer allows cannot fit and would overflow Last.
	if r.Count > 1 && (r.Stride > (n-1)/(r.Count-1) || r.Stride < -(n-1)/(r.Count-1)) {
		return fmt.Errorf("%w: %d steps of %d do not fit in buffer of %d", ErrInvalidRun, r.Count-1, r.Stride, n)
	}
	if last := r.Last(); last < 0 || last >= n {
		return fmt.Errorf("%w: last offset %d outside buffer of %d", ErrInvalidRun, last, n)
	}
	return nil
}

func checkRuns(runs []Run, n int) (total int, err error) {
	for i, r := range runs {
		if err := r.check(n); err != nil {
			return 0, fmt.Errorf("run %d: %w", i, err)
		}
		total += r.Count
	}
	return total, nil
}

// AxisRuns returns one run along axis for every combination of the other
// coordinates, in row-major order of those coordinates.
// Each run covers the whole axis: Count is its size and Stride its stride.
func (a *Array[T]) AxisRuns(axis int) ([]Run, error) {
	if err := a.checkAxis(axis); err != nil {
		return nil, err
	}

	nd := len(a.dims)
	count := 1
	for i, d := range a.dims {
		if i != axis {
			count *= d
		}
	}

	runs := make([]Run, 0, count)
	coords := make([]int, nd)
	start := 0
	for {
		runs = append(runs, Run{Start: start, Count: a.dims[axis], Stride: a.strides[axis]})

		// Advance the odometer over every axis except the run axis.
		i := nd - 1
		for ; i >= 0; i-- {
			if i == axis {
				continue
			}
			coords[i]++
			start += a.strides[i]
			if coords[i] < a.dims[i] {
				break
			}
			start -= a.strides[i] * coords[i]
			coords[i] = 0
		}
		if i < 0 {
			return runs, nil
		}
	}
}

func (a *Array[T]) checkAxis(axis int) error {
	if axis < 0 || axis >= len(a.dims) {
		return fmt.Errorf("%w: axis %d for %d axes", ErrInvalidAxis, axis, len(a.dims))
	}
	return nil
}
