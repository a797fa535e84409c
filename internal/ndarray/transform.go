package ndarray

// SwapAxes exchanges axes x and y in place. Only dims and strides change;
// the buffer is untouched, so this is a view operation (a transpose for 2-D).
//
// After a swap the layout is no longer canonical row-major. Reshape or
// Contiguous restore a canonical layout.
func (a *Array[T]) SwapAxes(x, y int) error {
	if err := a.checkAxis(x); err != nil {
		return err
	}
	if err := a.checkAxis(y); err != nil {
		return err
	}
	a.strides[x], a.strides[y] = a.strides[y], a.strides[x]
	a.dims[x], a.dims[y] = a.dims[y], a.dims[x]
	return nil
}

// IsContiguous reports whether the strides are canonical row-major for dims.
func (a *Array[T]) IsContiguous() bool {
	want, size := Shape(a.dims).ComputeStrides()
	if size != len(a.mat) {
		return false
	}
	for i := range want {
		if a.strides[i] != want[i] {
			return false
		}
	}
	return true
}

// Contiguous returns a copy of the array laid out row-major in its current
// logical axis order. It is a copy even when the array is already contiguous.
func (a *Array[T]) Contiguous() (*Array[T], error) {
	ranges := make([]Range, len(a.dims))
	for i, d := range a.dims {
		ranges[i] = Range{Low: 0, High: d - 1}
	}
	return a.Span(ranges...)
}
