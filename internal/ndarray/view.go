package ndarray

// View is a borrowed window onto an array's buffer, returned by At.
//
// A View aliases the source: writes through it are visible in the array and
// vice versa. It is valid only until the source is reshaped; after that it may
// point at a stale buffer. Check Valid when the lifetimes are not obvious.
type View[T any] struct {
	data  []T
	owner *Array[T]
	gen   uint64
}

// At returns the contiguous block that starts at the offset of prefix and
// spans the stride of the last prefix axis. For a 2-D array, At(i) is row i.
// An empty prefix covers the whole buffer. The window is clamped to the end
// of the buffer.
//
// No bounds checking is done on prefix.
func (a *Array[T]) At(prefix ...int) View[T] {
	start, end := 0, len(a.mat)
	if len(prefix) > 0 {
		start = a.Offset(prefix...)
		end = min(start+a.strides[len(prefix)-1], len(a.mat))
	}
	return View[T]{
		data:  a.mat[start:end:end],
		owner: a,
		gen:   a.gen,
	}
}

// Len returns the number of elements in the view.
func (v View[T]) Len() int {
	return len(v.data)
}

// Get returns element i of the view.
func (v View[T]) Get(i int) T {
	return v.data[i]
}

// Set stores x as element i of the view, writing through to the source.
func (v View[T]) Set(i int, x T) {
	v.data[i] = x
}

// Ref returns a pointer to element i in the source buffer.
func (v View[T]) Ref(i int) *T {
	return &v.data[i]
}

// Values returns the aliased slice. Its capacity equals its length, so
// appending to it never writes into the source.
func (v View[T]) Values() []T {
	return v.data
}

// Copy returns an owned copy of the view's elements.
func (v View[T]) Copy() []T {
	return append([]T(nil), v.data...)
}

// Valid reports whether the source has not been reshaped since the view was taken.
func (v View[T]) Valid() bool {
	return v.owner != nil && v.owner.gen == v.gen
}
