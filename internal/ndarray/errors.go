package ndarray

import "errors"

// Sentinel errors returned by checked array operations.
// Indexing, traversal and At are unchecked and never return these.
var (
	// ErrInvalidShape is returned when a shape is empty or has a dimension <= 0.
	ErrInvalidShape = errors.New("ndarray: invalid shape")

	// ErrShapeMismatch is returned when the number of supplied elements does not
	// match the element count of the requested shape.
	ErrShapeMismatch = errors.New("ndarray: shape mismatch")

	// ErrIndexOutOfRange is returned when a coordinate is outside its axis.
	ErrIndexOutOfRange = errors.New("ndarray: index out of range")

	// ErrInvalidAxis is returned when an axis number is not in [0, NDim).
	ErrInvalidAxis = errors.New("ndarray: invalid axis")

	// ErrInvalidRange is returned for a negative or inverted inclusive range.
	ErrInvalidRange = errors.New("ndarray: invalid range")

	// ErrInvalidRun is returned when a run addresses offsets outside the buffer.
	ErrInvalidRun = errors.New("ndarray: invalid run")
)
