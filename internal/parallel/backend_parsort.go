//go:build parsort

package parallel

// DefaultSortBackend is the backend used when none is configured.
const DefaultSortBackend = ParallelSort
