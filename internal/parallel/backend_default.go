//go:build !parsort

package parallel

// DefaultSortBackend is the backend used when none is configured.
// Build with -tags parsort to default to ParallelSort.
const DefaultSortBackend = SequentialSort
