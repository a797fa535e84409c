package parallel

import "slices"

// SortBackend selects the algorithm used to sort one contiguous buffer.
// Both backends produce the same ordering; only throughput differs.
type SortBackend int

// Supported sort backends.
const (
	SequentialSort SortBackend = iota
	ParallelSort
)

// String returns a human-readable backend name.
func (b SortBackend) String() string {
	switch b {
	case SequentialSort:
		return "sequential"
	case ParallelSort:
		return "parallel"
	default:
		return "unknown"
	}
}

// SortFunc sorts s in ascending order as determined by cmp using the given backend.
//
// The parallel backend sorts NumWorkers chunks concurrently and merges them
// pairwise. It degrades to the sequential backend when cfg disables
// parallelism or s is shorter than two chunks of MinChunkSize.
func SortFunc[T any](s []T, cmp func(x, y T) int, backend SortBackend, cfg Config) {
	if backend != ParallelSort {
		slices.SortFunc(s, cmp)
		return
	}
	parallelSortFunc(s, cmp, cfg)
}

func parallelSortFunc[T any](s []T, cmp func(x, y T) int, cfg Config) {
	n := len(s)
	workers := cfg.workers()
	chunk := max((n+workers-1)/workers, cfg.MinChunkSize, 1)
	if !cfg.Enabled || workers == 1 || n <= chunk {
		slices.SortFunc(s, cmp)
		return
	}

	// bounds[r]..bounds[r+1] is the r-th sorted run.
	bounds := []int{0}
	for start := chunk; start < n; start += chunk {
		bounds = append(bounds, start)
	}
	bounds = append(bounds, n)

	// Each task is one goroutine's worth of work.
	fanOut := Config{Enabled: true, NumWorkers: workers, MinChunkSize: 1}

	For(len(bounds)-1, func(r int) {
		slices.SortFunc(s[bounds[r]:bounds[r+1]], cmp)
	}, fanOut)

	src, dst := s, make([]T, n)
	swapped := false
	for len(bounds) > 2 {
		runs := len(bounds) - 1
		pairs := (runs + 1) / 2
		next := make([]int, 0, pairs+1)
		next = append(next, 0)
		for p := 0; p < pairs; p++ {
			next = append(next, bounds[min(2*p+2, runs)])
		}

		cur := bounds
		For(pairs, func(p int) {
			lo := cur[2*p]
			if 2*p+2 >= len(cur) {
				// Odd run out, carried over unchanged.
				copy(dst[lo:], src[lo:cur[2*p+1]])
				return
			}
			mid, hi := cur[2*p+1], cur[2*p+2]
			merge(dst[lo:hi], src[lo:mid], src[mid:hi], cmp)
		}, fanOut)

		src, dst = dst, src
		swapped = !swapped
		bounds = next
	}

	if swapped {
		copy(s, src)
	}
}

// merge writes the ordered union of a and b into dst. Ties are taken from a.
func merge[T any](dst, a, b []T, cmp func(x, y T) int) {
	i, j, k := 0, 0, 0
	for i < len(a) && j < len(b) {
		if cmp(a[i], b[j]) <= 0 {
			dst[k] = a[i]
			i++
		} else {
			dst[k] = b[j]
			j++
		}
		k++
	}
	k += copy(dst[k:], a[i:])
	copy(dst[k:], b[j:])
}
