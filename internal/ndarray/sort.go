package ndarray

import "github.com/born-ml/strided/internal/parallel"

// Sort sorts the elements addressed by each run independently, in ascending
// order as determined by cmp.
//
// Each run is gathered into a contiguous scratch buffer, sorted with the
// configured backend and scattered back to the same offsets. All runs are
// validated before any element moves.
func (a *Array[T]) Sort(runs []Run, cmp func(x, y T) int) error {
	if _, err := checkRuns(runs, len(a.mat)); err != nil {
		return err
	}

	longest := 0
	for _, r := range runs {
		longest = max(longest, r.Count)
	}
	scratch := make([]T, longest)

	for _, r := range runs {
		buf := scratch[:r.Count]
		for j, off := 0, r.Start; j < r.Count; j, off = j+1, off+r.Stride {
			buf[j] = a.mat[off]
		}

		parallel.SortFunc(buf, cmp, a.cfg.Sort, a.cfg.Parallel)

		for j, off := 0, r.Start; j < r.Count; j, off = j+1, off+r.Stride {
			a.mat[off] = buf[j]
		}
	}
	return nil
}

// SortAxis sorts along axis, independently for every combination of the
// other coordinates.
//
// Example:
//
//	// Sort every row of a 2-D array.
//	err := a.SortAxis(1, cmp.Compare[float64])
func (a *Array[T]) SortAxis(axis int, cmp func(x, y T) int) error {
	runs, err := a.AxisRuns(axis)
	if err != nil {
		return err
	}
	return a.Sort(runs, cmp)
}
