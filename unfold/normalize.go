// Package unfold - response matrix normalization.

package unfold

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Normalize returns a row-stochastic copy of m together with the indices
// of rows that were left untouched because their sum is exactly zero.
//
// Policy:
//   - If every non-zero row already sums to 1 within tolerance, the copy
//     is returned verbatim (normalization is idempotent).
//   - Otherwise each row is divided by its own sum. Zero rows are
//     skipped: they carry no probability mass to redistribute, so the
//     no-op is deliberate. The returned index list makes the skip
//     observable to callers instead of silently vanishing.
//
// The input is never mutated.
// Complexity: O(r·c) time and memory.
func Normalize(m mat.Matrix) (*mat.Dense, []int) {
	r, c := m.Dims()
	out := mat.DenseCopyOf(m)

	sums := make([]float64, r)
	var zeroRows []int
	normalized := true
	for i := 0; i < r; i++ {
		s := 0.0
		for j := 0; j < c; j++ {
			s += out.At(i, j)
		}
		sums[i] = s
		if s == 0 {
			zeroRows = append(zeroRows, i)
			continue
		}
		if math.Abs(s-1) > rowSumTol {
			normalized = false
		}
	}
	if normalized {
		return out, zeroRows
	}

	for i := 0; i < r; i++ {
		if sums[i] == 0 {
			continue
		}
		for j := 0; j < c; j++ {
			out.Set(i, j, out.At(i, j)/sums[i])
		}
	}
	return out, zeroRows
}
