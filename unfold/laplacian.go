// Package unfold - discrete Laplacian (second-difference) matrix.

package unfold

import "gonum.org/v1/gonum/mat"

// Laplacian returns the n×n second-difference matrix G:
// diagonal −2, first off-diagonals +1, zero elsewhere.
//
// ‖G·x‖² measures the curvature of x, so lam·xᵀ(GᵀG)x penalizes jagged
// solutions in the unfolding objective.
// Complexity: O(n²) memory (dense), O(n) writes.
func Laplacian(n int) *mat.Dense {
	g := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		g.Set(i, i, -2)
		if i+1 < n {
			g.Set(i, i+1, 1)
			g.Set(i+1, i, 1)
		}
	}
	return g
}
