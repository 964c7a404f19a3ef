// Package unfold - Hamiltonian construction and BQM compilation.
//
// The objective over the integer bin counts x is
//
//	H(x) = aᵀx + xᵀBx,  a = −2·Rᵀd,  B = RᵀR + lam·GᵀG
//
// (the constant ‖d‖² is dropped; it shifts every energy equally).
// Substituting each x_i by its logarithmic binary expansion turns H
// into a pure polynomial over binary sub-variables, which compile
// folds into a qubo.BQM using s² = s.

package unfold

import (
	"gonum.org/v1/gonum/mat"

	"github.com/qunfold/qunfold/encode"
	"github.com/qunfold/qunfold/qubo"
)

// systemMatrices assembles the linear and quadratic coefficients of the
// objective from the normalized response r, the measured vector d and
// the regularization strength lam. B is affine in lam; B(0) = RᵀR.
// Complexity: O(m·n² + n³) for the dense products.
func systemMatrices(r *mat.Dense, d []float64, lam float64) (a *mat.VecDense, b *mat.Dense) {
	_, n := r.Dims()

	// a = −2·Rᵀd
	a = mat.NewVecDense(n, nil)
	a.MulVec(r.T(), mat.NewVecDense(len(d), d))
	a.ScaleVec(-2, a)

	// B = RᵀR + lam·GᵀG
	b = mat.NewDense(n, n, nil)
	b.Mul(r.T(), r)
	if lam != 0 {
		g := Laplacian(n)
		var gtg mat.Dense
		gtg.Mul(g.T(), g)
		gtg.Scale(lam, &gtg)
		b.Add(b, &gtg)
	}
	return a, b
}

// compile expands the Hamiltonian over the log-encoded variables into a
// binary quadratic model. With x_i = Σ_p w_p·q_ip:
//
//	a_i·x_i          → a_i·w_p on each bit q_ip
//	B_ij·x_i·x_j     → B_ij·w_p·w_q on each bit pair (q_ip, q_jq);
//	                   same-bit pairs (i==j, p==q) fold into linear
//	                   terms inside the BQM since q² = q.
//
// Complexity: O((n·log nMax)²).
func compile(vars []*encode.LogIntVar, a *mat.VecDense, b *mat.Dense) *qubo.BQM {
	m := qubo.NewBQM()
	for i, vi := range vars {
		wi, li := vi.Weights(), vi.Labels()
		for p := range wi {
			m.AddLinear(li[p], a.AtVec(i)*float64(wi[p]))
		}
		for j, vj := range vars {
			bij := b.At(i, j)
			if bij == 0 {
				continue
			}
			wj, lj := vj.Weights(), vj.Labels()
			for p := range wi {
				for q := range wj {
					m.AddInteraction(li[p], lj[q], bij*float64(wi[p])*float64(wj[q]))
				}
			}
		}
	}
	return m
}
