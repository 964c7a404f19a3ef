// Package unfold estimates a true histogram from a measured one that was
// distorted by a known detector response, by recasting the unfolding
// problem as a QUBO and handing it to a combinatorial sampler.
//
// 🚀 What is unfolding?
//
//	A detector smears a true distribution x into a measured one d
//	according to a response matrix R (R[i][j] = probability that a true
//	event in bin j is measured in bin i). Unfolding inverts that
//	distortion: find x such that R·x ≈ d.
//
// Instead of matrix inversion or iterative Bayesian updates, this
// package minimizes the regularized least-squares objective
//
//	H(x) = ‖R·x − d‖² + lam·‖G·x‖²
//	     = aᵀx + xᵀBx + const,   a = −2·Rᵀd,  B = RᵀR + lam·GᵀG
//
// over integer-valued x, where G is the discrete second-difference
// (Laplacian) matrix and lam ≥ 0 weights the curvature penalty
// (Tikhonov-style smoothing). Each unknown bin count is log-encoded
// into binary sub-variables (package encode), the objective becomes a
// binary quadratic model (package qubo), and a sampler (package anneal
// or hybrid, or any qubo.Sampler) searches for its minimum. The
// best-energy sample decodes back into the unfolded bin counts.
//
// ⚙️ Usage:
//
//	u, err := unfold.New(response, measured, 0.05)
//	if err != nil { ... }
//	x, err := u.SolveSimulatedAnnealing(200, 42)
//	// or: x, err := u.SolveHybrid(ctx)
//
// Pipeline per solve call (strictly forward, no shared state between
// calls):
//
//	response ─normalize→ R ─encode→ bits ─build→ H ─compile→ BQM
//	        ─sample→ SampleSet ─decode→ unfolded vector
//
// Uncertainty quantification (toy resampling, covariance estimation) is
// deliberately a caller concern: invoke a solve operation repeatedly and
// aggregate outside this package.
package unfold
