// Package qunfold reconstructs true histograms from detector-smeared
// measurements by solving the unfolding problem as a QUBO — Quadratic
// Unconstrained Binary Optimization — instead of classical matrix
// inversion or iterative Bayesian methods.
//
// 🚀 What is qunfold?
//
//	A pure-computational library that turns the regularized
//	least-squares unfolding objective into a binary quadratic model and
//	minimizes it with combinatorial samplers:
//		• Response normalization: row-stochastic with observable zero-row policy
//		• Logarithmic integer encoding: O(log n) binary variables per bin
//		• Hamiltonian construction: data fidelity + Laplacian curvature penalty
//		• Two back-ends: simulated annealing & hybrid decomposition search
//
// ✨ Why choose qunfold?
//
//   - Deterministic – seed-routed sampling, lexicographic tie-breaks
//   - Strict sentinels – every failure mode is a distinct, catchable error
//   - Pluggable – any qubo.Sampler can drive the search
//   - No side effects – each solve call builds, samples and decodes fresh
//
// Everything is organized under five subpackages:
//
//	qubo/   — binary quadratic models, sample sets & the Sampler interface
//	encode/ — logarithmic integer ↔ binary sub-variable encoding
//	anneal/ — stochastic local-search (simulated annealing) back-end
//	hybrid/ — decomposition-based hybrid back-end with env configuration
//	unfold/ — the unfolding core: normalize, encode, build, dispatch, decode
//
// Quick example:
//
//	u, err := unfold.New(response, measured, 0.05)
//	if err != nil {
//		log.Fatal(err)
//	}
//	x, err := u.SolveSimulatedAnnealing(200, 42)
//
// See each subpackage's doc.go for contracts, complexity notes and the
// full error taxonomy.
package qunfold
