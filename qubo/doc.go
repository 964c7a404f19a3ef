// Package qubo defines the binary quadratic model (BQM) shared by all
// sampling back-ends, together with samples, sample sets and the Sampler
// capability interface.
//
// 🚀 What is a BQM?
//
//	A binary quadratic model is a polynomial of degree ≤ 2 over binary
//	variables s ∈ {0,1}:
//
//	    E(s) = offset + Σ_v h_v·s_v + Σ_{u<v} J_uv·s_u·s_v
//
//	Minimizing E over all binary assignments is the QUBO problem
//	(Quadratic Unconstrained Binary Optimization).
//
// ✨ Key pieces:
//   - BQM — accumulating builder for linear/quadratic coefficients over
//     string-labeled variables; self-interactions fold into linear terms
//     because s² = s for binary s.
//   - Sample / SampleSet — scored assignments returned by a sampler,
//     in sampler iteration order.
//   - Sampler — the single capability every back-end implements:
//     accept a BQM, return a SampleSet.
//
// ⚙️ Usage:
//
//	m := qubo.NewBQM()
//	m.AddLinear("x0[0]", -1.5)
//	m.AddInteraction("x0[0]", "x0[1]", 2.0)
//	set, err := sampler.Sample(ctx, m)
//	best, err := set.Lowest()
//
// All coefficient accumulation is additive: repeated calls for the same
// variable (pair) sum their biases, so callers can stream terms in any
// order.
package qubo
