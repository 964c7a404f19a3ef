// Package encode maps bounded non-negative integers onto binary
// sub-variables using logarithmic (positional) encoding.
//
// An integer x ∈ [0, upper] is represented as
//
//	x = Σ_b w_b · q_b,   q_b ∈ {0,1}
//
// with positional weights w_b = 1, 2, 4, ... and a final partial weight
// chosen so the maximum reachable sum equals upper exactly. This needs
// O(log2 upper) binary variables instead of the upper+1 variables of a
// one-hot encoding, which keeps quadratic models tractable for samplers
// with limited variable counts.
//
// SharedBound derives the single bound used for every truth bin of an
// unfolding problem from the measured totals: 2^⌊log2(Σd)⌋ − 1.
package encode
