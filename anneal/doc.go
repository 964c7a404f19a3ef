// Package anneal implements the stochastic local-search back-end: a
// simulated annealing sampler over binary quadratic models.
//
// Each call performs NumReads independent annealing runs ("reads").
// A read starts from a uniformly random assignment and performs Sweeps
// full passes over the variables; within a pass every variable is
// offered a single-bit flip accepted with the Metropolis rule at the
// current inverse temperature β. β is interpolated geometrically from
// BetaMin (hot) to BetaMax (cold), so late sweeps behave like greedy
// descent.
//
// Determinism: the same Options.Seed yields an identical sample set;
// Seed == 0 selects a fixed default seed, and each read derives its own
// independent RNG stream from the seed, so reads are reproducible and
// order-independent of any shared generator state.
//
// Complexity per call: O(NumReads · Sweeps · (V + Q)) time, O(V + Q)
// memory, for V variables and Q quadratic terms.
package anneal
