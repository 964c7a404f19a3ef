// Package hybrid implements the hybrid combinatorial back-end: a
// decomposition solver that manages its own search budget and exposes no
// read-count knob to the caller.
//
// Search strategy:
//  1. Seed: greedy assignment from the sign of each variable's linear
//     bias, refined by one descent pass.
//  2. Decompose: slide a fixed-size window over the canonical variable
//     order; each window's sub-problem is solved exactly by enumerating
//     all 2^Window assignments of the window variables with the rest of
//     the state frozen.
//  3. Iterate: repeat full window passes until a pass yields no
//     improvement, the time budget is exhausted, or ctx is done.
//
// Models with at most Window variables are therefore solved exactly in
// a single enumeration.
//
// Configuration follows the convention of remote combinatorial services:
// LoadConfig reads QUNFOLD_HYBRID_* environment variables (optionally
// from a .env file) for the time budget, window size and the remote
// endpoint/token of a managed solver. Every solve is tagged with a UUID
// job identifier surfaced on the returned sample set.
package hybrid
