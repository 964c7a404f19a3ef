// Package unfold - solver dispatch and result decoding.

package unfold

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/qunfold/qunfold/anneal"
	"github.com/qunfold/qunfold/encode"
	"github.com/qunfold/qunfold/hybrid"
	"github.com/qunfold/qunfold/qubo"
)

// Unfolder holds one unfolding problem: a normalized private copy of the
// response matrix, the measured vector and the regularization strength.
// It retains no per-solve state, so a single Unfolder may serve
// concurrent solve calls.
type Unfolder struct {
	r        *mat.Dense // normalized response, m×n
	d        []float64  // measured counts, length m
	lam      float64
	zeroRows []int
}

// New validates the inputs and builds an Unfolder.
//
// Contracts:
//   - response is m×n with m == len(measured); violation fails fast with
//     ErrShapeMismatch before any encoding work.
//   - lam ≥ 0 (ErrNegativeLambda otherwise).
//   - response rows may hold probabilities or raw counts; rows not
//     summing to 1 are normalized into a private copy, all-zero rows are
//     left untouched (see Normalize) and reported via ZeroRows.
//
// The caller's matrix and slice are never mutated.
func New(response mat.Matrix, measured []float64, lam float64) (*Unfolder, error) {
	if response == nil {
		return nil, ErrNilResponse
	}
	if len(measured) == 0 {
		return nil, ErrEmptyMeasured
	}
	rows, _ := response.Dims()
	if rows != len(measured) {
		return nil, fmt.Errorf("%w: %d rows vs %d measured bins", ErrShapeMismatch, rows, len(measured))
	}
	if lam < 0 {
		return nil, ErrNegativeLambda
	}

	r, zero := Normalize(response)
	d := make([]float64, len(measured))
	copy(d, measured)
	return &Unfolder{r: r, d: d, lam: lam, zeroRows: zero}, nil
}

// Bins returns n, the number of truth bins (columns of the response).
func (u *Unfolder) Bins() int {
	_, n := u.r.Dims()
	return n
}

// ZeroRows returns the indices of response rows that were all-zero and
// therefore skipped by normalization. Such rows contribute nothing to
// the data-fidelity term; surfacing them keeps the no-op policy
// debuggable.
func (u *Unfolder) ZeroRows() []int { return u.zeroRows }

// Solve builds the binary quadratic model for this problem, submits it
// to sampler, and decodes the best sample into the unfolded vector.
//
// Stage 1 - encode: shared bound nMax = 2^⌊log2(Σd)⌋ − 1, one
// log-encoded variable per truth bin.
// Stage 2 - build: a = −2·Rᵀd, B = RᵀR + lam·GᵀG, expanded over the
// sub-variables into a qubo.BQM.
// Stage 3 - sample: one blocking call; sampler errors propagate
// unchanged (distinguish via qubo.ErrSamplerUnavailable and
// qubo.ErrNoSamples), and an error yields no partial vector.
// Stage 4 - decode: among minimum-energy samples take the one whose
// decoded vector is lexicographically smallest (deterministic across
// samplers), then reconstruct each bin from its bit weights.
func (u *Unfolder) Solve(ctx context.Context, sampler qubo.Sampler) ([]float64, error) {
	if sampler == nil {
		return nil, ErrNilSampler
	}

	// Stage 1 - encode.
	n := u.Bins()
	nMax := encode.SharedBound(u.d)
	vars := make([]*encode.LogIntVar, n)
	for i := range vars {
		v, err := encode.NewLogIntVar(fmt.Sprintf("x%d", i), nMax)
		if err != nil {
			return nil, fmt.Errorf("unfold: encode bin %d: %w", i, err)
		}
		vars[i] = v
	}

	// Stage 2 - build.
	a, b := systemMatrices(u.r, u.d, u.lam)
	model := compile(vars, a, b)

	// Stage 3 - sample.
	set, err := sampler.Sample(ctx, model)
	if err != nil {
		return nil, err
	}
	ties, err := set.LowestAll()
	if err != nil {
		return nil, fmt.Errorf("unfold: %w", err)
	}

	// Stage 4 - decode with deterministic tie-break.
	var best []float64
	for _, smp := range ties {
		x, err := decode(vars, smp.Assignment)
		if err != nil {
			return nil, fmt.Errorf("unfold: %w", err)
		}
		if best == nil || lexLess(x, best) {
			best = x
		}
	}
	return best, nil
}

// SolveSimulatedAnnealing runs the stochastic local-search path:
// numReads independent annealing reads, deterministic under a fixed
// seed (seed 0 selects the sampler's default seed).
// Errors: ErrInvalidNumReads, plus anything Solve surfaces.
func (u *Unfolder) SolveSimulatedAnnealing(numReads int, seed int64) ([]float64, error) {
	if numReads < 1 {
		return nil, ErrInvalidNumReads
	}
	opts := anneal.DefaultOptions()
	opts.NumReads = numReads
	opts.Seed = seed
	sampler, err := anneal.New(opts)
	if err != nil {
		return nil, err
	}
	return u.Solve(context.Background(), sampler)
}

// SolveHybrid runs the hybrid combinatorial path. The back-end manages
// its own search budget, configured from the environment via
// hybrid.LoadConfig; no read count applies. ctx bounds the search.
func (u *Unfolder) SolveHybrid(ctx context.Context) ([]float64, error) {
	sampler, err := hybrid.New(hybrid.LoadConfig())
	if err != nil {
		return nil, err
	}
	return u.Solve(ctx, sampler)
}

// decode reconstructs the integer vector from a binary assignment.
func decode(vars []*encode.LogIntVar, assignment map[string]int) ([]float64, error) {
	x := make([]float64, len(vars))
	for i, v := range vars {
		xi, err := v.Decode(assignment)
		if err != nil {
			return nil, err
		}
		x[i] = float64(xi)
	}
	return x, nil
}

// lexLess reports whether a precedes b lexicographically.
func lexLess(a, b []float64) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}
