package unfold_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/qunfold/qunfold/qubo"
	"github.com/qunfold/qunfold/unfold"
)

// identity returns the n×n identity matrix.
func identity(n int) *mat.Dense {
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}

// smearing is a noisy diagonal-plus-off-diagonal 3×3 response.
func smearing() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		0.8, 0.2, 0,
		0.1, 0.8, 0.1,
		0, 0.2, 0.8,
	})
}

// curvature computes ‖G·x‖² for the second-difference matrix G.
func curvature(x []float64) float64 {
	g := unfold.Laplacian(len(x))
	gx := mat.NewVecDense(len(x), nil)
	gx.MulVec(g, mat.NewVecDense(len(x), x))
	return mat.Dot(gx, gx)
}

// TestNew_Validation covers the fail-fast construction sentinels.
func TestNew_Validation(t *testing.T) {
	_, err := unfold.New(nil, []float64{1}, 0)
	assert.ErrorIs(t, err, unfold.ErrNilResponse)

	_, err = unfold.New(identity(2), nil, 0)
	assert.ErrorIs(t, err, unfold.ErrEmptyMeasured)

	// 3 response rows vs 2 measured bins must fail before any encoding.
	_, err = unfold.New(mat.NewDense(3, 2, nil), []float64{1, 2}, 0)
	assert.ErrorIs(t, err, unfold.ErrShapeMismatch)

	_, err = unfold.New(identity(2), []float64{1, 2}, -0.1)
	assert.ErrorIs(t, err, unfold.ErrNegativeLambda)
}

// TestNew_ReportsZeroRows verifies the observable zero-row diagnostic.
func TestNew_ReportsZeroRows(t *testing.T) {
	r := mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, 0, 0,
		0, 2, 2,
	})
	u, err := unfold.New(r, []float64{4, 1, 2}, 0)
	require.NoError(t, err)

	assert.Equal(t, []int{1}, u.ZeroRows())
	assert.Equal(t, 3, u.Bins())
}

// TestSolveSimulatedAnnealing_InvalidNumReads verifies rejection at the
// call boundary, not inside model construction.
func TestSolveSimulatedAnnealing_InvalidNumReads(t *testing.T) {
	u, err := unfold.New(identity(2), []float64{3, 1}, 0)
	require.NoError(t, err)

	_, err = u.SolveSimulatedAnnealing(0, 42)
	assert.ErrorIs(t, err, unfold.ErrInvalidNumReads)
}

// TestSolve_NilSampler verifies the nil-sampler sentinel.
func TestSolve_NilSampler(t *testing.T) {
	u, err := unfold.New(identity(2), []float64{3, 1}, 0)
	require.NoError(t, err)

	_, err = u.Solve(context.Background(), nil)
	assert.ErrorIs(t, err, unfold.ErrNilSampler)
}

// TestSolve_DimensionalConsistency verifies that both solving paths
// return a vector of length n (response columns) for a non-square R.
func TestSolve_DimensionalConsistency(t *testing.T) {
	// 4 measured bins × 3 truth bins.
	r := mat.NewDense(4, 3, []float64{
		0.7, 0.2, 0.1,
		0.2, 0.6, 0.2,
		0.1, 0.2, 0.7,
		0.3, 0.3, 0.4,
	})
	d := []float64{5, 3, 2, 1}

	u, err := unfold.New(r, d, 0)
	require.NoError(t, err)

	x, err := u.SolveSimulatedAnnealing(10, 1)
	require.NoError(t, err)
	assert.Len(t, x, 3)

	x, err = u.SolveHybrid(context.Background())
	require.NoError(t, err)
	assert.Len(t, x, 3)
}

// TestSolveSimulatedAnnealing_DeterministicUnderSeed verifies the fixed
// seed reproducibility contract.
func TestSolveSimulatedAnnealing_DeterministicUnderSeed(t *testing.T) {
	u, err := unfold.New(smearing(), []float64{5, 3, 2}, 0.1)
	require.NoError(t, err)

	first, err := u.SolveSimulatedAnnealing(20, 1234)
	require.NoError(t, err)
	second, err := u.SolveSimulatedAnnealing(20, 1234)
	require.NoError(t, err)

	assert.Equal(t, first, second, "identical inputs + seed must reproduce the vector")
}

// TestSolve_IdentityResponse is the end-to-end scenario: with R = I and
// d = [10,0,0] the data term is minimized at the measured values,
// truncated to the shared encoding bound 2^⌊log2(10)⌋−1 = 7.
func TestSolve_IdentityResponse(t *testing.T) {
	u, err := unfold.New(identity(3), []float64{10, 0, 0}, 0)
	require.NoError(t, err)

	x, err := u.SolveHybrid(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []float64{7, 0, 0}, x, "hybrid path must hit the truncated optimum exactly")

	x, err = u.SolveSimulatedAnnealing(30, 7)
	require.NoError(t, err)
	assert.Equal(t, []float64{7, 0, 0}, x, "annealing path must find the same optimum")
}

// TestSolve_RegularizationSmooths verifies that raising lam strictly
// reduces the second-difference norm of the solution.
func TestSolve_RegularizationSmooths(t *testing.T) {
	d := []float64{7, 0, 7}

	rough, err := unfold.New(smearing(), d, 0)
	require.NoError(t, err)
	xRough, err := rough.SolveHybrid(context.Background())
	require.NoError(t, err)

	smooth, err := unfold.New(smearing(), d, 100)
	require.NoError(t, err)
	xSmooth, err := smooth.SolveHybrid(context.Background())
	require.NoError(t, err)

	assert.Less(t, curvature(xSmooth), curvature(xRough),
		"lam=100 solution must be strictly smoother than lam=0 (got %v vs %v)", xSmooth, xRough)
}

// stubSampler returns a canned sample set or error; it stands in for a
// back-end so dispatcher behavior is testable in isolation.
type stubSampler struct {
	set *qubo.SampleSet
	err error
}

func (s *stubSampler) Sample(context.Context, *qubo.BQM) (*qubo.SampleSet, error) {
	return s.set, s.err
}

// TestSolve_SamplerErrorPropagates verifies that back-end failures
// surface distinguishably and yield no partial vector.
func TestSolve_SamplerErrorPropagates(t *testing.T) {
	u, err := unfold.New(identity(2), []float64{2, 2}, 0)
	require.NoError(t, err)

	unreachable := fmt.Errorf("stub: %w", qubo.ErrSamplerUnavailable)
	x, err := u.Solve(context.Background(), &stubSampler{err: unreachable})
	assert.ErrorIs(t, err, qubo.ErrSamplerUnavailable)
	assert.Nil(t, x, "failed solve must not yield a partial vector")

	x, err = u.Solve(context.Background(), &stubSampler{set: &qubo.SampleSet{}})
	assert.ErrorIs(t, err, qubo.ErrNoSamples, "empty set must be distinct from unavailability")
	assert.Nil(t, x)

	assert.False(t, errors.Is(unreachable, qubo.ErrNoSamples),
		"the two failure modes must not alias each other")
}

// TestSolve_TieBreakLexicographic verifies the deterministic secondary
// tie-break: among equal-energy samples the lexicographically smallest
// decoded vector wins regardless of sampler order.
func TestSolve_TieBreakLexicographic(t *testing.T) {
	// Σd = 4 → shared bound 3 → two bits per bin: x0[0], x0[1], x1[0], x1[1].
	u, err := unfold.New(identity(2), []float64{2, 2}, 0)
	require.NoError(t, err)

	high := map[string]int{"x0[0]": 0, "x0[1]": 1, "x1[0]": 0, "x1[1]": 0} // decodes (2,0)
	low := map[string]int{"x0[0]": 0, "x0[1]": 0, "x1[0]": 0, "x1[1]": 1}  // decodes (0,2)
	set := &qubo.SampleSet{Samples: []qubo.Sample{
		{Assignment: high, Energy: -1},
		{Assignment: low, Energy: -1},
	}}

	x, err := u.Solve(context.Background(), &stubSampler{set: set})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2}, x, "lexicographic tie-break must pick (0,2) over (2,0)")
}
