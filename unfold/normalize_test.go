package unfold_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/qunfold/qunfold/unfold"
)

// TestNormalize_RawCounts verifies that a counts matrix becomes
// row-stochastic.
func TestNormalize_RawCounts(t *testing.T) {
	m := mat.NewDense(2, 3, []float64{
		2, 2, 4,
		1, 0, 3,
	})

	norm, zero := unfold.Normalize(m)
	assert.Empty(t, zero, "no zero rows in the input")
	assert.InDelta(t, 0.25, norm.At(0, 0), 1e-12)
	assert.InDelta(t, 0.5, norm.At(0, 2), 1e-12)
	for i := 0; i < 2; i++ {
		sum := 0.0
		for j := 0; j < 3; j++ {
			sum += norm.At(i, j)
		}
		assert.InDelta(t, 1.0, sum, 1e-12, "row %d must sum to 1", i)
	}
}

// TestNormalize_Idempotent verifies that an already row-stochastic
// matrix comes back unchanged and that normalizing twice equals once.
func TestNormalize_Idempotent(t *testing.T) {
	m := mat.NewDense(2, 2, []float64{
		0.7, 0.3,
		0.1, 0.9,
	})

	once, _ := unfold.Normalize(m)
	assert.True(t, mat.EqualApprox(m, once, 1e-12), "stochastic input must be untouched")

	twice, _ := unfold.Normalize(once)
	assert.True(t, mat.EqualApprox(once, twice, 1e-12), "normalization must be idempotent")
}

// TestNormalize_ZeroRowSafety verifies the deliberate zero-row no-op:
// no error, the row stays all-zero, and the skip is observable.
func TestNormalize_ZeroRowSafety(t *testing.T) {
	m := mat.NewDense(3, 2, []float64{
		1, 3,
		0, 0,
		5, 5,
	})

	norm, zero := unfold.Normalize(m)
	assert.Equal(t, []int{1}, zero, "zero row index must be reported")
	assert.Equal(t, 0.0, norm.At(1, 0))
	assert.Equal(t, 0.0, norm.At(1, 1))
	assert.InDelta(t, 0.25, norm.At(0, 0), 1e-12, "non-zero rows still normalize")
	assert.InDelta(t, 0.5, norm.At(2, 1), 1e-12)
}

// TestNormalize_InputNotMutated verifies the private-copy contract.
func TestNormalize_InputNotMutated(t *testing.T) {
	m := mat.NewDense(1, 2, []float64{2, 6})
	orig := mat.DenseCopyOf(m)

	norm, _ := unfold.Normalize(m)
	require.True(t, mat.Equal(orig, m), "caller's matrix must never be mutated")
	assert.InDelta(t, 0.25, norm.At(0, 0), 1e-12)
}
