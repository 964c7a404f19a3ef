package unfold

import "errors"

var (
	// ErrNilResponse indicates a nil response matrix.
	ErrNilResponse = errors.New("unfold: response matrix is nil")

	// ErrEmptyMeasured indicates an empty measured vector.
	ErrEmptyMeasured = errors.New("unfold: measured vector must be non-empty")

	// ErrShapeMismatch indicates response rows != measured length.
	ErrShapeMismatch = errors.New("unfold: response rows must equal measured length")

	// ErrNegativeLambda indicates a regularization strength below zero.
	ErrNegativeLambda = errors.New("unfold: regularization strength must be >= 0")

	// ErrInvalidNumReads indicates a non-positive read count for the
	// simulated annealing path.
	ErrInvalidNumReads = errors.New("unfold: num reads must be >= 1")

	// ErrNilSampler indicates a nil sampler passed to Solve.
	ErrNilSampler = errors.New("unfold: sampler is nil")
)

// rowSumTol is the tolerance under which a response row counts as
// already summing to 1.
const rowSumTol = 1e-9
