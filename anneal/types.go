package anneal

import "errors"

var (
	// ErrInvalidNumReads indicates NumReads < 1.
	ErrInvalidNumReads = errors.New("anneal: num reads must be >= 1")

	// ErrInvalidSweeps indicates Sweeps < 1.
	ErrInvalidSweeps = errors.New("anneal: sweeps must be >= 1")

	// ErrInvalidBetaRange indicates a non-positive or inverted β range.
	ErrInvalidBetaRange = errors.New("anneal: beta range must satisfy 0 < BetaMin <= BetaMax")
)

// Options configures the simulated annealing sampler.
//
// Fields:
//   - NumReads — number of independent annealing runs; each contributes
//     one sample to the returned set, in read order.
//   - Seed     — deterministic seed; 0 selects a fixed default seed.
//   - Sweeps   — full variable passes per read.
//   - BetaMin, BetaMax — inverse-temperature schedule endpoints. Leaving
//     both at 0 lets the sampler derive a range from the model's
//     coefficient magnitudes.
type Options struct {
	NumReads int
	Seed     int64
	Sweeps   int
	BetaMin  float64
	BetaMax  float64
}

// DefaultOptions returns the sampler defaults: 100 reads, 1000 sweeps,
// auto-derived β range, fixed default seed.
func DefaultOptions() Options {
	return Options{
		NumReads: 100,
		Sweeps:   1000,
	}
}

// validate checks option invariants at the call boundary.
func (o Options) validate() error {
	if o.NumReads < 1 {
		return ErrInvalidNumReads
	}
	if o.Sweeps < 1 {
		return ErrInvalidSweeps
	}
	// Both zero means auto-range; anything else must be a proper range.
	if o.BetaMin != 0 || o.BetaMax != 0 {
		if o.BetaMin <= 0 || o.BetaMax < o.BetaMin {
			return ErrInvalidBetaRange
		}
	}
	return nil
}
