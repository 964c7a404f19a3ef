// Package qubo: sentinel error set.
// All back-ends and dispatchers MUST return these sentinels (possibly
// wrapped with fmt.Errorf("ctx: %w", ...)) and tests MUST check them via
// errors.Is. No sampler should panic on user-triggered conditions.

package qubo

import "errors"

var (
	// ErrNilModel indicates that a nil *BQM was submitted to a sampler.
	ErrNilModel = errors.New("qubo: nil binary quadratic model")

	// ErrNoSamples indicates that a sampler returned an empty sample set.
	// This is distinct from ErrSamplerUnavailable: the back-end was
	// reachable but produced no feasible assignment.
	ErrNoSamples = errors.New("qubo: no feasible sample returned")

	// ErrSamplerUnavailable indicates that a sampling back-end could not
	// be reached or refused the submission. Retrying is a caller concern.
	ErrSamplerUnavailable = errors.New("qubo: sampler unavailable")
)
