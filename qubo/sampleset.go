// Package qubo - samples, sample sets and the Sampler capability.

package qubo

import "context"

// Sample is one scored binary assignment returned by a sampler.
type Sample struct {
	// Assignment maps variable label → 0/1.
	Assignment map[string]int

	// Energy is the model energy of Assignment as computed by the
	// back-end that produced it.
	Energy float64
}

// SampleSet is an ordered collection of samples. Order is the sampler's
// iteration order (e.g., read order for simulated annealing) and is part
// of the contract: Lowest breaks exact-energy ties by taking the first
// minimum encountered.
type SampleSet struct {
	// Samples in sampler iteration order.
	Samples []Sample

	// JobID is an optional back-end job identifier (set by job-oriented
	// samplers such as the hybrid solver; empty otherwise).
	JobID string
}

// Len reports the number of samples in the set.
func (s *SampleSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Samples)
}

// Lowest returns the first sample with minimum energy.
// Returns ErrNoSamples when the set is nil or empty.
// Complexity: O(n).
func (s *SampleSet) Lowest() (Sample, error) {
	if s.Len() == 0 {
		return Sample{}, ErrNoSamples
	}
	best := s.Samples[0]
	for _, smp := range s.Samples[1:] {
		if smp.Energy < best.Energy {
			best = smp
		}
	}
	return best, nil
}

// LowestAll returns every sample whose energy equals the set minimum,
// preserving iteration order. Callers needing a deterministic tie-break
// across samplers (e.g., lexicographic on a decoded vector) select among
// these. Returns ErrNoSamples when the set is nil or empty.
// Complexity: O(n).
func (s *SampleSet) LowestAll() ([]Sample, error) {
	best, err := s.Lowest()
	if err != nil {
		return nil, err
	}
	var ties []Sample
	for _, smp := range s.Samples {
		if smp.Energy == best.Energy {
			ties = append(ties, smp)
		}
	}
	return ties, nil
}

// Sampler is the single capability every sampling back-end implements:
// accept a binary quadratic model, return a set of scored assignments.
//
// Contracts:
//   - blocking: Sample returns only once the back-end's search budget is
//     exhausted or ctx is done;
//   - all-or-nothing: on error the returned set is nil;
//   - a reachable back-end that finds no assignment returns an error
//     wrapping ErrNoSamples, while connectivity failures wrap
//     ErrSamplerUnavailable.
type Sampler interface {
	Sample(ctx context.Context, m *BQM) (*SampleSet, error)
}
