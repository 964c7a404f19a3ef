// Package anneal - Metropolis single-bit-flip annealing over a BQM.

package anneal

import (
	"context"
	"fmt"
	"math"

	"github.com/qunfold/qunfold/qubo"
)

// neighbor is one incident quadratic term of a variable.
type neighbor struct {
	idx  int     // index of the other endpoint in canonical variable order
	bias float64 // quadratic coefficient
}

// Sampler is the simulated annealing back-end. It is stateless across
// calls; all randomness is derived from Options.Seed per call, so a
// single Sampler may serve concurrent Sample calls.
type Sampler struct {
	opts Options
}

// New constructs a Sampler after validating opts.
// Errors: ErrInvalidNumReads, ErrInvalidSweeps, ErrInvalidBetaRange.
func New(opts Options) (*Sampler, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &Sampler{opts: opts}, nil
}

// Sample runs NumReads independent annealing reads over m and returns
// one sample per read, in read order. It implements qubo.Sampler.
//
// Stage 1 - flatten the model into index-based arrays (canonical sorted
// variable order) for O(1) flip deltas.
// Stage 2 - per read: random start, Sweeps Metropolis passes under a
// geometric β schedule, then score the final assignment.
// Stage 3 - assemble the sample set.
//
// ctx is checked between reads; cancellation aborts the whole call with
// no partial set.
func (s *Sampler) Sample(ctx context.Context, m *qubo.BQM) (*qubo.SampleSet, error) {
	if m == nil {
		return nil, qubo.ErrNilModel
	}

	vars := m.Variables()
	n := len(vars)
	if n == 0 {
		// A constant model has exactly one (empty) assignment.
		return &qubo.SampleSet{Samples: []qubo.Sample{{
			Assignment: map[string]int{},
			Energy:     m.Offset(),
		}}}, nil
	}

	// Stage 1 - index-based view of the model.
	index := make(map[string]int, n)
	for i, v := range vars {
		index[v] = i
	}
	h := make([]float64, n)
	for i, v := range vars {
		h[i] = m.Linear(v)
	}
	adj := make([][]neighbor, n)
	m.Interactions(func(u, v string, bias float64) {
		ui, vi := index[u], index[v]
		adj[ui] = append(adj[ui], neighbor{idx: vi, bias: bias})
		adj[vi] = append(adj[vi], neighbor{idx: ui, bias: bias})
	})

	betaHot, betaCold := s.betaRange(h, adj)

	// Stage 2 - independent reads.
	set := &qubo.SampleSet{Samples: make([]qubo.Sample, 0, s.opts.NumReads)}
	state := make([]int, n)
	for r := 0; r < s.opts.NumReads; r++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("anneal: interrupted: %w", err)
		}

		rng := readRNG(s.opts.Seed, r)
		for i := range state {
			state[i] = rng.Intn(2)
		}

		for sweep := 0; sweep < s.opts.Sweeps; sweep++ {
			beta := schedule(betaHot, betaCold, sweep, s.opts.Sweeps)
			for i := 0; i < n; i++ {
				// Energy delta of flipping variable i given its local field.
				field := h[i]
				for _, nb := range adj[i] {
					if state[nb.idx] == 1 {
						field += nb.bias
					}
				}
				delta := field
				if state[i] == 1 {
					delta = -field
				}
				if delta <= 0 || rng.Float64() < math.Exp(-beta*delta) {
					state[i] = 1 - state[i]
				}
			}
		}

		assignment := make(map[string]int, n)
		for i, v := range vars {
			assignment[v] = state[i]
		}
		set.Samples = append(set.Samples, qubo.Sample{
			Assignment: assignment,
			Energy:     m.Energy(assignment),
		})
	}
	return set, nil
}

// schedule returns the inverse temperature for the given sweep under a
// geometric interpolation from hot to cold.
func schedule(hot, cold float64, sweep, sweeps int) float64 {
	if sweeps <= 1 {
		return cold
	}
	t := float64(sweep) / float64(sweeps-1)
	return hot * math.Pow(cold/hot, t)
}

// betaRange returns the β schedule endpoints: the configured range when
// set, otherwise a range derived from the model's local field bounds so
// that the hottest sweep accepts almost any uphill move and the coldest
// sweep is effectively greedy.
func (s *Sampler) betaRange(h []float64, adj [][]neighbor) (hot, cold float64) {
	if s.opts.BetaMin != 0 || s.opts.BetaMax != 0 {
		return s.opts.BetaMin, s.opts.BetaMax
	}

	// Per-variable worst-case flip magnitude: |h_i| + Σ|J_ij|.
	maxField, minField := 0.0, math.Inf(1)
	for i := range h {
		f := math.Abs(h[i])
		for _, nb := range adj[i] {
			f += math.Abs(nb.bias)
		}
		if f > maxField {
			maxField = f
		}
		if f > 0 && f < minField {
			minField = f
		}
	}
	if maxField == 0 {
		// Flat landscape; any schedule is equivalent.
		return 0.1, 10
	}
	if math.IsInf(minField, 1) {
		minField = maxField
	}
	return math.Ln2 / maxField, math.Log(100) / minField
}
