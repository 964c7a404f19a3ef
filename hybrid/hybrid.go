// Package hybrid - decomposition search over a BQM.

package hybrid

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/qunfold/qunfold/qubo"
)

// Sampler is the hybrid back-end. Stateless across calls; safe for
// concurrent Sample calls.
type Sampler struct {
	cfg Config
}

// New constructs a Sampler from cfg with defaults applied.
// Errors: ErrInvalidTimeLimit, ErrInvalidWindow.
func New(cfg Config) (*Sampler, error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return nil, err
	}
	return &Sampler{cfg: cfg}, nil
}

// Sample solves m with the decomposition search and returns a single
// best-effort sample tagged with a fresh job ID. It implements
// qubo.Sampler.
//
// When Config.Endpoint is set the sampler would submit the model to the
// managed remote service; the remote client is not bundled with this
// library, so such a configuration reports the back-end as unavailable
// (wrapping qubo.ErrSamplerUnavailable) rather than silently falling
// back to the local search.
func (s *Sampler) Sample(ctx context.Context, m *qubo.BQM) (*qubo.SampleSet, error) {
	if m == nil {
		return nil, qubo.ErrNilModel
	}
	if s.cfg.Endpoint != "" {
		return nil, fmt.Errorf("hybrid: endpoint %q: %w", s.cfg.Endpoint, qubo.ErrSamplerUnavailable)
	}

	jobID := uuid.NewString()
	vars := m.Variables()
	n := len(vars)
	if n == 0 {
		return &qubo.SampleSet{
			Samples: []qubo.Sample{{Assignment: map[string]int{}, Energy: m.Offset()}},
			JobID:   jobID,
		}, nil
	}

	// Index-based view for cheap energy evaluation.
	index := make(map[string]int, n)
	for i, v := range vars {
		index[v] = i
	}
	h := make([]float64, n)
	for i, v := range vars {
		h[i] = m.Linear(v)
	}
	type edge struct {
		u, v int
		bias float64
	}
	var edges []edge
	m.Interactions(func(u, v string, bias float64) {
		edges = append(edges, edge{index[u], index[v], bias})
	})
	energyOf := func(state []int) float64 {
		e := m.Offset()
		for i, si := range state {
			if si == 1 {
				e += h[i]
			}
		}
		for _, ed := range edges {
			if state[ed.u] == 1 && state[ed.v] == 1 {
				e += ed.bias
			}
		}
		return e
	}

	// Greedy seed: set a variable when its linear bias is attractive,
	// then one descent pass over single flips.
	state := make([]int, n)
	for i := range state {
		if h[i] < 0 {
			state[i] = 1
		}
	}
	best := energyOf(state)
	for i := 0; i < n; i++ {
		state[i] = 1 - state[i]
		if e := energyOf(state); e < best {
			best = e
		} else {
			state[i] = 1 - state[i]
		}
	}

	// Window passes until a full pass yields no improvement.
	w := s.cfg.Window
	if w > n {
		w = n
	}
	step := w / 2
	if step < 1 {
		step = 1
	}
	deadline := time.Now().Add(s.cfg.TimeLimit)
	scratch := make([]int, n)
	for improved := true; improved; {
		improved = false
		for start := 0; start < n; start += step {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("hybrid: interrupted: %w", err)
			}
			if time.Now().After(deadline) {
				improved = false
				break
			}
			end := start + w
			if end > n {
				end = n
				start = end - w
			}
			if e, ok := s.solveWindow(state, scratch, start, end, best, energyOf); ok {
				best = e
				improved = true
			}
			if end == n {
				break
			}
		}
	}

	assignment := make(map[string]int, n)
	for i, v := range vars {
		assignment[v] = state[i]
	}
	return &qubo.SampleSet{
		Samples: []qubo.Sample{{Assignment: assignment, Energy: best}},
		JobID:   jobID,
	}, nil
}

// solveWindow exhaustively enumerates the 2^(end-start) assignments of
// state[start:end] with the remainder frozen, writing the best one back
// into state. Reports whether the window improved on best.
func (s *Sampler) solveWindow(state, scratch []int, start, end int, best float64, energyOf func([]int) float64) (float64, bool) {
	copy(scratch, state)
	width := end - start
	bestMask, found := 0, false
	for mask := 0; mask < 1<<uint(width); mask++ {
		for b := 0; b < width; b++ {
			scratch[start+b] = (mask >> uint(b)) & 1
		}
		if e := energyOf(scratch); e < best {
			best = e
			bestMask = mask
			found = true
		}
	}
	if found {
		for b := 0; b < width; b++ {
			state[start+b] = (bestMask >> uint(b)) & 1
		}
	}
	return best, found
}
