// Package qubo - binary quadratic model builder and energy evaluation.
//
// Design principles (shared with the sampling back-ends):
//   - Deterministic: Variables() returns labels in sorted order; no map
//     iteration order ever leaks into results.
//   - Additive accumulation: AddLinear/AddInteraction sum into existing
//     coefficients, so Hamiltonian expansion can emit terms in any order.
//   - Binary algebra: s² = s, hence AddInteraction(v, v, b) folds into the
//     linear coefficient of v.

package qubo

import "sort"

// pair is the canonical (ordered) key for a quadratic coefficient.
// Invariant: pair.u < pair.v under string comparison.
type pair struct {
	u, v string
}

// orderedPair canonicalizes an unordered variable pair.
func orderedPair(u, v string) pair {
	if u < v {
		return pair{u, v}
	}
	return pair{v, u}
}

// BQM is an accumulating binary quadratic model over string-labeled
// binary variables. The zero value is not usable; construct via NewBQM.
type BQM struct {
	linear map[string]float64
	quad   map[pair]float64
	offset float64
}

// NewBQM returns an empty binary quadratic model.
func NewBQM() *BQM {
	return &BQM{
		linear: make(map[string]float64),
		quad:   make(map[pair]float64),
	}
}

// AddLinear adds bias to the linear coefficient of variable v,
// registering v if it was not seen before.
// Complexity: O(1).
func (m *BQM) AddLinear(v string, bias float64) {
	m.linear[v] += bias
}

// AddInteraction adds bias to the quadratic coefficient of the unordered
// pair {u, v}. When u == v the term is s·s = s, so the bias folds into
// the linear coefficient of v instead.
// Complexity: O(1).
func (m *BQM) AddInteraction(u, v string, bias float64) {
	if u == v {
		m.AddLinear(v, bias)
		return
	}
	// Register both endpoints so Variables() sees them even when their
	// linear coefficient is zero.
	if _, ok := m.linear[u]; !ok {
		m.linear[u] = 0
	}
	if _, ok := m.linear[v]; !ok {
		m.linear[v] = 0
	}
	m.quad[orderedPair(u, v)] += bias
}

// AddOffset adds a constant to the model energy.
func (m *BQM) AddOffset(c float64) { m.offset += c }

// Offset returns the constant energy term.
func (m *BQM) Offset() float64 { return m.offset }

// Linear returns the linear coefficient of v (zero if unregistered).
func (m *BQM) Linear(v string) float64 { return m.linear[v] }

// Interaction returns the quadratic coefficient of the unordered pair
// {u, v} (zero if absent; zero for u == v by the folding invariant).
func (m *BQM) Interaction(u, v string) float64 {
	if u == v {
		return 0
	}
	return m.quad[orderedPair(u, v)]
}

// NumVariables reports how many distinct variables the model mentions.
func (m *BQM) NumVariables() int { return len(m.linear) }

// Variables returns all variable labels in ascending string order.
// The order is the canonical variable order used by every back-end.
// Complexity: O(V log V).
func (m *BQM) Variables() []string {
	vars := make([]string, 0, len(m.linear))
	for v := range m.linear {
		vars = append(vars, v)
	}
	sort.Strings(vars)
	return vars
}

// Interactions visits every quadratic term exactly once, in a
// deterministic (sorted pair) order.
// Complexity: O(Q log Q).
func (m *BQM) Interactions(fn func(u, v string, bias float64)) {
	pairs := make([]pair, 0, len(m.quad))
	for p := range m.quad {
		pairs = append(pairs, p)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].u != pairs[j].u {
			return pairs[i].u < pairs[j].u
		}
		return pairs[i].v < pairs[j].v
	})
	for _, p := range pairs {
		fn(p.u, p.v, m.quad[p])
	}
}

// Energy evaluates the model at the given assignment. Variables missing
// from the assignment are treated as 0, matching the convention that an
// unset binary variable contributes nothing.
// Complexity: O(V + Q).
func (m *BQM) Energy(assignment map[string]int) float64 {
	e := m.offset
	for v, h := range m.linear {
		if assignment[v] == 1 {
			e += h
		}
	}
	for p, j := range m.quad {
		if assignment[p.u] == 1 && assignment[p.v] == 1 {
			e += j
		}
	}
	return e
}
