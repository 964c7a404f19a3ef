// Package encode - log-encoded integer variables.
//
// Design principles:
//   - Stable labels: sub-variable b of variable "x3" is always "x3[b]";
//     decoding needs nothing beyond these labels and the weights.
//   - Determinism: weight layout depends only on the upper bound; two
//     variables with the same bound have identical bit structure.
//   - Strict sentinels: decoding a sample that lacks one of the variable's
//     bits is a contract violation surfaced as ErrUnassignedBit.

package encode

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNegativeBound indicates an upper bound below zero.
	ErrNegativeBound = errors.New("encode: upper bound must be >= 0")

	// ErrEmptyLabel indicates an empty variable label.
	ErrEmptyLabel = errors.New("encode: variable label must be non-empty")

	// ErrUnassignedBit indicates a sample that does not assign every
	// sub-variable of the integer being decoded.
	ErrUnassignedBit = errors.New("encode: sample missing sub-variable assignment")
)

// LogIntVar is one log-encoded integer variable over the closed range
// [0, upper]. Immutable after construction.
type LogIntVar struct {
	label   string
	upper   int
	weights []int
	labels  []string
}

// NewLogIntVar constructs a log-encoded integer variable named label
// over [0, upper].
//
// Weight layout: powers of two 1, 2, 4, ... while the running maximum
// stays below upper, then one final weight upper − (2^d − 1) when a
// remainder is needed, so that the maximum reachable sum is exactly
// upper. upper == 0 yields a degenerate variable with no bits that
// always decodes to 0.
//
// Complexity: O(log2 upper).
func NewLogIntVar(label string, upper int) (*LogIntVar, error) {
	if label == "" {
		return nil, ErrEmptyLabel
	}
	if upper < 0 {
		return nil, ErrNegativeBound
	}

	var weights []int
	reach := 0 // maximum value representable by the weights so far
	for w := 1; reach+w <= upper; w *= 2 {
		weights = append(weights, w)
		reach += w
	}
	if reach < upper {
		weights = append(weights, upper-reach)
	}

	labels := make([]string, len(weights))
	for b := range weights {
		labels[b] = fmt.Sprintf("%s[%d]", label, b)
	}
	return &LogIntVar{label: label, upper: upper, weights: weights, labels: labels}, nil
}

// Label returns the variable's base label.
func (v *LogIntVar) Label() string { return v.label }

// Upper returns the inclusive upper bound of the encoded range.
func (v *LogIntVar) Upper() int { return v.upper }

// Labels returns the sub-variable labels in positional order.
// The returned slice is shared; callers must not mutate it.
func (v *LogIntVar) Labels() []string { return v.labels }

// Weights returns the positional weights in the same order as Labels.
// The returned slice is shared; callers must not mutate it.
func (v *LogIntVar) Weights() []int { return v.weights }

// Encode returns the bit assignment (label → 0/1) representing value x.
// Values outside [0, upper] are clamped into range before encoding;
// greedy most-significant-first digit extraction is exact for this
// weight layout.
// Complexity: O(log2 upper).
func (v *LogIntVar) Encode(x int) map[string]int {
	if x < 0 {
		x = 0
	}
	if x > v.upper {
		x = v.upper
	}
	bits := make(map[string]int, len(v.weights))
	rest := x
	for b := len(v.weights) - 1; b >= 0; b-- {
		if rest >= v.weights[b] {
			bits[v.labels[b]] = 1
			rest -= v.weights[b]
		} else {
			bits[v.labels[b]] = 0
		}
	}
	return bits
}

// Decode reconstructs the integer value from a sampler assignment by
// summing the positional weights of the set bits. Every sub-variable of
// v must be present in the assignment.
// Complexity: O(log2 upper).
func (v *LogIntVar) Decode(assignment map[string]int) (int, error) {
	x := 0
	for b, lbl := range v.labels {
		bit, ok := assignment[lbl]
		if !ok {
			return 0, fmt.Errorf("decode %s: %w", lbl, ErrUnassignedBit)
		}
		if bit == 1 {
			x += v.weights[b]
		}
	}
	return x, nil
}

// SharedBound computes the common encoding bound used for every truth
// bin: 2^⌊log2(Σd)⌋ − 1 for Σd ≥ 1, and 0 when the measured vector
// carries no counts (nothing to distribute, every bin decodes to 0).
// Complexity: O(len(measured)).
func SharedBound(measured []float64) int {
	total := 0.0
	for _, d := range measured {
		total += d
	}
	if total < 1 {
		return 0
	}
	exp := math.Floor(math.Log2(total))
	return int(math.Pow(2, exp)) - 1
}
