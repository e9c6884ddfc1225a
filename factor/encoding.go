// SPDX-License-Identifier: MIT
// Package factor: mixed-radix assignment <-> flat index encoding.
//
// For card = (c_0, ..., c_{n-1}) and assignment (a_0, ..., a_{n-1}):
//
//	index = Σ a_i * Π_{j<i} c_j
//
// The first position is the least significant digit ("varies fastest").
// These two functions are the only place the encoding is defined; every
// operation derives per-position strides from Strides and walks tables with
// them.

package factor

import "math"

// Strides returns the per-position multipliers of the encoding:
// strides[0]=1, strides[i]=strides[i-1]*card[i-1].
// Complexity: O(n).
func Strides(card []int) []int {
	s := make([]int, len(card))
	m := 1
	for i, c := range card {
		s[i] = m
		m *= c
	}

	return s
}

// product returns Π card (1 for an empty slice).
func product(card []int) int {
	p := 1
	for _, c := range card {
		p *= c
	}

	return p
}

// checkedProduct returns Π card and false when the product overflows int.
func checkedProduct(card []int) (int, bool) {
	p := 1
	for _, c := range card {
		if c > 0 && p > math.MaxInt/c {
			return 0, false
		}
		p *= c
	}

	return p, true
}

// AssignmentToIndex encodes assignment into the flat index for card.
// Stage 1 (Validate): equal lengths and 0 <= assignment[i] < card[i].
// Stage 2 (Execute): accumulate digit * running multiplier.
// Returns ErrOutOfRange on any violation.
// Complexity: O(n).
func AssignmentToIndex(assignment, card []int) (int, error) {
	if len(assignment) != len(card) {
		return 0, newError("AssignmentToIndex", KindOutOfRange,
			"assignment has %d digits, card has %d", len(assignment), len(card))
	}
	idx, mul := 0, 1
	for i, a := range assignment {
		if a < 0 || a >= card[i] {
			return 0, newError("AssignmentToIndex", KindOutOfRange,
				"digit %d is %d, card %d", i, a, card[i])
		}
		idx += a * mul
		mul *= card[i]
	}

	return idx, nil
}

// IndexToAssignment decodes a flat index into an assignment over card.
// Returns ErrOutOfRange when index is outside [0, Π card).
// Complexity: O(n).
func IndexToAssignment(index int, card []int) ([]int, error) {
	size, ok := checkedProduct(card)
	if index < 0 || (ok && index >= size) {
		return nil, newError("IndexToAssignment", KindOutOfRange,
			"index %d, table size %d", index, size)
	}
	out := make([]int, len(card))
	for i, c := range card {
		out[i] = index % c
		index /= c
	}

	return out, nil
}
