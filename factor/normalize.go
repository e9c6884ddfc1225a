// SPDX-License-Identifier: MIT

package factor

import "math"

// Renormalize returns f scaled so its entries sum to one.
// If the current sum is within the tolerance of 1 the receiver itself is
// returned (factors are immutable, so sharing is safe). This also makes
// Renormalize idempotent.
//
// Errors: ErrDegenerateFactor when every entry is zero.
// Options: WithTolerance.
// Complexity: O(len(prob)).
func (f *Factor) Renormalize(opts ...Option) (*Factor, error) {
	o := gatherOptions(opts...)
	sum := f.Total()
	if sum == 0 {
		return nil, newError("Renormalize", KindDegenerateFactor, "%s", f)
	}
	if math.Abs(sum-1) <= o.eps {
		return f, nil
	}

	out := make([]float64, len(f.prob))
	for i, p := range f.prob {
		out[i] = p / sum
	}

	return build(f.scope, f.Card(), out), nil
}

// NormalizeConditional makes every block of entries that differ only in the
// first n scope variables sum to one. With n == len(scope) it equals
// Renormalize except that an all-zero table is returned unchanged instead of
// failing. Blocks summing to zero are left as zeros.
//
// This is how a conditional distribution P(X_0..X_{n-1} | rest) is produced
// from a table laid out with the conditioned variables first.
//
// Errors: ErrOutOfRange when n is outside [1, len(scope)].
// Complexity: O(len(prob)).
func (f *Factor) NormalizeConditional(n int) (*Factor, error) {
	if n < 1 || n > len(f.scope) {
		return nil, newError("NormalizeConditional", KindOutOfRange,
			"n=%d, scope has %d variables", n, len(f.scope))
	}
	block := product(f.card[:n])

	out := make([]float64, len(f.prob))
	for off := 0; off < len(f.prob); off += block {
		var s float64
		for i := off; i < off+block; i++ {
			s += f.prob[i]
		}
		if s == 0 {
			continue
		}
		for i := off; i < off+block; i++ {
			out[i] = f.prob[i] / s
		}
	}

	return build(f.scope, f.Card(), out), nil
}

// IsConditional reports whether every block over the first n scope variables
// sums to one within the tolerance (blocks of all zeros are rejected).
// Returns false for n outside [1, len(scope)].
func (f *Factor) IsConditional(n int, opts ...Option) bool {
	if n < 1 || n > len(f.scope) {
		return false
	}
	o := gatherOptions(opts...)
	block := product(f.card[:n])
	for off := 0; off < len(f.prob); off += block {
		var s float64
		for i := off; i < off+block; i++ {
			s += f.prob[i]
		}
		if math.Abs(s-1) > o.eps {
			return false
		}
	}

	return true
}
