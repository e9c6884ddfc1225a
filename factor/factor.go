// SPDX-License-Identifier: MIT

package factor

import (
	"math"
	"strings"
)

// Factor is an immutable non-negative function over the assignments of its
// scope, stored as a flat table in mixed-radix order (first variable fastest).
//
// A *Factor never changes after construction and never shares its table with
// another Factor, so it is safe for concurrent readers without locking.
type Factor struct {
	scope []Variable // ordered, duplicate-free, non-empty
	card  []int      // card[i] == scope[i].Card()
	prob  []float64  // len == Π card, every entry >= 0
}

// Assignment maps a variable to either a domain index (int) or a label (string).
// It is the argument of Value and Reduce.
type Assignment map[VarKey]any

// New validates scope and prob and returns a Factor owning a private copy of both.
// Stage 1 (Validate): non-empty scope, no duplicate names.
// Stage 2 (Validate): len(prob) == Π card, no negative/NaN entries.
// Stage 3 (Finalize): copy inputs.
// Complexity: O(n + len(prob)).
func New(scope []Variable, prob []float64) (*Factor, error) {
	card, err := validateScope("New", scope)
	if err != nil {
		return nil, err
	}
	if want := product(card); len(prob) != want {
		return nil, newError("New", KindLengthMismatch, "got %d entries, want %d", len(prob), want)
	}
	for i, p := range prob {
		if !(p >= 0) { // also rejects NaN
			return nil, newError("New", KindNegativeProbability, "entry %d is %v", i, p)
		}
	}

	out := make([]float64, len(prob))
	copy(out, prob)

	return build(scope, card, out), nil
}

// MustNew is New that panics on error. Intended for fixtures and examples.
func MustNew(scope []Variable, prob []float64) *Factor {
	f, err := New(scope, prob)
	if err != nil {
		panic(err)
	}

	return f
}

// NewConstant returns a Factor over scope with every entry equal to v.
// v must be finite and non-negative.
func NewConstant(scope []Variable, v float64) (*Factor, error) {
	card, err := validateScope("NewConstant", scope)
	if err != nil {
		return nil, err
	}
	if !(v >= 0) || math.IsInf(v, 1) {
		return nil, newError("NewConstant", KindNegativeProbability, "value %v", v)
	}
	prob := make([]float64, product(card))
	if v != 0 {
		for i := range prob {
			prob[i] = v
		}
	}

	return build(scope, card, prob), nil
}

// validateScope checks EmptyScope/DuplicateVariable, rejects tables whose
// size overflows int and returns the cardinalities.
func validateScope(op string, scope []Variable) ([]int, error) {
	if len(scope) == 0 {
		return nil, newError(op, KindEmptyScope, "")
	}
	seen := make(map[VarKey]struct{}, len(scope))
	card := make([]int, len(scope))
	for i, v := range scope {
		if v.Card() == 0 {
			return nil, newError(op, KindEmptyDomain, "scope position %d (%q)", i, v.name)
		}
		if _, dup := seen[v.Key()]; dup {
			return nil, newError(op, KindDuplicateVariable, "%q", v.name)
		}
		seen[v.Key()] = struct{}{}
		card[i] = v.Card()
	}
	if _, ok := checkedProduct(card); !ok {
		return nil, newError(op, KindTableTooLarge, "%d variables", len(scope))
	}

	return card, nil
}

// build assembles a Factor from already-validated parts. prob is adopted, not copied.
func build(scope []Variable, card []int, prob []float64) *Factor {
	s := make([]Variable, len(scope))
	copy(s, scope)

	return &Factor{scope: s, card: card, prob: prob}
}

// Scope returns a copy of the ordered scope.
func (f *Factor) Scope() []Variable {
	out := make([]Variable, len(f.scope))
	copy(out, f.scope)

	return out
}

// Card returns a copy of the per-variable cardinalities, in scope order.
func (f *Factor) Card() []int {
	out := make([]int, len(f.card))
	copy(out, f.card)

	return out
}

// Prob returns a copy of the flat probability table.
func (f *Factor) Prob() []float64 {
	out := make([]float64, len(f.prob))
	copy(out, f.prob)

	return out
}

// Len returns the number of table entries (Π card).
func (f *Factor) Len() int { return len(f.prob) }

// At returns the entry at flat index i, or ErrOutOfRange.
func (f *Factor) At(i int) (float64, error) {
	if i < 0 || i >= len(f.prob) {
		return 0, newError("At", KindOutOfRange, "index %d, table size %d", i, len(f.prob))
	}

	return f.prob[i], nil
}

// Total returns the sum of all entries.
func (f *Factor) Total() float64 {
	var s float64
	for _, p := range f.prob {
		s += p
	}

	return s
}

// Has reports whether v is in the scope.
func (f *Factor) Has(v Variable) bool { return f.position(v.Key()) >= 0 }

// position returns the scope position of key, or -1.
func (f *Factor) position(key VarKey) int {
	for i, v := range f.scope {
		if v.Key() == key {
			return i
		}
	}

	return -1
}

// String returns "factor(A, B)".
func (f *Factor) String() string {
	names := make([]string, len(f.scope))
	for i, v := range f.scope {
		names[i] = v.name
	}

	return "factor(" + strings.Join(names, ", ") + ")"
}
