// SPDX-License-Identifier: MIT

package factor

import "math"

// Reorder returns f with its scope permuted to order. order must contain
// exactly the variables of f. The function is unchanged; only the table
// layout follows the new scope.
//
// Errors: ErrScopeMismatch when order is not a permutation of f's scope,
// plus the usual scope validation errors.
func (f *Factor) Reorder(order []Variable) (*Factor, error) {
	card, err := validateScope("Reorder", order)
	if err != nil {
		return nil, err
	}
	if !sameVariables(f.scope, order) {
		return nil, newError("Reorder", KindScopeMismatch, "%s vs %d variables", f, len(order))
	}
	proj, err := NewProjector(order, f.scope)
	if err != nil {
		return nil, withOp("Reorder", err)
	}
	out := make([]float64, len(f.prob))
	for proj.Next() {
		out[proj.BaseIndex()] = f.prob[proj.ProjectionIndex(0)]
	}

	return build(order, card, out), nil
}

// Sum adds factors defined over the same set of variables. The scope order
// may differ between operands; the result uses the first operand's order.
//
// Errors: ErrEmptyInput for no factors, ErrScopeMismatch when variable sets differ.
// Complexity: O(k · Π card) for k factors.
func Sum(fs ...*Factor) (*Factor, error) {
	if len(fs) == 0 || fs[0] == nil {
		return nil, newError("Sum", KindEmptyInput, "no factors")
	}
	first := fs[0]
	subs := make([][]Variable, len(fs))
	for i, g := range fs {
		if g == nil {
			return nil, newError("Sum", KindEmptyInput, "nil factor at %d", i)
		}
		if !sameVariables(first.scope, g.scope) {
			return nil, newError("Sum", KindScopeMismatch, "%s vs %s", first, g)
		}
		subs[i] = g.scope
	}
	proj, err := NewProjector(first.scope, subs...)
	if err != nil {
		return nil, withOp("Sum", err)
	}

	out := make([]float64, len(first.prob))
	for proj.Next() {
		var s float64
		for i, g := range fs {
			s += g.prob[proj.ProjectionIndex(i)]
		}
		out[proj.BaseIndex()] = s
	}

	return build(first.scope, first.Card(), out), nil
}

// ApproxEqual reports whether f and g are the same function: identical
// variable sets and every aligned entry within the tolerance. Scope order
// does not matter.
// Options: WithTolerance.
func (f *Factor) ApproxEqual(g *Factor, opts ...Option) bool {
	if f == nil || g == nil {
		return f == g
	}
	if !sameVariables(f.scope, g.scope) {
		return false
	}
	o := gatherOptions(opts...)
	proj, err := NewProjector(f.scope, g.scope)
	if err != nil {
		return false
	}
	for proj.Next() {
		if math.Abs(f.prob[proj.BaseIndex()]-g.prob[proj.ProjectionIndex(0)]) > o.eps {
			return false
		}
	}

	return true
}

// sameVariables reports set equality by name, with matching cardinalities.
func sameVariables(a, b []Variable) bool {
	if len(a) != len(b) {
		return false
	}
	in := make(map[VarKey]int, len(a))
	for _, v := range a {
		in[v.Key()] = v.Card()
	}
	for _, v := range b {
		if card, ok := in[v.Key()]; !ok || card != v.Card() {
			return false
		}
	}

	return true
}
