// SPDX-License-Identifier: MIT

package factor

// Multiply returns the factor product f·g.
//
// The result scope is f's variables followed by g's variables not already in
// f, each group in its original relative order. Every result entry is the
// product of f and g evaluated at the result assignment projected onto their
// own scopes. Disjoint scopes yield the outer product; identical scopes yield
// the point-wise product.
//
// Implementation:
//   - Stage 1: build the union scope and, per result position, the stride it
//     contributes to f's and to g's flat index (0 if the operand lacks it).
//   - Stage 2: walk result cells in chunks; each chunk positions a cursor at
//     its first cell and advances both operand indices incrementally.
//   - Stage 3: re-validate the table and return a fresh Factor.
//
// Options: WithWorkers, WithParallelThreshold, WithContext.
// Complexity: O(Π card(result)) time and memory.
func (f *Factor) Multiply(g *Factor, opts ...Option) (*Factor, error) {
	if f == nil || g == nil {
		return nil, newError("Multiply", KindEmptyInput, "nil factor")
	}
	o := gatherOptions(opts...)

	scope, err := union(f.scope, g.scope)
	if err != nil {
		return nil, err
	}
	card := cardsOf(scope)
	if _, ok := checkedProduct(card); !ok {
		return nil, newError("Multiply", KindTableTooLarge, "%s times %s", f, g)
	}
	strides := [][]int{operandStrides(scope, f), operandStrides(scope, g)}

	out := make([]float64, product(card))
	err = forEachChunk(o, len(out), func(lo, hi int) {
		c := newCursor(card, strides, lo)
		for k := lo; k < hi; k++ {
			out[k] = f.prob[c.idx[0]] * g.prob[c.idx[1]]
			c.advance()
		}
	})
	if err != nil {
		return nil, withOp("Multiply", err)
	}

	return finish("Multiply", scope, card, out)
}

// MultiplyAll folds Multiply over fs from left to right.
// Returns ErrEmptyInput when fs is empty. A single factor is returned as is.
func MultiplyAll(fs []*Factor, opts ...Option) (*Factor, error) {
	if len(fs) == 0 {
		return nil, newError("MultiplyAll", KindEmptyInput, "no factors")
	}
	acc := fs[0]
	if acc == nil {
		return nil, newError("MultiplyAll", KindEmptyInput, "nil factor at 0")
	}
	for i := 1; i < len(fs); i++ {
		next, err := acc.Multiply(fs[i], opts...)
		if err != nil {
			return nil, withOp("MultiplyAll", err)
		}
		acc = next
	}

	return acc, nil
}

// union returns a followed by the members of b not present in a.
// A shared name with a different cardinality is ErrScopeMismatch.
func union(a, b []Variable) ([]Variable, error) {
	seen := make(map[VarKey]int, len(a))
	out := make([]Variable, 0, len(a)+len(b))
	for _, v := range a {
		seen[v.Key()] = v.Card()
		out = append(out, v)
	}
	for _, v := range b {
		card, ok := seen[v.Key()]
		switch {
		case !ok:
			out = append(out, v)
		case card != v.Card():
			return nil, newError("Multiply", KindScopeMismatch,
				"%q has %d values on one side and %d on the other", v.name, card, v.Card())
		}
	}

	return out, nil
}

// cardsOf returns the cardinalities of scope.
func cardsOf(scope []Variable) []int {
	card := make([]int, len(scope))
	for i, v := range scope {
		card[i] = v.Card()
	}

	return card
}

// operandStrides maps each position of scope to the stride of the same
// variable in f's table, or 0 when f does not hold it.
func operandStrides(scope []Variable, f *Factor) []int {
	fs := Strides(f.card)
	out := make([]int, len(scope))
	for p, v := range scope {
		if i := f.position(v.Key()); i >= 0 {
			out[p] = fs[i]
		}
	}

	return out
}

// finish re-checks the non-negativity invariant on a freshly computed table
// (0·Inf produces NaN) and wraps it in a Factor.
func finish(op string, scope []Variable, card []int, prob []float64) (*Factor, error) {
	for i, p := range prob {
		if !(p >= 0) {
			return nil, newError(op, KindNegativeProbability, "entry %d is %v", i, p)
		}
	}

	return build(scope, card, prob), nil
}
