// SPDX-License-Identifier: MIT

package factor

// Marginalize sums vars out of f.
//
// The result scope is f's scope minus vars, order preserved. Each result
// entry is the exact sum of f over every assignment of the removed
// variables. Marginalizing an empty list returns a copy of f.
//
// Errors:
//   - ErrUnknownVariable  - some v in vars is not in f's scope.
//   - ErrEmptyResultScope - vars covers the whole scope.
//
// Implementation:
//   - Stage 1: split f's positions into kept and removed, with f's strides for each.
//   - Stage 2: per result cell, compute the base offset from the kept digits and
//     walk the removed digits with an inner cursor; the inner odometer wraps to
//     offset 0 after a full cycle, so it is reused across cells.
//
// The summation order of each cell is fixed, so results do not depend on
// the number of workers.
// Options: WithWorkers, WithParallelThreshold, WithContext.
// Complexity: O(Π card(f)) time, O(Π card(result)) memory.
func (f *Factor) Marginalize(vars []Variable, opts ...Option) (*Factor, error) {
	if f == nil {
		return nil, newError("Marginalize", KindEmptyInput, "nil factor")
	}
	drop := make(map[VarKey]struct{}, len(vars))
	for _, v := range vars {
		if f.position(v.Key()) < 0 {
			return nil, newError("Marginalize", KindUnknownVariable, "%q not in %s", v.name, f)
		}
		drop[v.Key()] = struct{}{}
	}
	if len(drop) == len(f.scope) {
		return nil, newError("Marginalize", KindEmptyResultScope, "%s", f)
	}

	return f.sumOut("Marginalize", drop, gatherOptions(opts...))
}

// MarginalizeExcept sums out every variable of f that is not in keep.
// Returns ErrUnknownVariable if keep names a variable outside f's scope and
// ErrEmptyResultScope when keep is empty.
func (f *Factor) MarginalizeExcept(keep []Variable, opts ...Option) (*Factor, error) {
	if f == nil {
		return nil, newError("MarginalizeExcept", KindEmptyInput, "nil factor")
	}
	kept := make(map[VarKey]struct{}, len(keep))
	for _, v := range keep {
		if f.position(v.Key()) < 0 {
			return nil, newError("MarginalizeExcept", KindUnknownVariable, "%q not in %s", v.name, f)
		}
		kept[v.Key()] = struct{}{}
	}
	if len(kept) == 0 {
		return nil, newError("MarginalizeExcept", KindEmptyResultScope, "%s", f)
	}
	drop := make(map[VarKey]struct{}, len(f.scope))
	for _, v := range f.scope {
		if _, ok := kept[v.Key()]; !ok {
			drop[v.Key()] = struct{}{}
		}
	}

	return f.sumOut("MarginalizeExcept", drop, gatherOptions(opts...))
}

// sumOut is the shared kernel; drop must be a strict subset of f's scope.
func (f *Factor) sumOut(op string, drop map[VarKey]struct{}, o options) (*Factor, error) {
	st := Strides(f.card)
	var (
		scope             []Variable
		keptCard, remCard []int
		keptSt, remSt     []int
	)
	for i, v := range f.scope {
		if _, gone := drop[v.Key()]; gone {
			remCard = append(remCard, f.card[i])
			remSt = append(remSt, st[i])

			continue
		}
		scope = append(scope, v)
		keptCard = append(keptCard, f.card[i])
		keptSt = append(keptSt, st[i])
	}
	remN := product(remCard)

	out := make([]float64, product(keptCard))
	err := forEachChunk(o, len(out), func(lo, hi int) {
		outer := newCursor(keptCard, [][]int{keptSt}, lo)
		inner := newCursor(remCard, [][]int{remSt}, 0)
		for k := lo; k < hi; k++ {
			base := outer.idx[0]
			var s float64
			for r := 0; r < remN; r++ {
				s += f.prob[base+inner.idx[0]]
				inner.advance()
			}
			out[k] = s
			outer.advance()
		}
	})
	if err != nil {
		return nil, withOp(op, err)
	}

	return build(scope, keptCard, out), nil
}
