// SPDX-License-Identifier: MIT

package factor

// Value returns f at the assignment a. Each scope variable must be present in
// a, given either as a domain index (int) or as a label (string). Entries of a
// for variables outside f's scope are ignored.
//
// Errors: ErrIncompleteAssignment, ErrOutOfRange, ErrUnknownValue.
// Complexity: O(n) for n=len(scope).
func (f *Factor) Value(a Assignment) (float64, error) {
	idx, mul := 0, 1
	for i, v := range f.scope {
		raw, ok := a[v.Key()]
		if !ok {
			return 0, newError("Value", KindIncompleteAssignment, "missing %q", v.name)
		}
		d, err := v.resolve("Value", raw)
		if err != nil {
			return 0, err
		}
		idx += d * mul
		mul *= f.card[i]
	}

	return f.prob[idx], nil
}

// ValueAt returns f at the positional assignment indices (scope order).
// Returns ErrOutOfRange for a wrong length or an out-of-domain index.
func (f *Factor) ValueAt(indices ...int) (float64, error) {
	idx, err := AssignmentToIndex(indices, f.card)
	if err != nil {
		return 0, withOp("ValueAt", err)
	}

	return f.prob[idx], nil
}

// Reduce conditions f on evidence e by zeroing every entry whose assignment
// disagrees with e on some evidence variable; consistent entries are copied.
// Scope and shape never change. Evidence for variables outside f's scope is
// ignored, so the same evidence map can be applied to every factor of a model.
//
// Implementation:
//   - Stage 1: resolve the in-scope evidence into a subscope and the flat
//     index the evidence occupies in that subscope's table.
//   - Stage 2: project every assignment of f onto the evidence subscope and
//     keep the entry only when the projected index matches.
//
// Errors: ErrOutOfRange / ErrUnknownValue for malformed in-scope evidence.
// Complexity: O(Π card · |evidence ∩ scope|).
func (f *Factor) Reduce(e Assignment) (*Factor, error) {
	var (
		evScope []Variable
		target  []int
	)
	for _, v := range f.scope {
		raw, ok := e[v.Key()]
		if !ok {
			continue
		}
		d, err := v.resolve("Reduce", raw)
		if err != nil {
			return nil, err
		}
		evScope = append(evScope, v)
		target = append(target, d)
	}

	out := make([]float64, len(f.prob))
	if len(evScope) == 0 {
		copy(out, f.prob)

		return build(f.scope, f.Card(), out), nil
	}

	want, err := AssignmentToIndex(target, cardsOf(evScope))
	if err != nil {
		return nil, withOp("Reduce", err)
	}
	proj, err := NewProjector(f.scope, evScope)
	if err != nil {
		return nil, withOp("Reduce", err)
	}
	for proj.Next() {
		if proj.ProjectionIndex(0) == want {
			k := proj.BaseIndex()
			out[k] = f.prob[k]
		}
	}

	return build(f.scope, f.Card(), out), nil
}
