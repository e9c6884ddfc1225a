// SPDX-License-Identifier: MIT

package factor

// AssignmentIterator enumerates every assignment of a scope in encoding order:
// an odometer whose least significant digit is scope[0]. It is lazy, finite
// (exactly Π card steps) and restartable via Reset.
//
// Usage:
//
//	it := factor.NewAssignmentIterator(scope)
//	for it.Next() {
//		a := it.Assignment() // valid until the next call to Next
//		_ = a
//	}
type AssignmentIterator struct {
	card    []int
	cur     []int
	index   int  // flat index of cur; -1 before the first Next
	started bool // Next has been called since construction/Reset
	done    bool
}

// NewAssignmentIterator returns an iterator over every assignment of scope.
func NewAssignmentIterator(scope []Variable) *AssignmentIterator {
	card := make([]int, len(scope))
	for i, v := range scope {
		card[i] = v.Card()
	}

	return newCardIterator(card)
}

// newCardIterator iterates directly over a cardinality vector.
func newCardIterator(card []int) *AssignmentIterator {
	return &AssignmentIterator{card: card, cur: make([]int, len(card)), index: -1}
}

// Next advances to the following assignment and reports whether one exists.
// Complexity: amortized O(1).
func (it *AssignmentIterator) Next() bool {
	if it.done {
		return false
	}
	if !it.started {
		it.started = true
		if product(it.card) == 0 {
			it.done = true

			return false
		}
		it.index = 0

		return true
	}
	// Odometer carry: reset saturated digits, bump the first non-saturated one.
	i := 0
	for i < len(it.cur) && it.cur[i]+1 == it.card[i] {
		it.cur[i] = 0
		i++
	}
	if i == len(it.cur) {
		it.done = true

		return false
	}
	it.cur[i]++
	it.index++

	return true
}

// Assignment returns the current assignment. The slice is owned by the
// iterator and overwritten by Next; copy it to retain.
func (it *AssignmentIterator) Assignment() []int { return it.cur }

// Index returns the flat index of the current assignment.
func (it *AssignmentIterator) Index() int { return it.index }

// Reset rewinds the iterator to before the first assignment.
func (it *AssignmentIterator) Reset() {
	for i := range it.cur {
		it.cur[i] = 0
	}
	it.index = -1
	it.started = false
	it.done = false
}

// Projector walks the assignments of a base scope and, for each, exposes the
// projection of that assignment onto every declared subscope. Position maps
// are computed once, so a projection costs O(len(subscope)) per step; the
// matching flat index in each subscope's table is produced alongside it.
type Projector struct {
	base     *AssignmentIterator
	mappings [][]int // mappings[s][k] = base position of subscope s's k-th variable
	strides  [][]int // strides[s][p]  = contribution of base position p to subscope s's flat index
	proj     [][]int
	idx      []int
}

// NewProjector prepares a projection walk of base onto subscopes.
// Returns ErrSubscopeNotSubset if any subscope holds a variable absent from base,
// and the base-scope validation errors (EmptyScope, DuplicateVariable).
// Complexity: O(|base| * Σ|subscope|) setup.
func NewProjector(base []Variable, subscopes ...[]Variable) (*Projector, error) {
	card, err := validateScope("NewProjector", base)
	if err != nil {
		return nil, err
	}
	pos := make(map[VarKey]int, len(base))
	for i, v := range base {
		pos[v.Key()] = i
	}

	p := &Projector{
		base:     newCardIterator(card),
		mappings: make([][]int, len(subscopes)),
		strides:  make([][]int, len(subscopes)),
		proj:     make([][]int, len(subscopes)),
		idx:      make([]int, len(subscopes)),
	}
	for s, sub := range subscopes {
		m := make([]int, len(sub))
		st := make([]int, len(base))
		mul := 1
		for k, v := range sub {
			bp, ok := pos[v.Key()]
			if !ok {
				return nil, newError("NewProjector", KindSubscopeNotSubset,
					"subscope %d variable %q", s, v.name)
			}
			m[k] = bp
			st[bp] = mul
			mul *= v.Card()
		}
		p.mappings[s] = m
		p.strides[s] = st
		p.proj[s] = make([]int, len(sub))
	}

	return p, nil
}

// Next advances the base assignment and refreshes every projection.
func (p *Projector) Next() bool {
	if !p.base.Next() {
		return false
	}
	a := p.base.Assignment()
	for s, m := range p.mappings {
		idx := 0
		st := p.strides[s]
		for k, bp := range m {
			p.proj[s][k] = a[bp]
			idx += a[bp] * st[bp]
		}
		p.idx[s] = idx
	}

	return true
}

// Base returns the current base assignment (owned by the projector).
func (p *Projector) Base() []int { return p.base.Assignment() }

// BaseIndex returns the flat index of the current base assignment.
func (p *Projector) BaseIndex() int { return p.base.Index() }

// Projection returns the current assignment projected onto subscope s.
func (p *Projector) Projection(s int) []int { return p.proj[s] }

// ProjectionIndex returns the flat index of Projection(s) in subscope s's table.
func (p *Projector) ProjectionIndex(s int) int { return p.idx[s] }

// Reset rewinds the projector.
func (p *Projector) Reset() { p.base.Reset() }
