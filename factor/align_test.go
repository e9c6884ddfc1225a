// SPDX-License-Identifier: MIT

package factor_test

import (
	"testing"

	"github.com/katalvlaran/lvfactor/factor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestReorder_PreservesFunction permutes a scope and re-reads every entry.
func TestReorder_PreservesFunction(t *testing.T) {
	n := newBurglary(t)

	r, err := n.fA.Reorder(vars(n.E, n.A, n.B))
	require.NoError(t, err)
	assert.Equal(t, []string{"Earthquake", "Alarm", "Burglary"}, names(r.Scope()))
	assert.True(t, r.ApproxEqual(n.fA))

	it := factor.NewAssignmentIterator(n.fA.Scope())
	for it.Next() {
		a := it.Assignment()
		want, err := n.fA.ValueAt(a...)
		require.NoError(t, err)
		got, err := r.ValueAt(a[2], a[0], a[1])
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err = n.fA.Reorder(vars(n.A, n.B))
	assert.ErrorIs(t, err, factor.ErrScopeMismatch)
	_, err = n.fA.Reorder(vars(n.A, n.B, n.J))
	assert.ErrorIs(t, err, factor.ErrScopeMismatch)
}

// TestSum_AlignsScopes adds factors whose scopes are in different orders.
func TestSum_AlignsScopes(t *testing.T) {
	x := factor.MustVariable("X", "x0", "x1")
	y := factor.MustVariable("Y", "y0", "y1", "y2")
	f := factor.MustNew(vars(x, y), []float64{1, 2, 3, 4, 5, 6})
	g := factor.MustNew(vars(y, x), []float64{10, 30, 50, 20, 40, 60})

	s, err := factor.Sum(f, g)
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Y"}, names(s.Scope()))
	assert.Equal(t, []float64{11, 22, 33, 44, 55, 66}, s.Prob())

	one, err := factor.Sum(f)
	require.NoError(t, err)
	assert.Equal(t, f.Prob(), one.Prob())

	_, err = factor.Sum()
	assert.ErrorIs(t, err, factor.ErrEmptyInput)
	_, err = factor.Sum(f, factor.MustNew(vars(x), []float64{1, 1}))
	assert.ErrorIs(t, err, factor.ErrScopeMismatch)
}

// TestApproxEqual covers tolerance and variable-set mismatches.
func TestApproxEqual(t *testing.T) {
	x := factor.MustVariable("X", "x0", "x1")
	y := factor.MustVariable("Y", "y0", "y1")
	f := factor.MustNew(vars(x), []float64{0.3, 0.7})
	g := factor.MustNew(vars(x), []float64{0.3 + 1e-6, 0.7})

	assert.False(t, f.ApproxEqual(g))
	assert.True(t, f.ApproxEqual(g, factor.WithTolerance(1e-5)))
	assert.False(t, f.ApproxEqual(factor.MustNew(vars(y), []float64{0.3, 0.7})))
	assert.False(t, f.ApproxEqual(nil))
}

// TestNormalizeConditional builds a CPD from raw counts.
func TestNormalizeConditional(t *testing.T) {
	w := factor.MustVariable("Wet", "w0", "w1")
	r := factor.MustVariable("Rain", "r0", "r1")
	counts := factor.MustNew(vars(w, r), []float64{3, 1, 0, 0})

	cpd, err := counts.NormalizeConditional(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.75, 0.25, 0, 0}, cpd.Prob(), "zero block stays zero")
	assert.False(t, cpd.IsConditional(1), "zero block is not a distribution")

	full, err := factor.MustNew(vars(w, r), []float64{1, 1, 1, 1}).NormalizeConditional(2)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.25, 0.25, 0.25, 0.25}, full.Prob())
	assert.True(t, full.IsConditional(2))

	_, err = counts.NormalizeConditional(0)
	assert.ErrorIs(t, err, factor.ErrOutOfRange)
	_, err = counts.NormalizeConditional(3)
	assert.ErrorIs(t, err, factor.ErrOutOfRange)
	assert.False(t, counts.IsConditional(3))

	n := newBurglary(t)
	assert.True(t, n.fA.IsConditional(1), "alarm CPD rows sum to one")
	assert.True(t, n.fJ.IsConditional(1))
}
