// SPDX-License-Identifier: MIT

package factor_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/lvfactor/factor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Validation verifies each construction error kind.
func TestNew_Validation(t *testing.T) {
	x := factor.MustVariable("X", "x0", "x1")
	y := factor.MustVariable("Y", "y0", "y1", "y2")

	cases := []struct {
		name  string
		scope []factor.Variable
		prob  []float64
		want  error
	}{
		{"empty scope", nil, []float64{1}, factor.ErrEmptyScope},
		{"duplicate variable", vars(x, x), []float64{1, 1, 1, 1}, factor.ErrDuplicateVariable},
		{"short prob", vars(x, y), []float64{1, 2, 3}, factor.ErrLengthMismatch},
		{"long prob", vars(x), []float64{1, 2, 3}, factor.ErrLengthMismatch},
		{"negative entry", vars(x), []float64{0.5, -0.1}, factor.ErrNegativeProbability},
		{"NaN entry", vars(x), []float64{math.NaN(), 1}, factor.ErrNegativeProbability},
		{"zero-value variable", vars(factor.Variable{}), []float64{}, factor.ErrEmptyDomain},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := factor.New(tc.scope, tc.prob)
			assert.Nil(t, f)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestNew_TableTooLarge rejects scopes whose table size overflows int
// instead of building a factor with a wrapped-around length.
func TestNew_TableTooLarge(t *testing.T) {
	scope := make([]factor.Variable, 64)
	for i := range scope {
		scope[i] = factor.MustVariable(fmt.Sprintf("B%d", i), "0", "1")
	}

	f, err := factor.New(scope, nil)
	assert.Nil(t, f)
	assert.ErrorIs(t, err, factor.ErrTableTooLarge)

	f, err = factor.NewConstant(scope, 1)
	assert.Nil(t, f)
	assert.ErrorIs(t, err, factor.ErrTableTooLarge)

	// 62 binary variables still fit; the length check then applies.
	_, err = factor.New(scope[:62], nil)
	assert.ErrorIs(t, err, factor.ErrLengthMismatch)
}

// TestNew_DuplicateByName checks that identity is the name, not the value.
func TestNew_DuplicateByName(t *testing.T) {
	a := factor.MustVariable("X", "x0", "x1")
	b := factor.MustVariable("X", "x0", "x1")

	_, err := factor.New(vars(a, b), []float64{1, 1, 1, 1})
	require.ErrorIs(t, err, factor.ErrDuplicateVariable)

	var fe *factor.Error
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "New", fe.Op)
	assert.Contains(t, err.Error(), `"X"`)
}

// TestNew_DefensiveCopies ensures neither inputs nor accessor results alias storage.
func TestNew_DefensiveCopies(t *testing.T) {
	x := factor.MustVariable("X", "x0", "x1")
	in := []float64{0.25, 0.75}
	f, err := factor.New(vars(x), in)
	require.NoError(t, err)

	in[0] = 9
	assert.Equal(t, []float64{0.25, 0.75}, f.Prob(), "input slice must be copied")

	out := f.Prob()
	out[1] = 9
	assert.Equal(t, []float64{0.25, 0.75}, f.Prob(), "Prob must return a copy")

	card := f.Card()
	card[0] = 7
	assert.Equal(t, []int{2}, f.Card())

	assert.Equal(t, 2, f.Len())
	v, err := f.At(1)
	require.NoError(t, err)
	assert.Equal(t, 0.75, v)
	_, err = f.At(2)
	assert.ErrorIs(t, err, factor.ErrOutOfRange)
	assert.Equal(t, "factor(X)", f.String())
	assert.True(t, f.Has(x))
}

// TestNewConstant fills every entry and validates the value.
func TestNewConstant(t *testing.T) {
	x := factor.MustVariable("X", "x0", "x1")
	y := factor.MustVariable("Y", "y0", "y1", "y2")

	f, err := factor.NewConstant(vars(x, y), 0.5)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 0.5, 0.5, 0.5, 0.5, 0.5}, f.Prob())
	assert.InDelta(t, 3.0, f.Total(), tol)

	z, err := factor.NewConstant(vars(x), 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0}, z.Prob())

	_, err = factor.NewConstant(vars(x), -1)
	assert.ErrorIs(t, err, factor.ErrNegativeProbability)
	_, err = factor.NewConstant(nil, 1)
	assert.ErrorIs(t, err, factor.ErrEmptyScope)
}

// TestKind_String keeps messages stable for log grepping.
func TestKind_String(t *testing.T) {
	assert.Equal(t, "empty scope", factor.KindEmptyScope.String())
	assert.Equal(t, "Kind(0)", factor.Kind(0).String())
	assert.Nil(t, factor.Kind(99).Sentinel())

	err := &factor.Error{Op: "Renormalize", Kind: factor.KindDegenerateFactor}
	assert.Equal(t, "factor: Renormalize: degenerate factor (sum is zero)", err.Error())
}
