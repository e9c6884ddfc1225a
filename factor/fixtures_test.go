// SPDX-License-Identifier: MIT

package factor_test

import (
	"testing"

	"github.com/katalvlaran/lvfactor/factor"
	"github.com/stretchr/testify/require"
)

// tol is the comparison tolerance for hand-computed probabilities.
const tol = 1e-9

// vars is shorthand for building scopes in tests.
func vars(vs ...factor.Variable) []factor.Variable { return vs }

// burglary is the classic five-node alarm network.
type burglary struct {
	B, E, A, J, M factor.Variable
	fB, fE, fA    *factor.Factor
	fJ, fM        *factor.Factor
}

// newBurglary builds the network; tables follow the encoding order
// (first variable fastest).
func newBurglary(t testing.TB) burglary {
	t.Helper()
	var n burglary
	n.B = factor.MustVariable("Burglary", "b0", "b1")
	n.E = factor.MustVariable("Earthquake", "e0", "e1")
	n.A = factor.MustVariable("Alarm", "a0", "a1")
	n.J = factor.MustVariable("JohnCalls", "j0", "j1")
	n.M = factor.MustVariable("MarryCalls", "m0", "m1")

	var err error
	n.fB, err = factor.New(vars(n.B), []float64{0.999, 0.001})
	require.NoError(t, err)
	n.fE, err = factor.New(vars(n.E), []float64{0.998, 0.002})
	require.NoError(t, err)
	n.fA, err = factor.New(vars(n.A, n.B, n.E), []float64{0.999, 0.001, 0.06, 0.94, 0.71, 0.29, 0.05, 0.95})
	require.NoError(t, err)
	n.fJ, err = factor.New(vars(n.J, n.A), []float64{0.95, 0.05, 0.10, 0.90})
	require.NoError(t, err)
	n.fM, err = factor.New(vars(n.M, n.A), []float64{0.99, 0.01, 0.3, 0.7})
	require.NoError(t, err)

	return n
}

// all returns the five CPDs in the order the joint is usually built.
func (n burglary) all() []*factor.Factor {
	return []*factor.Factor{n.fB, n.fE, n.fA, n.fM, n.fJ}
}

// requireProbs compares two probability vectors within delta.
func requireProbs(t *testing.T, want, got []float64, delta float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.InDeltaf(t, want[i], got[i], delta, "entry %d", i)
	}
}
