// SPDX-License-Identifier: MIT

package bayesnet_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvfactor/bayesnet"
	"github.com/katalvlaran/lvfactor/factor"
)

// load reads a network from testdata.
func load(t *testing.T, name string, opts ...factor.Option) *bayesnet.Network {
	t.Helper()
	n, err := bayesnet.Load(filepath.Join("testdata", name), opts...)
	require.NoError(t, err)

	return n
}

// mustLookup resolves names or fails the test.
func mustLookup(t *testing.T, n *bayesnet.Network, names ...string) []factor.Variable {
	t.Helper()
	vs, err := n.Lookup(names...)
	require.NoError(t, err)

	return vs
}

// names lists variable names in order.
func names(vs []factor.Variable) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.Name()
	}

	return out
}

// requireProbs compares two probability vectors within delta.
func requireProbs(t *testing.T, want, got []float64, delta float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.InDeltaf(t, want[i], got[i], delta, "entry %d", i)
	}
}
