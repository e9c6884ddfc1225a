// SPDX-License-Identifier: MIT

package bayesnet_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvfactor/bayesnet"
	"github.com/katalvlaran/lvfactor/factor"
)

func TestTopologicalOrder_ParentsFirst(t *testing.T) {
	// Wet is registered first but depends on both others.
	n := load(t, "sprinkler.yaml")
	order, err := n.TopologicalOrder()
	require.NoError(t, err)
	assert.Equal(t, []string{"Rain", "Sprinkler", "Wet"}, names(order))

	n = load(t, "burglary.yaml")
	order, err = n.TopologicalOrder()
	require.NoError(t, err)
	assert.Equal(t, []string{"Burglary", "Earthquake", "Alarm", "JohnCalls", "MarryCalls"}, names(order))
}

func TestTopologicalOrder_Cycle(t *testing.T) {
	a := factor.MustVariable("A", "a0", "a1")
	b := factor.MustVariable("B", "b0", "b1")
	n := bayesnet.New()
	require.NoError(t, n.AddVariable(a))
	require.NoError(t, n.AddVariable(b))
	uniform := []float64{0.5, 0.5, 0.5, 0.5}
	require.NoError(t, n.AddNode(a, []factor.Variable{b}, uniform))
	require.NoError(t, n.AddNode(b, []factor.Variable{a}, uniform))

	_, err := n.TopologicalOrder()
	assert.ErrorIs(t, err, bayesnet.ErrCycleDetected)
	assert.ErrorIs(t, n.Validate(), bayesnet.ErrCycleDetected)

	fh, err := os.Open("testdata/cycle.yaml")
	require.NoError(t, err)
	defer fh.Close()
	_, err = bayesnet.Decode(fh)
	assert.ErrorIs(t, err, bayesnet.ErrCycleDetected)
}

func TestTopologicalOrder_Cancelled(t *testing.T) {
	n := load(t, "burglary.yaml")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := n.TopologicalOrder(bayesnet.WithCancelContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
