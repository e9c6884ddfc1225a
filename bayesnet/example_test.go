// SPDX-License-Identifier: MIT

package bayesnet_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvfactor/bayesnet"
	"github.com/katalvlaran/lvfactor/factor"
)

// ExampleNetwork_Query builds the sprinkler network by hand and asks how
// likely rain is once the grass is seen wet.
func ExampleNetwork_Query() {
	rain := factor.MustVariable("Rain", "r0", "r1")
	sprinkler := factor.MustVariable("Sprinkler", "s0", "s1")
	wet := factor.MustVariable("Wet", "w0", "w1")

	n := bayesnet.New()
	for _, v := range []factor.Variable{rain, sprinkler, wet} {
		if err := n.AddVariable(v); err != nil {
			panic(err)
		}
	}
	must := func(err error) {
		if err != nil {
			panic(err)
		}
	}
	must(n.AddNode(rain, nil, []float64{0.9, 0.1}))
	must(n.AddNode(sprinkler, nil, []float64{0.4, 0.6}))
	must(n.AddNode(wet, []factor.Variable{rain, sprinkler},
		[]float64{0.99, 0.01, 0.3, 0.7, 0.3, 0.7, 0.02, 0.98}))

	post, err := n.Query(context.Background(), []factor.Variable{rain}, factor.Assignment{"Wet": "w1"})
	if err != nil {
		panic(err)
	}
	for i, p := range post.Prob() {
		fmt.Printf("%s %.4f\n", rain.Label(i), p)
	}
	// Output:
	// r0 0.8147
	// r1 0.1853
}
