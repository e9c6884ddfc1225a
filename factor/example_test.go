package factor_test

import (
	"fmt"

	"github.com/katalvlaran/lvfactor/factor"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleFactor_Multiply
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Two independent binary causes, Rain and Sprinkler.
//	  P(Rain)      = [0.9, 0.1]
//	  P(Sprinkler) = [0.4, 0.6]
//
// The joint table lists Rain fastest:
//
//	(r0,s0) (r1,s0) (r0,s1) (r1,s1)
//
// Complexity: O(|Rain|·|Sprinkler|)
func ExampleFactor_Multiply() {
	rain := factor.MustVariable("Rain", "r0", "r1")
	sprinkler := factor.MustVariable("Sprinkler", "s0", "s1")
	pr := factor.MustNew([]factor.Variable{rain}, []float64{0.9, 0.1})
	ps := factor.MustNew([]factor.Variable{sprinkler}, []float64{0.4, 0.6})

	joint, err := pr.Multiply(ps)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(joint)
	fmt.Printf("%.2f\n", joint.Prob())
	// Output:
	// factor(Rain, Sprinkler)
	// [0.36 0.04 0.54 0.06]
}

// ExampleFactor_Reduce conditions a joint on evidence and renormalizes it
// into a posterior: P(Rain | Wet = w1) in the sprinkler network.
func ExampleFactor_Reduce() {
	rain := factor.MustVariable("Rain", "r0", "r1")
	sprinkler := factor.MustVariable("Sprinkler", "s0", "s1")
	wet := factor.MustVariable("Wet", "w0", "w1")

	pr := factor.MustNew([]factor.Variable{rain}, []float64{0.9, 0.1})
	ps := factor.MustNew([]factor.Variable{sprinkler}, []float64{0.4, 0.6})
	pw := factor.MustNew([]factor.Variable{wet, rain, sprinkler},
		[]float64{0.99, 0.01, 0.3, 0.7, 0.3, 0.7, 0.02, 0.98})

	joint, _ := factor.MultiplyAll([]*factor.Factor{pw, pr, ps})
	seen, _ := joint.Reduce(factor.Assignment{wet.Key(): "w1"})
	pRain, _ := seen.MarginalizeExcept([]factor.Variable{rain})
	post, err := pRain.Renormalize()
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%.4f\n", post.Prob())
	// Output:
	// [0.8147 0.1853]
}

// ExampleIndexToAssignment shows the mixed-radix layout of a 2×3 table.
func ExampleIndexToAssignment() {
	card := []int{2, 3}
	for i := 0; i < 6; i++ {
		a, _ := factor.IndexToAssignment(i, card)
		back, _ := factor.AssignmentToIndex(a, card)
		fmt.Println(i, a, back)
	}
	// Output:
	// 0 [0 0] 0
	// 1 [1 0] 1
	// 2 [0 1] 2
	// 3 [1 1] 3
	// 4 [0 2] 4
	// 5 [1 2] 5
}
