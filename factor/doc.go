// Package factor implements the algebra of discrete factors: non-negative
// real functions over the joint assignments of a tuple of discrete
// variables, stored as flat probability tables. It is the computational core
// of exact inference in Bayesian networks.
//
// 🚀 What is a factor?
//
//	A factor φ(X_0, ..., X_{n-1}) assigns a number ≥ 0 to every combination
//	of values of its scope. A prior P(Rain), a CPD P(Wet | Rain, Sprinkler)
//	and a joint P(Rain, Sprinkler, Wet) are all factors.
//
// ✨ Operations:
//   - Multiply          - product over the union of two scopes
//   - Marginalize       - sum variables out (exact)
//   - Reduce            - zero the entries that contradict evidence
//   - Renormalize       - scale entries to sum to one
//   - Value / ValueAt   - read one entry by labels or indices
//   - NormalizeConditional, Sum, Reorder, ApproxEqual, MultiplyAll
//
// Table layout:
//
//	Entries follow a mixed-radix encoding with the FIRST scope variable
//	varying fastest: index = Σ a_i · Π_{j<i} card_j.
//	AssignmentToIndex / IndexToAssignment define it; AssignmentIterator and
//	Projector enumerate it.
//
//	  Rain  Sprinkler  index
//	  r0    s0         0
//	  r1    s0         1
//	  r0    s1         2
//	  r1    s1         3
//
// Guarantees:
//   - Immutability: every operation returns a new *Factor with fresh storage.
//     Factors can be shared across goroutines without locks.
//   - Identity by name: two Variables with the same name are the same variable.
//   - Errors: every failure is a *Error; match kinds with errors.Is(err, ErrX).
//   - Determinism: Multiply and Marginalize may split work across goroutines
//     (WithWorkers) and still produce bit-identical tables.
//
// ⚙️ Usage:
//
//	rain := factor.MustVariable("Rain", "r0", "r1")
//	sprinkler := factor.MustVariable("Sprinkler", "s0", "s1")
//	pr := factor.MustNew([]factor.Variable{rain}, []float64{0.9, 0.1})
//	ps := factor.MustNew([]factor.Variable{sprinkler}, []float64{0.4, 0.6})
//
//	joint, err := pr.Multiply(ps)          // [0.36 0.04 0.54 0.06]
//	back, err := joint.Marginalize([]factor.Variable{sprinkler})
//	post, err := joint.Reduce(factor.Assignment{rain.Key(): "r1"})
//
// Complexity: every table operation is linear in the size of the largest
// table it touches.
package factor
