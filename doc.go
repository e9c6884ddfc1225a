// Package lvfactor is an in-memory engine for discrete factors: the
// nonnegative tables behind Bayesian networks and other probabilistic
// graphical models.
//
// 🚀 What is in the box?
//
//	• factor/    – Variable, Factor, mixed-radix encoding, Multiply,
//	               Marginalize, Reduce, Renormalize, conditional normalization
//	• table/     – plain and lipgloss-styled tabular rendering of a factor
//	• bayesnet/  – CPD networks, topological order, exact queries, YAML loading
//	• cmd/factorq – command line front end for bayesnet
//
// ✨ Guarantees
//
//   - Factors are immutable values; every operation returns fresh storage,
//     so any number of goroutines may read one factor at once.
//   - Tables are flat with the first scope variable varying fastest.
//   - Opt-in data parallelism (factor.WithWorkers) gives bit-identical results.
//
// Quick example, the rain/sprinkler joint:
//
//	P(Rain) ⊗ P(Sprinkler) = [0.36 0.04 0.54 0.06]  over (Rain, Sprinkler)
//
// See examples/sprinkler for a full walk-through.
//
//	go get github.com/katalvlaran/lvfactor
package lvfactor
