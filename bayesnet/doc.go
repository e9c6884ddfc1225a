// SPDX-License-Identifier: MIT

// Package bayesnet assembles factors into a discrete Bayesian network and
// answers exact queries by enumeration.
//
// A Network owns a set of factor.Variable values and one conditional
// probability table per variable. A CPD for child C with parents P1..Pk is a
// factor over [C, P1, ..., Pk]; because the first variable varies fastest,
// every run of C.Card() consecutive entries is one distribution over C.
//
// Query reduces each CPD by the evidence, multiplies the results in
// topological order, sums out the hidden variables and renormalizes. The cost
// is exponential in the number of variables; this package targets small
// textbook networks, not large models.
//
// Networks can be declared in YAML (see Definition) and loaded with Load.
package bayesnet
