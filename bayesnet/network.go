// SPDX-License-Identifier: MIT

package bayesnet

import (
	"fmt"

	"github.com/katalvlaran/lvfactor/factor"
)

// Node is one conditional distribution P(Variable | Parents). The CPD scope
// is [Variable, Parents...], so the child varies fastest in its table and
// every block of Variable.Card() consecutive entries sums to one.
type Node struct {
	Variable factor.Variable
	Parents  []factor.Variable
	CPD      *factor.Factor
}

// Network is a set of variables and one CPD per variable.
// Registration order is remembered and used as the tie-breaker of every
// ordering, so results never depend on map iteration.
//
// A Network is not safe for concurrent mutation; once built, concurrent
// queries are safe because they only read the immutable CPD factors.
type Network struct {
	vars  map[factor.VarKey]factor.Variable
	names []factor.VarKey // registration order
	nodes map[factor.VarKey]*Node
	opts  []factor.Option
}

// New returns an empty network. opts (tolerance, workers, ...) are applied to
// CPD validation and to every query.
func New(opts ...factor.Option) *Network {
	return &Network{
		vars:  make(map[factor.VarKey]factor.Variable),
		nodes: make(map[factor.VarKey]*Node),
		opts:  opts,
	}
}

// AddVariable registers v. Returns ErrDuplicateVariable if the name is taken.
func (n *Network) AddVariable(v factor.Variable) error {
	if _, ok := n.vars[v.Key()]; ok {
		return netErrorf("AddVariable", fmt.Errorf("%w: %q", ErrDuplicateVariable, v.Name()))
	}
	n.vars[v.Key()] = v
	n.names = append(n.names, v.Key())

	return nil
}

// Variable looks a registered variable up by name.
func (n *Network) Variable(name string) (factor.Variable, bool) {
	v, ok := n.vars[factor.VarKey(name)]

	return v, ok
}

// Variables returns the registered variables in registration order.
func (n *Network) Variables() []factor.Variable {
	out := make([]factor.Variable, len(n.names))
	for i, k := range n.names {
		out[i] = n.vars[k]
	}

	return out
}

// AddNode attaches the CPD P(child | parents) given as a flat table over
// [child, parents...] in encoding order.
//
// Errors:
//   - ErrUnknownVariable - child or a parent is not registered.
//   - ErrDuplicateNode   - child already has a CPD.
//   - ErrBadCPD          - the table is malformed (wrapping the factor error)
//     or some row over the child does not sum to one within the tolerance.
func (n *Network) AddNode(child factor.Variable, parents []factor.Variable, prob []float64) error {
	for _, v := range append([]factor.Variable{child}, parents...) {
		if _, ok := n.vars[v.Key()]; !ok {
			return netErrorf("AddNode", fmt.Errorf("%w: %q", ErrUnknownVariable, v.Name()))
		}
	}
	if _, dup := n.nodes[child.Key()]; dup {
		return netErrorf("AddNode", fmt.Errorf("%w: %q", ErrDuplicateNode, child.Name()))
	}

	scope := append([]factor.Variable{child}, parents...)
	cpd, err := factor.New(scope, prob)
	if err != nil {
		return netErrorf("AddNode", fmt.Errorf("%w: %q: %w", ErrBadCPD, child.Name(), err))
	}
	if !cpd.IsConditional(1, n.opts...) {
		return netErrorf("AddNode", fmt.Errorf("%w: %q: rows do not sum to one", ErrBadCPD, child.Name()))
	}

	ps := make([]factor.Variable, len(parents))
	copy(ps, parents)
	n.nodes[child.Key()] = &Node{Variable: child, Parents: ps, CPD: cpd}

	return nil
}

// Node returns the node of the named variable.
func (n *Network) Node(name string) (*Node, bool) {
	nd, ok := n.nodes[factor.VarKey(name)]

	return nd, ok
}

// Validate checks that every registered variable has a CPD and that the
// parent relation is acyclic.
func (n *Network) Validate() error {
	for _, k := range n.names {
		if _, ok := n.nodes[k]; !ok {
			return netErrorf("Validate", fmt.Errorf("%w: %q", ErrMissingNode, string(k)))
		}
	}
	if _, err := n.TopologicalOrder(); err != nil {
		return netErrorf("Validate", err)
	}

	return nil
}
