// SPDX-License-Identifier: MIT

package bayesnet

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvfactor/factor"
)

// visitation states of the depth-first walk.
const (
	white = iota // unvisited
	gray         // on the current path
	black        // finished
)

// TopoOption configures TopologicalOrder.
type TopoOption func(*topoOptions)

type topoOptions struct {
	ctx context.Context // allows cancellation; defaults to Background
}

// WithCancelContext sets the cancellation context. A nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// topoSorter holds the state of one ordering pass.
type topoSorter struct {
	net   *Network
	opts  topoOptions
	state map[factor.VarKey]int
	order []factor.Variable
}

// TopologicalOrder returns the variables ordered so that every parent comes
// before its children. Among unrelated variables registration order wins.
// Returns ErrCycleDetected when the parent relation has a cycle.
//
// Complexity: O(V + E).
func (n *Network) TopologicalOrder(options ...TopoOption) ([]factor.Variable, error) {
	opts := topoOptions{ctx: context.Background()}
	for _, opt := range options {
		opt(&opts)
	}
	s := &topoSorter{
		net:   n,
		opts:  opts,
		state: make(map[factor.VarKey]int, len(n.names)),
		order: make([]factor.Variable, 0, len(n.names)),
	}
	for _, k := range n.names {
		if s.state[k] == white {
			if err := s.visit(k); err != nil {
				return nil, err
			}
		}
	}

	return s.order, nil
}

// visit finishes every parent of k before k itself, so the post-order is
// already parent-first and needs no reversal.
func (s *topoSorter) visit(k factor.VarKey) error {
	select {
	case <-s.opts.ctx.Done():
		return s.opts.ctx.Err()
	default:
	}
	switch s.state[k] {
	case gray:
		return fmt.Errorf("%w: through %q", ErrCycleDetected, string(k))
	case black:
		return nil
	}
	s.state[k] = gray

	if nd, ok := s.net.nodes[k]; ok {
		for _, p := range nd.Parents {
			if err := s.visit(p.Key()); err != nil {
				return err
			}
		}
	}

	s.state[k] = black
	s.order = append(s.order, s.net.vars[k])

	return nil
}
