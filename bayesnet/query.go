// SPDX-License-Identifier: MIT

package bayesnet

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvfactor/factor"
)

// Joint multiplies every CPD in topological order into the full joint
// distribution. The table grows with the product of all cardinalities; use it
// only for small networks. A nil ctx means context.Background().
func (n *Network) Joint(ctx context.Context, opts ...factor.Option) (*factor.Factor, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := n.Validate(); err != nil {
		return nil, err
	}
	order, err := n.TopologicalOrder(WithCancelContext(ctx))
	if err != nil {
		return nil, netErrorf("Joint", err)
	}
	cpds := make([]*factor.Factor, len(order))
	for i, v := range order {
		cpds[i] = n.nodes[v.Key()].CPD
	}
	joint, err := factor.MultiplyAll(cpds, n.callOptions(ctx, opts)...)
	if err != nil {
		return nil, netErrorf("Joint", err)
	}

	return joint, nil
}

// Query computes the posterior P(query | evidence) by enumeration:
//
//  1. reduce every CPD by the evidence (independently, in parallel);
//  2. multiply the reduced CPDs in topological order;
//  3. sum out every variable outside query;
//  4. renormalize.
//
// The result scope lists the query variables in the order given.
// A nil ctx means context.Background().
//
// Errors:
//   - ErrEmptyQuery, ErrUnknownVariable (query or evidence name not registered);
//   - ErrImpossibleEvidence when the evidence has zero probability;
//   - Validate errors; factor errors wrapped with context.
func (n *Network) Query(ctx context.Context, query []factor.Variable, evidence factor.Assignment, opts ...factor.Option) (*factor.Factor, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if len(query) == 0 {
		return nil, netErrorf("Query", ErrEmptyQuery)
	}
	for _, q := range query {
		if _, ok := n.vars[q.Key()]; !ok {
			return nil, netErrorf("Query", fmt.Errorf("%w: %q", ErrUnknownVariable, q.Name()))
		}
	}
	for k := range evidence {
		if _, ok := n.vars[k]; !ok {
			return nil, netErrorf("Query", fmt.Errorf("%w: %q", ErrUnknownVariable, string(k)))
		}
	}
	if err := n.Validate(); err != nil {
		return nil, err
	}
	order, err := n.TopologicalOrder(WithCancelContext(ctx))
	if err != nil {
		return nil, netErrorf("Query", err)
	}

	reduced := make([]*factor.Factor, len(order))
	g, gctx := errgroup.WithContext(ctx)
	for i, v := range order {
		cpd := n.nodes[v.Key()].CPD
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := cpd.Reduce(evidence)
			if err != nil {
				return err
			}
			reduced[i] = r

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, netErrorf("Query", err)
	}

	callOpts := n.callOptions(ctx, opts)
	joint, err := factor.MultiplyAll(reduced, callOpts...)
	if err != nil {
		return nil, netErrorf("Query", err)
	}
	marg, err := joint.MarginalizeExcept(query, callOpts...)
	if err != nil {
		return nil, netErrorf("Query", err)
	}
	if len(query) > 1 {
		if marg, err = marg.Reorder(query); err != nil {
			return nil, netErrorf("Query", err)
		}
	}
	post, err := marg.Renormalize(callOpts...)
	if errors.Is(err, factor.ErrDegenerateFactor) {
		return nil, netErrorf("Query", fmt.Errorf("%w: %w", ErrImpossibleEvidence, err))
	}
	if err != nil {
		return nil, netErrorf("Query", err)
	}

	return post, nil
}

// callOptions merges network-level options, per-call options and the context.
func (n *Network) callOptions(ctx context.Context, opts []factor.Option) []factor.Option {
	out := make([]factor.Option, 0, len(n.opts)+len(opts)+1)
	out = append(out, n.opts...)
	out = append(out, opts...)

	return append(out, factor.WithContext(ctx))
}

// ParseEvidence turns "Name=value" pairs into an Assignment. A value is
// matched against the variable's labels first; failing that, a decimal
// integer is taken as a domain index.
//
// Errors: ErrBadEvidence for a pair without '=', ErrUnknownVariable for an
// unregistered name, factor.ErrUnknownValue / factor.ErrOutOfRange for a
// value outside the domain.
func (n *Network) ParseEvidence(pairs []string) (factor.Assignment, error) {
	out := make(factor.Assignment, len(pairs))
	for _, p := range pairs {
		name, val, ok := strings.Cut(p, "=")
		name, val = strings.TrimSpace(name), strings.TrimSpace(val)
		if !ok || name == "" || val == "" {
			return nil, netErrorf("ParseEvidence", fmt.Errorf("%w: %q", ErrBadEvidence, p))
		}
		v, known := n.Variable(name)
		if !known {
			return nil, netErrorf("ParseEvidence", fmt.Errorf("%w: %q", ErrUnknownVariable, name))
		}
		if v.IndexOf(val) >= 0 {
			out[v.Key()] = val

			continue
		}
		idx, err := strconv.Atoi(val)
		if err != nil {
			return nil, netErrorf("ParseEvidence", fmt.Errorf("%w: %q has no value %q", factor.ErrUnknownValue, name, val))
		}
		if idx < 0 || idx >= v.Card() {
			return nil, netErrorf("ParseEvidence", fmt.Errorf("%w: %q index %d", factor.ErrOutOfRange, name, idx))
		}
		out[v.Key()] = idx
	}

	return out, nil
}

// Lookup resolves names to registered variables.
func (n *Network) Lookup(names ...string) ([]factor.Variable, error) {
	out := make([]factor.Variable, len(names))
	for i, name := range names {
		v, ok := n.Variable(name)
		if !ok {
			return nil, netErrorf("Lookup", fmt.Errorf("%w: %q", ErrUnknownVariable, name))
		}
		out[i] = v
	}

	return out, nil
}
