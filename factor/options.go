// SPDX-License-Identifier: MIT
// Package factor: functional options for the numeric policy and the
// data-parallel execution of table operations.
//
// Design goals:
//   - No global state: tolerance and parallelism travel with each call.
//   - Safe by construction: WithX panics only on nonsensical values.
//   - Determinism: parallel execution produces bit-identical tables, because
//     every output cell is owned by one worker and sums its inputs in a fixed order.

package factor

import (
	"context"
	"math"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTolerance is the absolute tolerance used by Renormalize's
	// "already normalized" check and by ApproxEqual.
	DefaultTolerance = 1e-9

	// DefaultWorkers runs table operations on the calling goroutine.
	DefaultWorkers = 1

	// DefaultParallelThreshold is the minimum number of output cells before
	// an operation is split across workers.
	DefaultParallelThreshold = 4096
)

const (
	panicToleranceInvalid = "factor: WithTolerance: eps must be finite, non-negative"
	panicWorkersInvalid   = "factor: WithWorkers: n must be >= 1"
	panicThresholdInvalid = "factor: WithParallelThreshold: k must be >= 1"
	panicContextNil       = "factor: WithContext: nil context"
)

// Option configures a single operation call. Options are applied in order
// (last-writer-wins).
type Option func(*options)

type options struct {
	eps       float64         // >= 0
	workers   int             // >= 1
	threshold int             // >= 1
	ctx       context.Context // never nil
}

// WithTolerance sets the absolute numeric tolerance eps.
// Panics when eps is negative, NaN or ±Inf.
func WithTolerance(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *options) { o.eps = eps }
}

// WithWorkers sets how many goroutines Multiply and Marginalize may use.
// Panics when n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *options) { o.workers = n }
}

// WithParallelThreshold sets the minimum output size before work is split.
// Panics when k < 1.
func WithParallelThreshold(k int) Option {
	if k < 1 {
		panic(panicThresholdInvalid)
	}

	return func(o *options) { o.threshold = k }
}

// WithContext attaches a cancellation context to long table operations.
// Panics on a nil context.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic(panicContextNil)
	}

	return func(o *options) { o.ctx = ctx }
}

// gatherOptions resolves user setters against the documented defaults.
func gatherOptions(user ...Option) options {
	o := options{
		eps:       DefaultTolerance,
		workers:   DefaultWorkers,
		threshold: DefaultParallelThreshold,
		ctx:       context.Background(),
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// Tolerance reports the effective tolerance for opts. Useful to callers that
// forward options and need the same numeric policy in their own checks.
func Tolerance(opts ...Option) float64 { return gatherOptions(opts...).eps }
