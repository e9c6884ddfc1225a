// SPDX-License-Identifier: MIT

package factor

import (
	"golang.org/x/sync/errgroup"
)

// cursor walks a contiguous range of flat indices over card while keeping,
// for each operand, the flat index that the current assignment maps to.
// strides[s][p] is how much position p moves operand s's index (0 when the
// operand does not hold that variable).
type cursor struct {
	card    []int
	digits  []int
	strides [][]int
	idx     []int
}

// newCursor positions a cursor at flat index start.
func newCursor(card []int, strides [][]int, start int) *cursor {
	c := &cursor{
		card:    card,
		digits:  make([]int, len(card)),
		strides: strides,
		idx:     make([]int, len(strides)),
	}
	for p, n := range card {
		d := start % n
		start /= n
		c.digits[p] = d
		for s := range strides {
			c.idx[s] += d * strides[s][p]
		}
	}

	return c
}

// advance moves to the next flat index (odometer step with carry).
func (c *cursor) advance() {
	for p, n := range c.card {
		c.digits[p]++
		for s := range c.strides {
			c.idx[s] += c.strides[s][p]
		}
		if c.digits[p] < n {
			return
		}
		// carry: rewind this digit
		for s := range c.strides {
			c.idx[s] -= c.strides[s][p] * n
		}
		c.digits[p] = 0
	}
}

// forEachChunk calls fn over [0,n) split into contiguous half-open ranges.
// With one worker (or n below the threshold) ranges run sequentially on the
// caller's goroutine; otherwise they fan out through an errgroup bound to
// the option context. Cancellation is observed between ranges.
func forEachChunk(o options, n int, fn func(lo, hi int)) error {
	if err := o.ctx.Err(); err != nil {
		return err
	}
	if o.workers <= 1 || n < o.threshold {
		step := o.threshold
		for lo := 0; lo < n; lo += step {
			if err := o.ctx.Err(); err != nil {
				return err
			}
			fn(lo, min(lo+step, n))
		}

		return nil
	}

	chunk := (n + o.workers - 1) / o.workers
	g, gctx := errgroup.WithContext(o.ctx)
	g.SetLimit(o.workers)
	for lo := 0; lo < n; lo += chunk {
		lo, hi := lo, min(lo+chunk, n)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fn(lo, hi)

			return nil
		})
	}

	return g.Wait()
}
