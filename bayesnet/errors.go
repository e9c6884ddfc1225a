// SPDX-License-Identifier: MIT

package bayesnet

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownVariable indicates a name that was never registered in the network.
	ErrUnknownVariable = errors.New("bayesnet: unknown variable")

	// ErrDuplicateVariable indicates a second registration of the same name.
	ErrDuplicateVariable = errors.New("bayesnet: duplicate variable")

	// ErrDuplicateNode indicates a second CPD for the same child variable.
	ErrDuplicateNode = errors.New("bayesnet: duplicate node")

	// ErrMissingNode indicates a registered variable has no CPD.
	ErrMissingNode = errors.New("bayesnet: variable has no node")

	// ErrCycleDetected indicates the parent relation is not acyclic.
	ErrCycleDetected = errors.New("bayesnet: cycle detected")

	// ErrBadCPD indicates a CPD whose rows do not sum to one or whose table is malformed.
	ErrBadCPD = errors.New("bayesnet: invalid conditional probability table")

	// ErrEmptyQuery indicates a query without target variables.
	ErrEmptyQuery = errors.New("bayesnet: empty query")

	// ErrBadEvidence indicates an evidence string that cannot be parsed.
	ErrBadEvidence = errors.New("bayesnet: malformed evidence")

	// ErrImpossibleEvidence indicates evidence with zero probability under the model.
	ErrImpossibleEvidence = errors.New("bayesnet: evidence has zero probability")
)

// netErrorf wraps err with an operation tag, keeping errors.Is matching intact.
func netErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
