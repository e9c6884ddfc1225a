// SPDX-License-Identifier: MIT
// Package factor: sentinel error set and the typed *Error carrier.
// Every public operation reports failures as *Error, whose Unwrap returns
// exactly one of the sentinels below. Tests and callers MUST match with
// errors.Is(err, ErrX); the Kind field is available for switch-style handling.
// No operation panics on user-triggered conditions. Panics are reserved for
// option constructors receiving nonsensical values (programmer error).

package factor

import (
	"errors"
	"fmt"
)

// Kind classifies a factor failure.
type Kind int

// Failure kinds. The zero value is deliberately invalid.
const (
	KindEmptyScope Kind = iota + 1
	KindDuplicateVariable
	KindLengthMismatch
	KindNegativeProbability
	KindOutOfRange
	KindSubscopeNotSubset
	KindUnknownVariable
	KindEmptyResultScope
	KindIncompleteAssignment
	KindDegenerateFactor
	KindDuplicateValue
	KindEmptyDomain
	KindEmptyName
	KindUnknownValue
	KindScopeMismatch
	KindEmptyInput
	KindTableTooLarge
)

var (
	// ErrEmptyScope is returned when a factor is constructed over zero variables.
	ErrEmptyScope = errors.New("factor: empty scope")

	// ErrDuplicateVariable indicates a variable appears twice in one scope.
	ErrDuplicateVariable = errors.New("factor: duplicate variable in scope")

	// ErrLengthMismatch indicates len(prob) differs from the product of cardinalities.
	ErrLengthMismatch = errors.New("factor: probability vector length mismatch")

	// ErrNegativeProbability indicates an entry < 0 (or NaN) in a probability vector.
	ErrNegativeProbability = errors.New("factor: negative probability")

	// ErrOutOfRange indicates an assignment digit >= its cardinality, a flat
	// index outside the table, or a count outside its valid interval.
	ErrOutOfRange = errors.New("factor: index out of range")

	// ErrSubscopeNotSubset indicates a projection target is not contained in the base scope.
	ErrSubscopeNotSubset = errors.New("factor: subscope is not a subset of base scope")

	// ErrUnknownVariable indicates a referenced variable is not in the factor scope.
	ErrUnknownVariable = errors.New("factor: unknown variable")

	// ErrEmptyResultScope indicates marginalization would remove every variable.
	ErrEmptyResultScope = errors.New("factor: marginalization leaves empty scope")

	// ErrIncompleteAssignment indicates Value was called without a value for some scope variable.
	ErrIncompleteAssignment = errors.New("factor: incomplete assignment")

	// ErrDegenerateFactor indicates renormalization of a factor whose entries sum to zero.
	ErrDegenerateFactor = errors.New("factor: degenerate factor (sum is zero)")

	// ErrDuplicateValue indicates a variable domain lists the same label twice.
	ErrDuplicateValue = errors.New("factor: duplicate value in variable domain")

	// ErrEmptyDomain indicates a variable with no values.
	ErrEmptyDomain = errors.New("factor: empty variable domain")

	// ErrEmptyName indicates a variable with an empty name.
	ErrEmptyName = errors.New("factor: empty variable name")

	// ErrUnknownValue indicates a label that is not part of the variable domain.
	ErrUnknownValue = errors.New("factor: unknown variable value")

	// ErrScopeMismatch indicates operands must share the same variable set but do not.
	ErrScopeMismatch = errors.New("factor: scope mismatch")

	// ErrEmptyInput indicates an n-ary operation received no factors.
	ErrEmptyInput = errors.New("factor: empty input")

	// ErrTableTooLarge indicates the product of cardinalities does not fit in an int.
	ErrTableTooLarge = errors.New("factor: table too large")
)

// sentinels maps each Kind to its sentinel; index 0 is unused.
var sentinels = [...]error{
	KindEmptyScope:           ErrEmptyScope,
	KindDuplicateVariable:    ErrDuplicateVariable,
	KindLengthMismatch:       ErrLengthMismatch,
	KindNegativeProbability:  ErrNegativeProbability,
	KindOutOfRange:           ErrOutOfRange,
	KindSubscopeNotSubset:    ErrSubscopeNotSubset,
	KindUnknownVariable:      ErrUnknownVariable,
	KindEmptyResultScope:     ErrEmptyResultScope,
	KindIncompleteAssignment: ErrIncompleteAssignment,
	KindDegenerateFactor:     ErrDegenerateFactor,
	KindDuplicateValue:       ErrDuplicateValue,
	KindEmptyDomain:          ErrEmptyDomain,
	KindEmptyName:            ErrEmptyName,
	KindUnknownValue:         ErrUnknownValue,
	KindScopeMismatch:        ErrScopeMismatch,
	KindEmptyInput:           ErrEmptyInput,
	KindTableTooLarge:        ErrTableTooLarge,
}

// Sentinel returns the package-level sentinel for k, or nil for an invalid Kind.
func (k Kind) Sentinel() error {
	if k <= 0 || int(k) >= len(sentinels) {
		return nil
	}

	return sentinels[k]
}

// String returns the sentinel message without the "factor: " prefix.
func (k Kind) String() string {
	if s := k.Sentinel(); s != nil {
		return s.Error()[len("factor: "):]
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is the concrete error returned by every operation in this package.
//
// Fields:
//   - Op     - public operation that detected the failure (e.g. "Multiply").
//   - Kind   - failure classification; Unwrap yields Kind.Sentinel().
//   - Detail - optional human context (variable name, offending index, ...).
type Error struct {
	Op     string
	Kind   Kind
	Detail string
}

// Error formats as "factor: <op>: <kind>[: <detail>]".
func (e *Error) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("factor: %s: %s", e.Op, e.Kind)
	}

	return fmt.Sprintf("factor: %s: %s: %s", e.Op, e.Kind, e.Detail)
}

// Unwrap exposes the sentinel so errors.Is(err, ErrX) matches.
func (e *Error) Unwrap() error { return e.Kind.Sentinel() }

// newError builds an *Error with a formatted detail.
func newError(op string, k Kind, format string, args ...any) *Error {
	return &Error{Op: op, Kind: k, Detail: fmt.Sprintf(format, args...)}
}

// withOp re-tags an *Error produced by a helper with the public operation name.
// Non-factor errors (e.g. context cancellation) pass through untouched.
func withOp(op string, err error) error {
	var fe *Error
	if errors.As(err, &fe) {
		return &Error{Op: op, Kind: fe.Kind, Detail: fe.Detail}
	}

	return err
}
