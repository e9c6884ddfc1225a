// SPDX-License-Identifier: MIT

package factor

import (
	"fmt"
	"strings"
)

// VarKey is the identity of a Variable. Two variables with the same name are
// the same variable; VarKey is what assignment and evidence maps are keyed by.
type VarKey string

// Variable is an immutable named discrete domain.
// The zero Variable is invalid; build one with NewVariable.
type Variable struct {
	name   string   // identity
	values []string // ordered, unique labels; never exposed without copying
}

// NewVariable validates and returns a Variable named name over values.
// Stage 1 (Validate): non-empty name, non-empty domain, unique labels.
// Stage 2 (Finalize): store a private copy of values.
// Complexity: O(k) time and memory for k=len(values).
func NewVariable(name string, values ...string) (Variable, error) {
	if name == "" {
		return Variable{}, newError("NewVariable", KindEmptyName, "")
	}
	if len(values) == 0 {
		return Variable{}, newError("NewVariable", KindEmptyDomain, "%q", name)
	}
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if _, dup := seen[v]; dup {
			return Variable{}, newError("NewVariable", KindDuplicateValue, "%q in %q", v, name)
		}
		seen[v] = struct{}{}
	}

	vals := make([]string, len(values))
	copy(vals, values)

	return Variable{name: name, values: vals}, nil
}

// MustVariable is NewVariable that panics on error. Intended for fixtures.
func MustVariable(name string, values ...string) Variable {
	v, err := NewVariable(name, values...)
	if err != nil {
		panic(err)
	}

	return v
}

// Name returns the variable name.
func (v Variable) Name() string { return v.name }

// Key returns the identity key of v.
func (v Variable) Key() VarKey { return VarKey(v.name) }

// Card returns the cardinality (domain size) of v.
func (v Variable) Card() int { return len(v.values) }

// Values returns a copy of the domain labels in order.
func (v Variable) Values() []string {
	out := make([]string, len(v.values))
	copy(out, v.values)

	return out
}

// Label returns the i-th domain label, or "" when i is out of range.
func (v Variable) Label(i int) string {
	if i < 0 || i >= len(v.values) {
		return ""
	}

	return v.values[i]
}

// IndexOf returns the position of label in the domain, or -1.
// Complexity: O(k).
func (v Variable) IndexOf(label string) int {
	for i, l := range v.values {
		if l == label {
			return i
		}
	}

	return -1
}

// Equal reports identity by name.
func (v Variable) Equal(o Variable) bool { return v.name == o.name }

// String renders as <variable "Rain" from {r0, r1}>.
func (v Variable) String() string {
	return fmt.Sprintf("<variable %q from {%s}>", v.name, strings.Join(v.values, ", "))
}

// resolve converts an assignment value (int index or string label) into an
// index of v's domain.
func (v Variable) resolve(op string, raw any) (int, error) {
	switch x := raw.(type) {
	case int:
		if x < 0 || x >= len(v.values) {
			return 0, newError(op, KindOutOfRange, "%q index %d, card %d", v.name, x, len(v.values))
		}

		return x, nil
	case string:
		i := v.IndexOf(x)
		if i < 0 {
			return 0, newError(op, KindUnknownValue, "%q has no value %q", v.name, x)
		}

		return i, nil
	default:
		return 0, newError(op, KindUnknownValue, "%q: unsupported value type %T", v.name, raw)
	}
}
