// SPDX-License-Identifier: MIT

package bayesnet

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvfactor/factor"
)

// Definition is the YAML form of a network. It is an input format for
// building networks; nothing in this module writes factors back to disk.
//
//	variables:
//	  - name: Rain
//	    values: [r0, r1]
//	nodes:
//	  - variable: Rain
//	    cpd: [0.9, 0.1]
//	  - variable: Wet
//	    parents: [Rain, Sprinkler]
//	    cpd: [0.99, 0.01, 0.3, 0.7, 0.3, 0.7, 0.02, 0.98]
type Definition struct {
	Variables []VariableDef `yaml:"variables"`
	Nodes     []NodeDef     `yaml:"nodes"`
}

// VariableDef declares one discrete variable.
type VariableDef struct {
	Name   string   `yaml:"name"`
	Values []string `yaml:"values"`
}

// NodeDef declares P(Variable | Parents) as a flat table over
// [Variable, Parents...] with Variable varying fastest.
type NodeDef struct {
	Variable string    `yaml:"variable"`
	Parents  []string  `yaml:"parents,omitempty"`
	CPD      []float64 `yaml:"cpd"`
}

// Decode reads a YAML Definition from r and builds a validated Network.
// Unknown YAML fields are rejected.
func Decode(r io.Reader, opts ...factor.Option) (*Network, error) {
	var def Definition
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&def); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, netErrorf("Decode", errors.New("empty document"))
		}

		return nil, netErrorf("Decode", err)
	}

	return def.Build(opts...)
}

// Load opens path and decodes it with Decode.
func Load(path string, opts ...factor.Option) (*Network, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, netErrorf("Load", err)
	}
	defer fh.Close()

	n, err := Decode(fh, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return n, nil
}

// Build turns d into a Network and runs Validate.
func (d Definition) Build(opts ...factor.Option) (*Network, error) {
	n := New(opts...)
	for _, vd := range d.Variables {
		v, err := factor.NewVariable(vd.Name, vd.Values...)
		if err != nil {
			return nil, netErrorf("Build", err)
		}
		if err = n.AddVariable(v); err != nil {
			return nil, netErrorf("Build", err)
		}
	}
	for _, nd := range d.Nodes {
		child, ok := n.Variable(nd.Variable)
		if !ok {
			return nil, netErrorf("Build", fmt.Errorf("%w: %q", ErrUnknownVariable, nd.Variable))
		}
		parents, err := n.Lookup(nd.Parents...)
		if err != nil {
			return nil, netErrorf("Build", err)
		}
		if err = n.AddNode(child, parents, nd.CPD); err != nil {
			return nil, netErrorf("Build", err)
		}
	}
	if err := n.Validate(); err != nil {
		return nil, netErrorf("Build", err)
	}

	return n, nil
}
