// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/netflow/matrix"
	"github.com/katalvlaran/netflow/network"
)

// ErrInvalidSystem is returned for documents that do not describe a usable system.
var ErrInvalidSystem = errors.New("config: invalid system")

// SystemFile is the YAML document describing one system. Exactly one of the
// two forms must be used:
//
//	# raw form
//	name: triangle
//	matrix: [[-2, 1, 1], [1, -2, 1], [1, 1, -2]]
//	demand: [100, 200, 150]
//
//	# topology form
//	nodes:
//	  - {id: N1, demand: 100, capacity: -1}
//	links:
//	  - {from: N1, to: N2, weight: 1}
type SystemFile struct {
	Name   string      `yaml:"name"`
	Labels []string    `yaml:"labels,omitempty"`
	Matrix [][]float64 `yaml:"matrix,omitempty"`
	Demand []float64   `yaml:"demand,omitempty"`
	Nodes  []NodeSpec  `yaml:"nodes,omitempty"`
	Links  []LinkSpec  `yaml:"links,omitempty"`
}

// NodeSpec is one node of the topology form.
type NodeSpec struct {
	ID       string  `yaml:"id"`
	Demand   float64 `yaml:"demand"`
	Capacity float64 `yaml:"capacity,omitempty"`
}

// LinkSpec is one link of the topology form. A missing weight means 1.
type LinkSpec struct {
	From   string   `yaml:"from"`
	To     string   `yaml:"to"`
	Weight *float64 `yaml:"weight,omitempty"`
}

// System is a ready-to-solve A·x = b with display labels per row.
type System struct {
	Name   string
	Labels []string
	A      *matrix.Dense
	B      []float64
}

// LoadSystem reads and parses a YAML system file.
func LoadSystem(path string) (*System, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	return ParseSystem(data)
}

// ParseSystem decodes a YAML document. Unknown keys are rejected.
func ParseSystem(data []byte) (*System, error) {
	var f SystemFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("config: decode system: %w", err)
	}

	return f.System()
}

// System converts the document into a System.
func (f *SystemFile) System() (*System, error) {
	raw := len(f.Matrix) > 0 || len(f.Demand) > 0
	topo := len(f.Nodes) > 0 || len(f.Links) > 0
	switch {
	case raw && topo:
		return nil, fmt.Errorf("%w: both matrix and nodes given", ErrInvalidSystem)
	case topo:
		return f.topology()
	default:
		return f.raw()
	}
}

func (f *SystemFile) raw() (*System, error) {
	n := len(f.Matrix)
	for i, row := range f.Matrix {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrInvalidSystem, i+1, len(row), n)
		}
	}
	if len(f.Demand) != n {
		return nil, fmt.Errorf("%w: %d demands for %d rows", ErrInvalidSystem, len(f.Demand), n)
	}
	labels, err := f.labels(n)
	if err != nil {
		return nil, err
	}

	a, err := matrix.NewDenseFromRows(f.Matrix)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSystem, err)
	}
	b := make([]float64, n)
	copy(b, f.Demand)

	return &System{Name: f.Name, Labels: labels, A: a, B: b}, nil
}

func (f *SystemFile) labels(n int) ([]string, error) {
	if len(f.Labels) == 0 {
		return DefaultLabels(n), nil
	}
	if len(f.Labels) != n {
		return nil, fmt.Errorf("%w: %d labels for %d rows", ErrInvalidSystem, len(f.Labels), n)
	}

	return append([]string(nil), f.Labels...), nil
}

func (f *SystemFile) topology() (*System, error) {
	if len(f.Labels) > 0 {
		return nil, fmt.Errorf("%w: labels come from node ids in the topology form", ErrInvalidSystem)
	}
	net := network.New()
	for _, nd := range f.Nodes {
		id := network.NodeID(nd.ID)
		if err := net.AddNode(id, nd.Demand); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidSystem, err)
		}
		if nd.Capacity != 0 {
			if err := net.SetCapacity(id, nd.Capacity); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrInvalidSystem, err)
			}
		}
	}
	var w float64
	for _, l := range f.Links {
		w = 1
		if l.Weight != nil {
			w = *l.Weight
		}
		if err := net.AddLink(network.NodeID(l.From), network.NodeID(l.To), w); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidSystem, err)
		}
	}

	return FromNetwork(f.Name, net)
}

// FromNetwork builds a System from a network, labelling rows by node ID.
func FromNetwork(name string, net *network.Network) (*System, error) {
	a, b, err := net.System()
	if err != nil {
		return nil, err
	}
	ids := net.IDs()
	labels := make([]string, len(ids))
	for i, id := range ids {
		labels[i] = string(id)
	}

	return &System{Name: name, Labels: labels, A: a, B: b}, nil
}

// DefaultLabels returns "N1".."Nn".
func DefaultLabels(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("N%d", i+1)
	}

	return out
}
