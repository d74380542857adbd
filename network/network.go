// SPDX-License-Identifier: MIT

package network

import (
	"fmt"
	"math"

	"github.com/katalvlaran/netflow/matrix"
)

// New returns an empty Network.
func New() *Network {
	return &Network{index: make(map[NodeID]int)}
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// AddNode appends a node with the given demand. Row order follows call order.
//
// Errors: ErrEmptyNodeID, ErrDuplicateNode, ErrBadValue.
func (n *Network) AddNode(id NodeID, demand float64) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	if !finite(demand) {
		return fmt.Errorf("node %q demand: %w", id, ErrBadValue)
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if _, exists := n.index[id]; exists {
		return fmt.Errorf("node %q: %w", id, ErrDuplicateNode)
	}
	n.index[id] = len(n.nodes)
	n.nodes = append(n.nodes, Node{ID: id, Demand: demand})

	return nil
}

// SetCapacity sets the diagonal adjustment of node id (replacing any previous value).
//
// Errors: ErrNodeNotFound, ErrBadValue.
func (n *Network) SetCapacity(id NodeID, capacity float64) error {
	if !finite(capacity) {
		return fmt.Errorf("node %q capacity: %w", id, ErrBadValue)
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	i, ok := n.index[id]
	if !ok {
		return fmt.Errorf("node %q: %w", id, ErrNodeNotFound)
	}
	n.nodes[i].Capacity = capacity

	return nil
}

// AddLink connects two existing nodes. Parallel links accumulate.
//
// Errors: ErrNodeNotFound, ErrSelfLink, ErrBadValue.
func (n *Network) AddLink(from, to NodeID, weight float64) error {
	if from == to {
		return fmt.Errorf("link %q-%q: %w", from, to, ErrSelfLink)
	}
	if !finite(weight) {
		return fmt.Errorf("link %q-%q weight: %w", from, to, ErrBadValue)
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	for _, id := range [2]NodeID{from, to} {
		if _, ok := n.index[id]; !ok {
			return fmt.Errorf("link %q-%q: node %q: %w", from, to, id, ErrNodeNotFound)
		}
	}
	n.links = append(n.links, Link{From: from, To: to, Weight: weight})

	return nil
}

// Len returns the number of nodes.
func (n *Network) Len() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return len(n.nodes)
}

// Nodes returns a copy of the nodes in row order.
func (n *Network) Nodes() []Node {
	n.mu.RLock()
	defer n.mu.RUnlock()

	out := make([]Node, len(n.nodes))
	copy(out, n.nodes)

	return out
}

// IDs returns the node IDs in row order.
func (n *Network) IDs() []NodeID {
	n.mu.RLock()
	defer n.mu.RUnlock()

	out := make([]NodeID, len(n.nodes))
	for i, nd := range n.nodes {
		out[i] = nd.ID
	}

	return out
}

// Links returns a copy of the links in insertion order.
func (n *Network) Links() []Link {
	n.mu.RLock()
	defer n.mu.RUnlock()

	out := make([]Link, len(n.links))
	copy(out, n.links)

	return out
}

// System builds the coefficient matrix A and demand vector b.
// An empty network yields a 0×0 matrix and an empty vector.
//
// Complexity: O(V² + E).
func (n *Network) System() (*matrix.Dense, []float64, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	size := len(n.nodes)
	rows := make([][]float64, size)
	b := make([]float64, size)
	for i, nd := range n.nodes {
		rows[i] = make([]float64, size)
		rows[i][i] = nd.Capacity
		b[i] = nd.Demand
	}

	var i, j int
	for _, l := range n.links {
		i, j = n.index[l.From], n.index[l.To]
		rows[i][j] += l.Weight
		rows[j][i] += l.Weight
		rows[i][i] -= l.Weight
		rows[j][j] -= l.Weight
	}

	a, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, nil, fmt.Errorf("network: System: %w", err)
	}

	return a, b, nil
}
