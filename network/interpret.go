// SPDX-License-Identifier: MIT

package network

import (
	"fmt"

	"github.com/katalvlaran/netflow/linsys"
)

// Direction tells whether a node is a net sender or a net receiver.
type Direction int

const (
	// Outbound: x[i] ≥ 0, the node sends more than it receives.
	Outbound Direction = iota
	// Inbound: x[i] < 0, the node receives more than it sends.
	Inbound
)

// String returns "outbound" or "inbound".
func (d Direction) String() string {
	if d == Inbound {
		return "inbound"
	}

	return "outbound"
}

// NodeFlow is the computed net flow of one node.
type NodeFlow struct {
	Node      NodeID
	Flow      float64
	Direction Direction
}

// Interpret pairs node IDs with the entries of a solution vector.
//
// Errors: ErrLengthMismatch when len(ids) != len(x).
func Interpret(ids []NodeID, x []float64) ([]NodeFlow, error) {
	if len(ids) != len(x) {
		return nil, fmt.Errorf("network: Interpret: %d ids for %d values: %w", len(ids), len(x), ErrLengthMismatch)
	}
	out := make([]NodeFlow, len(x))
	for i, v := range x {
		d := Outbound
		if v < 0 {
			d = Inbound
		}
		out[i] = NodeFlow{Node: ids[i], Flow: v, Direction: d}
	}

	return out, nil
}

// Recommend returns operator advice for a classified network.
func Recommend(c linsys.Case) []string {
	if c == linsys.CaseUnique {
		return []string{
			"the current configuration is balanced; keep the computed flows",
			"monitor link performance regularly",
		}
	}

	return []string{
		"review the links between nodes: some nodes depend on each other",
		"consider adding or removing links",
		"adjust node capacities (the diagonal of A)",
		"check for redundant nodes",
		"redistribute the traffic demand",
	}
}
