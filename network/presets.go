// SPDX-License-Identifier: MIT

package network

// Preset node IDs of the three-node reference network.
const (
	N1 NodeID = "N1"
	N2 NodeID = "N2"
	N3 NodeID = "N3"
)

// Triangle returns the three fully connected nodes with unit links and
// demands 100, 200, 150. Its matrix is [[-2,1,1],[1,-2,1],[1,1,-2]],
// which is singular.
func Triangle() *Network {
	n := New()
	// Inputs are constant and valid; errors are impossible here.
	_ = n.AddNode(N1, 100)
	_ = n.AddNode(N2, 200)
	_ = n.AddNode(N3, 150)
	_ = n.AddLink(N1, N2, 1)
	_ = n.AddLink(N1, N3, 1)
	_ = n.AddLink(N2, N3, 1)

	return n
}

// AdjustedTriangle is Triangle with a capacity of −1 on every node, giving
// diagonal −3 and an invertible matrix.
func AdjustedTriangle() *Network {
	n := Triangle()
	for _, id := range []NodeID{N1, N2, N3} {
		_ = n.SetCapacity(id, -1)
	}

	return n
}
