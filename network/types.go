// SPDX-License-Identifier: MIT

// Package network models a communications network as a linear system.
//
// A Network is an ordered set of nodes (each with a traffic demand and an
// optional capacity adjustment) joined by undirected, weighted links. System
// turns it into A·x = b:
//
//	for each link (i, j, w):  A[i][j] += w, A[j][i] += w, A[i][i] -= w, A[j][j] -= w
//	for each node i:          A[i][i] += Capacity(i), b[i] = Demand(i)
//
// Without capacity adjustments A is a (negated) graph Laplacian whose rows sum
// to zero, so it is singular; a non-zero capacity on the diagonal makes the
// system invertible. Node insertion order is the row order of A.
//
// All methods are safe for concurrent use.
//
// Errors:
//
//	ErrEmptyNodeID  - node ID is the empty string.
//	ErrDuplicateNode - node ID already present.
//	ErrNodeNotFound - link or capacity refers to an unknown node.
//	ErrSelfLink     - link from a node to itself.
//	ErrBadValue     - NaN or ±Inf demand, capacity or weight.
//	ErrLengthMismatch - solution vector length differs from the node count.
package network

import (
	"errors"
	"sync"
)

// Sentinel errors for network operations.
var (
	// ErrEmptyNodeID indicates that the provided node ID is empty.
	ErrEmptyNodeID = errors.New("network: node ID is empty")

	// ErrDuplicateNode indicates AddNode was called twice for the same ID.
	ErrDuplicateNode = errors.New("network: duplicate node")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("network: node not found")

	// ErrSelfLink indicates a link whose endpoints coincide.
	ErrSelfLink = errors.New("network: self-link not allowed")

	// ErrBadValue indicates a non-finite demand, capacity or weight.
	ErrBadValue = errors.New("network: value must be finite")

	// ErrLengthMismatch indicates a solution vector that does not match the node count.
	ErrLengthMismatch = errors.New("network: length mismatch")
)

// NodeID identifies a node within its Network.
type NodeID string

// Node is one endpoint of the network.
type Node struct {
	// ID uniquely identifies the node.
	ID NodeID

	// Demand is the traffic the node must absorb (its entry of b).
	Demand float64

	// Capacity is added to the node's diagonal entry of A.
	Capacity float64
}

// Link is an undirected, weighted connection between two nodes.
type Link struct {
	From   NodeID
	To     NodeID
	Weight float64
}

// Network is an ordered node set plus links.
type Network struct {
	mu    sync.RWMutex
	nodes []Node
	index map[NodeID]int
	links []Link
}
