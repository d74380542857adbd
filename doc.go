// SPDX-License-Identifier: MIT

// Package netflow models a communications network as a linear system
// A·x = b and solves it with a traceable Gauss-Jordan engine.
//
// 🚀 What is netflow?
//
//	A small library plus CLI that brings together:
//		• Dense matrices: row operations, augmentation, det, rank, SVD, pinv
//		• Gauss-Jordan: partial pivoting, every row operation as a named step
//		• Classification: unique / consistent-underdetermined / inconsistent
//		• Solving: inverse when unique, pseudo-inverse otherwise, with residual
//		• Networks: nodes, demands, weighted links → A and b
//
// ✨ Why choose netflow?
//
//   - Explainable – each swap, normalization and elimination can be replayed
//   - Never stuck – singular systems still get a least-squares answer
//   - Safe – inputs are never mutated and every call is reentrant
//
// Layout:
//
//	matrix/         Dense type, row operations, linear algebra, spectral helpers
//	gaussjordan/    elimination engine, Reduce, lazy Trace, Invert, Solve
//	linsys/         Classify and the Solve orchestrator
//	network/        node/link model, presets, flow interpretation
//	render/         terminal renderer, pager, step replay
//	cmd/netflow/    cobra CLI (solve, classify, invert, example)
//
// Quick ASCII example:
//
//	    N1
//	   /  \
//	  N2──N3
//
//	three nodes, each linked to the other two, demands 100, 200 and 150.
//
//	go install github.com/katalvlaran/netflow/cmd/netflow@latest
//	netflow example
package netflow
