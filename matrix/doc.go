// SPDX-License-Identifier: MIT

// Package matrix offers the dense numeric primitives of netflow.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix with bounds-safe At/Set and a
//     finite-only numeric policy.
//   - Elementary row operations (SwapRows, DivideRow, AddScaledRow)
//     used by the Gauss-Jordan engine.
//   - Augmentation helpers ([A|b], [A|I]) and column-block extraction.
//   - Kernels: Mul, Transpose, MatVec.
//   - Spectral helpers backed by gonum: Det, Rank, SingularValues,
//     PseudoInverse, plus Norm2 and Residual.
//
// All errors are package sentinels (see errors.go) wrapped with an
// operation tag; match them with errors.Is.
//
// See the examples in this package for usage patterns.
package matrix
