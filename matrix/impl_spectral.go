// SPDX-License-Identifier: MIT

// Package matrix - determinant, rank, SVD and Moore–Penrose pseudo-inverse.
//
// Purpose:
//   - Expose the spectral quantities the system classifier needs (det, rank)
//     and the least-squares fallback of the solver (A⁺).
//   - Delegate factorizations to gonum (LU with partial pivoting for Det,
//     Golub–Kahan SVD for ranks and A⁺); this package only adapts shapes,
//     validates inputs and applies the cutoff policy.
//
// Policy:
//   - Rank uses the conventional default threshold σmax·max(r,c)·εmach when
//     the caller passes tol <= 0.
//   - PseudoInverse zeroes reciprocal singular values with σ ≤ rcond·σmax.
//   - 0×0 inputs are legal: det = 1 (empty product), rank = 0, A⁺ is 0×0.
//
// AI-Hints:
//   - Classification must use Rank on both A and [A|b] with the SAME default
//     threshold rule, otherwise consistent systems can look inconsistent.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// MachineEpsilon is the spacing of float64 values around 1 (2⁻⁵²).
const MachineEpsilon = 2.220446049250313e-16

const (
	opDet            = "Det"
	opRank           = "Rank"
	opSingularValues = "SingularValues"
	opPseudoInverse  = "PseudoInverse"
	opResidual       = "Residual"
)

// toGonum copies m into a gonum *mat.Dense. Caller guarantees r,c > 0.
func toGonum(m Matrix) (*mat.Dense, error) {
	r, c := m.Rows(), m.Cols()
	buf := make([]float64, r*c)
	if d, ok := m.(*Dense); ok {
		copy(buf, d.data)

		return mat.NewDense(r, c, buf), nil
	}

	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if buf[i*c+j], err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
		}
	}

	return mat.NewDense(r, c, buf), nil
}

// fromGonum copies g into a fresh *Dense, honoring the gonum row stride.
func fromGonum(g *mat.Dense) (*Dense, error) {
	r, c := g.Dims()
	out, err := newDenseZeroOK(r, c)
	if err != nil {
		return nil, err
	}
	raw := g.RawMatrix()
	for i := 0; i < r; i++ {
		copy(out.data[i*c:(i+1)*c], raw.Data[i*raw.Stride:i*raw.Stride+c])
	}

	return out, nil
}

// Det returns the determinant of a square matrix.
// Implementation:
//   - Stage 1: ValidateSquareNonNil; 0×0 ⇒ 1.
//   - Stage 2: copy into gonum and call mat.Det (LU with partial pivoting).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Det(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	if m.Rows() == 0 {
		return 1, nil
	}
	g, err := toGonum(m)
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	return mat.Det(g), nil
}

// SingularValues returns the singular values of m in non-increasing order.
// Zero-area inputs yield an empty slice.
//
// Errors:
//   - ErrNilMatrix; ErrDecompositionFailed when the SVD does not converge.
//
// Complexity:
//   - Time O(min(r,c)·r·c), Space O(r·c).
func SingularValues(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSingularValues, err)
	}
	if m.Rows() == 0 || m.Cols() == 0 {
		return []float64{}, nil
	}
	g, err := toGonum(m)
	if err != nil {
		return nil, matrixErrorf(opSingularValues, err)
	}

	var svd mat.SVD
	if ok := svd.Factorize(g, mat.SVDNone); !ok {
		return nil, matrixErrorf(opSingularValues, ErrDecompositionFailed)
	}

	return svd.Values(nil), nil
}

// Rank returns the numerical rank of m: the number of singular values > tol.
// tol <= 0 selects the default threshold σmax·max(r,c)·MachineEpsilon.
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf (tol), ErrDecompositionFailed.
//
// Complexity:
//   - Dominated by SingularValues.
func Rank(m Matrix, tol float64) (int, error) {
	if isNonFinite(tol) {
		return 0, matrixErrorf(opRank, ErrNaNInf)
	}
	sv, err := SingularValues(m)
	if err != nil {
		return 0, matrixErrorf(opRank, err)
	}
	if len(sv) == 0 {
		return 0, nil
	}
	if tol <= 0 {
		tol = sv[0] * float64(max(m.Rows(), m.Cols())) * MachineEpsilon
	}

	rank := 0
	for _, s := range sv {
		if s > tol {
			rank++
		}
	}

	return rank, nil
}

// PseudoInverse returns the Moore–Penrose pseudo-inverse A⁺ (c×r) of an r×c matrix.
// MAIN DESCRIPTION:
//   - A⁺·b is the minimum-norm least-squares solution of A·x ≈ b.
//
// Implementation:
//   - Stage 1: thin SVD A = U·Σ·Vᵀ via gonum.
//   - Stage 2: A⁺ = V·Σ⁺·Uᵀ where Σ⁺ keeps 1/σ only for σ > rcond·σmax.
//
// Behavior highlights:
//   - rcond <= 0 selects DefaultRcond.
//   - A zero matrix maps to a zero pseudo-inverse of transposed shape.
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf (rcond), ErrDecompositionFailed.
//
// Complexity:
//   - Time O(min(r,c)·r·c), Space O(r·c).
func PseudoInverse(m Matrix, rcond float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opPseudoInverse, err)
	}
	if isNonFinite(rcond) {
		return nil, matrixErrorf(opPseudoInverse, ErrNaNInf)
	}
	if rcond <= 0 {
		rcond = DefaultRcond
	}

	r, c := m.Rows(), m.Cols()
	out, err := newDenseZeroOK(c, r)
	if err != nil {
		return nil, matrixErrorf(opPseudoInverse, err)
	}
	if r == 0 || c == 0 {
		return out, nil
	}

	g, err := toGonum(m)
	if err != nil {
		return nil, matrixErrorf(opPseudoInverse, err)
	}
	var svd mat.SVD
	if ok := svd.Factorize(g, mat.SVDThin); !ok {
		return nil, matrixErrorf(opPseudoInverse, ErrDecompositionFailed)
	}
	var u, v mat.Dense
	svd.UTo(&u) // r×k
	svd.VTo(&v) // c×k
	s := svd.Values(nil)

	cutoff := rcond * s[0]
	inv := make([]float64, len(s))
	for k, sk := range s {
		if sk > cutoff {
			inv[k] = 1 / sk
		}
	}

	// V·Σ⁺ (c×k): scale the columns of V; Σ⁺ has no other entries.
	k := len(inv)
	vs, err := newDenseZeroOK(c, k)
	if err != nil {
		return nil, matrixErrorf(opPseudoInverse, err)
	}
	var i, j int
	for i = 0; i < c; i++ {
		for j = 0; j < k; j++ {
			vs.data[i*k+j] = v.At(i, j) * inv[j]
		}
	}
	ud, err := fromGonum(&u)
	if err != nil {
		return nil, matrixErrorf(opPseudoInverse, err)
	}
	ut, err := Transpose(ud)
	if err != nil {
		return nil, matrixErrorf(opPseudoInverse, err)
	}
	prod, err := Mul(vs, ut)
	if err != nil {
		return nil, matrixErrorf(opPseudoInverse, err)
	}

	return prod.(*Dense), nil
}

// Norm2 returns the Euclidean norm of v (0 for an empty vector).
// Complexity: O(len(v)).
func Norm2(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}

	return floats.Norm(v, 2)
}

// Residual returns ‖A·x − b‖₂.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (len(x) != Cols, len(b) != Rows).
//
// Complexity:
//   - Time O(r*c), Space O(r).
func Residual(a Matrix, x, b []float64) (float64, error) {
	ax, err := MatVec(a, x)
	if err != nil {
		return 0, matrixErrorf(opResidual, err)
	}
	if err = ValidateVecLen(b, len(ax)); err != nil {
		return 0, matrixErrorf(opResidual, err)
	}
	if len(ax) == 0 {
		return 0, nil
	}
	floats.Sub(ax, b) // ax ← ax − b

	return Norm2(ax), nil
}
