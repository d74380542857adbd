// SPDX-License-Identifier: MIT

package linsys

import (
	"math"

	"github.com/katalvlaran/netflow/matrix"
)

// validateSystem rejects anything Solve/Classify cannot work on, before any
// numeric work begins.
func validateSystem(op string, a matrix.Matrix, b []float64) error {
	if err := matrix.ValidateNotNil(a); err != nil {
		return shapeErrorf(op, err)
	}
	if err := matrix.ValidateSquare(a); err != nil {
		return shapeErrorf(op, err)
	}
	if err := matrix.ValidateVecLen(b, a.Rows()); err != nil {
		return shapeErrorf(op, err)
	}
	if err := matrix.ValidateFinite(a); err != nil {
		return linsysErrorf(op, err)
	}
	if err := matrix.ValidateFiniteVec(b); err != nil {
		return linsysErrorf(op, err)
	}

	return nil
}

// Classify decides whether A·x = b has a unique solution, infinitely many,
// or none.
//
// Implementation:
//   - Stage 1: validate shapes (ErrShape) and finiteness.
//   - Stage 2: det(A), rank(A), rank([A|b]); ranks use the default SVD
//     threshold σmax·n·εmach, applied identically to both matrices.
//   - Stage 3: |det| > eps ⇒ Unique; equal ranks ⇒ ConsistentUnderdetermined;
//     otherwise Inconsistent.
//
// Behavior highlights:
//   - Pure: a and b are not mutated; equal inputs give equal outputs.
//   - The empty system (n = 0) is Unique with det = 1.
//
// Errors:
//   - ErrShape (joined with the matrix sentinel), ErrBadEpsilon,
//     matrix.ErrNaNInf, matrix.ErrDecompositionFailed.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Classify(a matrix.Matrix, b []float64, eps float64) (Classification, error) {
	if err := validateSystem(opClassify, a, b); err != nil {
		return Classification{}, err
	}
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		return Classification{}, linsysErrorf(opClassify, ErrBadEpsilon)
	}

	return classify(a, b, eps)
}

// classify assumes validated inputs.
func classify(a matrix.Matrix, b []float64, eps float64) (Classification, error) {
	n := a.Rows()
	det, err := matrix.Det(a)
	if err != nil {
		return Classification{}, linsysErrorf(opClassify, err)
	}
	rankA, err := matrix.Rank(a, 0)
	if err != nil {
		return Classification{}, linsysErrorf(opClassify, err)
	}
	aug, err := matrix.AugmentVec(a, b)
	if err != nil {
		return Classification{}, linsysErrorf(opClassify, err)
	}
	rankAug, err := matrix.Rank(aug, 0)
	if err != nil {
		return Classification{}, linsysErrorf(opClassify, err)
	}

	c := Classification{
		Determinant:   det,
		RankA:         rankA,
		RankAugmented: rankAug,
		N:             n,
	}
	switch {
	case math.Abs(det) > eps:
		c.Case = CaseUnique
	case rankA == rankAug:
		c.Case = CaseConsistentUnderdetermined
	default:
		c.Case = CaseInconsistent
	}

	return c, nil
}
