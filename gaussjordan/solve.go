// SPDX-License-Identifier: MIT

package gaussjordan

import (
	"fmt"

	"github.com/katalvlaran/netflow/matrix"
)

const (
	opInvert = "Invert"
	opSolve  = "Solve"
)

// gjErrorf wraps err with an operation tag, preserving it via %w.
func gjErrorf(tag string, err error) error {
	return fmt.Errorf("gaussjordan.%s: %w", tag, err)
}

// Invert computes A⁻¹ by reducing [A|I] and reading back the right block.
//
// Behavior highlights:
//   - A is not mutated. The returned Reduction carries the reduced [I|A⁻¹]
//     and, with WithTrace(), the step sequence.
//   - A 0×0 input yields a 0×0 inverse.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrNaNInf.
//   - ErrSingular when a pivot column was skipped; the partial Reduction is
//     still returned so callers can inspect or render it.
//
// Complexity:
//   - Time O(n³), Space O(n²) (+O(n²) per traced step).
func Invert(a matrix.Matrix, opts ...Option) (*matrix.Dense, *Reduction, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, nil, gjErrorf(opInvert, err)
	}
	n := a.Rows()
	id, err := matrix.NewIdentity(n)
	if err != nil {
		return nil, nil, gjErrorf(opInvert, err)
	}
	aug, err := matrix.Augment(a, id)
	if err != nil {
		return nil, nil, gjErrorf(opInvert, err)
	}

	red, err := Reduce(aug, n, opts...)
	if err != nil {
		return nil, nil, gjErrorf(opInvert, err)
	}
	if !red.Complete {
		return nil, red, gjErrorf(opInvert, fmt.Errorf("rank %d of %d: %w", red.Rank, n, ErrSingular))
	}

	inv, err := matrix.ColumnBlock(red.Matrix, n, n)
	if err != nil {
		return nil, nil, gjErrorf(opInvert, err)
	}

	return inv, red, nil
}

// Solve reduces [A|b] and returns its last column.
// An incomplete reduction (singular A) is not an error: the column is then a
// best-effort value and red.Complete reports false.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrDimensionMismatch
//     (len(b) != n), matrix.ErrNaNInf.
func Solve(a matrix.Matrix, b []float64, opts ...Option) ([]float64, *Reduction, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, nil, gjErrorf(opSolve, err)
	}
	n := a.Rows()
	aug, err := matrix.AugmentVec(a, b)
	if err != nil {
		return nil, nil, gjErrorf(opSolve, err)
	}

	red, err := Reduce(aug, n, opts...)
	if err != nil {
		return nil, nil, gjErrorf(opSolve, err)
	}
	x, err := matrix.Column(red.Matrix, n)
	if err != nil {
		return nil, nil, gjErrorf(opSolve, err)
	}

	return x, red, nil
}
