// SPDX-License-Identifier: MIT

// Package matrix - horizontal concatenation and column blocks.
//
// Purpose:
//   - Build the working matrices of Gauss-Jordan runs: [A|b] and [A|I].
//   - Read blocks back out of a reduced matrix (e.g., A⁻¹ from [I|A⁻¹]).
//
// Policy:
//   - Results are always freshly allocated; inputs are never aliased, so an
//     elimination run can mutate its augmented matrix freely.

package matrix

import "fmt"

const (
	opAugment     = "Augment"
	opAugmentVec  = "AugmentVec"
	opColumnBlock = "ColumnBlock"
)

// Augment returns [a|b]: a (r×c1) followed by b (r×c2) as an r×(c1+c2) Dense.
//
// Errors: ErrNilMatrix; ErrDimensionMismatch when row counts differ.
// Complexity: O(r*(c1+c2)).
func Augment(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	if a.Rows() != b.Rows() {
		return nil, matrixErrorf(opAugment, ErrDimensionMismatch)
	}

	r, ca, cb := a.Rows(), a.Cols(), b.Cols()
	out, err := newDenseZeroOK(r, ca+cb)
	if err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	if err = copyBlock(out, a, 0); err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	if err = copyBlock(out, b, ca); err != nil {
		return nil, matrixErrorf(opAugment, err)
	}

	return out, nil
}

// AugmentVec returns [a|v] where v becomes the last column.
//
// Errors: ErrNilMatrix; ErrDimensionMismatch when len(v) != a.Rows().
// Complexity: O(r*(c+1)).
func AugmentVec(a Matrix, v []float64) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opAugmentVec, err)
	}
	if err := ValidateVecLen(v, a.Rows()); err != nil {
		return nil, matrixErrorf(opAugmentVec, err)
	}

	r, c := a.Rows(), a.Cols()
	out, err := newDenseZeroOK(r, c+1)
	if err != nil {
		return nil, matrixErrorf(opAugmentVec, err)
	}
	if err = copyBlock(out, a, 0); err != nil {
		return nil, matrixErrorf(opAugmentVec, err)
	}
	for i := 0; i < r; i++ {
		out.data[i*(c+1)+c] = v[i]
	}

	return out, nil
}

// ColumnBlock copies columns [c0, c0+width) of m into a new Dense.
//
// Errors: ErrNilMatrix; ErrBadShape when the window leaves the matrix.
// Complexity: O(r*width).
func ColumnBlock(m Matrix, c0, width int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opColumnBlock, err)
	}
	if c0 < 0 || width < 0 || c0+width > m.Cols() {
		return nil, matrixErrorf(opColumnBlock,
			fmt.Errorf("window [%d,%d) of %d columns: %w", c0, c0+width, m.Cols(), ErrBadShape))
	}

	d, err := AsDense(m)
	if err != nil {
		return nil, matrixErrorf(opColumnBlock, err)
	}
	rows := make([]int, d.r)
	for i := range rows {
		rows[i] = i
	}
	cols := make([]int, width)
	for j := range cols {
		cols[j] = c0 + j
	}
	out, err := d.Induced(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opColumnBlock, err)
	}

	return out, nil
}

// Column returns a copy of column j of m.
//
// Errors: ErrNilMatrix; ErrOutOfRange.
// Complexity: O(r).
func Column(m Matrix, j int) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opColumnBlock, err)
	}
	out := make([]float64, m.Rows())
	var err error
	for i := range out {
		if out[i], err = m.At(i, j); err != nil {
			return nil, matrixErrorf(opColumnBlock, err)
		}
	}

	return out, nil
}

// copyBlock writes src into dst starting at column c0 (same rows).
// dst must be *Dense with enough columns; caller guarantees shapes.
func copyBlock(dst *Dense, src Matrix, c0 int) error {
	r, c := src.Rows(), src.Cols()
	if s, ok := src.(*Dense); ok {
		for i := 0; i < r; i++ {
			copy(dst.data[i*dst.c+c0:i*dst.c+c0+c], s.data[i*c:(i+1)*c])
		}

		return nil
	}

	var v float64
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v, err = src.At(i, j); err != nil {
				return fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			dst.data[i*dst.c+c0+j] = v
		}
	}

	return nil
}
