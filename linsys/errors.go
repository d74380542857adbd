// SPDX-License-Identifier: MIT

package linsys

import (
	"errors"
	"fmt"
)

// ErrShape marks a rejected system: A is not square, or len(b) != Rows(A).
// Errors carrying it also carry the matrix sentinel that triggered the
// rejection (matrix.ErrNonSquare, matrix.ErrDimensionMismatch, ...).
var ErrShape = errors.New("linsys: invalid system shape")

// ErrBadEpsilon marks a tolerance that is NaN, infinite or negative.
var ErrBadEpsilon = errors.New("linsys: epsilon must be finite and >= 0")

const (
	opSolve    = "Solve"
	opClassify = "Classify"
	opInvert   = "Invert"
)

// linsysErrorf wraps err with an operation tag.
func linsysErrorf(op string, err error) error {
	return fmt.Errorf("linsys.%s: %w", op, err)
}

// shapeErrorf tags err as a shape violation while keeping err matchable.
func shapeErrorf(op string, err error) error {
	return fmt.Errorf("linsys.%s: %w: %w", op, ErrShape, err)
}
