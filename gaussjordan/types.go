// SPDX-License-Identifier: MIT

// Package gaussjordan - step model and reduction result.
package gaussjordan

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/netflow/matrix"
)

// ErrPivotColumns is returned when the requested pivot width does not fit
// the augmented matrix (pivotCols != Rows or pivotCols > Cols).
// It always wraps matrix.ErrDimensionMismatch.
var ErrPivotColumns = fmt.Errorf("gaussjordan: pivot columns do not fit the augmented matrix: %w", matrix.ErrDimensionMismatch)

// ErrSingular is returned by Invert when a pivot column had to be skipped.
// It wraps matrix.ErrSingular so callers may match either sentinel.
var ErrSingular = fmt.Errorf("gaussjordan: matrix is singular: %w", matrix.ErrSingular)

// errStopped is an internal signal: the consumer of a lazy trace stopped early.
var errStopped = errors.New("gaussjordan: trace stopped")

// Kind identifies the elementary row operation a Step performed.
type Kind int

const (
	// Swap exchanges two rows (partial pivoting).
	Swap Kind = iota

	// Normalize divides the pivot row by the pivot value.
	Normalize

	// Eliminate subtracts a multiple of the pivot row from another row.
	Eliminate
)

// String returns a lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case Swap:
		return "swap"
	case Normalize:
		return "normalize"
	case Eliminate:
		return "eliminate"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Phase tells whether a Step belongs to the forward or the backward pass.
type Phase int

const (
	// Forward covers pivoting, normalization and elimination below pivots.
	Forward Phase = iota

	// Backward covers elimination above pivots.
	Backward
)

// String returns a lowercase name of the phase.
func (p Phase) String() string {
	if p == Backward {
		return "backward"
	}

	return "forward"
}

// Step is an immutable snapshot of one elementary row operation.
//
// Fields:
//   - Index  - 0-based position in the step sequence.
//   - Column - pivot column being processed.
//   - Row    - row that was modified (for Swap: the pivot row i).
//   - Source - the other row involved (Swap partner, or the pivot row for
//     Eliminate); -1 for Normalize.
//   - Factor - divisor for Normalize, multiplier for Eliminate, 0 for Swap.
//   - Matrix - deep copy of the working matrix right after the operation.
type Step struct {
	Index  int
	Kind   Kind
	Phase  Phase
	Label  string
	Column int
	Row    int
	Source int
	Factor float64
	Matrix *matrix.Dense
}

// Reduction is the outcome of one elimination run.
//
// Matrix is the reduced working copy (the caller's input is never touched).
// Pivots lists the pivot columns in the order they were fixed; Rank is
// len(Pivots). Complete reports whether every pivot column received a pivot,
// i.e. the left block was reduced to the identity.
type Reduction struct {
	Matrix   *matrix.Dense
	Pivots   []int
	Rank     int
	Complete bool
	Steps    []Step
}

// label helpers; rows are printed 1-based.

func swapLabel(i, k int) string {
	return fmt.Sprintf("R%d <-> R%d", i+1, k+1)
}

func normalizeLabel(i int, p float64) string {
	return fmt.Sprintf("R%d = R%d / (%s)", i+1, i+1, formatFactor(p))
}

func eliminateLabel(dst, src int, factor float64) string {
	return fmt.Sprintf("R%d = R%d - (%s) * R%d", dst+1, dst+1, formatFactor(factor), src+1)
}

func formatFactor(v float64) string {
	return fmt.Sprintf("%.4g", v)
}
