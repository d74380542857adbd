// SPDX-License-Identifier: MIT

// Package gaussjordan - the elimination engine.
//
// Purpose:
//   - One Gauss-Jordan routine shared by the solve path ([A|b]) and the
//     inverse path ([A|I]); the engine only needs the pivot width n and is
//     agnostic to how many columns follow it.
//
// Algorithm:
//   - Forward pass, for each pivot column i in 0..n-1:
//     1) partial pivoting: pick the row r ≥ i maximizing |m[r][i]| (ties keep
//     the lowest row); if that maximum is below ε the column is skipped;
//     2) swap rows i and r when r ≠ i;
//     3) divide row i by m[i][i] unless |m[i][i]−1| ≤ ε;
//     4) for every row j > i with |m[j][i]| > ε: R_j ← R_j − m[j][i]·R_i.
//   - Backward pass over the recorded pivot columns, last to first: for every
//     row j above the pivot row with |m[j][c]| > ε: R_j ← R_j − m[j][c]·R_c.
//
// Determinism:
//   - Fixed loop orders; identical inputs produce bit-identical outputs and
//     identical step sequences.
package gaussjordan

import (
	"math"

	"github.com/katalvlaran/netflow/matrix"
)

const opReduce = "Reduce"

// runner holds the state of one elimination run over a private working copy.
type runner struct {
	m     *matrix.Dense
	n     int
	eps   float64
	emit  func(Step) bool // nil: no snapshots are taken
	index int
}

func (r *runner) at(i, j int) (float64, error) {
	return r.m.At(i, j)
}

// record snapshots the working matrix and hands the step to emit.
// Returns errStopped when the consumer declines further steps.
func (r *runner) record(kind Kind, phase Phase, label string, col, row, src int, factor float64) error {
	if r.emit == nil {
		return nil
	}
	st := Step{
		Index:  r.index,
		Kind:   kind,
		Phase:  phase,
		Label:  label,
		Column: col,
		Row:    row,
		Source: src,
		Factor: factor,
		Matrix: r.m.Clone().(*matrix.Dense),
	}
	r.index++
	if !r.emit(st) {
		return errStopped
	}

	return nil
}

// run executes both passes and returns the pivot columns in fixing order.
func (r *runner) run() ([]int, error) {
	pivots := make([]int, 0, r.n)

	var (
		i, j, k     int
		best        int
		bestAbs, a  float64
		pivot, fact float64
		err         error
	)
	for i = 0; i < r.n; i++ {
		// 1) partial pivoting
		best = i
		if bestAbs, err = r.at(i, i); err != nil {
			return nil, err
		}
		bestAbs = math.Abs(bestAbs)
		for k = i + 1; k < r.n; k++ {
			if a, err = r.at(k, i); err != nil {
				return nil, err
			}
			if a = math.Abs(a); a > bestAbs {
				best, bestAbs = k, a
			}
		}
		if bestAbs < r.eps {
			continue // free column: lowers the effective rank
		}

		// 2) swap
		if best != i {
			if err = r.m.SwapRows(i, best); err != nil {
				return nil, err
			}
			if err = r.record(Swap, Forward, swapLabel(i, best), i, i, best, 0); err != nil {
				return nil, err
			}
		}

		// 3) normalize
		if pivot, err = r.at(i, i); err != nil {
			return nil, err
		}
		if math.Abs(pivot-1) > r.eps {
			if err = r.m.DivideRow(i, pivot); err != nil {
				return nil, err
			}
			if err = r.record(Normalize, Forward, normalizeLabel(i, pivot), i, i, -1, pivot); err != nil {
				return nil, err
			}
		}

		// 4) eliminate below
		for j = i + 1; j < r.n; j++ {
			if fact, err = r.at(j, i); err != nil {
				return nil, err
			}
			if math.Abs(fact) <= r.eps {
				continue
			}
			if err = r.m.AddScaledRow(j, i, -fact); err != nil {
				return nil, err
			}
			if err = r.record(Eliminate, Forward, eliminateLabel(j, i, fact), i, j, i, fact); err != nil {
				return nil, err
			}
		}
		pivots = append(pivots, i)
	}

	var c, p int
	for p = len(pivots) - 1; p >= 0; p-- {
		c = pivots[p]
		for j = c - 1; j >= 0; j-- {
			if fact, err = r.at(j, c); err != nil {
				return nil, err
			}
			if math.Abs(fact) <= r.eps {
				continue
			}
			if err = r.m.AddScaledRow(j, c, -fact); err != nil {
				return nil, err
			}
			if err = r.record(Eliminate, Backward, eliminateLabel(j, c, fact), c, j, c, fact); err != nil {
				return nil, err
			}
		}
	}

	return pivots, nil
}

// prepare validates the augmented matrix and returns a private working copy.
func prepare(aug matrix.Matrix, pivotCols int) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(aug); err != nil {
		return nil, gjErrorf(opReduce, err)
	}
	if pivotCols < 0 || aug.Rows() != pivotCols || pivotCols > aug.Cols() {
		return nil, gjErrorf(opReduce, ErrPivotColumns)
	}
	if err := matrix.ValidateFinite(aug); err != nil {
		return nil, gjErrorf(opReduce, err)
	}
	work, err := matrix.CopyDense(aug)
	if err != nil {
		return nil, gjErrorf(opReduce, err)
	}

	return work, nil
}

// Reduce runs Gauss-Jordan elimination on a copy of aug, treating its first
// pivotCols columns as the coefficient block.
//
// Implementation:
//   - Stage 1: validate (non-nil, Rows == pivotCols ≤ Cols, finite) and copy.
//   - Stage 2: forward and backward passes (see package notes).
//   - Stage 3: package the working copy, pivots and (optionally) steps.
//
// Behavior highlights:
//   - aug is never mutated; Reduction.Matrix is owned by the caller.
//   - A skipped column is not an error: it shows up as Rank < pivotCols and
//     Complete == false.
//   - Steps are recorded only with WithTrace().
//
// Errors:
//   - matrix.ErrNilMatrix, ErrPivotColumns (wraps matrix.ErrDimensionMismatch),
//     matrix.ErrNaNInf (non-finite input or overflow during elimination).
//
// Complexity:
//   - Time O(n²·w) for an n×w augmented matrix; Space O(n·w), plus O(n·w)
//     per recorded step when tracing.
func Reduce(aug matrix.Matrix, pivotCols int, opts ...Option) (*Reduction, error) {
	o := gatherOptions(opts...)
	work, err := prepare(aug, pivotCols)
	if err != nil {
		return nil, err
	}

	var steps []Step
	r := &runner{m: work, n: pivotCols, eps: o.eps}
	if o.trace {
		steps = make([]Step, 0, pivotCols*pivotCols)
		r.emit = func(s Step) bool {
			steps = append(steps, s)
			return true
		}
	}

	pivots, err := r.run()
	if err != nil {
		return nil, gjErrorf(opReduce, err)
	}

	return &Reduction{
		Matrix:   work,
		Pivots:   pivots,
		Rank:     len(pivots),
		Complete: len(pivots) == pivotCols,
		Steps:    steps,
	}, nil
}
