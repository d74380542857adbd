// SPDX-License-Identifier: MIT

// Package linsys - solver orchestration.
//
// Purpose:
//   - Compose Classify, the Gauss-Jordan engine and the pseudo-inverse into
//     one call that always returns x plus diagnostics for well-shaped input.
//
// Dispatch:
//   - Unique                    → reduce [A|I], x = A⁻¹·b.
//   - ConsistentUnderdetermined → x = A⁺·b (minimum-norm exact solution).
//   - Inconsistent              → x = A⁺·b (least squares, residual > 0).
//
// Policy:
//   - Shape violations are rejected before any numeric work (ErrShape).
//   - "No unique solution" is data (Result.Classification), never an error.

package linsys

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/netflow/gaussjordan"
	"github.com/katalvlaran/netflow/matrix"
)

// Solve computes x for A·x = b.
//
// Implementation:
//   - Stage 1: validate; n = 0 short-circuits to an empty Result (MethodNone).
//   - Stage 2: Classify.
//   - Stage 3: Unique ⇒ Gauss-Jordan inverse. If the engine nevertheless
//     skips a pivot (|det| > ε but the matrix is numerically rank deficient),
//     fall back to the pseudo-inverse; the classification is kept.
//     Singular ⇒ pseudo-inverse; with WithTrace a best-effort [A|b] trace is
//     attached.
//   - Stage 4: residual ‖A·x − b‖₂.
//
// Behavior highlights:
//   - a and b are never mutated; repeated calls give bit-identical results.
//   - Safe for concurrent use: each call owns all of its working memory.
//
// Errors:
//   - ErrShape (joined with matrix.ErrNilMatrix / ErrNonSquare /
//     ErrDimensionMismatch), matrix.ErrNaNInf, matrix.ErrDecompositionFailed.
//
// Complexity:
//   - Time O(n³), Space O(n²) (+O(n²) per traced step).
func Solve(a matrix.Matrix, b []float64, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)
	log := o.logger

	if err := validateSystem(opSolve, a, b); err != nil {
		return nil, err
	}
	n := a.Rows()
	if n == 0 {
		log.Debug("empty system")
		return &Result{
			X:              []float64{},
			Classification: Classification{Case: CaseUnique, Determinant: 1},
			Method:         MethodNone,
		}, nil
	}

	cls, err := classify(a, b, o.eps)
	if err != nil {
		return nil, linsysErrorf(opSolve, err)
	}
	log.Debug("classified system",
		zap.Int("n", n),
		zap.Stringer("case", cls.Case),
		zap.Float64("det", cls.Determinant),
		zap.Int("rank_a", cls.RankA),
		zap.Int("rank_aug", cls.RankAugmented),
	)

	res := &Result{Classification: cls}
	if cls.Case == CaseUnique {
		inv, red, ierr := gaussjordan.Invert(a, o.engineOptions()...)
		switch {
		case ierr == nil:
			res.Method = MethodInverse
			res.Inverse = inv
			res.Steps = red.Steps
		case errors.Is(ierr, gaussjordan.ErrSingular):
			log.Warn("pivot skipped on a non-singular matrix, falling back to pseudo-inverse",
				zap.Float64("det", cls.Determinant),
				zap.Int("engine_rank", red.Rank),
				zap.Float64("eps", o.eps),
			)
			if err = solvePseudo(a, o, res); err != nil {
				return nil, err
			}
			res.Steps = red.Steps
		default:
			return nil, linsysErrorf(opSolve, ierr)
		}
	} else {
		if err = solvePseudo(a, o, res); err != nil {
			return nil, err
		}
		if o.trace {
			if _, red, terr := gaussjordan.Solve(a, b, o.engineOptions()...); terr == nil {
				res.Steps = red.Steps
			} else {
				log.Debug("best-effort trace unavailable", zap.Error(terr))
			}
		}
	}

	if res.X, err = matrix.MatVec(res.Inverse, b); err != nil {
		return nil, linsysErrorf(opSolve, err)
	}
	if res.Residual, err = matrix.Residual(a, res.X, b); err != nil {
		return nil, linsysErrorf(opSolve, err)
	}
	log.Debug("solved system",
		zap.Stringer("method", res.Method),
		zap.Float64("residual", res.Residual),
		zap.Int("steps", len(res.Steps)),
	)

	return res, nil
}

// solvePseudo stores A⁺ in res and marks the method.
func solvePseudo(a matrix.Matrix, o options, res *Result) error {
	pinv, err := matrix.PseudoInverse(a, o.rcond)
	if err != nil {
		return linsysErrorf(opSolve, err)
	}
	res.Method = MethodPseudoInverse
	res.Inverse = pinv

	return nil
}

// Invert returns A⁻¹ and, with WithTrace, the elimination steps on [A|I].
//
// Errors:
//   - ErrShape (joined with the matrix sentinel) for nil or non-square A.
//   - matrix.ErrNaNInf for non-finite entries.
//   - gaussjordan.ErrSingular (also matching matrix.ErrSingular) when a pivot
//     column is skipped; the steps recorded so far are still returned.
func Invert(a matrix.Matrix, opts ...Option) (*matrix.Dense, []gaussjordan.Step, error) {
	o := gatherOptions(opts...)
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, nil, shapeErrorf(opInvert, err)
	}

	inv, red, err := gaussjordan.Invert(a, o.engineOptions()...)
	if err != nil {
		var steps []gaussjordan.Step
		if red != nil {
			steps = red.Steps
		}
		return nil, steps, linsysErrorf(opInvert, err)
	}
	o.logger.Debug("inverted matrix", zap.Int("n", a.Rows()), zap.Int("steps", len(red.Steps)))

	return inv, red.Steps, nil
}
