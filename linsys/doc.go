// SPDX-License-Identifier: MIT

// Package linsys classifies and solves square linear systems A·x = b.
//
// Classify reports one of three cases from det(A), rank(A) and rank([A|b]).
// Solve dispatches on that case: the unique case goes through Gauss-Jordan
// inversion of [A|I] (package gaussjordan), the singular cases through the
// Moore–Penrose pseudo-inverse. Either way the caller gets x, the residual
// ‖A·x − b‖₂ and the classification; a missing exact solution is reported as
// data, never as an error.
//
//	res, err := linsys.Solve(a, b, linsys.WithTrace())
//	if err != nil {
//		// errors.Is(err, linsys.ErrShape): bad dimensions
//	}
//	if res.Classification.Case == linsys.CaseInconsistent {
//		// x is the least-squares approximation
//	}
//
// Diagnostics go to a *zap.Logger supplied with WithLogger; nothing is
// logged by default.
package linsys
