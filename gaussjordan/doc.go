// SPDX-License-Identifier: MIT

// Package gaussjordan implements Gauss-Jordan elimination with partial
// pivoting over augmented matrices, recording every elementary row operation
// as a named snapshot.
//
// One engine serves both uses:
//
//   - Solve reduces [A|b]; the last column of the result is x.
//   - Invert reduces [A|I]; the right block of the result is A⁻¹.
//
// A single tolerance ε (default 1e-10, see WithEpsilon) governs pivot
// selection, the "already normalized" short-circuit and the "already
// eliminated" short-circuit. A column whose best pivot is below ε is skipped;
// that is how rank deficiency surfaces (Reduction.Rank, Reduction.Complete),
// never as an error.
//
// Step traces come in two forms. Reduce(..., WithTrace()) collects them
// eagerly into Reduction.Steps. NewTrace(...).All() returns an iter.Seq that
// recomputes lazily on every range loop, which suits pausing renderers:
//
//	tr := gaussjordan.NewTrace(aug, n)
//	for st := range tr.All() {
//		fmt.Println(st.Label)
//	}
//
// Inputs are never mutated and no state is shared between calls, so the
// package is safe for concurrent use.
package gaussjordan
