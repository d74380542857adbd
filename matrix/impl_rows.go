// SPDX-License-Identifier: MIT

// Package matrix - elementary row operations on Dense (in place).
//
// Purpose:
//   - Provide the three elementary operations every elimination kernel is
//     built from: swap, divide, and "add a multiple of another row".
//   - Keep them bounds-safe at the public surface (sentinels, no panics).
//
// Determinism:
//   - Each operation walks its row(s) left to right; no temporaries beyond scalars.
//
// Complexity quicksheet:
//   - SwapRows, DivideRow, AddScaledRow: O(c) time, O(1) extra space.

package matrix

import "fmt"

const (
	ctxSwapRows     = "SwapRows"
	ctxDivideRow    = "DivideRow"
	ctxAddScaledRow = "AddScaledRow"
)

// checkRow validates a row index for the named operation.
func (m *Dense) checkRow(op string, i int) error {
	if i < 0 || i >= m.r {
		return fmt.Errorf("Dense.%s: row %d: %w", op, i, ErrOutOfRange)
	}

	return nil
}

// SwapRows exchanges rows i and k in place. Swapping a row with itself is a no-op.
//
// Errors: ErrOutOfRange.
// Complexity: O(c).
func (m *Dense) SwapRows(i, k int) error {
	if err := m.checkRow(ctxSwapRows, i); err != nil {
		return err
	}
	if err := m.checkRow(ctxSwapRows, k); err != nil {
		return err
	}
	if i == k {
		return nil
	}

	bi, bk := i*m.c, k*m.c
	for j := 0; j < m.c; j++ {
		m.data[bi+j], m.data[bk+j] = m.data[bk+j], m.data[bi+j]
	}

	return nil
}

// DivideRow divides every entry of row i by d in place.
// Division (rather than multiplying by 1/d) keeps the pivot entry exactly 1.
//
// Errors: ErrOutOfRange; ErrNaNInf when d is not finite; ErrSingular when d == 0.
// Complexity: O(c).
func (m *Dense) DivideRow(i int, d float64) error {
	if err := m.checkRow(ctxDivideRow, i); err != nil {
		return err
	}
	if isNonFinite(d) {
		return fmt.Errorf("Dense.%s: divisor: %w", ctxDivideRow, ErrNaNInf)
	}
	if d == 0 {
		return fmt.Errorf("Dense.%s: divisor: %w", ctxDivideRow, ErrSingular)
	}

	row := m.data[i*m.c : (i+1)*m.c]
	for j := range row {
		row[j] /= d
	}

	return nil
}

// AddScaledRow performs row[dst] += alpha * row[src] in place.
// dst == src is rejected: the update would read its own partially written row.
//
// Errors: ErrOutOfRange (also for dst == src); ErrNaNInf when alpha is not finite.
// Complexity: O(c).
func (m *Dense) AddScaledRow(dst, src int, alpha float64) error {
	if err := m.checkRow(ctxAddScaledRow, dst); err != nil {
		return err
	}
	if err := m.checkRow(ctxAddScaledRow, src); err != nil {
		return err
	}
	if dst == src {
		return fmt.Errorf("Dense.%s: dst == src (%d): %w", ctxAddScaledRow, dst, ErrOutOfRange)
	}
	if isNonFinite(alpha) {
		return fmt.Errorf("Dense.%s: alpha: %w", ctxAddScaledRow, ErrNaNInf)
	}

	bd, bs := dst*m.c, src*m.c
	for j := 0; j < m.c; j++ {
		m.data[bd+j] += alpha * m.data[bs+j]
	}

	return nil
}
