// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"strings"
)

// Frame draws rows inside box-drawing brackets with two decimals per value:
//
//	┌  -2.00    1.00  │ 100.00  ┐
//	│   1.00   -2.00  │ 200.00  │
//	└   1.00    1.00  │ 150.00  ┘
//
// sep > 0 inserts a vertical bar before column sep (the augmented block);
// sep <= 0 draws no bar. An empty matrix renders as "[ ]".
func Frame(rows [][]float64, sep int) string {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return "[ ]\n"
	}

	width := 0
	for _, row := range rows {
		for _, v := range row {
			width = max(width, len(fmt.Sprintf("%.2f", v)))
		}
	}

	var b strings.Builder
	last := len(rows) - 1
	for i, row := range rows {
		left, right := "│ ", "│"
		switch i {
		case 0:
			left, right = "┌ ", "┐"
		case last:
			left, right = "└ ", "┘"
		}
		b.WriteString(left)
		for j, v := range row {
			if sep > 0 && j == sep {
				b.WriteString("│ ")
			}
			fmt.Fprintf(&b, "%*.2f  ", width, v)
		}
		b.WriteString(right)
		b.WriteByte('\n')
	}

	return b.String()
}

// Vector draws v as a single bracketed column.
func Vector(v []float64) string {
	rows := make([][]float64, len(v))
	for i, x := range v {
		rows[i] = []float64{x}
	}

	return Frame(rows, 0)
}
