// SPDX-License-Identifier: MIT
// Package matrix - human-readable rendering.
//
// Layout: one line per row, "[a, b, c]", every cell formatted with a fixed
// number of decimals and right-aligned to the widest cell of its column.
// Widths are measured column by column (then row by row), matching storage order.

package matrix

import (
	"strconv"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
	_fmtEmpty    = "[]\n"

	// DefaultPrecision is the number of decimals used by String.
	DefaultPrecision = 2
)

// String renders the matrix with DefaultPrecision decimals.
func (m *Matrix[K]) String() string { return m.Format(DefaultPrecision) }

// Format renders the matrix with the given number of decimals (negative → 0).
//
// Implementation:
//   - Stage 1: format every cell once, column-then-row, tracking each column's max width.
//   - Stage 2: emit rows, left-padding each cell to its column width.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the formatted cells.
func (m *Matrix[K]) Format(precision int) string {
	if m.Size() == 0 {
		return _fmtEmpty
	}
	if precision < 0 {
		precision = 0
	}

	cells := make([][]string, len(m.cols)) // cells[j][i]
	widths := make([]int, len(m.cols))
	var i, j int
	for j = 0; j < len(m.cols); j++ {
		cells[j] = make([]string, m.r)
		for i = 0; i < m.r; i++ {
			s := strconv.FormatFloat(float64(m.get(i, j)), 'f', precision, 64)
			cells[j][i] = s
			widths[j] = max(widths[j], len(s))
		}
	}

	var b strings.Builder
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		for j = 0; j < len(m.cols); j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			b.WriteString(strings.Repeat(" ", widths[j]-len(cells[j][i])))
			b.WriteString(cells[j][i])
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
