// SPDX-License-Identifier: MIT

// Package textio parses compact matrix and vector literals used by the CLI.
//
// Grammar:
//
//	matrix := row { (";" | "\n") row }
//	row    := cell { ("," | whitespace) cell }
//
// Example: "1,2,3; 4,5,6" is a 2×3 matrix. Blank rows are ignored, so a
// trailing ";" or newline is accepted.
package textio

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/katalvlaran/linalg/shape"
)

// ErrSyntax marks a cell that is not a number.
var ErrSyntax = errors.New("textio: invalid number")

// ParseMatrix parses a row-major literal into [][]float64.
//
// Errors:
//   - ErrSyntax with the 1-based row/column of the offending cell.
//   - shape.ErrConstruction when rows have different lengths.
func ParseMatrix(s string) ([][]float64, error) {
	lines := strings.FieldsFunc(s, func(r rune) bool { return r == ';' || r == '\n' })
	rows := make([][]float64, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		row, err := parseCells(line, len(rows)+1)
		if err != nil {
			return nil, err
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("textio: row %d has %d cells, want %d: %w",
				len(rows)+1, len(row), len(rows[0]), shape.ErrConstruction)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// ParseVector parses a single row literal such as "1, 2, 3".
func ParseVector(s string) ([]float64, error) {
	if strings.ContainsAny(s, ";\n") {
		return nil, fmt.Errorf("textio: vector literal spans several rows: %w", shape.ErrConstruction)
	}

	return parseCells(s, 1)
}

func parseCells(line string, row int) ([]float64, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool { return r == ',' || unicode.IsSpace(r) })
	out := make([]float64, len(fields))
	for j, f := range fields {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("textio: row %d col %d: %q: %w", row, j+1, f, ErrSyntax)
		}
		out[j] = x
	}

	return out, nil
}
