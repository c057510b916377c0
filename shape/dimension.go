// SPDX-License-Identifier: MIT

// Package shape describes container dimensions and the compatibility checks
// every vector and matrix operation runs before it touches any state.
//
// Purpose:
//   - Dimension: tagged variant over OneD{length} and TwoD{rows, cols}.
//   - Sentinel errors (errors.go) and the structured *Error that carries the
//     conflicting shapes.
//   - Validators (validators.go): single source of truth for guards, so the
//     vector and matrix kernels stay free of ad hoc length code.
//
// Determinism:
//   - Everything in this package is pure and allocation-free on the success path.
package shape

import "fmt"

// Kind tags which variant a Dimension holds.
type Kind uint8

const (
	// OneDim tags a vector shape.
	OneDim Kind = iota + 1
	// TwoDim tags a matrix shape.
	TwoDim
)

// String returns "1D" or "2D".
func (k Kind) String() string {
	switch k {
	case OneDim:
		return "1D"
	case TwoDim:
		return "2D"
	default:
		return "invalid"
	}
}

// Dimension is the shape of a container. The zero value is invalid;
// build one with OneD or TwoD. Values are immutable.
type Dimension struct {
	kind Kind
	rows int // length for OneDim
	cols int // unused for OneDim
}

// OneD returns the shape of a vector of length n.
func OneD(n int) Dimension { return Dimension{kind: OneDim, rows: n} }

// TwoD returns the shape of a rows×cols matrix.
func TwoD(rows, cols int) Dimension { return Dimension{kind: TwoDim, rows: rows, cols: cols} }

// Kind reports the variant.
func (d Dimension) Kind() Kind { return d.kind }

// Len returns the vector length, or the row count of a matrix.
func (d Dimension) Len() int { return d.rows }

// Rows returns the row count (vector length for OneDim).
func (d Dimension) Rows() int { return d.rows }

// Cols returns the column count; 1 for a vector, matching a column layout.
func (d Dimension) Cols() int {
	if d.kind == OneDim {
		return 1
	}

	return d.cols
}

// Size returns the number of scalar cells.
func (d Dimension) Size() int {
	if d.kind == OneDim {
		return d.rows
	}

	return d.rows * d.cols
}

// IsEmpty reports whether the container holds no scalars.
func (d Dimension) IsEmpty() bool { return d.Size() == 0 }

// IsSquare reports rows == cols for TwoDim; always false for OneDim.
func (d Dimension) IsSquare() bool { return d.kind == TwoDim && d.rows == d.cols }

// Equal reports variant and extent equality.
func (d Dimension) Equal(o Dimension) bool { return d == o }

// String renders "(n)" for vectors and "(r×c)" for matrices.
func (d Dimension) String() string {
	switch d.kind {
	case OneDim:
		return fmt.Sprintf("(%d)", d.rows)
	case TwoDim:
		return fmt.Sprintf("(%d×%d)", d.rows, d.cols)
	default:
		return "(invalid)"
	}
}

// PerfectSquareRoot returns r with r*r == n, or false when n is not a perfect square.
// Negative n is never a perfect square.
func PerfectSquareRoot(n int) (int, bool) {
	if n < 0 {
		return 0, false
	}
	// Integer Newton iteration; avoids float rounding for large n.
	r := n
	for r > 0 && r > n/r {
		r = (r + n/r) / 2
	}
	if r*r == n {
		return r, true
	}

	return 0, false
}
