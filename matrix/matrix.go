// SPDX-License-Identifier: MIT

// Package matrix - column-major storage & safe accessors.
//
// Purpose:
//   - Hold a rectangular list of column vectors; the rectangularity invariant
//     is enforced by every constructor and by AppendColumn.
//   - Guarantee safety at the public surface: At/Set/Row/Column return errors
//     instead of panicking.
//
// Complexity quicksheet:
//   - Constructors/Clone: O(r*c); At/Set: O(1); Row: O(c); Column: O(r).

package matrix

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/linalg/field"
	"github.com/katalvlaran/linalg/shape"
	"github.com/katalvlaran/linalg/vector"
)

// ---------- error context tags ----------

const (
	ctxFromSquare  = "matrix.FromSquare"
	ctxFromRows    = "matrix.FromRows"
	ctxFromColumns = "matrix.FromColumns"
	ctxFilled      = "matrix.Filled"
	ctxAt          = "Matrix.At"
	ctxSet         = "Matrix.Set"
	ctxRow         = "Matrix.Row"
	ctxColumn      = "Matrix.Column"
)

// Matrix is a dense rows×cols container over K, stored column-major.
//   - cols[j] is column j; every column has length r.
//   - r is kept explicitly so 0-column matrices still report their row count.
type Matrix[K field.Scalar] struct {
	r    int                 // row count (length of every column)
	cols []*vector.Vector[K] // owned column vectors
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix[float64])(nil)

// FromSquare builds an n×n matrix from a flat row-major sequence of length n².
//
// Implementation:
//   - Stage 1: integer square root of len(flat); reject non-perfect squares.
//   - Stage 2: partition into n row blocks and scatter them into n columns
//     (the row-major → column-major transpose).
//
// Errors:
//   - shape.ErrConstruction when len(flat) is not a perfect square.
//     The data is never truncated or padded.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func FromSquare[K field.Scalar](flat []K) (*Matrix[K], error) {
	n, ok := shape.PerfectSquareRoot(len(flat))
	if !ok {
		return nil, fmt.Errorf("%s: length %d is not a perfect square: %w", ctxFromSquare, len(flat), shape.ErrConstruction)
	}
	cols := make([]*vector.Vector[K], n)
	var i, j int
	for j = 0; j < n; j++ {
		col := make([]K, n)
		for i = 0; i < n; i++ {
			col[i] = flat[i*n+j] // row i, column j of the row-major literal
		}
		cols[j] = vector.New(col...)
	}

	return &Matrix[K]{r: n, cols: cols}, nil
}

// FromRows builds a matrix whose i-th row is rows[i].
// No rows yields the 0×0 matrix.
//
// Errors:
//   - shape.ErrNilOperand when a row is nil.
//   - shape.ErrConstruction when rows differ in length (non-rectangular).
//
// Complexity: O(r*c).
func FromRows[K field.Scalar](rows ...*vector.Vector[K]) (*Matrix[K], error) {
	if err := rectangular(ctxFromRows, rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return &Matrix[K]{}, nil
	}
	// Stored as columns first, then transposed into place.
	m := &Matrix[K]{r: rows[0].Len(), cols: make([]*vector.Vector[K], 0, len(rows))}
	for _, row := range rows {
		m.cols = append(m.cols, row.Clone())
	}
	m.Transpose()

	return m, nil
}

// FromColumns builds a matrix whose j-th column is cols[j] (copied).
// Errors: shape.ErrNilOperand, shape.ErrConstruction (non-rectangular).
func FromColumns[K field.Scalar](cols ...*vector.Vector[K]) (*Matrix[K], error) {
	if err := rectangular(ctxFromColumns, cols); err != nil {
		return nil, err
	}
	m := &Matrix[K]{cols: make([]*vector.Vector[K], len(cols))}
	for j, c := range cols {
		m.cols[j] = c.Clone()
	}
	if len(cols) > 0 {
		m.r = cols[0].Len()
	}

	return m, nil
}

// FromRowSlices builds a matrix from a row-major [][]K literal.
// It replaces the literal-construction convenience: FromRowSlices([][]int{{1, 2}, {3, 4}}).
// Errors: shape.ErrConstruction on ragged input.
func FromRowSlices[K field.Scalar](rows [][]K) (*Matrix[K], error) {
	vs := make([]*vector.Vector[K], len(rows))
	for i, row := range rows {
		vs[i] = vector.New(row...)
	}

	return FromRows(vs...)
}

// Filled returns a rows×cols matrix with every cell set to value.
// Errors: shape.ErrConstruction on negative dimensions.
// Complexity: O(r*c).
func Filled[K field.Scalar](value K, rows, cols int) (*Matrix[K], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxFilled, rows, cols, shape.ErrConstruction)
	}
	m := &Matrix[K]{r: rows, cols: make([]*vector.Vector[K], cols)}
	for j := range m.cols {
		m.cols[j], _ = vector.Filled(value, rows) // rows >= 0 checked above
	}

	return m, nil
}

// Zeros returns the rows×cols zero matrix.
func Zeros[K field.Scalar](rows, cols int) (*Matrix[K], error) {
	return Filled(field.Zero[K](), rows, cols)
}

// Identity returns I_n (ones on the diagonal, zeros elsewhere).
func Identity[K field.Scalar](n int) (*Matrix[K], error) {
	m, err := Zeros[K](n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.put(i, i, field.One[K]())
	}

	return m, nil
}

// rectangular validates that vs is non-nil element-wise and uniform in length.
func rectangular[K field.Scalar](op string, vs []*vector.Vector[K]) error {
	for k, v := range vs {
		if v == nil {
			return fmt.Errorf("%s: vector %d: %w", op, k, shape.ErrNilOperand)
		}
		if v.Len() != vs[0].Len() {
			return fmt.Errorf("%s: vector %d has length %d, want %d: %w",
				op, k, v.Len(), vs[0].Len(), shape.ErrConstruction)
		}
	}

	return nil
}

// Rows returns the row count. O(1).
func (m *Matrix[K]) Rows() int { return m.r }

// Cols returns the column count. O(1).
func (m *Matrix[K]) Cols() int { return len(m.cols) }

// Shape returns shape.TwoD(Rows(), Cols()). O(1).
func (m *Matrix[K]) Shape() shape.Dimension { return shape.TwoD(m.r, len(m.cols)) }

// Size returns Rows()*Cols(). O(1).
func (m *Matrix[K]) Size() int { return m.r * len(m.cols) }

// IsSquare reports Rows() == Cols().
func (m *Matrix[K]) IsSquare() bool { return m.r == len(m.cols) }

// get reads (i,j) without bounds reporting; callers guarantee the indices.
func (m *Matrix[K]) get(i, j int) K {
	x, _ := m.cols[j].At(i)

	return x
}

// put writes (i,j) without bounds reporting; callers guarantee the indices.
func (m *Matrix[K]) put(i, j int, x K) {
	_ = m.cols[j].Set(i, x)
}

// checkIndex validates (row, col) against the current shape.
func (m *Matrix[K]) checkIndex(op string, row, col int) error {
	if err := shape.Index(op+" row", row, m.r); err != nil {
		return err
	}

	return shape.Index(op+" col", col, len(m.cols))
}

// At returns the element at (row, col) or shape.ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix[K]) At(row, col int) (K, error) {
	if err := m.checkIndex(ctxAt, row, col); err != nil {
		return 0, err
	}

	return m.get(row, col), nil
}

// Set stores x at (row, col) or returns shape.ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix[K]) Set(row, col int, x K) error {
	if err := m.checkIndex(ctxSet, row, col); err != nil {
		return err
	}
	m.put(row, col, x)

	return nil
}

// Row returns a copy of row i, built by appending one cell per column.
// Errors: shape.ErrOutOfRange.
// Complexity: O(c).
func (m *Matrix[K]) Row(i int) (*vector.Vector[K], error) {
	if err := shape.Index(ctxRow, i, m.r); err != nil {
		return nil, err
	}
	row := vector.New[K]()
	for j := range m.cols {
		row.Append(m.get(i, j))
	}

	return row, nil
}

// Column returns a copy of column j.
// Errors: shape.ErrOutOfRange.
// Complexity: O(r).
func (m *Matrix[K]) Column(j int) (*vector.Vector[K], error) {
	if err := shape.Index(ctxColumn, j, len(m.cols)); err != nil {
		return nil, err
	}

	return m.cols[j].Clone(), nil
}

// Columns iterates (index, copy of column) pairs left to right.
// Copies keep callers from breaking the rectangularity invariant.
func (m *Matrix[K]) Columns() iter.Seq2[int, *vector.Vector[K]] {
	return func(yield func(int, *vector.Vector[K]) bool) {
		for j, c := range m.cols {
			if !yield(j, c.Clone()) {
				return
			}
		}
	}
}

// Clone returns a deep copy; mutations of either side are independent.
// Complexity: O(r*c).
func (m *Matrix[K]) Clone() *Matrix[K] {
	out := &Matrix[K]{r: m.r, cols: make([]*vector.Vector[K], len(m.cols))}
	for j, c := range m.cols {
		out.cols[j] = c.Clone()
	}

	return out
}

// Equal reports identical shape and cells.
func (m *Matrix[K]) Equal(o *Matrix[K]) bool {
	if o == nil || !m.Shape().Equal(o.Shape()) {
		return false
	}
	for j := range m.cols {
		if !m.cols[j].Equal(o.cols[j]) {
			return false
		}
	}

	return true
}

// EqualApprox reports identical shape and |m[i,j]-o[i,j]| <= eps everywhere.
func (m *Matrix[K]) EqualApprox(o *Matrix[K], eps float64) bool {
	if o == nil || !m.Shape().Equal(o.Shape()) {
		return false
	}
	for j := range m.cols {
		if !m.cols[j].EqualApprox(o.cols[j], eps) {
			return false
		}
	}

	return true
}
