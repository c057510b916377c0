// SPDX-License-Identifier: MIT
// Package matrix - structural operations and products.
//
// Purpose:
//   - In-place elementwise arithmetic delegating column by column to vector.
//   - Transpose (in place) and Transposed (fresh copy).
//   - MulVec, MulMat, Trace and Minor, each returning a fresh result.
//
// Notes:
//   - Every kernel validates operands through package shape before the first
//     write, so a returned error never leaves the receiver half-updated.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/shape"
	"github.com/katalvlaran/linalg/vector"
)

// Operation name constants for unified error wrapping.
const (
	opAdd          = "Matrix.Add"
	opSub          = "Matrix.Sub"
	opMulElem      = "Matrix.MulElem"
	opDivElem      = "Matrix.DivElem"
	opScaleColumns = "Matrix.ScaleColumns"
	opAppendColumn = "Matrix.AppendColumn"
	opSwapRows     = "Matrix.SwapRows"
	opMulVec       = "Matrix.MulVec"
	opMulMat       = "Matrix.MulMat"
	opTrace        = "Matrix.Trace"
	opMinor        = "Matrix.Minor"
)

// checkSameShape is the shared guard for matrix–matrix elementwise kernels.
func (m *Matrix[K]) checkSameShape(op string, o *Matrix[K]) error {
	if o == nil {
		return shape.Errorf(op, shape.ErrNilOperand)
	}

	return shape.SameDimension(op, m.Shape(), o.Shape())
}

// elementwise applies f(column of m, column of o) for every column after the shape guard.
func (m *Matrix[K]) elementwise(op string, o *Matrix[K], f func(dst, src *vector.Vector[K]) error) error {
	if err := m.checkSameShape(op, o); err != nil {
		return err
	}
	for j := range m.cols {
		if err := f(m.cols[j], o.cols[j]); err != nil {
			return shape.Errorf(op, err)
		}
	}

	return nil
}

// Add performs m[i,j] += o[i,j].
// Errors: shape.ErrNilOperand, shape.ErrShapeMismatch.
// Complexity: O(r*c).
func (m *Matrix[K]) Add(o *Matrix[K]) error {
	return m.elementwise(opAdd, o, (*vector.Vector[K]).Add)
}

// Sub performs m[i,j] -= o[i,j].
// Errors: shape.ErrNilOperand, shape.ErrShapeMismatch.
// Complexity: O(r*c).
func (m *Matrix[K]) Sub(o *Matrix[K]) error {
	return m.elementwise(opSub, o, (*vector.Vector[K]).Sub)
}

// MulElem performs m[i,j] *= o[i,j] (Hadamard product in place).
func (m *Matrix[K]) MulElem(o *Matrix[K]) error {
	return m.elementwise(opMulElem, o, (*vector.Vector[K]).MulElem)
}

// DivElem performs m[i,j] /= o[i,j].
//
// Implementation:
//   - Stage 1: shape guard.
//   - Stage 2: scan all of o for an exact zero before dividing any column,
//     so a zero in a late column cannot leave early columns divided.
//   - Stage 3: divide column by column.
//
// Errors: shape.ErrNilOperand, shape.ErrShapeMismatch, shape.ErrDivideByZero.
func (m *Matrix[K]) DivElem(o *Matrix[K]) error {
	if err := m.checkSameShape(opDivElem, o); err != nil {
		return err
	}
	var i, j int
	for j = 0; j < len(o.cols); j++ {
		for i = 0; i < o.r; i++ {
			if o.get(i, j) == 0 {
				return fmt.Errorf("%s(%d,%d): %w", opDivElem, i, j, shape.ErrDivideByZero)
			}
		}
	}

	return m.elementwise(opDivElem, o, (*vector.Vector[K]).DivElem)
}

// Scale multiplies every cell by a. Total; never fails.
func (m *Matrix[K]) Scale(a K) {
	for _, c := range m.cols {
		c.Scale(a)
	}
}

// ScaleColumns multiplies every column elementwise by v (v.Len() == Rows()),
// i.e. row i is scaled by v[i].
// Errors: shape.ErrNilOperand, shape.ErrShapeMismatch.
func (m *Matrix[K]) ScaleColumns(v *vector.Vector[K]) error {
	if v == nil {
		return shape.Errorf(opScaleColumns, shape.ErrNilOperand)
	}
	if err := shape.SameDimension(opScaleColumns, shape.OneD(m.r), v.Shape()); err != nil {
		return err
	}
	for _, c := range m.cols {
		_ = c.MulElem(v) // lengths validated above
	}

	return nil
}

// AppendColumn appends a copy of v as the last column.
// A matrix with no columns adopts v's length as its row count.
// Errors: shape.ErrNilOperand, shape.ErrConstruction on length mismatch.
func (m *Matrix[K]) AppendColumn(v *vector.Vector[K]) error {
	if v == nil {
		return shape.Errorf(opAppendColumn, shape.ErrNilOperand)
	}
	if len(m.cols) > 0 && v.Len() != m.r {
		return fmt.Errorf("%s: column length %d, want %d: %w", opAppendColumn, v.Len(), m.r, shape.ErrConstruction)
	}
	if len(m.cols) == 0 {
		m.r = v.Len()
	}
	m.cols = append(m.cols, v.Clone())

	return nil
}

// SwapRows exchanges rows i and k across all columns.
// Errors: shape.ErrOutOfRange.
func (m *Matrix[K]) SwapRows(i, k int) error {
	if err := shape.Index(opSwapRows, i, m.r); err != nil {
		return err
	}
	if err := shape.Index(opSwapRows, k, m.r); err != nil {
		return err
	}
	m.swapRows(i, k)

	return nil
}

// swapRows is the unchecked whole-row swap used by elimination.
func (m *Matrix[K]) swapRows(i, k int) {
	if i == k {
		return
	}
	var a, b K
	for j := range m.cols {
		a, b = m.get(i, j), m.get(k, j)
		m.put(i, j, b)
		m.put(k, j, a)
	}
}

// Transpose swaps rows and columns in place by rebuilding the column list
// from the old rows. It is a real O(r*c) copy, not a view.
func (m *Matrix[K]) Transpose() {
	next := make([]*vector.Vector[K], m.r)
	for i := 0; i < m.r; i++ {
		row := vector.New[K]()
		for j := range m.cols {
			row.Append(m.get(i, j))
		}
		next[i] = row
	}
	m.r = len(m.cols)
	m.cols = next
}

// Transposed returns mᵀ as a fresh matrix; m is not mutated.
func (m *Matrix[K]) Transposed() *Matrix[K] {
	t := m.Clone()
	t.Transpose()

	return t
}

// MulVec computes y = m·v.
//
// Implementation:
//   - Stage 1: validate non-empty m and v.Len() == Cols().
//   - Stage 2: transpose a copy; each of its columns is a row of m.
//   - Stage 3: multiply each such row elementwise by v and sum it.
//
// Returns:
//   - *vector.Vector: fresh vector of length Rows().
//
// Errors:
//   - shape.ErrNilOperand, shape.ErrEmptyOperand, shape.ErrIncompatibleShape.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the transposed copy.
func (m *Matrix[K]) MulVec(v *vector.Vector[K]) (*vector.Vector[K], error) {
	if v == nil {
		return nil, shape.Errorf(opMulVec, shape.ErrNilOperand)
	}
	if err := shape.NonEmpty(opMulVec, m.Shape()); err != nil {
		return nil, err
	}
	if err := shape.InnerCompatible(opMulVec, m.Shape(), v.Shape()); err != nil {
		return nil, err
	}
	t := m.Transposed()
	out := vector.New[K]()
	for _, row := range t.cols {
		_ = row.MulElem(v) // row.Len() == v.Len() == Cols()
		s, _ := row.Sum()  // non-empty: Cols() > 0
		out.Append(s)
	}

	return out, nil
}

// MulMat computes C = m × o with shape Rows(m)×Cols(o).
//
// Implementation:
//   - Stage 1: reject empty operands, then check m.Cols == o.Rows.
//   - Stage 2: transpose m once; C[i,j] = (row i of m) · (column j of o).
//
// Errors:
//   - shape.ErrNilOperand.
//   - shape.ErrEmptyOperand when either operand has zero size.
//   - shape.ErrIncompatibleShape when inner dimensions disagree.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*n + r*c).
func (m *Matrix[K]) MulMat(o *Matrix[K]) (*Matrix[K], error) {
	if o == nil {
		return nil, shape.Errorf(opMulMat, shape.ErrNilOperand)
	}
	if err := shape.NonEmpty(opMulMat, m.Shape()); err != nil {
		return nil, err
	}
	if err := shape.NonEmpty(opMulMat, o.Shape()); err != nil {
		return nil, err
	}
	if err := shape.InnerCompatible(opMulMat, m.Shape(), o.Shape()); err != nil {
		return nil, err
	}
	t := m.Transposed() // t.cols[i] is row i of m
	out := &Matrix[K]{r: m.r, cols: make([]*vector.Vector[K], len(o.cols))}
	for j, oc := range o.cols {
		col := vector.New[K]()
		for _, row := range t.cols {
			d, _ := row.Dot(oc) // both have length m.Cols() > 0
			col.Append(d)
		}
		out.cols[j] = col
	}

	return out, nil
}

// Trace returns Σ m[i,i].
// Errors: shape.ErrEmptyOperand, shape.ErrNotSquare.
// Complexity: O(n).
func (m *Matrix[K]) Trace() (K, error) {
	if err := shape.SquareNonEmpty(opTrace, m.Shape()); err != nil {
		return 0, err
	}
	acc := m.get(0, 0)
	for i := 1; i < m.r; i++ {
		acc += m.get(i, i)
	}

	return acc, nil
}

// Minor returns a fresh (r-1)×(c-1) matrix with row and col discarded.
// Every other cell is copied; m is not mutated.
// Errors: shape.ErrOutOfRange.
// Complexity: O(r*c).
func (m *Matrix[K]) Minor(row, col int) (*Matrix[K], error) {
	if err := m.checkIndex(opMinor, row, col); err != nil {
		return nil, err
	}

	return m.discard(row, col), nil
}

// discard is the unchecked minor construction shared with the determinant.
func (m *Matrix[K]) discard(row, col int) *Matrix[K] {
	out := &Matrix[K]{r: m.r - 1, cols: make([]*vector.Vector[K], 0, len(m.cols)-1)}
	var i, j int
	for j = 0; j < len(m.cols); j++ {
		if j == col {
			continue
		}
		c := vector.New[K]()
		for i = 0; i < m.r; i++ {
			if i == row {
				continue
			}
			c.Append(m.get(i, j))
		}
		out.cols = append(out.cols, c)
	}

	return out
}
