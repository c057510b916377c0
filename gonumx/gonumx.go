// SPDX-License-Identifier: MIT

// Package gonumx bridges linalg matrices and vectors to gonum's mat package.
//
// The generic containers favour exactness and small inputs; gonum favours
// float64 throughput. Converting lets callers hand large or ill-conditioned
// work (LU determinant, BLAS products) to gonum and bring the result back.
//
// Conversions copy. Nothing returned here aliases the source storage.
package gonumx

import (
	"fmt"

	"github.com/katalvlaran/linalg/field"
	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/shape"
	"github.com/katalvlaran/linalg/vector"
	"gonum.org/v1/gonum/mat"
)

const (
	opToDense    = "gonumx.ToDense"
	opFromDense  = "gonumx.FromDense"
	opToVecDense = "gonumx.ToVecDense"
	opFromVector = "gonumx.FromVector"
	opDet        = "gonumx.Det"
)

// ToDense copies m into a row-major *mat.Dense.
// Errors: shape.ErrNilOperand, shape.ErrEmptyOperand (gonum has no zero-sized Dense).
func ToDense[K field.Scalar](m *matrix.Matrix[K]) (*mat.Dense, error) {
	if m == nil {
		return nil, shape.Errorf(opToDense, shape.ErrNilOperand)
	}
	if err := shape.NonEmpty(opToDense, m.Shape()); err != nil {
		return nil, err
	}
	r, c := m.Rows(), m.Cols()
	data := make([]float64, r*c)
	for j, col := range m.Columns() {
		for i, x := range col.All() {
			data[i*c+j] = float64(x)
		}
	}

	return mat.NewDense(r, c, data), nil
}

// FromDense copies any gonum matrix into a *matrix.Matrix[K].
// For integer K every cell is converted with Go's truncating conversion.
func FromDense[K field.Scalar](a mat.Matrix) (*matrix.Matrix[K], error) {
	if a == nil {
		return nil, shape.Errorf(opFromDense, shape.ErrNilOperand)
	}
	r, c := a.Dims()
	rows := make([][]K, r)
	for i := range rows {
		rows[i] = make([]K, c)
		for j := range rows[i] {
			rows[i][j] = K(a.At(i, j))
		}
	}
	m, err := matrix.FromRowSlices(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opFromDense, err)
	}

	return m, nil
}

// ToVecDense copies v into a *mat.VecDense.
func ToVecDense[K field.Scalar](v *vector.Vector[K]) (*mat.VecDense, error) {
	if v == nil {
		return nil, shape.Errorf(opToVecDense, shape.ErrNilOperand)
	}
	if err := shape.NonEmpty(opToVecDense, v.Shape()); err != nil {
		return nil, err
	}
	data := make([]float64, v.Len())
	for i, x := range v.All() {
		data[i] = float64(x)
	}

	return mat.NewVecDense(len(data), data), nil
}

// FromVector copies a gonum vector into a *vector.Vector[K].
func FromVector[K field.Scalar](v mat.Vector) (*vector.Vector[K], error) {
	if v == nil {
		return nil, shape.Errorf(opFromVector, shape.ErrNilOperand)
	}
	out := vector.New[K]()
	for i := 0; i < v.Len(); i++ {
		out.Append(K(v.AtVec(i)))
	}

	return out, nil
}

// Det returns det(m) through gonum's LU factorization.
//
// Unlike Matrix.Determinant this runs in O(n³) and always yields float64,
// so integer inputs may come back with rounding noise; round the result if
// an exact integer is expected.
//
// Errors: shape.ErrNilOperand, shape.ErrEmptyOperand, shape.ErrNotSquare.
func Det[K field.Scalar](m *matrix.Matrix[K]) (float64, error) {
	if m == nil {
		return 0, shape.Errorf(opDet, shape.ErrNilOperand)
	}
	if err := shape.SquareNonEmpty(opDet, m.Shape()); err != nil {
		return 0, err
	}
	d, err := ToDense(m)
	if err != nil {
		return 0, err
	}

	return mat.Det(d), nil
}
