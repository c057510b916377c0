// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points over the methods.
//   - Never duplicate logic: each facade delegates to the canonical method.
//   - Non-mutating variants of the in-place arithmetic (Sum, Diff, Hadamard,
//     Scaled) clone first, so operands stay untouched.

package matrix

import (
	"github.com/katalvlaran/linalg/field"
	"github.com/katalvlaran/linalg/shape"
	"github.com/katalvlaran/linalg/vector"
)

const (
	opFacadeT     = "T"
	opFacadeScale = "Scaled"
)

// ---------- Constructors & Utilities ----------

// ZerosLike returns a zero matrix with the same shape as m.
func ZerosLike[K field.Scalar](m *Matrix[K]) (*Matrix[K], error) {
	if m == nil {
		return nil, shape.ErrNilOperand
	}

	return Zeros[K](m.Rows(), m.Cols())
}

// IdentityLike returns I with dimension Rows(m); requires a square m.
func IdentityLike[K field.Scalar](m *Matrix[K]) (*Matrix[K], error) {
	if m == nil {
		return nil, shape.ErrNilOperand
	}
	if err := shape.Square("IdentityLike", m.Shape()); err != nil {
		return nil, err
	}

	return Identity[K](m.Rows())
}

// ---------- Linear Algebra (facades map 1:1 to methods) ----------

// Sum returns a + b without mutating either operand.
func Sum[K field.Scalar](a, b *Matrix[K]) (*Matrix[K], error) {
	return cloneApply(a, b, (*Matrix[K]).Add)
}

// Diff returns a − b without mutating either operand.
func Diff[K field.Scalar](a, b *Matrix[K]) (*Matrix[K], error) {
	return cloneApply(a, b, (*Matrix[K]).Sub)
}

// Hadamard returns a ⊙ b without mutating either operand.
func Hadamard[K field.Scalar](a, b *Matrix[K]) (*Matrix[K], error) {
	return cloneApply(a, b, (*Matrix[K]).MulElem)
}

// Scaled returns alpha*m without mutating m.
func Scaled[K field.Scalar](m *Matrix[K], alpha K) (*Matrix[K], error) {
	if m == nil {
		return nil, shape.Errorf(opFacadeScale, shape.ErrNilOperand)
	}
	out := m.Clone()
	out.Scale(alpha)

	return out, nil
}

// Product is an alias for a.MulMat(b).
func Product[K field.Scalar](a, b *Matrix[K]) (*Matrix[K], error) {
	if a == nil {
		return nil, shape.Errorf(opMulMat, shape.ErrNilOperand)
	}

	return a.MulMat(b)
}

// MatVec is an alias for m.MulVec(x).
func MatVec[K field.Scalar](m *Matrix[K], x *vector.Vector[K]) (*vector.Vector[K], error) {
	if m == nil {
		return nil, shape.Errorf(opMulVec, shape.ErrNilOperand)
	}

	return m.MulVec(x)
}

// T returns mᵀ as a fresh matrix.
func T[K field.Scalar](m *Matrix[K]) (*Matrix[K], error) {
	if m == nil {
		return nil, shape.Errorf(opFacadeT, shape.ErrNilOperand)
	}

	return m.Transposed(), nil
}

// Det is an alias for m.Determinant().
func Det[K field.Scalar](m *Matrix[K]) (K, error) {
	if m == nil {
		return 0, shape.Errorf(opDeterminant, shape.ErrNilOperand)
	}

	return m.Determinant()
}

// RREF is an alias for m.RowEchelon(opts...).
func RREF[K field.Scalar](m *Matrix[K], opts ...Option) (*Matrix[K], error) {
	if m == nil {
		return nil, shape.Errorf(opRowEchelon, shape.ErrNilOperand)
	}

	return m.RowEchelon(opts...)
}

// cloneApply clones a and applies the in-place kernel with b.
func cloneApply[K field.Scalar](a, b *Matrix[K], f func(dst, src *Matrix[K]) error) (*Matrix[K], error) {
	if a == nil {
		return nil, shape.ErrNilOperand
	}
	out := a.Clone()
	if err := f(out, b); err != nil {
		return nil, err
	}

	return out, nil
}
