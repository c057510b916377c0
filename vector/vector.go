// SPDX-License-Identifier: MIT

// Package vector - dense, fixed-length sequences over a field.Scalar.
//
// Purpose:
//   - Own a contiguous []K; length is fixed after construction except for
//     Append, which matrix row extraction uses to build rows cell by cell.
//   - Report every user error as a sentinel from package shape; never panic.
//   - Validate before mutating: a failed in-place call leaves the receiver
//     untouched.
//
// Empty-vector policy:
//   - Reductions (Dot, Sum, SqSum, Norm1, NormInf, Norm) fail fast with
//     shape.ErrEmptyOperand instead of inventing an identity value.
//
// Complexity quicksheet:
//   - New/Clone/Values: O(n); At/Set/Len: O(1); arithmetic and reductions: O(n).
package vector

import (
	"fmt"
	"iter"
	"strings"

	"github.com/katalvlaran/linalg/field"
	"github.com/katalvlaran/linalg/shape"
)

// ---------- error context tags ----------

const (
	opNew      = "vector.Filled"
	opAt       = "Vector.At"
	opSet      = "Vector.Set"
	opAdd      = "Vector.Add"
	opSub      = "Vector.Sub"
	opMulElem  = "Vector.MulElem"
	opDivElem  = "Vector.DivElem"
	opDot      = "Vector.Dot"
	opSum      = "Vector.Sum"
	opSqSum    = "Vector.SqSum"
	opNorm1    = "Vector.Norm1"
	opNormInf  = "Vector.NormInf"
	opNorm     = "Vector.Norm"
	opLinComb  = "LinearCombination"
	opLerp     = "Lerp"
	opCross    = "CrossProduct"
	opAngleCos = "AngleCos"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

// Vector is a dense ordered sequence of K.
// Distinct vectors never share storage: constructors and Clone copy.
type Vector[K field.Scalar] struct {
	fields []K
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Vector[float64])(nil)

// New returns a vector holding a copy of values.
// New() with no values is the empty vector.
// Complexity: O(n).
func New[K field.Scalar](values ...K) *Vector[K] {
	cp := make([]K, len(values))
	copy(cp, values)

	return &Vector[K]{fields: cp}
}

// Filled returns a vector of n copies of value.
// Errors: shape.ErrConstruction when n < 0.
// Complexity: O(n).
func Filled[K field.Scalar](value K, n int) (*Vector[K], error) {
	if n < 0 {
		return nil, fmt.Errorf("%s: length %d: %w", opNew, n, shape.ErrConstruction)
	}
	buf := make([]K, n)
	for i := range buf {
		buf[i] = value
	}

	return &Vector[K]{fields: buf}, nil
}

// Zeros returns the zero vector of length n.
func Zeros[K field.Scalar](n int) (*Vector[K], error) {
	return Filled(field.Zero[K](), n)
}

// Len returns the number of elements. O(1).
func (v *Vector[K]) Len() int { return len(v.fields) }

// Shape returns shape.OneD(Len()). O(1).
func (v *Vector[K]) Shape() shape.Dimension { return shape.OneD(len(v.fields)) }

// At returns element i or shape.ErrOutOfRange.
func (v *Vector[K]) At(i int) (K, error) {
	if err := shape.Index(opAt, i, len(v.fields)); err != nil {
		return 0, err
	}

	return v.fields[i], nil
}

// Set stores x at i or returns shape.ErrOutOfRange.
func (v *Vector[K]) Set(i int, x K) error {
	if err := shape.Index(opSet, i, len(v.fields)); err != nil {
		return err
	}
	v.fields[i] = x

	return nil
}

// Append grows the vector by one element.
// It is the only resizing operation; matrix row extraction relies on it.
func (v *Vector[K]) Append(x K) { v.fields = append(v.fields, x) }

// Values returns a copy of the elements.
func (v *Vector[K]) Values() []K {
	cp := make([]K, len(v.fields))
	copy(cp, v.fields)

	return cp
}

// All iterates (index, value) pairs in order.
// The receiver must not be resized while iterating.
func (v *Vector[K]) All() iter.Seq2[int, K] {
	return func(yield func(int, K) bool) {
		for i, x := range v.fields {
			if !yield(i, x) {
				return
			}
		}
	}
}

// Clone returns a deep copy.
func (v *Vector[K]) Clone() *Vector[K] { return New(v.fields...) }

// Equal reports exact elementwise equality (lengths must match).
func (v *Vector[K]) Equal(o *Vector[K]) bool {
	if o == nil || len(v.fields) != len(o.fields) {
		return false
	}
	for i := range v.fields {
		if v.fields[i] != o.fields[i] {
			return false
		}
	}

	return true
}

// EqualApprox reports |v[i]-o[i]| <= eps for every i (lengths must match).
func (v *Vector[K]) EqualApprox(o *Vector[K], eps float64) bool {
	if o == nil || len(v.fields) != len(o.fields) {
		return false
	}
	for i := range v.fields {
		if !field.Equal(v.fields[i], o.fields[i], eps) {
			return false
		}
	}

	return true
}

// String renders "[a, b, c]" using %v for each element.
func (v *Vector[K]) String() string {
	var b strings.Builder
	b.WriteString(_fmtOpen)
	for i, x := range v.fields {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		fmt.Fprintf(&b, "%v", x)
	}
	b.WriteString(_fmtClose)

	return b.String()
}

// checkOperand is the shared guard for binary operations: non-nil and same length.
func (v *Vector[K]) checkOperand(op string, o *Vector[K]) error {
	if o == nil {
		return shape.Errorf(op, shape.ErrNilOperand)
	}

	return shape.SameDimension(op, v.Shape(), o.Shape())
}
